package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trainloop/fitplan/internal/domain"
)

// MongoProfileRepository implements domain.ProfileRepository. One profile
// document per user, keyed by user_id.
type MongoProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	coll := db.Collection("profiles")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProfileRepository{
		collection: coll,
	}
}

// Upsert replaces the user's profile document, creating it on first write.
func (r *MongoProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	filter := bson.M{"user_id": profile.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, profile, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetByUserID returns the profile, or nil on miss.
func (r *MongoProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
