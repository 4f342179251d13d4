package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trainloop/fitplan/internal/domain"
)

// MongoWorkoutPlanRepository implements domain.WorkoutPlanRepository. Plans
// are append-only; "current" is simply the newest by generation time.
type MongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutPlanRepository(db *mongo.Database) *MongoWorkoutPlanRepository {
	coll := db.Collection("workout_plans")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "generated_at", Value: -1}},
	})

	return &MongoWorkoutPlanRepository{
		collection: coll,
	}
}

func (r *MongoWorkoutPlanRepository) Save(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.ID == "" {
		plan.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to save workout plan: %w", err)
	}
	return nil
}

// GetLatestByUserID returns the newest plan, or nil when none exists.
func (r *MongoWorkoutPlanRepository) GetLatestByUserID(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})

	var plan domain.WorkoutPlan
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest workout plan: %w", err)
	}
	return &plan, nil
}
