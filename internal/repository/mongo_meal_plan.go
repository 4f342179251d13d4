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

// MongoMealPlanRepository implements domain.MealPlanRepository.
type MongoMealPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoMealPlanRepository(db *mongo.Database) *MongoMealPlanRepository {
	coll := db.Collection("meal_plans")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "generated_at", Value: -1}},
	})

	return &MongoMealPlanRepository{
		collection: coll,
	}
}

func (r *MongoMealPlanRepository) Save(ctx context.Context, plan *domain.MealPlan) error {
	if plan.ID == "" {
		plan.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to save meal plan: %w", err)
	}
	return nil
}

// GetLatestByUserID returns the newest plan, or nil when none exists.
func (r *MongoMealPlanRepository) GetLatestByUserID(ctx context.Context, userID string) (*domain.MealPlan, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})

	var plan domain.MealPlan
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest meal plan: %w", err)
	}
	return &plan, nil
}
