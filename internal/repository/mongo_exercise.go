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

// MongoExerciseRepository implements domain.ExerciseRepository, backing the
// seeded exercise library.
type MongoExerciseRepository struct {
	collection *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	coll := db.Collection("exercise_library")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "primary_muscles", Value: 1}}},
		{Keys: bson.D{{Key: "equipment", Value: 1}}},
	})

	return &MongoExerciseRepository{
		collection: coll,
	}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

func (r *MongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return &exercise, nil
}

func (r *MongoExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer cursor.Close(ctx)

	var exercises []*domain.Exercise
	for cursor.Next(ctx) {
		var exercise domain.Exercise
		if err := cursor.Decode(&exercise); err != nil {
			return nil, err
		}
		exercises = append(exercises, &exercise)
	}
	return exercises, nil
}

// Upsert writes by name so the seeder is idempotent.
func (r *MongoExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) error {
	now := time.Now()

	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"created_at": now,
		},
		"$set": bson.M{
			"name":              exercise.Name,
			"primary_muscles":   exercise.PrimaryMuscles,
			"secondary_muscles": exercise.SecondaryMuscles,
			"equipment":         exercise.Equipment,
			"level":             exercise.Level,
			"instructions":      exercise.Instructions,
			"image_url":         exercise.ImageURL,
			"updated_at":        now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"name": exercise.Name}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert exercise: %w", err)
	}
	return nil
}

func (r *MongoExerciseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
