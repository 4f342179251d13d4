package tests

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestDB spins up a fresh MongoDB container and returns the database connection
// along with a cleanup function.
func SetupTestDB(t *testing.T) (*mongo.Database, func()) {
	ctx := context.Background()

	mongodbContainer, err := mongodb.Run(ctx, "mongo:latest")
	if err != nil {
		t.Fatalf("failed to start container: %s", err)
	}

	endpoint, err := mongodbContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}

	return mongoClient.Database("test_db"), func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("failed to disconnect mongo: %v", err)
		}
		if err := mongodbContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %v", err)
		}
	}
}

// SeedExerciseLibrary inserts enough catalog entries for plan generation to
// fill every movement pattern at beginner level. Must run before the app
// makes its first catalog read, since the catalog memoizes the list.
func SeedExerciseLibrary(t *testing.T, db *mongo.Database) {
	muscles := []string{
		"chest", "middle back", "lats", "lower back", "quadriceps", "hamstrings",
		"glutes", "calves", "shoulders", "abdominals", "biceps", "triceps", "cardio",
	}

	now := time.Now().UTC()
	var docs []interface{}
	for _, m := range muscles {
		docs = append(docs,
			map[string]interface{}{
				"_id":             "seed-a-" + m,
				"name":            "Test " + m + " bodyweight",
				"primary_muscles": []string{m},
				"equipment":       "body only",
				"level":           "beginner",
				"created_at":      now,
				"updated_at":      now,
			},
			map[string]interface{}{
				"_id":             "seed-b-" + m,
				"name":            "Test " + m + " dumbbell",
				"primary_muscles": []string{m},
				"equipment":       "dumbbell",
				"level":           "beginner",
				"created_at":      now,
				"updated_at":      now,
			},
		)
	}

	_, err := db.Collection("exercise_library").InsertMany(context.Background(), docs)
	if err != nil {
		t.Fatalf("failed to seed exercise library: %v", err)
	}
}
