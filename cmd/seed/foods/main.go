package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/trainloop/fitplan/internal/config"
	"github.com/trainloop/fitplan/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mirrors the curated food database into the food_library collection so other
// tooling can read it without importing this codebase. The meal planner itself
// works from the in-process copy. Upserts by name, so re-running is safe.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(cfg.MongoDB.Database).Collection("food_library")

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create index: %v", err)
	}

	upserted := 0
	for _, food := range service.FoodLibrary() {
		opts := options.Replace().SetUpsert(true)
		if _, err := coll.ReplaceOne(ctx, bson.M{"name": food.Name}, food, opts); err != nil {
			log.Printf("Error upserting %s: %v\n", food.Name, err)
			continue
		}
		upserted++
	}
	fmt.Printf("Seeding Foods Complete. %d items written.\n", upserted)
}
