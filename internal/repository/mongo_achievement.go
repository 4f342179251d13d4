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

// MongoAchievementRepository implements domain.AchievementRepository across
// three collections: the shared library, per-user unlocks and streak state.
type MongoAchievementRepository struct {
	library *mongo.Collection
	unlocks *mongo.Collection
	streaks *mongo.Collection
}

func NewMongoAchievementRepository(db *mongo.Database) *MongoAchievementRepository {
	library := db.Collection("achievement_library")
	unlocks := db.Collection("user_achievements")
	streaks := db.Collection("user_streaks")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = library.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = unlocks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = streaks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoAchievementRepository{
		library: library,
		unlocks: unlocks,
		streaks: streaks,
	}
}

func (r *MongoAchievementRepository) ListLibrary(ctx context.Context) ([]*domain.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "threshold", Value: 1}})
	cursor, err := r.library.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievement library: %w", err)
	}
	defer cursor.Close(ctx)

	var achievements []*domain.Achievement
	for cursor.Next(ctx) {
		var achievement domain.Achievement
		if err := cursor.Decode(&achievement); err != nil {
			return nil, err
		}
		achievements = append(achievements, &achievement)
	}
	return achievements, nil
}

// UpsertLibrary writes a library entry by code so seeding is idempotent.
func (r *MongoAchievementRepository) UpsertLibrary(ctx context.Context, achievement *domain.Achievement) error {
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID().Hex(),
		},
		"$set": bson.M{
			"code":        achievement.Code,
			"name":        achievement.Name,
			"description": achievement.Description,
			"metric":      achievement.Metric,
			"threshold":   achievement.Threshold,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.library.UpdateOne(ctx, bson.M{"code": achievement.Code}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert achievement: %w", err)
	}
	return nil
}

func (r *MongoAchievementRepository) ListUnlocked(ctx context.Context, userID string) ([]*domain.UserAchievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "unlocked_at", Value: 1}})
	cursor, err := r.unlocks.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlocks: %w", err)
	}
	defer cursor.Close(ctx)

	var unlocked []*domain.UserAchievement
	for cursor.Next(ctx) {
		var unlock domain.UserAchievement
		if err := cursor.Decode(&unlock); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, &unlock)
	}
	return unlocked, nil
}

// Unlock records an unlock. A duplicate (user, code) pair is a no-op so
// concurrent evaluations can't double-award.
func (r *MongoAchievementRepository) Unlock(ctx context.Context, unlock *domain.UserAchievement) error {
	if unlock.ID == "" {
		unlock.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.unlocks.InsertOne(ctx, unlock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to record unlock: %w", err)
	}
	return nil
}

// GetStreak returns the user's streak state, or nil when none exists.
func (r *MongoAchievementRepository) GetStreak(ctx context.Context, userID string) (*domain.StreakState, error) {
	var streak domain.StreakState
	if err := r.streaks.FindOne(ctx, bson.M{"user_id": userID}).Decode(&streak); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}
	return &streak, nil
}

func (r *MongoAchievementRepository) SaveStreak(ctx context.Context, streak *domain.StreakState) error {
	filter := bson.M{"user_id": streak.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.streaks.ReplaceOne(ctx, filter, streak, opts)
	if err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}
	return nil
}
