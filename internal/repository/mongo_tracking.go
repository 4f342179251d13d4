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

// MongoTrackingRepository implements domain.TrackingRepository. One document
// per (user, calendar day); a repeat check-in replaces the day's record.
type MongoTrackingRepository struct {
	collection *mongo.Collection
}

func NewMongoTrackingRepository(db *mongo.Database) *MongoTrackingRepository {
	coll := db.Collection("daily_tracking")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoTrackingRepository{
		collection: coll,
	}
}

// Upsert writes the record for (user, date), replacing any existing one.
func (r *MongoTrackingRepository) Upsert(ctx context.Context, record *domain.DailyTrackingRecord) error {
	record.Date = domain.NormalizeDate(record.Date)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	filter := bson.M{"user_id": record.UserID, "date": record.Date}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, record, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert tracking record: %w", err)
	}
	return nil
}

// ListByUserID returns records sorted ascending by date. A non-zero limit
// caps the result to the most recent entries.
func (r *MongoTrackingRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]*domain.DailyTrackingRecord, error) {
	// Fetch newest-first so the limit keeps the most recent window, then
	// reverse back to ascending.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*domain.DailyTrackingRecord
	for cursor.Next(ctx) {
		var record domain.DailyTrackingRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// GetByDate returns the record for a specific day, or domain.ErrNotFound.
func (r *MongoTrackingRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.DailyTrackingRecord, error) {
	var record domain.DailyTrackingRecord
	filter := bson.M{"user_id": userID, "date": domain.NormalizeDate(date)}
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tracking record: %w", err)
	}
	return &record, nil
}
