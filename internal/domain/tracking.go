package domain

import (
	"context"
	"time"
)

// DailyTrackingRecord is one day of self-reported adherence data. The series
// is append-only with one record per user per date; the analyzer treats it as
// read-only input. Zero values mean "not reported" for optional fields.
type DailyTrackingRecord struct {
	ID                string    `bson:"_id,omitempty" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	Date              time.Time `bson:"date" json:"date"` // normalized to midnight UTC
	WeightKg          float64   `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	CaloriesConsumed  int       `bson:"calories_consumed" json:"calories_consumed"`
	WorkoutsCompleted int       `bson:"workouts_completed" json:"workouts_completed"`
	WaterMl           int       `bson:"water_ml" json:"water_ml"`
	SleepHours        float64   `bson:"sleep_hours" json:"sleep_hours"`
	MoodRating        int       `bson:"mood_rating" json:"mood_rating"`   // 1-5
	EnergyLevel       int       `bson:"energy_level" json:"energy_level"` // 1-5
	WorkoutIntensity  int       `bson:"workout_intensity,omitempty" json:"workout_intensity,omitempty"`
	RecoveryLevel     float64   `bson:"recovery_level,omitempty" json:"recovery_level,omitempty"` // 1-5
	PainPoints        []string  `bson:"pain_points,omitempty" json:"pain_points,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// NormalizeDate truncates a timestamp to midnight UTC for per-day keying.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TrackingRepository defines persistence for the daily tracking time series.
type TrackingRepository interface {
	// Upsert writes the record for (user, date), replacing any existing one.
	Upsert(ctx context.Context, record *DailyTrackingRecord) error
	// ListByUserID returns all records sorted ascending by date, capped at limit
	// most recent entries (0 = no cap).
	ListByUserID(ctx context.Context, userID string, limit int) ([]*DailyTrackingRecord, error)
	// GetByDate returns the record for a specific day, or ErrNotFound.
	GetByDate(ctx context.Context, userID string, date time.Time) (*DailyTrackingRecord, error)
}
