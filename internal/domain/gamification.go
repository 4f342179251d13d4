package domain

import (
	"context"
	"time"
)

// AchievementMetric names the counter an achievement threshold applies to.
type AchievementMetric string

const (
	MetricWorkoutsTotal AchievementMetric = "workouts_total"
	MetricStreakDays    AchievementMetric = "streak_days"
	MetricCheckinsTotal AchievementMetric = "checkins_total"
	MetricWaterGoals    AchievementMetric = "water_goals"
	MetricWeightLogs    AchievementMetric = "weight_logs"
)

// Achievement is a library entry describing an unlockable badge.
type Achievement struct {
	ID          string            `bson:"_id,omitempty" json:"id"`
	Code        string            `bson:"code" json:"code"` // Unique Index
	Name        string            `bson:"name" json:"name"`
	Description string            `bson:"description" json:"description"`
	Metric      AchievementMetric `bson:"metric" json:"metric"`
	Threshold   int               `bson:"threshold" json:"threshold"`
}

// UserAchievement records a single unlock.
type UserAchievement struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Code       string    `bson:"code" json:"code"`
	UnlockedAt time.Time `bson:"unlocked_at" json:"unlocked_at"`
}

// StreakState tracks consecutive-activity-day counters per user.
type StreakState struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	CurrentStreak    int       `bson:"current_streak" json:"current_streak"`
	LongestStreak    int       `bson:"longest_streak" json:"longest_streak"`
	LastActivityDate time.Time `bson:"last_activity_date" json:"last_activity_date"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// AchievementRepository defines persistence for the achievement library,
// per-user unlocks and streak state.
type AchievementRepository interface {
	ListLibrary(ctx context.Context) ([]*Achievement, error)
	UpsertLibrary(ctx context.Context, achievement *Achievement) error
	ListUnlocked(ctx context.Context, userID string) ([]*UserAchievement, error)
	Unlock(ctx context.Context, unlock *UserAchievement) error
	GetStreak(ctx context.Context, userID string) (*StreakState, error)
	SaveStreak(ctx context.Context, streak *StreakState) error
}
