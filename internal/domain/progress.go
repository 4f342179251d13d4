package domain

import "time"

// WeightTrend classifies the recent weekly average weight change.
type WeightTrend string

const (
	TrendGaining     WeightTrend = "gaining"
	TrendLosing      WeightTrend = "losing"
	TrendMaintaining WeightTrend = "maintaining"
)

// PlateauSeverity buckets a detected plateau by its measured duration.
type PlateauSeverity string

const (
	PlateauNone     PlateauSeverity = "none"
	PlateauMild     PlateauSeverity = "mild"     // >=14 days
	PlateauModerate PlateauSeverity = "moderate" // >=21 days
	PlateauSevere   PlateauSeverity = "severe"   // >=28 days
)

// PlateauDetection is the result of the flat-weight-trend check.
type PlateauDetection struct {
	IsPlateau     bool            `json:"is_plateau"`
	DurationDays  int             `json:"duration_days"`
	Severity      PlateauSeverity `json:"severity"`
	WeightStdDev  float64         `json:"weight_std_dev"`
	SampledDays   int             `json:"sampled_days"`
	NonZeroWeighs int             `json:"non_zero_weighs"`
}

// GoalPrediction estimates time to the target weight from the recent rate.
type GoalPrediction struct {
	Predictable   bool      `json:"predictable"`
	DaysToGoal    int       `json:"days_to_goal"`
	EstimatedDate time.Time `json:"estimated_date"`
	WeeklyRateKg  float64   `json:"weekly_rate_kg"`
	OnTrack       bool      `json:"on_track"`
}

// InsightType classifies a generated insight for display.
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// Insight is one human-readable observation derived from the metrics,
// prioritized 1 (low) to 5 (high) and sorted descending for display.
type Insight struct {
	Type     InsightType `json:"type"`
	Priority int         `json:"priority"`
	Message  string      `json:"message"`
}

// ProgressMetrics is the full derived view over the tracking series. Pure
// value, recomputed per analysis request, never persisted as source of truth.
type ProgressMetrics struct {
	DaysTracked           int              `json:"days_tracked"`
	WeightChangeKg        float64          `json:"weight_change_kg"`
	WeightChangePercent   float64          `json:"weight_change_percent"`
	WeeklyAverageChangeKg float64          `json:"weekly_average_change_kg"`
	Trend                 WeightTrend      `json:"trend"`
	WorkoutAdherencePct   float64          `json:"workout_adherence_pct"`
	CurrentStreak         int              `json:"current_streak"`
	LongestStreak         int              `json:"longest_streak"`
	CalorieAdherencePct   float64          `json:"calorie_adherence_pct"`
	AverageSleepHours     float64          `json:"average_sleep_hours"`
	AverageWaterMl        float64          `json:"average_water_ml"`
	AverageMood           float64          `json:"average_mood"`
	AverageEnergy         float64          `json:"average_energy"`
	AverageRecovery       float64          `json:"average_recovery"`
	OverallScore          float64          `json:"overall_score"`     // 0-100
	ConsistencyScore      float64          `json:"consistency_score"` // 0-100
	Plateau               PlateauDetection `json:"plateau"`
	Prediction            GoalPrediction   `json:"prediction"`
}
