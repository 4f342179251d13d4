package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPlanNotFound = errors.New("workout plan not found")
)

// SplitStrategy names the weekly structure chosen for a plan.
type SplitStrategy string

const (
	SplitFullBody     SplitStrategy = "full_body"
	SplitUpperLower   SplitStrategy = "upper_lower"
	SplitPushPullLegs SplitStrategy = "push_pull_legs"
	SplitHybrid       SplitStrategy = "hybrid" // upper/lower/push/pull/legs at 5 days
	SplitCircuit      SplitStrategy = "circuit"
	SplitCardio       SplitStrategy = "cardio"
)

// ExerciseRole distinguishes multi-joint movements from isolation work for
// sets/reps/rest assignment.
type ExerciseRole string

const (
	RoleCompound  ExerciseRole = "compound"
	RoleIsolation ExerciseRole = "isolation"
)

// WorkoutExercise is one prescribed exercise within a day. Reps is a range
// ("8-12") or a literal ("5").
type WorkoutExercise struct {
	Name        string       `bson:"name" json:"name"`
	Muscle      string       `bson:"muscle" json:"muscle"`
	Role        ExerciseRole `bson:"role" json:"role"`
	Sets        int          `bson:"sets" json:"sets"`
	Reps        string       `bson:"reps" json:"reps"`
	RestSeconds int          `bson:"rest_seconds" json:"rest_seconds"`
	ImageURL    string       `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Tags        []string     `bson:"tags,omitempty" json:"tags,omitempty"`
}

// WorkoutDay is one generated training day. Immutable once generated;
// completion state is tracked separately through daily check-ins.
type WorkoutDay struct {
	DayIndex        int               `bson:"day_index" json:"day_index"` // 1-based within the week
	Name            string            `bson:"name" json:"name"`           // e.g. "Day 2 - Pull"
	Focus           string            `bson:"focus" json:"focus"`         // e.g. "Back & Biceps"
	Exercises       []WorkoutExercise `bson:"exercises" json:"exercises"`
	DurationMinutes int               `bson:"duration_minutes" json:"duration_minutes"`
	Notes           []string          `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutPlan is a full weekly plan produced by one generator run.
type WorkoutPlan struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	PlanULID    string        `bson:"plan_ulid" json:"plan_ulid"`
	UserID      string        `bson:"user_id" json:"user_id"`
	Strategy    SplitStrategy `bson:"strategy" json:"strategy"`
	DaysPerWeek int           `bson:"days_per_week" json:"days_per_week"`
	Days        []WorkoutDay  `bson:"days" json:"days"`
	// Targets is the nutrition snapshot the plan was generated against.
	Targets     NutritionTargets `bson:"targets" json:"targets"`
	GeneratedAt time.Time        `bson:"generated_at" json:"generated_at"`
}

// WorkoutPlanRepository defines persistence for generated workout plans.
type WorkoutPlanRepository interface {
	Save(ctx context.Context, plan *WorkoutPlan) error
	GetLatestByUserID(ctx context.Context, userID string) (*WorkoutPlan, error)
}
