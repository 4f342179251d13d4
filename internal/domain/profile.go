package domain

import (
	"context"
	"fmt"
	"time"
)

// Goal is the user's primary training objective. The set is closed: parsing
// rejects unknown values instead of falling through to a default.
type Goal string

const (
	GoalLoseWeight       Goal = "lose_weight"
	GoalBuildMuscle      Goal = "build_muscle"
	GoalMaintain         Goal = "maintain"
	GoalIncreaseStrength Goal = "increase_strength"
	GoalImproveEndurance Goal = "improve_endurance"
)

// ParseGoal validates a goal string against the closed set.
func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalLoseWeight, GoalBuildMuscle, GoalMaintain, GoalIncreaseStrength, GoalImproveEndurance:
		return Goal(s), nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// ActivityLevel describes habitual daily activity outside training.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ParseActivityLevel validates an activity level string against the closed set.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch ActivityLevel(s) {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return ActivityLevel(s), nil
	}
	return "", fmt.Errorf("unknown activity level %q", s)
}

// Equipment describes what the user has available to train with.
type Equipment string

const (
	EquipmentGym            Equipment = "gym"
	EquipmentHome           Equipment = "home"
	EquipmentMinimal        Equipment = "minimal"
	EquipmentBodyweightOnly Equipment = "bodyweight_only"
)

// ParseEquipment validates an equipment string against the closed set.
func ParseEquipment(s string) (Equipment, error) {
	switch Equipment(s) {
	case EquipmentGym, EquipmentHome, EquipmentMinimal, EquipmentBodyweightOnly:
		return Equipment(s), nil
	}
	return "", fmt.Errorf("unknown equipment %q", s)
}

// FitnessLevel gates exercise difficulty during plan generation.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// ParseFitnessLevel validates a fitness level string against the closed set.
func ParseFitnessLevel(s string) (FitnessLevel, error) {
	switch FitnessLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return FitnessLevel(s), nil
	}
	return "", fmt.Errorf("unknown fitness level %q", s)
}

// DietaryPreference restricts which foods the meal planner may pick.
type DietaryPreference string

const (
	DietNone        DietaryPreference = "none"
	DietVegetarian  DietaryPreference = "vegetarian"
	DietVegan       DietaryPreference = "vegan"
	DietPescatarian DietaryPreference = "pescatarian"
)

// Gender is used for the Mifflin-St Jeor offset only.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserProfile holds biometrics and lifestyle preferences collected at
// onboarding. It is the single input to target derivation and plan generation.
type UserProfile struct {
	UserID             string            `bson:"user_id" json:"user_id"`
	Age                int               `bson:"age" json:"age"`
	Gender             Gender            `bson:"gender" json:"gender"`
	HeightCm           float64           `bson:"height_cm" json:"height_cm"`
	WeightKg           float64           `bson:"weight_kg" json:"weight_kg"`
	TargetWeightKg     float64           `bson:"target_weight_kg,omitempty" json:"target_weight_kg,omitempty"`
	BodyFatPercentage  *float64          `bson:"body_fat_percentage,omitempty" json:"body_fat_percentage,omitempty"`
	Goal               Goal              `bson:"goal" json:"goal"`
	ActivityLevel      ActivityLevel     `bson:"activity_level" json:"activity_level"`
	FitnessLevel       FitnessLevel      `bson:"fitness_level" json:"fitness_level"`
	WorkoutDaysPerWeek int               `bson:"workout_days_per_week" json:"workout_days_per_week"`
	AvailableEquipment Equipment         `bson:"available_equipment" json:"available_equipment"`
	DietaryPreference  DietaryPreference `bson:"dietary_preference" json:"dietary_preference"`
	FoodAllergies      []string          `bson:"food_allergies" json:"food_allergies"`

	// Times of day as "HH:MM" wall clock strings.
	WakeUpTime           ClockTime `bson:"wake_up_time" json:"wake_up_time"`
	SleepTime            ClockTime `bson:"sleep_time" json:"sleep_time"`
	PreferredWorkoutTime ClockTime `bson:"preferred_workout_time,omitempty" json:"preferred_workout_time,omitempty"`

	// PreferredSessionMinutes drives the preference-based workout scheduler
	// variant. Zero means "no preference".
	PreferredSessionMinutes int `bson:"preferred_session_minutes,omitempty" json:"preferred_session_minutes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Complete reports whether the fields required for BMR derivation are present.
func (p *UserProfile) Complete() bool {
	return p.Age > 0 && p.HeightCm > 0 && p.WeightKg > 0 && p.Gender != ""
}

// Validate checks structural invariants on a profile submitted by a client.
func (p *UserProfile) Validate() error {
	if p.WorkoutDaysPerWeek < 1 || p.WorkoutDaysPerWeek > 7 {
		return fmt.Errorf("workout_days_per_week must be between 1 and 7, got %d", p.WorkoutDaysPerWeek)
	}
	if _, err := ParseGoal(string(p.Goal)); err != nil {
		return err
	}
	if _, err := ParseActivityLevel(string(p.ActivityLevel)); err != nil {
		return err
	}
	if _, err := ParseEquipment(string(p.AvailableEquipment)); err != nil {
		return err
	}
	if p.FitnessLevel != "" {
		if _, err := ParseFitnessLevel(string(p.FitnessLevel)); err != nil {
			return err
		}
	}
	if _, err := p.WakeUpTime.Minutes(); err != nil {
		return fmt.Errorf("wake_up_time: %w", err)
	}
	if _, err := p.SleepTime.Minutes(); err != nil {
		return fmt.Errorf("sleep_time: %w", err)
	}
	if p.PreferredWorkoutTime != "" {
		if _, err := p.PreferredWorkoutTime.Minutes(); err != nil {
			return fmt.Errorf("preferred_workout_time: %w", err)
		}
	}
	return nil
}

// ProfileRepository defines persistence for user profiles.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
}
