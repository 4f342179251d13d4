package domain

// AdjustmentType classifies a plan adjustment emitted by the adapter.
type AdjustmentType string

const (
	AdjustCalorie AdjustmentType = "calorie"
	AdjustWorkout AdjustmentType = "workout"
	AdjustRest    AdjustmentType = "rest"
	AdjustMacro   AdjustmentType = "macro"
	AdjustDeload  AdjustmentType = "deload"
)

// PlanAdjustment is one concrete, independently applicable recommendation.
// Adjustments are ephemeral: they mutate the profile/targets only when a
// caller explicitly commits them.
type PlanAdjustment struct {
	ID          string         `json:"id"` // ULID
	Type        AdjustmentType `json:"type"`
	Reason      string         `json:"reason"`
	OldValue    float64        `json:"old_value"`
	NewValue    float64        `json:"new_value"`
	Description string         `json:"description"`
	Priority    int            `json:"priority"` // higher fires first
}

// AdaptationResult bundles the ranked adjustments with the recomputed
// downstream targets.
type AdaptationResult struct {
	Adjustments       []PlanAdjustment `json:"adjustments"`
	AdjustedCalories  int              `json:"adjusted_calories"`
	AdjustedProteinG  int              `json:"adjusted_protein_g"`
	AdjustedCarbsG    int              `json:"adjusted_carbs_g"`
	AdjustedFatG      int              `json:"adjusted_fat_g"`
	AdjustedDays      int              `json:"adjusted_days_per_week"`
	DeloadRecommended bool             `json:"deload_recommended"`
	Summary           string           `json:"summary"`
}
