package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/trainloop/fitplan/internal/domain"
)

const (
	minWorkoutDaysPerWeek = 3

	lowAdherenceThreshold  = 60.0
	lowSleepThreshold      = 6.5
	lowMoodThreshold       = 3.0
	lowRecoveryThreshold   = 2.5
	recoveryProteinShift   = 0.05 // split share moved from carbs to protein
	recoveryProteinPctBump = 15
)

// painSubstitutions maps a reported pain point to the exercise guidance we
// emit for it. Matching is a case-insensitive substring check so "left knee"
// still hits the "knee" rule.
var painSubstitutions = map[string]string{
	"knee":     "Swap high-impact cardio for cycling or swimming and replace deep squats with box squats.",
	"back":     "Avoid conventional deadlifts and heavy spinal loading; prefer supported rows and glute bridges.",
	"shoulder": "Avoid overhead pressing; use landmine presses and neutral-grip work instead.",
}

// PlanAdapter turns analyzed progress into concrete plan adjustments. Each
// rule is independently evaluable and several may fire together; the result
// carries the recomputed calorie and macro targets with the BMR as a hard
// floor on any downward calorie move.
type PlanAdapter struct {
	calculator *BiometricCalculator
}

// NewPlanAdapter creates an adapter sharing the calculator's goal tables.
func NewPlanAdapter(calculator *BiometricCalculator) *PlanAdapter {
	return &PlanAdapter{calculator: calculator}
}

// Adapt evaluates all rules against the metrics and current targets.
func (a *PlanAdapter) Adapt(profile *domain.UserProfile, targets *domain.NutritionTargets, metrics *domain.ProgressMetrics) *domain.AdaptationResult {
	var adjustments []domain.PlanAdjustment

	calorieDelta := 0
	daysDelta := 0
	deload := false

	add := func(adj domain.PlanAdjustment) {
		adj.ID = ulid.Make().String()
		adjustments = append(adjustments, adj)
	}

	// Calorie nudge from the weekly rate against the goal's healthy band.
	rate := metrics.WeeklyAverageChangeKg
	if band, ok := healthyWeeklyRate[profile.Goal]; ok && metrics.DaysTracked >= predictionMinRecords {
		switch profile.Goal {
		case domain.GoalLoseWeight:
			if math.Abs(rate) < band[0] || rate > 0 {
				calorieDelta -= 200
				add(domain.PlanAdjustment{
					Type: domain.AdjustCalorie, Priority: 4,
					Reason:      "weight loss slower than the healthy range",
					OldValue:    float64(targets.TargetCalories),
					NewValue:    float64(targets.TargetCalories - 200),
					Description: "Increase the calorie deficit by 200 kcal/day to restart weight loss.",
				})
			} else if math.Abs(rate) > band[1] {
				calorieDelta += 150
				add(domain.PlanAdjustment{
					Type: domain.AdjustCalorie, Priority: 5,
					Reason:      "weight loss faster than the healthy range",
					OldValue:    float64(targets.TargetCalories),
					NewValue:    float64(targets.TargetCalories + 150),
					Description: "Reduce the deficit by 150 kcal/day; losing too fast costs muscle.",
				})
			}
		case domain.GoalBuildMuscle:
			if rate < band[0] {
				calorieDelta += 200
				add(domain.PlanAdjustment{
					Type: domain.AdjustCalorie, Priority: 4,
					Reason:      "weight gain slower than the healthy range",
					OldValue:    float64(targets.TargetCalories),
					NewValue:    float64(targets.TargetCalories + 200),
					Description: "Add 200 kcal/day to support muscle growth.",
				})
			} else if rate > band[1] {
				calorieDelta -= 150
				add(domain.PlanAdjustment{
					Type: domain.AdjustCalorie, Priority: 4,
					Reason:      "gaining faster than the healthy range",
					OldValue:    float64(targets.TargetCalories),
					NewValue:    float64(targets.TargetCalories - 150),
					Description: "Trim 150 kcal/day to keep the gain lean.",
				})
			}
		}
	}

	// Frequency reduction on poor adherence, floored at three days.
	if metrics.DaysTracked > 0 && metrics.WorkoutAdherencePct > 0 && metrics.WorkoutAdherencePct < lowAdherenceThreshold &&
		profile.WorkoutDaysPerWeek > minWorkoutDaysPerWeek {
		daysDelta = -1
		add(domain.PlanAdjustment{
			Type: domain.AdjustWorkout, Priority: 4,
			Reason:      fmt.Sprintf("workout adherence at %.0f%%", metrics.WorkoutAdherencePct),
			OldValue:    float64(profile.WorkoutDaysPerWeek),
			NewValue:    float64(profile.WorkoutDaysPerWeek - 1),
			Description: "Drop one training day per week; a schedule you hit beats one you skip.",
		})
	}

	// Plateau handling.
	if metrics.Plateau.IsPlateau {
		switch profile.Goal {
		case domain.GoalLoseWeight:
			calorieDelta -= 150
			add(domain.PlanAdjustment{
				Type: domain.AdjustCalorie, Priority: 5,
				Reason:      fmt.Sprintf("weight plateau for %d days", metrics.Plateau.DurationDays),
				OldValue:    float64(targets.TargetCalories),
				NewValue:    float64(targets.TargetCalories - 150),
				Description: "Cut 150 kcal/day and vary workout volume to break the plateau.",
			})
		case domain.GoalBuildMuscle:
			calorieDelta += 200
			add(domain.PlanAdjustment{
				Type: domain.AdjustCalorie, Priority: 5,
				Reason:      fmt.Sprintf("weight plateau for %d days", metrics.Plateau.DurationDays),
				OldValue:    float64(targets.TargetCalories),
				NewValue:    float64(targets.TargetCalories + 200),
				Description: "Add 200 kcal/day and increase training volume to push past the stall.",
			})
		default:
			add(domain.PlanAdjustment{
				Type: domain.AdjustWorkout, Priority: 3,
				Reason:      fmt.Sprintf("weight plateau for %d days", metrics.Plateau.DurationDays),
				Description: "Rotate exercise selection and rep ranges to introduce a new stimulus.",
			})
		}
		if metrics.Plateau.Severity == domain.PlateauSevere {
			deload = true
			add(domain.PlanAdjustment{
				Type: domain.AdjustDeload, Priority: 5,
				Reason:      "severe plateau",
				Description: "Take a deload week at roughly half your usual volume, then resume.",
			})
		}
	}

	// Lifestyle rules.
	if metrics.AverageSleepHours > 0 && metrics.AverageSleepHours < lowSleepThreshold {
		add(domain.PlanAdjustment{
			Type: domain.AdjustRest, Priority: 4,
			Reason:      fmt.Sprintf("averaging %.1f hours of sleep", metrics.AverageSleepHours),
			OldValue:    metrics.AverageSleepHours,
			NewValue:    idealSleepHours,
			Description: "Prioritize sleep before adding training stress; aim for 7.5 to 8 hours.",
		})
	}
	if (metrics.AverageMood > 0 && metrics.AverageMood < lowMoodThreshold) ||
		(metrics.AverageEnergy > 0 && metrics.AverageEnergy < lowMoodThreshold) {
		add(domain.PlanAdjustment{
			Type: domain.AdjustWorkout, Priority: 3,
			Reason:      "low reported mood or energy",
			Description: "Reduce session intensity for a week; keep moving but leave reps in reserve.",
		})
	}
	lowRecovery := metrics.AverageRecovery > 0 && metrics.AverageRecovery < lowRecoveryThreshold
	if lowRecovery {
		add(domain.PlanAdjustment{
			Type: domain.AdjustMacro, Priority: 3,
			Reason:      fmt.Sprintf("average recovery at %.1f/5", metrics.AverageRecovery),
			OldValue:    float64(targets.ProteinGrams),
			NewValue:    math.Round(float64(targets.ProteinGrams) * (1 + recoveryProteinPctBump/100.0)),
			Description: "Raise protein intake about 15% to support recovery.",
		})
	}

	sort.SliceStable(adjustments, func(i, j int) bool {
		return adjustments[i].Priority > adjustments[j].Priority
	})

	result := &domain.AdaptationResult{
		Adjustments:       adjustments,
		DeloadRecommended: deload,
	}

	// Recompute downstream targets. The BMR is a hard floor on any downward
	// calorie move.
	calories := targets.TargetCalories + calorieDelta
	if calories < targets.BMR {
		calories = targets.BMR
	}
	result.AdjustedCalories = calories

	split := a.calculator.MacroSplitFor(profile.Goal)
	if lowRecovery {
		split.Protein += recoveryProteinShift
		split.Carbs -= recoveryProteinShift
	}
	result.AdjustedProteinG = int(math.Round(float64(calories) * split.Protein / 4))
	result.AdjustedCarbsG = int(math.Round(float64(calories) * split.Carbs / 4))
	result.AdjustedFatG = int(math.Round(float64(calories) * split.Fat / 9))

	days := profile.WorkoutDaysPerWeek + daysDelta
	if days < minWorkoutDaysPerWeek {
		days = minWorkoutDaysPerWeek
	}
	result.AdjustedDays = days

	result.Summary = summarize(adjustments)
	return result
}

// SubstitutionsFor returns exercise guidance for the reported pain points.
func (a *PlanAdapter) SubstitutionsFor(painPoints []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, point := range painPoints {
		lower := strings.ToLower(point)
		for needle, advice := range painSubstitutions {
			if strings.Contains(lower, needle) && !seen[needle] {
				seen[needle] = true
				out = append(out, advice)
			}
		}
	}
	sort.Strings(out)
	return out
}

// summarize names the distinct adjustment types touched, in evaluation order.
func summarize(adjustments []domain.PlanAdjustment) string {
	if len(adjustments) == 0 {
		return "Plan is on track; no adjustments needed."
	}
	var kinds []string
	seen := make(map[domain.AdjustmentType]bool)
	for _, adj := range adjustments {
		if !seen[adj.Type] {
			seen[adj.Type] = true
			kinds = append(kinds, string(adj.Type))
		}
	}
	return fmt.Sprintf("%d adjustment(s) recommended covering: %s.", len(adjustments), strings.Join(kinds, ", "))
}
