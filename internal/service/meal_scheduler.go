package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/trainloop/fitplan/internal/domain"
)

// Slot timing offsets, all in minutes and anchored to wake, sleep or
// workout time. Arithmetic wraps at midnight.
const (
	breakfastAfterWakeMin   = 30
	snackAfterBreakfastMin  = 150
	workStartAfterWakeMin   = 180
	lunchAfterWorkStartMin  = 90
	preWorkoutLeadMin       = 90
	postWorkoutDelayMin     = 90
	dinnerBeforeSleepMin    = 180
	eveningSnackBeforeSleep = 90

	snackCalorieThreshold        = 2000
	eveningSnackCalorieThreshold = 2500
)

// slotWeight is the base calorie share of one slot before normalization.
type slotWeight struct {
	slotType   domain.MealSlotType
	weight     float64
	importance domain.SlotImportance
}

var slotWeights = map[domain.MealSlotType]slotWeight{
	domain.SlotBreakfast:    {domain.SlotBreakfast, 25, domain.ImportanceHigh},
	domain.SlotSnack:        {domain.SlotSnack, 10, domain.ImportanceOptional},
	domain.SlotLunch:        {domain.SlotLunch, 30, domain.ImportanceHigh},
	domain.SlotPreWorkout:   {domain.SlotPreWorkout, 15, domain.ImportanceMedium},
	domain.SlotPostWorkout:  {domain.SlotPostWorkout, 20, domain.ImportanceCritical},
	domain.SlotDinner:       {domain.SlotDinner, 25, domain.ImportanceHigh},
	domain.SlotEveningSnack: {domain.SlotEveningSnack, 10, domain.ImportanceOptional},
}

// MealScheduler computes per-slot clock times and calorie/macro targets from
// wake/sleep/workout anchors. Pure transform over the profile and targets.
type MealScheduler struct{}

// NewMealScheduler creates a new meal scheduler.
func NewMealScheduler() *MealScheduler {
	return &MealScheduler{}
}

// BuildDay returns the scheduled slots for one day, sorted ascending by
// clock time. Slot calorie targets always sum to the daily total: the base
// weights of the slots actually included are normalized to 100%, so omitting
// an optional slot redistributes its share instead of under-allocating.
func (s *MealScheduler) BuildDay(profile *domain.UserProfile, targets *domain.NutritionTargets) ([]domain.MealSlot, error) {
	wake, err := profile.WakeUpTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid wake time: %w", err)
	}
	sleep, err := profile.SleepTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid sleep time: %w", err)
	}

	hasWorkout := profile.PreferredWorkoutTime != ""
	workout := 0
	if hasWorkout {
		workout, err = profile.PreferredWorkoutTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("invalid workout time: %w", err)
		}
	}

	total := targets.TargetCalories

	type scheduled struct {
		slotType domain.MealSlotType
		minute   int
	}

	breakfast := domain.AddClockMinutes(wake, breakfastAfterWakeMin)
	workStart := domain.AddClockMinutes(wake, workStartAfterWakeMin)

	slots := []scheduled{
		{domain.SlotBreakfast, breakfast},
		{domain.SlotLunch, domain.AddClockMinutes(workStart, lunchAfterWorkStartMin)},
		{domain.SlotDinner, domain.AddClockMinutes(sleep, -dinnerBeforeSleepMin)},
	}
	if total >= snackCalorieThreshold {
		slots = append(slots, scheduled{domain.SlotSnack, domain.AddClockMinutes(breakfast, snackAfterBreakfastMin)})
	}
	if hasWorkout {
		slots = append(slots,
			scheduled{domain.SlotPreWorkout, domain.AddClockMinutes(workout, -preWorkoutLeadMin)},
			scheduled{domain.SlotPostWorkout, domain.AddClockMinutes(workout, postWorkoutDelayMin)},
		)
	}
	if total >= eveningSnackCalorieThreshold || profile.Goal == domain.GoalBuildMuscle {
		slots = append(slots, scheduled{domain.SlotEveningSnack, domain.AddClockMinutes(sleep, -eveningSnackBeforeSleep)})
	}

	weightSum := 0.0
	for _, sl := range slots {
		weightSum += slotWeights[sl.slotType].weight
	}

	out := make([]domain.MealSlot, 0, len(slots))
	allocated := 0
	largest := -1
	largestWeight := 0.0
	for i, sl := range slots {
		w := slotWeights[sl.slotType]
		share := w.weight / weightSum
		calories := int(math.Round(float64(total) * share))
		allocated += calories

		out = append(out, domain.MealSlot{
			Type:          sl.slotType,
			ScheduledTime: domain.ClockFromMinutes(sl.minute),
			Calories:      calories,
			ProteinG:      int(math.Round(float64(targets.ProteinGrams) * share)),
			CarbsG:        int(math.Round(float64(targets.CarbGrams) * share)),
			FatG:          int(math.Round(float64(targets.FatGrams) * share)),
			Importance:    w.importance,
		})
		if w.weight > largestWeight {
			largestWeight = w.weight
			largest = i
		}
	}

	// Rounding drift goes to the largest slot so the invariant holds exactly.
	if largest >= 0 {
		out[largest].Calories += total - allocated
	}

	sort.SliceStable(out, func(i, j int) bool {
		mi, _ := out[i].ScheduledTime.Minutes()
		mj, _ := out[j].ScheduledTime.Minutes()
		return mi < mj
	})

	return out, nil
}
