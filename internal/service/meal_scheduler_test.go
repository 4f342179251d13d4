package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/domain"
)

// Reference scenario: wake 07:00, sleep 23:00, workout 18:00, 1800 kcal.
// Under both snack thresholds, so exactly five slots are scheduled.
func TestMealSchedulerReferenceScenario(t *testing.T) {
	sched := NewMealScheduler()
	profile := testProfile()
	profile.PreferredWorkoutTime = "18:00"
	targets := &domain.NutritionTargets{
		TargetCalories: 1800,
		ProteinGrams:   160,
		CarbGrams:      160,
		FatGrams:       60,
	}

	slots, err := sched.BuildDay(profile, targets)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	wantTimes := map[domain.MealSlotType]domain.ClockTime{
		domain.SlotBreakfast:   "07:30",
		domain.SlotLunch:       "11:30",
		domain.SlotPreWorkout:  "16:30",
		domain.SlotPostWorkout: "19:30",
		domain.SlotDinner:      "20:00",
	}
	for _, slot := range slots {
		want, ok := wantTimes[slot.Type]
		require.True(t, ok, "unexpected slot %s", slot.Type)
		assert.Equal(t, want, slot.ScheduledTime, "slot %s", slot.Type)
	}

	// Slots come back sorted ascending by clock time.
	for i := 1; i < len(slots); i++ {
		prev, _ := slots[i-1].ScheduledTime.Minutes()
		cur, _ := slots[i].ScheduledTime.Minutes()
		assert.LessOrEqual(t, prev, cur)
	}
}

// Slot calories must sum exactly to the daily total regardless of which
// optional slots are included.
func TestMealSchedulerCalorieSumInvariant(t *testing.T) {
	tests := []struct {
		name     string
		calories int
		goal     domain.Goal
		workout  domain.ClockTime
	}{
		{name: "five slots", calories: 1800, goal: domain.GoalLoseWeight, workout: "18:00"},
		{name: "snack included", calories: 2200, goal: domain.GoalLoseWeight, workout: "18:00"},
		{name: "all slots", calories: 2700, goal: domain.GoalLoseWeight, workout: "18:00"},
		{name: "no workout", calories: 2000, goal: domain.GoalMaintain, workout: ""},
		{name: "evening snack via goal", calories: 1900, goal: domain.GoalBuildMuscle, workout: "06:30"},
	}

	sched := NewMealScheduler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.Goal = tt.goal
			profile.PreferredWorkoutTime = tt.workout
			targets := &domain.NutritionTargets{TargetCalories: tt.calories, ProteinGrams: 150, CarbGrams: 180, FatGrams: 65}

			slots, err := sched.BuildDay(profile, targets)
			require.NoError(t, err)

			sum := 0
			for _, slot := range slots {
				sum += slot.Calories
			}
			assert.Equal(t, tt.calories, sum)
		})
	}
}

func TestMealSchedulerOptionalSlots(t *testing.T) {
	sched := NewMealScheduler()

	hasSlot := func(slots []domain.MealSlot, st domain.MealSlotType) bool {
		for _, s := range slots {
			if s.Type == st {
				return true
			}
		}
		return false
	}

	profile := testProfile()

	t.Run("high calories adds both snacks", func(t *testing.T) {
		slots, err := sched.BuildDay(profile, &domain.NutritionTargets{TargetCalories: 2600})
		require.NoError(t, err)
		assert.True(t, hasSlot(slots, domain.SlotSnack))
		assert.True(t, hasSlot(slots, domain.SlotEveningSnack))
	})

	t.Run("no workout time drops workout slots", func(t *testing.T) {
		slots, err := sched.BuildDay(profile, &domain.NutritionTargets{TargetCalories: 1800})
		require.NoError(t, err)
		assert.False(t, hasSlot(slots, domain.SlotPreWorkout))
		assert.False(t, hasSlot(slots, domain.SlotPostWorkout))
	})

	t.Run("muscle gain always gets evening snack", func(t *testing.T) {
		p := testProfile()
		p.Goal = domain.GoalBuildMuscle
		slots, err := sched.BuildDay(p, &domain.NutritionTargets{TargetCalories: 1800})
		require.NoError(t, err)
		assert.True(t, hasSlot(slots, domain.SlotEveningSnack))
	})

	t.Run("invalid wake time errors", func(t *testing.T) {
		p := testProfile()
		p.WakeUpTime = "garbage"
		_, err := sched.BuildDay(p, &domain.NutritionTargets{TargetCalories: 1800})
		assert.Error(t, err)
	})
}
