package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/domain"
)

func TestPreferenceSchedulerSessionSizing(t *testing.T) {
	tests := []struct {
		name            string
		preferredMin    int
		wantExercises   int
		wantDurationMin int
	}{
		{name: "default when unset", preferredMin: 0, wantExercises: 4, wantDurationMin: 60},
		{name: "short session floors at three", preferredMin: 30, wantExercises: 3, wantDurationMin: 30},
		{name: "ninety minutes", preferredMin: 90, wantExercises: 7, wantDurationMin: 90},
		{name: "long session caps at eight", preferredMin: 180, wantExercises: 8, wantDurationMin: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := NewPreferenceScheduler(testCatalog(), nil)
			profile := testProfile()
			profile.Goal = domain.GoalMaintain
			profile.WorkoutDaysPerWeek = 3
			profile.PreferredSessionMinutes = tt.preferredMin

			days, err := sched.BuildWeek(context.Background(), profile, nil)
			require.NoError(t, err)
			require.Len(t, days, 3)

			for _, day := range days {
				assert.Len(t, day.Exercises, tt.wantExercises)
				assert.Equal(t, tt.wantDurationMin, day.DurationMinutes)
			}
		})
	}
}

func TestPreferenceSchedulerRevisitsPatternsWithoutDuplicates(t *testing.T) {
	sched := NewPreferenceScheduler(testCatalog(), nil)
	profile := testProfile()
	profile.Goal = domain.GoalIncreaseStrength
	profile.WorkoutDaysPerWeek = 3
	profile.PreferredSessionMinutes = 95 // 8 exercises over 5 full-body patterns

	days, err := sched.BuildWeek(context.Background(), profile, nil)
	require.NoError(t, err)

	for _, day := range days {
		seen := make(map[string]bool)
		for _, ex := range day.Exercises {
			assert.False(t, seen[ex.Name], "duplicate exercise %s", ex.Name)
			seen[ex.Name] = true
		}
		assert.Len(t, day.Exercises, 8)
	}
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "plan_generator", NewPlanGenerator(testCatalog(), nil).Name())
	assert.Equal(t, "preference_scheduler", NewPreferenceScheduler(testCatalog(), nil).Name())
}
