package service

import (
	"context"
	"fmt"

	"github.com/trainloop/fitplan/internal/domain"
)

const (
	preferenceStrategyName      = "preference_scheduler"
	defaultPreferredSessionMin  = 60
	schedulerWarmupMinutes      = 15
	schedulerMinutesPerExercise = 10
	schedulerMinExercisesPerDay = 3
	schedulerMaxExercisesPerDay = 8
)

// PreferenceScheduler is the second workout generator variant: session
// duration comes from the user's stated preference, and the exercise count
// is derived from the time budget instead of the pattern count. Kept as a
// separate named strategy rather than merged into PlanGenerator; the two
// are invoked from different flows and their duration formulas differ on
// purpose.
type PreferenceScheduler struct {
	catalog  domain.ExerciseCatalog
	selector ExerciseSelector
}

// NewPreferenceScheduler creates the preference-driven generator.
func NewPreferenceScheduler(catalog domain.ExerciseCatalog, selector ExerciseSelector) *PreferenceScheduler {
	if selector == nil {
		selector = CycleSelector
	}
	return &PreferenceScheduler{catalog: catalog, selector: selector}
}

// Name identifies the strategy.
func (s *PreferenceScheduler) Name() string { return preferenceStrategyName }

// BuildWeek generates a week sized to the user's preferred session length.
func (s *PreferenceScheduler) BuildWeek(ctx context.Context, profile *domain.UserProfile, _ *domain.NutritionTargets) ([]domain.WorkoutDay, error) {
	duration := profile.PreferredSessionMinutes
	if duration <= 0 {
		duration = defaultPreferredSessionMin
	}

	count := (duration - schedulerWarmupMinutes) / schedulerMinutesPerExercise
	if count < schedulerMinExercisesPerDay {
		count = schedulerMinExercisesPerDay
	}
	if count > schedulerMaxExercisesPerDay {
		count = schedulerMaxExercisesPerDay
	}

	split := SelectSplit(profile.Goal, profile.WorkoutDaysPerWeek)
	focuses := weekFocuses(split, profile.WorkoutDaysPerWeek)

	days := make([]domain.WorkoutDay, 0, len(focuses))
	for i, focus := range focuses {
		day, err := s.buildDay(ctx, profile, focus, i, count, duration)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func (s *PreferenceScheduler) buildDay(ctx context.Context, profile *domain.UserProfile, focus dayFocus, dayIndex, count, duration int) (domain.WorkoutDay, error) {
	selected := make(map[string]bool)
	exercises := make([]domain.WorkoutExercise, 0, count)

	// Spread the time budget over the day's muscle patterns, revisiting
	// patterns cyclically when the budget allows more exercises than
	// patterns exist.
	for slot := 0; slot < count; slot++ {
		muscle := focus.muscles[slot%len(focus.muscles)]
		pool, err := s.catalog.Filter(ctx, domain.CatalogFilter{
			Muscle:    muscle,
			Equipment: profile.AvailableEquipment,
			MaxLevel:  profile.FitnessLevel,
			Exclude:   selected,
		})
		if err != nil {
			return domain.WorkoutDay{}, fmt.Errorf("failed to filter catalog for %s: %w", muscle, err)
		}
		if len(pool) == 0 {
			continue
		}

		ex := s.selector(pool, dayIndex, slot)
		selected[ex.Name] = true

		role := classifyRole(ex)
		rx := prescriptionFor(profile.Goal, role)
		exercises = append(exercises, domain.WorkoutExercise{
			Name:        ex.Name,
			Muscle:      muscle,
			Role:        role,
			Sets:        rx.sets,
			Reps:        rx.reps,
			RestSeconds: rx.restSeconds,
			ImageURL:    ex.ImageURL,
			Tags:        []string{string(ex.Level)},
		})
	}

	notes := append([]string{}, overloadNotes[profile.Goal]...)
	notes = append(notes, deloadNote)

	return domain.WorkoutDay{
		DayIndex:        dayIndex + 1,
		Name:            fmt.Sprintf("Day %d - %s", dayIndex+1, focus.name),
		Focus:           focus.focus,
		Exercises:       exercises,
		DurationMinutes: duration,
		Notes:           notes,
	}, nil
}
