package service

import (
	"context"
	"fmt"

	"github.com/trainloop/fitplan/internal/domain"
)

// WorkoutStrategy is the interface both generator variants implement. The
// variants are deliberately kept separate: they share the split and
// prescription tables but differ in how session duration and exercise count
// are derived.
type WorkoutStrategy interface {
	Name() string
	BuildWeek(ctx context.Context, profile *domain.UserProfile, targets *domain.NutritionTargets) ([]domain.WorkoutDay, error)
}

// ExerciseSelector picks one exercise from a non-empty filtered pool.
// Injectable so generation is reproducible in tests; the default cycles
// deterministically by day and slot index.
type ExerciseSelector func(pool []domain.Exercise, dayIndex, slotIndex int) domain.Exercise

// CycleSelector is the default deterministic selector.
func CycleSelector(pool []domain.Exercise, dayIndex, slotIndex int) domain.Exercise {
	return pool[(dayIndex*3+slotIndex)%len(pool)]
}

// SelectSplit picks the weekly split strategy from goal and training days.
// Goal-driven splits take precedence over day-count splits.
func SelectSplit(goal domain.Goal, daysPerWeek int) domain.SplitStrategy {
	switch {
	case goal == domain.GoalLoseWeight:
		return domain.SplitCircuit
	case goal == domain.GoalImproveEndurance:
		return domain.SplitCardio
	case daysPerWeek >= 6:
		return domain.SplitPushPullLegs
	case daysPerWeek == 5:
		return domain.SplitHybrid
	case daysPerWeek == 4:
		return domain.SplitUpperLower
	default:
		return domain.SplitFullBody
	}
}

// dayFocus is one scheduled day's focus and the muscle patterns to fill.
type dayFocus struct {
	name    string
	focus   string
	muscles []string
}

var (
	fullBodyDay = dayFocus{name: "Full Body", focus: "Whole body",
		muscles: []string{"chest", "middle back", "quadriceps", "shoulders", "abdominals"}}
	upperDay = dayFocus{name: "Upper", focus: "Chest, back & arms",
		muscles: []string{"chest", "middle back", "shoulders", "biceps", "triceps"}}
	lowerDay = dayFocus{name: "Lower", focus: "Legs & core",
		muscles: []string{"quadriceps", "hamstrings", "glutes", "calves", "abdominals"}}
	pushDay = dayFocus{name: "Push", focus: "Chest, shoulders & triceps",
		muscles: []string{"chest", "shoulders", "triceps"}}
	pullDay = dayFocus{name: "Pull", focus: "Back & biceps",
		muscles: []string{"middle back", "lats", "biceps"}}
	legsDay = dayFocus{name: "Legs", focus: "Quads, hamstrings & glutes",
		muscles: []string{"quadriceps", "hamstrings", "glutes", "calves"}}
	circuitDay = dayFocus{name: "Circuit", focus: "High-intensity full body",
		muscles: []string{"chest", "middle back", "quadriceps", "shoulders", "abdominals", "cardio"}}
	cardioDay = dayFocus{name: "Cardio", focus: "Conditioning & core",
		muscles: []string{"cardio", "quadriceps", "abdominals"}}
)

// weekFocuses resolves the per-day focus list for a split. The returned
// slice always has exactly daysPerWeek entries.
func weekFocuses(split domain.SplitStrategy, daysPerWeek int) []dayFocus {
	var cycle []dayFocus
	switch split {
	case domain.SplitCircuit:
		cycle = []dayFocus{circuitDay}
	case domain.SplitCardio:
		cycle = []dayFocus{cardioDay}
	case domain.SplitPushPullLegs:
		cycle = []dayFocus{pushDay, pullDay, legsDay}
	case domain.SplitHybrid:
		cycle = []dayFocus{upperDay, lowerDay, pushDay, pullDay, legsDay}
	case domain.SplitUpperLower:
		cycle = []dayFocus{upperDay, lowerDay}
	default:
		cycle = []dayFocus{fullBodyDay}
	}

	days := make([]dayFocus, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		days[i] = cycle[i%len(cycle)]
	}
	return days
}

// prescription is a sets/reps/rest assignment.
type prescription struct {
	sets        int
	reps        string
	restSeconds int
}

// prescriptionFor is the goal x role policy table.
func prescriptionFor(goal domain.Goal, role domain.ExerciseRole) prescription {
	switch goal {
	case domain.GoalIncreaseStrength:
		if role == domain.RoleCompound {
			return prescription{sets: 5, reps: "5", restSeconds: 180}
		}
		return prescription{sets: 3, reps: "8-10", restSeconds: 90}
	case domain.GoalBuildMuscle:
		if role == domain.RoleCompound {
			return prescription{sets: 4, reps: "8-12", restSeconds: 90}
		}
		return prescription{sets: 3, reps: "10-12", restSeconds: 60}
	case domain.GoalLoseWeight:
		return prescription{sets: 3, reps: "12-15", restSeconds: 45}
	default:
		return prescription{sets: 3, reps: "10-12", restSeconds: 60}
	}
}

// classifyRole treats multi-muscle movements as compounds.
func classifyRole(ex domain.Exercise) domain.ExerciseRole {
	if len(ex.PrimaryMuscles)+len(ex.SecondaryMuscles) >= 2 {
		return domain.RoleCompound
	}
	return domain.RoleIsolation
}

// overloadNotes carries the static progressive-overload guidance per goal.
// Emitted as text, not computed state; the deload cadence note applies to
// every goal.
var overloadNotes = map[domain.Goal][]string{
	domain.GoalIncreaseStrength: {
		"Add 2.5 kg to compound lifts once all prescribed sets hit the top of the rep range.",
	},
	domain.GoalBuildMuscle: {
		"Add a rep per set each week before adding weight; aim to progress one variable at a time.",
	},
	domain.GoalLoseWeight: {
		"Keep rest periods strict; shorten rest before adding weight to raise session density.",
	},
	domain.GoalImproveEndurance: {
		"Extend work intervals by 5-10% weekly while holding perceived effort steady.",
	},
	domain.GoalMaintain: {
		"Hold weights steady and focus on movement quality week over week.",
	},
}

const deloadNote = "Every 4th week, cut working sets in half to allow recovery (deload week)."

const (
	baseSessionMinutes        = 45
	minutesPerExercise        = 5
	planGeneratorStrategyName = "plan_generator"
)

// PlanGenerator is the primary workout generator variant: one exercise per
// muscle pattern, session duration estimated from the exercise count.
type PlanGenerator struct {
	catalog  domain.ExerciseCatalog
	selector ExerciseSelector
}

// NewPlanGenerator creates the primary generator. A nil selector falls back
// to the deterministic cycle selector.
func NewPlanGenerator(catalog domain.ExerciseCatalog, selector ExerciseSelector) *PlanGenerator {
	if selector == nil {
		selector = CycleSelector
	}
	return &PlanGenerator{catalog: catalog, selector: selector}
}

// Name identifies the strategy.
func (g *PlanGenerator) Name() string { return planGeneratorStrategyName }

// BuildWeek generates one WorkoutDay per scheduled training day. A muscle
// pattern with no matching exercise is skipped silently; a generated day
// never contains duplicate or placeholder entries.
func (g *PlanGenerator) BuildWeek(ctx context.Context, profile *domain.UserProfile, _ *domain.NutritionTargets) ([]domain.WorkoutDay, error) {
	split := SelectSplit(profile.Goal, profile.WorkoutDaysPerWeek)
	focuses := weekFocuses(split, profile.WorkoutDaysPerWeek)

	days := make([]domain.WorkoutDay, 0, len(focuses))
	for i, focus := range focuses {
		day, err := g.buildDay(ctx, profile, focus, i)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func (g *PlanGenerator) buildDay(ctx context.Context, profile *domain.UserProfile, focus dayFocus, dayIndex int) (domain.WorkoutDay, error) {
	selected := make(map[string]bool)
	exercises := make([]domain.WorkoutExercise, 0, len(focus.muscles))

	for slot, muscle := range focus.muscles {
		pool, err := g.catalog.Filter(ctx, domain.CatalogFilter{
			Muscle:    muscle,
			Equipment: profile.AvailableEquipment,
			MaxLevel:  profile.FitnessLevel,
			Exclude:   selected,
		})
		if err != nil {
			return domain.WorkoutDay{}, fmt.Errorf("failed to filter catalog for %s: %w", muscle, err)
		}
		if len(pool) == 0 {
			// Known gap: no placeholder is emitted for an unfillable pattern.
			continue
		}

		ex := g.selector(pool, dayIndex, slot)
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
		DurationMinutes: baseSessionMinutes + minutesPerExercise*len(exercises),
		Notes:           notes,
	}, nil
}
