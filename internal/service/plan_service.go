package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/trainloop/fitplan/internal/domain"
)

// PlanService orchestrates plan generation: profile to targets, then the
// workout and meal generators concurrently, then persistence. Both plans of
// one run share a plan ULID so they can be correlated later.
type PlanService struct {
	profiles        *ProfileService
	workoutPlanRepo domain.WorkoutPlanRepository
	mealPlanRepo    domain.MealPlanRepository
	cache           domain.CacheRepository
	defaultStrategy WorkoutStrategy
	timedStrategy   WorkoutStrategy
	mealGenerator   *MealPlanGenerator
	adapter         *PlanAdapter
}

// NewPlanService creates a new plan service
func NewPlanService(
	profiles *ProfileService,
	workoutPlanRepo domain.WorkoutPlanRepository,
	mealPlanRepo domain.MealPlanRepository,
	cache domain.CacheRepository,
	defaultStrategy WorkoutStrategy,
	timedStrategy WorkoutStrategy,
	mealGenerator *MealPlanGenerator,
	adapter *PlanAdapter,
) *PlanService {
	return &PlanService{
		profiles:        profiles,
		workoutPlanRepo: workoutPlanRepo,
		mealPlanRepo:    mealPlanRepo,
		cache:           cache,
		defaultStrategy: defaultStrategy,
		timedStrategy:   timedStrategy,
		mealGenerator:   mealGenerator,
		adapter:         adapter,
	}
}

// GeneratedPlans bundles the output of one generation run.
type GeneratedPlans struct {
	WorkoutPlan *domain.WorkoutPlan `json:"workout_plan"`
	MealPlan    *domain.MealPlan    `json:"meal_plan"`
}

// Generate runs the full pipeline for a user and persists both plans.
func (s *PlanService) Generate(ctx context.Context, userID string) (*GeneratedPlans, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.Complete() {
		return nil, domain.ErrIncompleteProfile
	}

	targets, err := s.profiles.Targets(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.generateWith(ctx, profile, targets)
}

// Regenerate applies an adaptation result to the targets and re-runs both
// generators. Adjustments are ephemeral; the stored profile is untouched
// except for the training day count.
func (s *PlanService) Regenerate(ctx context.Context, userID string, result *domain.AdaptationResult) (*GeneratedPlans, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.Complete() {
		return nil, domain.ErrIncompleteProfile
	}

	targets, err := s.profiles.Targets(ctx, userID)
	if err != nil {
		return nil, err
	}

	adjusted := *targets
	adjusted.TargetCalories = result.AdjustedCalories
	adjusted.ProteinGrams = result.AdjustedProteinG
	adjusted.CarbGrams = result.AdjustedCarbsG
	adjusted.FatGrams = result.AdjustedFatG

	adjProfile := *profile
	adjProfile.WorkoutDaysPerWeek = result.AdjustedDays

	return s.generateWith(ctx, &adjProfile, &adjusted)
}

func (s *PlanService) generateWith(ctx context.Context, profile *domain.UserProfile, targets *domain.NutritionTargets) (*GeneratedPlans, error) {
	strategy := s.strategyFor(profile)
	planULID := ulid.Make().String()
	now := time.Now().UTC()

	var workoutDays []domain.WorkoutDay
	var mealDays []domain.MealDay
	var shopping domain.ShoppingList

	// The generators are independent pure pipelines over the same inputs.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		days, err := strategy.BuildWeek(gCtx, profile, targets)
		if err != nil {
			return fmt.Errorf("workout generation failed: %w", err)
		}
		workoutDays = days
		return nil
	})
	g.Go(func() error {
		days, list, err := s.mealGenerator.BuildWeek(profile, targets)
		if err != nil {
			return fmt.Errorf("meal generation failed: %w", err)
		}
		mealDays = days
		shopping = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	workoutPlan := &domain.WorkoutPlan{
		PlanULID:    planULID,
		UserID:      profile.UserID,
		Strategy:    SelectSplit(profile.Goal, profile.WorkoutDaysPerWeek),
		DaysPerWeek: profile.WorkoutDaysPerWeek,
		Days:        workoutDays,
		Targets:     *targets,
		GeneratedAt: now,
	}
	mealPlan := &domain.MealPlan{
		PlanULID:     planULID,
		UserID:       profile.UserID,
		Days:         mealDays,
		ShoppingList: shopping,
		Targets:      *targets,
		GeneratedAt:  now,
	}

	if err := s.workoutPlanRepo.Save(ctx, workoutPlan); err != nil {
		return nil, fmt.Errorf("failed to save workout plan: %w", err)
	}
	if err := s.mealPlanRepo.Save(ctx, mealPlan); err != nil {
		return nil, fmt.Errorf("failed to save meal plan: %w", err)
	}

	if err := s.cache.InvalidateUser(ctx, profile.UserID); err != nil {
		log.Printf("Warning: failed to invalidate cache for user %s: %v", profile.UserID, err)
	}

	return &GeneratedPlans{WorkoutPlan: workoutPlan, MealPlan: mealPlan}, nil
}

// strategyFor routes users with an explicit session length preference to the
// time-budgeted generator.
func (s *PlanService) strategyFor(profile *domain.UserProfile) WorkoutStrategy {
	if profile.PreferredSessionMinutes > 0 && s.timedStrategy != nil {
		return s.timedStrategy
	}
	return s.defaultStrategy
}

// LatestWorkoutPlan returns the newest persisted workout plan.
func (s *PlanService) LatestWorkoutPlan(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	plan, err := s.workoutPlanRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}

// LatestMealPlan returns the newest persisted meal plan.
func (s *PlanService) LatestMealPlan(ctx context.Context, userID string) (*domain.MealPlan, error) {
	plan, err := s.mealPlanRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}

// ShoppingList returns the latest meal plan's aggregated shopping list.
func (s *PlanService) ShoppingList(ctx context.Context, userID string) (*domain.ShoppingList, error) {
	plan, err := s.LatestMealPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &plan.ShoppingList, nil
}
