package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trainloop/fitplan/internal/domain"
	"github.com/trainloop/fitplan/internal/middleware"
	"github.com/trainloop/fitplan/internal/service"
)

// PlanHandler handles HTTP requests for plan generation and retrieval
type PlanHandler struct {
	planService     *service.PlanService
	trackingService *service.TrackingService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *service.PlanService, trackingService *service.TrackingService) *PlanHandler {
	return &PlanHandler{
		planService:     planService,
		trackingService: trackingService,
	}
}

// Generate handles POST /v1/me/plan/generate
func (h *PlanHandler) Generate(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	plans, err := h.planService.Generate(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    plans,
	})
}

// Get handles GET /v1/me/plan
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	workout, err := h.planService.LatestWorkoutPlan(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}
	meal, err := h.planService.LatestMealPlan(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": service.GeneratedPlans{
			WorkoutPlan: workout,
			MealPlan:    meal,
		},
	})
}

// Workouts handles GET /v1/me/plan/workouts
func (h *PlanHandler) Workouts(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	plan, err := h.planService.LatestWorkoutPlan(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    plan,
	})
}

// Meals handles GET /v1/me/plan/meals
func (h *PlanHandler) Meals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	plan, err := h.planService.LatestMealPlan(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    plan,
	})
}

// ShoppingList handles GET /v1/me/plan/shopping-list
func (h *PlanHandler) ShoppingList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	list, err := h.planService.ShoppingList(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// ApplyAdjustments handles POST /v1/me/plan/adjustments/apply. It recomputes
// the adjustment set from current metrics and regenerates both plans with
// the adjusted targets.
func (h *PlanHandler) ApplyAdjustments(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	result, err := h.trackingService.Adjustments(c.Context(), userID)
	if err != nil {
		return planError(c, err)
	}

	plans, err := h.planService.Regenerate(c.Context(), userID, result)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"adaptation": result,
			"plans":      plans,
		},
	})
}

func planError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	case errors.Is(err, domain.ErrIncompleteProfile):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   "profile is incomplete, finish onboarding first",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
}
