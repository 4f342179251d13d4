package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trainloop/fitplan/internal/domain"
	"github.com/trainloop/fitplan/internal/middleware"
	"github.com/trainloop/fitplan/internal/service"
)

// ProgressHandler handles HTTP requests for derived progress analytics
type ProgressHandler struct {
	trackingService *service.TrackingService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(trackingService *service.TrackingService) *ProgressHandler {
	return &ProgressHandler{
		trackingService: trackingService,
	}
}

// Get handles GET /v1/me/progress
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	metrics, err := h.trackingService.Progress(c.Context(), userID)
	if err != nil {
		return progressError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    metrics,
	})
}

// Insights handles GET /v1/me/progress/insights
func (h *ProgressHandler) Insights(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	insights, err := h.trackingService.Insights(c.Context(), userID)
	if err != nil {
		return progressError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    insights,
	})
}

// Adjustments handles GET /v1/me/progress/adjustments. Read-only preview;
// nothing is applied until the plan adjustments endpoint is called.
func (h *ProgressHandler) Adjustments(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	result, err := h.trackingService.Adjustments(c.Context(), userID)
	if err != nil {
		return progressError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

func progressError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "profile not found, complete onboarding first",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
