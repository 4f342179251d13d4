package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trainloop/fitplan/internal/middleware"
	"github.com/trainloop/fitplan/internal/service"
)

// GamificationHandler handles HTTP requests for achievements and streaks
type GamificationHandler struct {
	gamificationService *service.GamificationService
}

// NewGamificationHandler creates a new gamification handler
func NewGamificationHandler(gamificationService *service.GamificationService) *GamificationHandler {
	return &GamificationHandler{
		gamificationService: gamificationService,
	}
}

// Achievements handles GET /v1/me/achievements
func (h *GamificationHandler) Achievements(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	achievements, unlocks, err := h.gamificationService.Unlocked(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to retrieve achievements: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"achievements": achievements,
			"unlocks":      unlocks,
		},
	})
}

// Streak handles GET /v1/me/streak
func (h *GamificationHandler) Streak(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	streak, err := h.gamificationService.Streak(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to retrieve streak: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    streak,
	})
}
