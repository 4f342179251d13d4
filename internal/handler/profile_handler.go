package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trainloop/fitplan/internal/domain"
	"github.com/trainloop/fitplan/internal/middleware"
	"github.com/trainloop/fitplan/internal/service"
)

// ProfileHandler handles HTTP requests for the onboarding profile and the
// derived nutrition targets
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get handles GET /v1/me/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "profile not found, complete onboarding first",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to retrieve profile: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

// Upsert handles PUT /v1/me/profile
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	var profile domain.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	// The path owner wins over whatever the body claims.
	profile.UserID = userID

	if err := h.profileService.Upsert(c.Context(), &profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

// Targets handles GET /v1/me/targets
func (h *ProfileHandler) Targets(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	targets, err := h.profileService.Targets(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrIncompleteProfile) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"error":   "profile is missing or incomplete",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to derive targets: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    targets,
	})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "user not authenticated",
	})
}
