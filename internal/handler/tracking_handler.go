package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trainloop/fitplan/internal/domain"
	"github.com/trainloop/fitplan/internal/middleware"
	"github.com/trainloop/fitplan/internal/service"
)

// TrackingHandler handles HTTP requests for daily check-ins and progress
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

type checkInRequest struct {
	Date              string   `json:"date"` // "2006-01-02", defaults to today
	WeightKg          float64  `json:"weight_kg"`
	CaloriesConsumed  int      `json:"calories_consumed"`
	WorkoutsCompleted int      `json:"workouts_completed"`
	WaterMl           int      `json:"water_ml"`
	SleepHours        float64  `json:"sleep_hours"`
	MoodRating        int      `json:"mood_rating"`
	EnergyLevel       int      `json:"energy_level"`
	WorkoutIntensity  int      `json:"workout_intensity"`
	RecoveryLevel     float64  `json:"recovery_level"`
	PainPoints        []string `json:"pain_points"`
}

// CheckIn handles POST /v1/me/checkins
func (h *TrackingHandler) CheckIn(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	record := &domain.DailyTrackingRecord{
		UserID:            userID,
		WeightKg:          req.WeightKg,
		CaloriesConsumed:  req.CaloriesConsumed,
		WorkoutsCompleted: req.WorkoutsCompleted,
		WaterMl:           req.WaterMl,
		SleepHours:        req.SleepHours,
		MoodRating:        req.MoodRating,
		EnergyLevel:       req.EnergyLevel,
		WorkoutIntensity:  req.WorkoutIntensity,
		RecoveryLevel:     req.RecoveryLevel,
		PainPoints:        req.PainPoints,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "date must be formatted as YYYY-MM-DD",
			})
		}
		record.Date = date
	}

	result, err := h.trackingService.CheckIn(c.Context(), record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to save check-in: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// List handles GET /v1/me/checkins
func (h *TrackingHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return unauthenticated(c)
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "limit must be a non-negative integer",
			})
		}
		limit = parsed
	}

	records, err := h.trackingService.History(c.Context(), userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to retrieve check-ins: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}
