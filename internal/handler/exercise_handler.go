package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trainloop/fitplan/internal/domain"
)

// ExerciseHandler serves the normalized exercise catalog
type ExerciseHandler struct {
	catalog domain.ExerciseCatalog
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(catalog domain.ExerciseCatalog) *ExerciseHandler {
	return &ExerciseHandler{
		catalog: catalog,
	}
}

// List handles GET /v1/exercises with optional muscle, equipment and level
// query filters.
func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	filter := domain.CatalogFilter{
		Muscle: c.Query("muscle"),
	}

	if raw := c.Query("equipment"); raw != "" {
		equipment, err := domain.ParseEquipment(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		filter.Equipment = equipment
	}
	if raw := c.Query("level"); raw != "" {
		level, err := domain.ParseFitnessLevel(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		filter.MaxLevel = level
	}

	var (
		exercises []domain.Exercise
		err       error
	)
	if filter.Muscle == "" && filter.Equipment == "" && filter.MaxLevel == "" {
		exercises, err = h.catalog.All(c.Context())
	} else {
		exercises, err = h.catalog.Filter(c.Context(), filter)
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "failed to load exercise catalog: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    exercises,
	})
}
