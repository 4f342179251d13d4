package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise name already exists")
)

// Exercise is a normalized entry from the exercise catalog. Media references
// are opaque strings; the core never dereferences them.
type Exercise struct {
	ID               string       `json:"id" bson:"_id,omitempty"`
	Name             string       `json:"name" bson:"name"` // Unique Index
	PrimaryMuscles   []string     `json:"primary_muscles" bson:"primary_muscles"`
	SecondaryMuscles []string     `json:"secondary_muscles" bson:"secondary_muscles"`
	Equipment        string       `json:"equipment" bson:"equipment"` // e.g. "barbell", "body only"
	Level            FitnessLevel `json:"level" bson:"level"`
	Instructions     []string     `json:"instructions" bson:"instructions"`
	ImageURL         string       `json:"image_url" bson:"image_url"`
	CreatedAt        time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" bson:"updated_at"`
}

// TargetsMuscle reports whether the exercise works the given muscle as a
// primary or secondary mover.
func (e *Exercise) TargetsMuscle(muscle string) bool {
	for _, m := range e.PrimaryMuscles {
		if m == muscle {
			return true
		}
	}
	for _, m := range e.SecondaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}

// CatalogFilter narrows catalog lookups. Empty fields match everything.
type CatalogFilter struct {
	Muscle    string
	Equipment Equipment
	// MaxLevel excludes exercises above the user's fitness level. Beginners
	// only see beginner exercises; advanced entries are excluded for
	// beginner and intermediate users.
	MaxLevel FitnessLevel
	// Exclude drops exercises already selected in this generation session.
	Exclude map[string]bool
}

// ExerciseCatalog is the read side of the external exercise listing
// collaborator. Implementations memoize the full catalog for the process
// lifetime; the list is near-static reference data.
type ExerciseCatalog interface {
	// All returns the complete normalized catalog.
	All(ctx context.Context) ([]Exercise, error)
	// Filter returns catalog entries matching the filter.
	Filter(ctx context.Context, filter CatalogFilter) ([]Exercise, error)
}

// ExerciseRepository defines persistence for the seeded exercise library,
// used as the catalog source when no upstream API is configured.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) error
	GetByID(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context) ([]*Exercise, error)
	Upsert(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id string) error
}
