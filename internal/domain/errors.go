package domain

import "errors"

// Common errors
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("access forbidden: you don't own this resource")
	ErrIncompleteProfile  = errors.New("profile is missing required biometric fields")
	ErrStorageUnavailable = errors.New("storage backend is unreachable")
	ErrEmptyExercisePool  = errors.New("no exercises available for the requested filters")
)
