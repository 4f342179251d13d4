package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Implementations should handle Redis operations. Caching is an optimization
// only: targets and metrics are always recomputable from the profile and the
// tracking series.
type CacheRepository interface {
	// SetTargets caches derived nutrition targets for a user with TTL.
	SetTargets(ctx context.Context, userID string, targets *NutritionTargets, ttl time.Duration) error

	// GetTargets retrieves cached targets. Returns nil if not found or expired.
	GetTargets(ctx context.Context, userID string) (*NutritionTargets, error)

	// SetProgressRecap caches the latest computed progress metrics.
	SetProgressRecap(ctx context.Context, userID string, metrics *ProgressMetrics, ttl time.Duration) error

	// GetProgressRecap retrieves the cached metrics. Returns nil on miss.
	GetProgressRecap(ctx context.Context, userID string) (*ProgressMetrics, error)

	// InvalidateUser removes all cached data for a user. Called whenever the
	// profile changes or a plan is regenerated.
	InvalidateUser(ctx context.Context, userID string) error
}
