package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trainloop/fitplan/internal/domain"
)

const (
	targetsKeyPrefix       = "user:targets:"
	progressRecapKeyPrefix = "user:progress_recap:"
)

// RedisCacheRepository implements domain.CacheRepository using Redis
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

// SetTargets caches derived nutrition targets for a user with TTL
func (r *RedisCacheRepository) SetTargets(ctx context.Context, userID string, targets *domain.NutritionTargets, ttl time.Duration) error {
	return r.set(ctx, targetsKeyPrefix+userID, targets, ttl)
}

// GetTargets retrieves cached targets, nil on miss
func (r *RedisCacheRepository) GetTargets(ctx context.Context, userID string) (*domain.NutritionTargets, error) {
	var targets domain.NutritionTargets
	found, err := r.get(ctx, targetsKeyPrefix+userID, &targets)
	if err != nil || !found {
		return nil, err
	}
	return &targets, nil
}

// SetProgressRecap caches the latest computed progress metrics
func (r *RedisCacheRepository) SetProgressRecap(ctx context.Context, userID string, metrics *domain.ProgressMetrics, ttl time.Duration) error {
	return r.set(ctx, progressRecapKeyPrefix+userID, metrics, ttl)
}

// GetProgressRecap retrieves the cached metrics, nil on miss
func (r *RedisCacheRepository) GetProgressRecap(ctx context.Context, userID string) (*domain.ProgressMetrics, error) {
	var metrics domain.ProgressMetrics
	found, err := r.get(ctx, progressRecapKeyPrefix+userID, &metrics)
	if err != nil || !found {
		return nil, err
	}
	return &metrics, nil
}

// InvalidateUser removes all cached data for a user
func (r *RedisCacheRepository) InvalidateUser(ctx context.Context, userID string) error {
	keys := []string{
		targetsKeyPrefix + userID,
		progressRecapKeyPrefix + userID,
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// get retrieves and unmarshals a value with OTel tracing. The bool reports
// whether the key was present.
func (r *RedisCacheRepository) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return false, nil // Cache miss
		}
		span.RecordError(err)
		return false, fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("unmarshal error: %w", err)
	}
	return true, nil
}

// set marshals and stores a value with TTL and OTel tracing
func (r *RedisCacheRepository) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}
