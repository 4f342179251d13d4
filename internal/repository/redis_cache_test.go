package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/domain"
)

func setupCache(t *testing.T) (*RedisCacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCacheRepository(client), mr
}

func TestTargetsCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	targets := &domain.NutritionTargets{
		BMR:            1673,
		TDEE:           2593,
		TargetCalories: 2093,
		ProteinGrams:   183,
		CarbGrams:      183,
		FatGrams:       70,
		WaterMl:        2750,
	}
	require.NoError(t, cache.SetTargets(ctx, "user-1", targets, time.Hour))

	got, err := cache.GetTargets(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, targets, got)
}

func TestGetTargetsMiss(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.GetTargets(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTargetsCacheExpires(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetTargets(ctx, "user-1", &domain.NutritionTargets{TargetCalories: 2093}, time.Minute))

	mr.FastForward(2 * time.Minute)

	got, err := cache.GetTargets(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProgressRecapRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	metrics := &domain.ProgressMetrics{
		DaysTracked:           14,
		WeeklyAverageChangeKg: -0.7,
		Trend:                 domain.TrendLosing,
		WorkoutAdherencePct:   85,
		CurrentStreak:         5,
	}
	require.NoError(t, cache.SetProgressRecap(ctx, "user-1", metrics, 15*time.Minute))

	got, err := cache.GetProgressRecap(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, metrics.Trend, got.Trend)
	assert.Equal(t, metrics.WeeklyAverageChangeKg, got.WeeklyAverageChangeKg)
	assert.Equal(t, metrics.CurrentStreak, got.CurrentStreak)
}

func TestInvalidateUser(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetTargets(ctx, "user-1", &domain.NutritionTargets{TargetCalories: 2093}, time.Hour))
	require.NoError(t, cache.SetProgressRecap(ctx, "user-1", &domain.ProgressMetrics{DaysTracked: 7}, time.Hour))
	require.NoError(t, cache.SetTargets(ctx, "user-2", &domain.NutritionTargets{TargetCalories: 2500}, time.Hour))

	require.NoError(t, cache.InvalidateUser(ctx, "user-1"))

	targets, err := cache.GetTargets(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, targets)
	recap, err := cache.GetProgressRecap(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, recap)

	// Other users are untouched.
	other, err := cache.GetTargets(ctx, "user-2")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.Equal(t, 2500, other.TargetCalories)
}
