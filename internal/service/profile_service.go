package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/trainloop/fitplan/internal/domain"
)

const targetsTTL = 24 * time.Hour

// ProfileService owns the onboarding profile and the derived nutrition
// targets. Targets are cached read-through; the cache is invalidated on any
// profile write so stale numbers never outlive an edit.
type ProfileService struct {
	profileRepo domain.ProfileRepository
	cache       domain.CacheRepository
	calculator  *BiometricCalculator
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo domain.ProfileRepository,
	cache domain.CacheRepository,
	calculator *BiometricCalculator,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		cache:       cache,
		calculator:  calculator,
	}
}

// Upsert validates and saves the profile, then drops the user's cached
// derived data.
func (s *ProfileService) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if err := s.cache.InvalidateUser(ctx, profile.UserID); err != nil {
		// Cache errors shouldn't block the request
		log.Printf("Warning: failed to invalidate cache for user %s: %v", profile.UserID, err)
	}
	return nil
}

// Get returns the stored profile or domain.ErrNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

// Targets returns the derived nutrition targets, read-through cached.
// Targets are always recomputable; the cache is an optimization only.
func (s *ProfileService) Targets(ctx context.Context, userID string) (*domain.NutritionTargets, error) {
	cached, err := s.cache.GetTargets(ctx, userID)
	if err != nil {
		log.Printf("Warning: failed to check targets cache: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets, err := s.calculator.DeriveTargets(profile)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTargets(ctx, userID, targets, targetsTTL); err != nil {
		log.Printf("Warning: failed to cache targets for user %s: %v", userID, err)
	}
	return targets, nil
}
