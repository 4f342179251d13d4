package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/trainloop/fitplan/internal/domain"
)

const (
	progressRecapTTL  = 1 * time.Hour
	analysisRecordCap = 90 // analysis window, most recent records
)

// TrackingService handles daily check-ins and everything derived from them:
// progress metrics, insights and plan adjustments. The analyzer and adapter
// are pure; this service does the I/O around them.
type TrackingService struct {
	trackingRepo domain.TrackingRepository
	profiles     *ProfileService
	cache        domain.CacheRepository
	analyzer     *ProgressAnalyzer
	adapter      *PlanAdapter
	gamification *GamificationService
}

// NewTrackingService creates a new tracking service
func NewTrackingService(
	trackingRepo domain.TrackingRepository,
	profiles *ProfileService,
	cache domain.CacheRepository,
	analyzer *ProgressAnalyzer,
	adapter *PlanAdapter,
	gamification *GamificationService,
) *TrackingService {
	return &TrackingService{
		trackingRepo: trackingRepo,
		profiles:     profiles,
		cache:        cache,
		analyzer:     analyzer,
		adapter:      adapter,
		gamification: gamification,
	}
}

// CheckInResult is the response to a daily check-in write.
type CheckInResult struct {
	Record     *domain.DailyTrackingRecord `json:"record"`
	NewUnlocks []*domain.UserAchievement   `json:"new_unlocks,omitempty"`
	Streak     *domain.StreakState         `json:"streak"`
}

// CheckIn upserts the record for (user, date) and advances gamification
// state. One record per calendar day; a second write replaces the first.
func (s *TrackingService) CheckIn(ctx context.Context, record *domain.DailyTrackingRecord) (*CheckInResult, error) {
	if record.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if record.Date.IsZero() {
		record.Date = time.Now().UTC()
	}
	record.Date = domain.NormalizeDate(record.Date)

	if err := s.trackingRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	waterGoal := 0
	if targets, err := s.profiles.Targets(ctx, record.UserID); err == nil {
		waterGoal = targets.WaterMl
	}

	unlocks, err := s.gamification.RecordActivity(ctx, record.UserID, record, waterGoal)
	if err != nil {
		// Gamification must never block the check-in itself.
		log.Printf("Warning: failed to update gamification for user %s: %v", record.UserID, err)
	}
	streak, err := s.gamification.Streak(ctx, record.UserID)
	if err != nil {
		streak = &domain.StreakState{UserID: record.UserID}
	}

	// Derived metrics are stale now.
	if err := s.cache.InvalidateUser(ctx, record.UserID); err != nil {
		log.Printf("Warning: failed to invalidate cache for user %s: %v", record.UserID, err)
	}

	return &CheckInResult{Record: record, NewUnlocks: unlocks, Streak: streak}, nil
}

// History lists the user's tracking records ascending by date.
func (s *TrackingService) History(ctx context.Context, userID string, limit int) ([]*domain.DailyTrackingRecord, error) {
	return s.trackingRepo.ListByUserID(ctx, userID, limit)
}

// Progress computes (or serves cached) progress metrics for the user.
func (s *TrackingService) Progress(ctx context.Context, userID string) (*domain.ProgressMetrics, error) {
	cached, err := s.cache.GetProgressRecap(ctx, userID)
	if err != nil {
		log.Printf("Warning: failed to check progress cache: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	input, _, err := s.analysisInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics := s.analyzer.Analyze(*input)
	if err := s.cache.SetProgressRecap(ctx, userID, metrics, progressRecapTTL); err != nil {
		log.Printf("Warning: failed to cache progress recap for user %s: %v", userID, err)
	}
	return metrics, nil
}

// Insights returns the prioritized insight list for the current metrics.
func (s *TrackingService) Insights(ctx context.Context, userID string) ([]domain.Insight, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	metrics, err := s.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.analyzer.GenerateInsights(metrics, profile.Goal), nil
}

// Adjustments runs the plan adapter over the current metrics. Pain-point
// substitutions ride along as extra descriptions.
func (s *TrackingService) Adjustments(ctx context.Context, userID string) (*domain.AdaptationResult, error) {
	input, profile, err := s.analysisInput(ctx, userID)
	if err != nil {
		return nil, err
	}
	targets, err := s.profiles.Targets(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics := s.analyzer.Analyze(*input)
	result := s.adapter.Adapt(profile, targets, metrics)

	if len(input.Records) > 0 {
		latest := input.Records[len(input.Records)-1]
		for _, advice := range s.adapter.SubstitutionsFor(latest.PainPoints) {
			result.Adjustments = append(result.Adjustments, domain.PlanAdjustment{
				Type:        domain.AdjustWorkout,
				Reason:      "reported pain point",
				Description: advice,
				Priority:    2,
			})
		}
	}
	return result, nil
}

// analysisInput assembles the analyzer input from the profile and the most
// recent tracking records.
func (s *TrackingService) analysisInput(ctx context.Context, userID string) (*AnalysisInput, *domain.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.trackingRepo.ListByUserID(ctx, userID, analysisRecordCap)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tracking history: %w", err)
	}

	input := &AnalysisInput{
		Records:            records,
		Goal:               profile.Goal,
		StartWeightKg:      profile.WeightKg,
		TargetWeightKg:     profile.TargetWeightKg,
		WorkoutDaysPerWeek: profile.WorkoutDaysPerWeek,
	}
	if targets, err := s.profiles.Targets(ctx, userID); err == nil {
		input.TargetCalories = targets.TargetCalories
		input.WaterGoalMl = targets.WaterMl
	} else if !errors.Is(err, domain.ErrIncompleteProfile) {
		log.Printf("Warning: failed to derive targets for analysis: %v", err)
	}
	return input, profile, nil
}
