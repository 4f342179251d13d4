package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/trainloop/fitplan/internal/domain"
)

// defaultAchievements seeds the achievement library. Codes are stable and
// referenced by unlock records; edits here must keep existing codes intact.
var defaultAchievements = []domain.Achievement{
	{Code: "first_workout", Name: "First Rep", Description: "Complete your first workout.", Metric: domain.MetricWorkoutsTotal, Threshold: 1},
	{Code: "workouts_10", Name: "Regular", Description: "Complete 10 workouts.", Metric: domain.MetricWorkoutsTotal, Threshold: 10},
	{Code: "workouts_50", Name: "Committed", Description: "Complete 50 workouts.", Metric: domain.MetricWorkoutsTotal, Threshold: 50},
	{Code: "workouts_100", Name: "Centurion", Description: "Complete 100 workouts.", Metric: domain.MetricWorkoutsTotal, Threshold: 100},
	{Code: "streak_7", Name: "One Week Strong", Description: "Train 7 days in a row.", Metric: domain.MetricStreakDays, Threshold: 7},
	{Code: "streak_30", Name: "Habit Formed", Description: "Train 30 days in a row.", Metric: domain.MetricStreakDays, Threshold: 30},
	{Code: "checkins_7", Name: "Tracker", Description: "Log 7 daily check-ins.", Metric: domain.MetricCheckinsTotal, Threshold: 7},
	{Code: "checkins_30", Name: "Data Driven", Description: "Log 30 daily check-ins.", Metric: domain.MetricCheckinsTotal, Threshold: 30},
	{Code: "hydrated_7", Name: "Well Watered", Description: "Hit your water goal 7 times.", Metric: domain.MetricWaterGoals, Threshold: 7},
	{Code: "weigh_ins_10", Name: "On the Scale", Description: "Log 10 weigh-ins.", Metric: domain.MetricWeightLogs, Threshold: 10},
}

// ActivityCounters are the per-user lifetime totals the thresholds apply to,
// derived from the tracking series at evaluation time.
type ActivityCounters struct {
	WorkoutsTotal int
	CheckinsTotal int
	WaterGoals    int
	WeightLogs    int
	StreakDays    int
}

// GamificationService tracks streak state and unlocks achievements when
// activity counters cross library thresholds. Orthogonal to planning; it
// only ever appends unlocks, never revokes them.
type GamificationService struct {
	achievementRepo domain.AchievementRepository
	trackingRepo    domain.TrackingRepository
}

// NewGamificationService creates the service.
func NewGamificationService(achievementRepo domain.AchievementRepository, trackingRepo domain.TrackingRepository) *GamificationService {
	return &GamificationService{achievementRepo: achievementRepo, trackingRepo: trackingRepo}
}

// SeedLibrary upserts the default achievement library. Idempotent by code.
func (s *GamificationService) SeedLibrary(ctx context.Context) error {
	for i := range defaultAchievements {
		a := defaultAchievements[i]
		if err := s.achievementRepo.UpsertLibrary(ctx, &a); err != nil {
			return fmt.Errorf("failed to seed achievement %s: %w", a.Code, err)
		}
	}
	return nil
}

// RecordActivity advances the streak for an activity day and evaluates
// unlocks. Called after every tracking check-in; a day without a completed
// workout updates counters but does not extend the workout streak.
func (s *GamificationService) RecordActivity(ctx context.Context, userID string, record *domain.DailyTrackingRecord, waterGoalMl int) ([]*domain.UserAchievement, error) {
	streak, err := s.advanceStreak(ctx, userID, record)
	if err != nil {
		return nil, err
	}

	counters, err := s.counters(ctx, userID, waterGoalMl)
	if err != nil {
		return nil, err
	}
	counters.StreakDays = streak.CurrentStreak

	return s.evaluate(ctx, userID, counters)
}

// Streak returns the stored streak state, zero-valued when none exists yet.
func (s *GamificationService) Streak(ctx context.Context, userID string) (*domain.StreakState, error) {
	streak, err := s.achievementRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	if streak == nil {
		return &domain.StreakState{UserID: userID}, nil
	}
	return streak, nil
}

// Unlocked lists the user's achievement unlocks joined with library entries.
func (s *GamificationService) Unlocked(ctx context.Context, userID string) ([]*domain.Achievement, []*domain.UserAchievement, error) {
	library, err := s.achievementRepo.ListLibrary(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load achievement library: %w", err)
	}
	unlocks, err := s.achievementRepo.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load unlocks: %w", err)
	}

	byCode := make(map[string]*domain.Achievement, len(library))
	for _, a := range library {
		byCode[a.Code] = a
	}
	var unlocked []*domain.Achievement
	for _, u := range unlocks {
		if a, ok := byCode[u.Code]; ok {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked, unlocks, nil
}

// advanceStreak applies the day boundary rules: same day is a no-op, the
// next calendar day extends the run, any gap resets it to one.
func (s *GamificationService) advanceStreak(ctx context.Context, userID string, record *domain.DailyTrackingRecord) (*domain.StreakState, error) {
	streak, err := s.achievementRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	if streak == nil {
		streak = &domain.StreakState{UserID: userID}
	}
	if record.WorkoutsCompleted < 1 {
		return streak, nil
	}

	day := domain.NormalizeDate(record.Date)
	last := domain.NormalizeDate(streak.LastActivityDate)
	switch {
	case streak.LastActivityDate.IsZero():
		streak.CurrentStreak = 1
	case day.Equal(last):
		// Second workout on the same day; nothing to advance.
	case day.Equal(last.AddDate(0, 0, 1)):
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = day
	streak.UpdatedAt = time.Now().UTC()

	if err := s.achievementRepo.SaveStreak(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to save streak: %w", err)
	}
	return streak, nil
}

func (s *GamificationService) counters(ctx context.Context, userID string, waterGoalMl int) (ActivityCounters, error) {
	records, err := s.trackingRepo.ListByUserID(ctx, userID, 0)
	if err != nil {
		return ActivityCounters{}, fmt.Errorf("failed to load tracking history: %w", err)
	}
	if waterGoalMl <= 0 {
		waterGoalMl = defaultWaterGoalMl
	}

	var c ActivityCounters
	c.CheckinsTotal = len(records)
	for _, r := range records {
		c.WorkoutsTotal += r.WorkoutsCompleted
		if r.WaterMl >= waterGoalMl {
			c.WaterGoals++
		}
		if r.WeightKg > 0 {
			c.WeightLogs++
		}
	}
	return c, nil
}

// evaluate unlocks every library entry whose threshold the counters meet and
// that the user has not unlocked yet.
func (s *GamificationService) evaluate(ctx context.Context, userID string, counters ActivityCounters) ([]*domain.UserAchievement, error) {
	library, err := s.achievementRepo.ListLibrary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement library: %w", err)
	}
	existing, err := s.achievementRepo.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocks: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, u := range existing {
		have[u.Code] = true
	}

	var unlocked []*domain.UserAchievement
	for _, a := range library {
		if have[a.Code] || counters.valueFor(a.Metric) < a.Threshold {
			continue
		}
		unlock := &domain.UserAchievement{
			ID:         ulid.Make().String(),
			UserID:     userID,
			Code:       a.Code,
			UnlockedAt: time.Now().UTC(),
		}
		if err := s.achievementRepo.Unlock(ctx, unlock); err != nil {
			return nil, fmt.Errorf("failed to unlock %s: %w", a.Code, err)
		}
		unlocked = append(unlocked, unlock)
	}
	return unlocked, nil
}

func (c ActivityCounters) valueFor(metric domain.AchievementMetric) int {
	switch metric {
	case domain.MetricWorkoutsTotal:
		return c.WorkoutsTotal
	case domain.MetricStreakDays:
		return c.StreakDays
	case domain.MetricCheckinsTotal:
		return c.CheckinsTotal
	case domain.MetricWaterGoals:
		return c.WaterGoals
	case domain.MetricWeightLogs:
		return c.WeightLogs
	default:
		return 0
	}
}
