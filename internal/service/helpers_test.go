package service

import (
	"context"
	"sort"
	"time"

	"github.com/trainloop/fitplan/internal/domain"
)

// stubCatalog serves a fixed exercise list using the production filter logic.
type stubCatalog struct {
	exercises []domain.Exercise
}

func (c *stubCatalog) All(_ context.Context) ([]domain.Exercise, error) {
	return c.exercises, nil
}

func (c *stubCatalog) Filter(_ context.Context, filter domain.CatalogFilter) ([]domain.Exercise, error) {
	return filterExercises(c.exercises, filter), nil
}

// testCatalog has at least one exercise per muscle pattern the splits use, at
// beginner level so every profile can see them.
func testCatalog() *stubCatalog {
	muscles := []string{
		"chest", "middle back", "lats", "quadriceps", "hamstrings",
		"glutes", "calves", "shoulders", "abdominals", "biceps", "triceps", "cardio",
	}
	var exercises []domain.Exercise
	for _, m := range muscles {
		exercises = append(exercises,
			domain.Exercise{Name: m + " primary a", PrimaryMuscles: []string{m}, SecondaryMuscles: []string{"abdominals"}, Equipment: "body only", Level: domain.LevelBeginner},
			domain.Exercise{Name: m + " primary b", PrimaryMuscles: []string{m}, Equipment: "dumbbell", Level: domain.LevelBeginner},
			domain.Exercise{Name: m + " gym", PrimaryMuscles: []string{m}, Equipment: "barbell", Level: domain.LevelIntermediate},
		)
	}
	return &stubCatalog{exercises: exercises}
}

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:             "user-1",
		Age:                25,
		Gender:             domain.GenderMale,
		HeightCm:           175,
		WeightKg:           70,
		Goal:               domain.GoalLoseWeight,
		ActivityLevel:      domain.ActivityModerate,
		FitnessLevel:       domain.LevelBeginner,
		WorkoutDaysPerWeek: 3,
		AvailableEquipment: domain.EquipmentGym,
		WakeUpTime:         "07:00",
		SleepTime:          "23:00",
	}
}

// trackingDay builds a record n days after the fixed series start.
func trackingDay(n int, mutate func(*domain.DailyTrackingRecord)) *domain.DailyTrackingRecord {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &domain.DailyTrackingRecord{
		UserID: "user-1",
		Date:   base.AddDate(0, 0, n),
	}
	if mutate != nil {
		mutate(r)
	}
	return r
}

// fakeAchievementRepo is an in-memory domain.AchievementRepository.
type fakeAchievementRepo struct {
	library map[string]*domain.Achievement
	unlocks map[string][]*domain.UserAchievement
	streaks map[string]*domain.StreakState
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{
		library: make(map[string]*domain.Achievement),
		unlocks: make(map[string][]*domain.UserAchievement),
		streaks: make(map[string]*domain.StreakState),
	}
}

func (f *fakeAchievementRepo) ListLibrary(_ context.Context) ([]*domain.Achievement, error) {
	out := make([]*domain.Achievement, 0, len(f.library))
	for _, a := range f.library {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Threshold < out[j].Threshold })
	return out, nil
}

func (f *fakeAchievementRepo) UpsertLibrary(_ context.Context, a *domain.Achievement) error {
	copied := *a
	f.library[a.Code] = &copied
	return nil
}

func (f *fakeAchievementRepo) ListUnlocked(_ context.Context, userID string) ([]*domain.UserAchievement, error) {
	return f.unlocks[userID], nil
}

func (f *fakeAchievementRepo) Unlock(_ context.Context, u *domain.UserAchievement) error {
	for _, existing := range f.unlocks[u.UserID] {
		if existing.Code == u.Code {
			return nil // duplicate unlock is a no-op, mirrors the unique index
		}
	}
	copied := *u
	f.unlocks[u.UserID] = append(f.unlocks[u.UserID], &copied)
	return nil
}

func (f *fakeAchievementRepo) GetStreak(_ context.Context, userID string) (*domain.StreakState, error) {
	s, ok := f.streaks[userID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeAchievementRepo) SaveStreak(_ context.Context, s *domain.StreakState) error {
	copied := *s
	f.streaks[s.UserID] = &copied
	return nil
}

// fakeTrackingRepo is an in-memory domain.TrackingRepository keyed by date.
type fakeTrackingRepo struct {
	records map[string][]*domain.DailyTrackingRecord
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{records: make(map[string][]*domain.DailyTrackingRecord)}
}

func (f *fakeTrackingRepo) Upsert(_ context.Context, record *domain.DailyTrackingRecord) error {
	record.Date = domain.NormalizeDate(record.Date)
	list := f.records[record.UserID]
	for i, existing := range list {
		if existing.Date.Equal(record.Date) {
			list[i] = record
			return nil
		}
	}
	f.records[record.UserID] = append(list, record)
	sort.Slice(f.records[record.UserID], func(i, j int) bool {
		return f.records[record.UserID][i].Date.Before(f.records[record.UserID][j].Date)
	})
	return nil
}

func (f *fakeTrackingRepo) ListByUserID(_ context.Context, userID string, limit int) ([]*domain.DailyTrackingRecord, error) {
	list := f.records[userID]
	if limit > 0 && len(list) > limit {
		list = list[len(list)-limit:]
	}
	return list, nil
}

func (f *fakeTrackingRepo) GetByDate(_ context.Context, userID string, date time.Time) (*domain.DailyTrackingRecord, error) {
	day := domain.NormalizeDate(date)
	for _, r := range f.records[userID] {
		if r.Date.Equal(day) {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeUserRepo is an in-memory domain.UserRepository.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	if user.ID == "" {
		f.nextID++
		user.ID = "user-" + string(rune('a'+f.nextID))
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

// fakeRefreshTokenRepo is an in-memory domain.RefreshTokenRepository.
type fakeRefreshTokenRepo struct {
	tokens map[string]*domain.RefreshToken // by hash
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Create(_ context.Context, token *domain.RefreshToken) error {
	copied := *token
	f.tokens[token.TokenHash] = &copied
	return nil
}

func (f *fakeRefreshTokenRepo) FindByHash(_ context.Context, hash string) (*domain.RefreshToken, error) {
	t, ok := f.tokens[hash]
	if !ok || t.Revoked {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRefreshTokenRepo) RevokeByHash(_ context.Context, hash string) error {
	if t, ok := f.tokens[hash]; ok {
		t.Revoked = true
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllByUserID(_ context.Context, userID string) error {
	for _, t := range f.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}
