package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/trainloop/fitplan/internal/domain"
)

// catalogEntry is the upstream JSON shape of one exercise. Image paths are
// opaque reference strings.
type catalogEntry struct {
	Name             string   `json:"name"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipment        string   `json:"equipment"`
	Level            string   `json:"level"`
	Instructions     []string `json:"instructions"`
	Images           []string `json:"images"`
}

// HTTPCatalog implements domain.ExerciseCatalog against a fetch-all JSON
// endpoint. The full list is memoized for the process lifetime: the catalog
// is near-static reference data, so there is no TTL or invalidation.
type HTTPCatalog struct {
	url        string
	httpClient *http.Client

	mu     sync.Mutex
	cached []domain.Exercise
}

// NewHTTPCatalog creates a catalog client for the given fetch-all endpoint.
// A zero timeout falls back to 30 seconds.
func NewHTTPCatalog(url string, timeout time.Duration) *HTTPCatalog {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPCatalog{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// All returns the complete normalized catalog, fetching it at most once.
func (c *HTTPCatalog) All(ctx context.Context) ([]domain.Exercise, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exercise catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exercise catalog returned status %d", resp.StatusCode)
	}

	var entries []catalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode exercise catalog: %w", err)
	}

	exercises := make([]domain.Exercise, 0, len(entries))
	for _, entry := range entries {
		exercises = append(exercises, normalizeCatalogEntry(entry))
	}

	c.cached = exercises
	return c.cached, nil
}

// Filter returns catalog entries matching the filter, client-side.
func (c *HTTPCatalog) Filter(ctx context.Context, filter domain.CatalogFilter) ([]domain.Exercise, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterExercises(all, filter), nil
}

// normalizeCatalogEntry maps the upstream shape into the internal Exercise.
// Entries lacking images or secondary muscles are kept; missing optional data
// never drops an exercise.
func normalizeCatalogEntry(entry catalogEntry) domain.Exercise {
	level := domain.FitnessLevel(strings.ToLower(entry.Level))
	switch level {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
	case "expert":
		level = domain.LevelAdvanced
	default:
		level = domain.LevelIntermediate
	}

	imageURL := ""
	if len(entry.Images) > 0 {
		imageURL = entry.Images[0]
	}

	return domain.Exercise{
		Name:             entry.Name,
		PrimaryMuscles:   lowerAll(entry.PrimaryMuscles),
		SecondaryMuscles: lowerAll(entry.SecondaryMuscles),
		Equipment:        strings.ToLower(entry.Equipment),
		Level:            level,
		Instructions:     entry.Instructions,
		ImageURL:         imageURL,
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// equipmentAllowed maps the user's available equipment to the catalog
// equipment strings it can satisfy. Bodyweight entries are compatible with
// every setting.
var equipmentAllowed = map[domain.Equipment][]string{
	domain.EquipmentHome:           {"body only", "dumbbell", "kettlebells", "bands", "exercise ball"},
	domain.EquipmentMinimal:        {"body only", "dumbbell", "bands"},
	domain.EquipmentBodyweightOnly: {"body only"},
}

// levelAllowed reports whether an exercise level is visible to a user level.
// Beginners only see beginner work; advanced entries are hidden from
// beginner and intermediate users.
func levelAllowed(userLevel, exerciseLevel domain.FitnessLevel) bool {
	switch userLevel {
	case domain.LevelBeginner:
		return exerciseLevel == domain.LevelBeginner
	case domain.LevelIntermediate:
		return exerciseLevel != domain.LevelAdvanced
	default:
		return true
	}
}

// filterExercises applies a CatalogFilter to an exercise list.
func filterExercises(all []domain.Exercise, filter domain.CatalogFilter) []domain.Exercise {
	var out []domain.Exercise
	for _, ex := range all {
		if filter.Exclude != nil && filter.Exclude[ex.Name] {
			continue
		}
		if filter.Muscle != "" && !ex.TargetsMuscle(filter.Muscle) {
			continue
		}
		if filter.MaxLevel != "" && !levelAllowed(filter.MaxLevel, ex.Level) {
			continue
		}
		if filter.Equipment != "" && filter.Equipment != domain.EquipmentGym {
			allowed, ok := equipmentAllowed[filter.Equipment]
			if ok && !containsString(allowed, ex.Equipment) {
				continue
			}
		}
		out = append(out, ex)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// LibraryCatalog implements domain.ExerciseCatalog on top of the seeded
// Mongo exercise library, used when no upstream catalog URL is configured.
type LibraryCatalog struct {
	repo domain.ExerciseRepository

	mu     sync.Mutex
	cached []domain.Exercise
}

// NewLibraryCatalog creates a catalog backed by the exercise library.
func NewLibraryCatalog(repo domain.ExerciseRepository) *LibraryCatalog {
	return &LibraryCatalog{repo: repo}
}

// All returns the library contents, memoized for the process lifetime.
func (c *LibraryCatalog) All(ctx context.Context) ([]domain.Exercise, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	list, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise library: %w", err)
	}

	exercises := make([]domain.Exercise, 0, len(list))
	for _, ex := range list {
		exercises = append(exercises, *ex)
	}
	c.cached = exercises
	return c.cached, nil
}

// Filter returns library entries matching the filter.
func (c *LibraryCatalog) Filter(ctx context.Context, filter domain.CatalogFilter) ([]domain.Exercise, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterExercises(all, filter), nil
}
