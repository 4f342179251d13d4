package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/domain"
)

func TestMealPlanGeneratorBuildWeek(t *testing.T) {
	gen := NewMealPlanGenerator(NewMealScheduler())
	profile := testProfile()
	profile.PreferredWorkoutTime = "18:00"
	targets := &domain.NutritionTargets{TargetCalories: 2093, ProteinGrams: 183, CarbGrams: 183, FatGrams: 70}

	days, shopping, err := gen.BuildWeek(profile, targets)
	require.NoError(t, err)
	require.Len(t, days, 7)

	for _, day := range days {
		for _, slot := range day.Slots {
			require.NotEmpty(t, slot.Foods, "slot %s on day %d", slot.Type, day.DayIndex)

			// Scaled portions re-sum to the slot target within rounding noise.
			sum := 0
			for _, portion := range slot.Foods {
				sum += portion.Calories
				assert.Positive(t, portion.Quantity)
			}
			assert.InDelta(t, slot.Calories, sum, float64(len(slot.Foods))+1)
		}
	}

	assert.NotEmpty(t, shopping.Categories)
	assert.Positive(t, shopping.EstimatedCost)
}

func TestMealPlannerDietFilters(t *testing.T) {
	tests := []struct {
		name     string
		diet     domain.DietaryPreference
		excluded []domain.FoodTag
	}{
		{name: "vegetarian", diet: domain.DietVegetarian, excluded: []domain.FoodTag{domain.TagMeat, domain.TagFish}},
		{name: "vegan", diet: domain.DietVegan, excluded: []domain.FoodTag{domain.TagMeat, domain.TagFish, domain.TagDairy, domain.TagEgg}},
		{name: "pescatarian", diet: domain.DietPescatarian, excluded: []domain.FoodTag{domain.TagMeat}},
	}

	gen := NewMealPlanGenerator(NewMealScheduler())
	targets := &domain.NutritionTargets{TargetCalories: 2093, ProteinGrams: 183, CarbGrams: 183, FatGrams: 70}

	tagsByName := make(map[string][]domain.FoodTag)
	for _, food := range foodDatabase {
		tagsByName[food.Name] = food.Tags
	}
	hasTag := func(name string, tag domain.FoodTag) bool {
		for _, t := range tagsByName[name] {
			if t == tag {
				return true
			}
		}
		return false
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.DietaryPreference = tt.diet

			days, _, err := gen.BuildWeek(profile, targets)
			require.NoError(t, err)

			for _, day := range days {
				for _, slot := range day.Slots {
					for _, portion := range slot.Foods {
						for _, tag := range tt.excluded {
							assert.False(t, hasTag(portion.Name, tag),
								"%s diet must not serve %s (tag %s)", tt.diet, portion.Name, tag)
						}
					}
				}
			}
		})
	}
}

func TestMealPlannerAllergyExclusion(t *testing.T) {
	gen := NewMealPlanGenerator(NewMealScheduler())
	profile := testProfile()
	profile.FoodAllergies = []string{"peanut", "Salmon"}
	targets := &domain.NutritionTargets{TargetCalories: 2093, ProteinGrams: 183, CarbGrams: 183, FatGrams: 70}

	days, _, err := gen.BuildWeek(profile, targets)
	require.NoError(t, err)

	for _, day := range days {
		for _, slot := range day.Slots {
			for _, portion := range slot.Foods {
				assert.NotContains(t, portion.Name, "Peanut")
				assert.NotContains(t, portion.Name, "Salmon")
			}
		}
	}
}

// Over-restrictive constraints yield empty slots, never an error.
func TestMealPlannerOverRestrictedSlotIsEmpty(t *testing.T) {
	gen := NewMealPlanGenerator(NewMealScheduler())
	profile := testProfile()
	profile.DietaryPreference = domain.DietVegan
	// Block everything the vegan breakfast pool still has.
	profile.FoodAllergies = []string{"oat", "bread", "banana", "blueberr", "almond", "avocado", "peanut"}
	targets := &domain.NutritionTargets{TargetCalories: 2093, ProteinGrams: 183, CarbGrams: 183, FatGrams: 70}

	days, _, err := gen.BuildWeek(profile, targets)
	require.NoError(t, err)

	for _, slot := range days[0].Slots {
		if slot.Type == domain.SlotBreakfast {
			assert.Empty(t, slot.Foods)
		}
	}
}

func TestShoppingListAggregation(t *testing.T) {
	gen := NewMealPlanGenerator(NewMealScheduler())
	profile := testProfile()
	targets := &domain.NutritionTargets{TargetCalories: 2093, ProteinGrams: 183, CarbGrams: 183, FatGrams: 70}

	_, shopping, err := gen.BuildWeek(profile, targets)
	require.NoError(t, err)

	// Category order follows the fixed store layout.
	lastIndex := -1
	indexOf := func(c domain.FoodCategory) int {
		for i, cat := range shoppingCategoryOrder {
			if cat == c {
				return i
			}
		}
		return len(shoppingCategoryOrder)
	}
	for _, category := range shopping.Categories {
		idx := indexOf(category.Name)
		assert.Greater(t, idx, lastIndex, "category %s out of order", category.Name)
		lastIndex = idx

		require.NotEmpty(t, category.Items)
		for _, item := range category.Items {
			assert.Positive(t, item.Quantity)
			assert.GreaterOrEqual(t, item.EstimatedCost, 0.0)
		}
	}

	// No item name appears in two categories.
	seen := make(map[string]bool)
	for _, category := range shopping.Categories {
		for _, item := range category.Items {
			key := item.Name + "/" + item.Unit
			assert.False(t, seen[key], "item %s duplicated across categories", key)
			seen[key] = true
		}
	}
}
