package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/trainloop/fitplan/internal/domain"
)

// comboSizes is how many foods fill each slot type before scaling.
var comboSizes = map[domain.MealSlotType]int{
	domain.SlotBreakfast:    3,
	domain.SlotSnack:        2,
	domain.SlotLunch:        3,
	domain.SlotPreWorkout:   2,
	domain.SlotPostWorkout:  2,
	domain.SlotDinner:       3,
	domain.SlotEveningSnack: 2,
}

// shoppingCategoryOrder fixes the display order of shopping list sections.
var shoppingCategoryOrder = []domain.FoodCategory{
	domain.CategoryProduce,
	domain.CategoryMeatFish,
	domain.CategoryDairyEggs,
	domain.CategoryPantry,
	domain.CategoryBakery,
	domain.CategorySpices,
	domain.CategoryBeverages,
	domain.CategoryOther,
}

// MealPlanGenerator fills scheduled meal slots with concrete foods from the
// curated database and aggregates the weekly shopping list.
type MealPlanGenerator struct {
	scheduler *MealScheduler
	foods     []domain.FoodItem
}

// NewMealPlanGenerator creates a generator over the built-in food database.
func NewMealPlanGenerator(scheduler *MealScheduler) *MealPlanGenerator {
	return &MealPlanGenerator{scheduler: scheduler, foods: foodDatabase}
}

// BuildWeek generates seven MealDays plus the aggregated shopping list.
// Templates cycle by day-of-week index for variety; portions are scaled
// multiplicatively so each slot's foods sum to its calorie target.
func (g *MealPlanGenerator) BuildWeek(profile *domain.UserProfile, targets *domain.NutritionTargets) ([]domain.MealDay, domain.ShoppingList, error) {
	days := make([]domain.MealDay, 0, 7)
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		slots, err := g.scheduler.BuildDay(profile, targets)
		if err != nil {
			return nil, domain.ShoppingList{}, fmt.Errorf("failed to schedule day %d: %w", dayIndex, err)
		}

		for i := range slots {
			slots[i].Foods = g.fillSlot(profile, slots[i], dayIndex)
		}

		days = append(days, domain.MealDay{DayIndex: dayIndex, Slots: slots})
	}

	return days, g.buildShoppingList(days), nil
}

// fillSlot selects and scales foods for one slot. An empty eligible pool
// (over-restrictive allergies) yields an empty food list, never an error.
func (g *MealPlanGenerator) fillSlot(profile *domain.UserProfile, slot domain.MealSlot, dayIndex int) []domain.FoodPortion {
	eligible := g.eligibleFoods(profile, slot.Type)
	if len(eligible) == 0 {
		return nil
	}

	size := comboSizes[slot.Type]
	if size > len(eligible) {
		size = len(eligible)
	}

	// Day-of-week cycling picks a different template window each day.
	combo := make([]domain.FoodItem, 0, size)
	for i := 0; i < size; i++ {
		combo = append(combo, eligible[(dayIndex+i*2)%len(eligible)])
	}

	comboCalories := 0
	for _, food := range combo {
		comboCalories += food.Calories
	}
	if comboCalories == 0 {
		return nil
	}

	ratio := float64(slot.Calories) / float64(comboCalories)

	portions := make([]domain.FoodPortion, 0, len(combo))
	for _, food := range combo {
		portions = append(portions, domain.FoodPortion{
			Name:     food.Name,
			Quantity: math.Round(food.Quantity*ratio*10) / 10,
			Unit:     food.Unit,
			Calories: int(math.Round(float64(food.Calories) * ratio)),
			ProteinG: int(math.Round(float64(food.ProteinG) * ratio)),
			CarbsG:   int(math.Round(float64(food.CarbsG) * ratio)),
			FatG:     int(math.Round(float64(food.FatG) * ratio)),
		})
	}
	return portions
}

// eligibleFoods filters the database by slot type, dietary preference and
// allergies. Allergy matching is a case-insensitive substring check against
// the food name.
func (g *MealPlanGenerator) eligibleFoods(profile *domain.UserProfile, slotType domain.MealSlotType) []domain.FoodItem {
	var out []domain.FoodItem
	for _, food := range g.foods {
		if !foodServesSlot(food, slotType) {
			continue
		}
		if violatesDiet(food, profile.DietaryPreference) {
			continue
		}
		if matchesAllergy(food.Name, profile.FoodAllergies) {
			continue
		}
		out = append(out, food)
	}
	return out
}

func foodServesSlot(food domain.FoodItem, slotType domain.MealSlotType) bool {
	for _, t := range food.SlotTypes {
		if t == slotType {
			return true
		}
	}
	return false
}

// violatesDiet applies the dietary preference exclusions: vegetarian drops
// meat and fish, vegan additionally drops dairy and eggs, pescatarian drops
// land meat only.
func violatesDiet(food domain.FoodItem, diet domain.DietaryPreference) bool {
	switch diet {
	case domain.DietVegetarian:
		return food.HasTag(domain.TagMeat) || food.HasTag(domain.TagFish)
	case domain.DietVegan:
		return food.HasTag(domain.TagMeat) || food.HasTag(domain.TagFish) ||
			food.HasTag(domain.TagDairy) || food.HasTag(domain.TagEgg)
	case domain.DietPescatarian:
		return food.HasTag(domain.TagMeat)
	default:
		return false
	}
}

func matchesAllergy(name string, allergies []string) bool {
	lower := strings.ToLower(name)
	for _, allergy := range allergies {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a != "" && strings.Contains(lower, a) {
			return true
		}
	}
	return false
}

// buildShoppingList sums quantities of identical (name, unit) pairs across
// the week and buckets them into fixed store categories with a rough cost
// estimate from the static price table.
func (g *MealPlanGenerator) buildShoppingList(days []domain.MealDay) domain.ShoppingList {
	type key struct {
		name string
		unit string
	}
	totals := make(map[key]float64)
	for _, day := range days {
		for _, slot := range day.Slots {
			for _, portion := range slot.Foods {
				k := key{name: portion.Name, unit: portion.Unit}
				totals[k] += portion.Quantity
			}
		}
	}

	categoryOf := make(map[string]domain.FoodCategory, len(g.foods))
	for _, food := range g.foods {
		categoryOf[food.Name] = food.Category
	}

	buckets := make(map[domain.FoodCategory][]domain.ShoppingItem)
	grandTotal := 0.0
	for k, qty := range totals {
		category, ok := categoryOf[k.name]
		if !ok {
			category = domain.CategoryOther
		}
		cost := math.Round(qty*unitPriceFor(k.name)*100) / 100
		grandTotal += cost
		buckets[category] = append(buckets[category], domain.ShoppingItem{
			Name:          k.name,
			Quantity:      math.Round(qty*10) / 10,
			Unit:          k.unit,
			EstimatedCost: cost,
		})
	}

	list := domain.ShoppingList{EstimatedCost: math.Round(grandTotal*100) / 100}
	for _, category := range shoppingCategoryOrder {
		items := buckets[category]
		if len(items) == 0 {
			continue
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		list.Categories = append(list.Categories, domain.ShoppingCategory{Name: category, Items: items})
	}
	return list
}
