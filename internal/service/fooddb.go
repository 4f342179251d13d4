package service

import "github.com/trainloop/fitplan/internal/domain"

// foodDatabase is the curated regional food database. Macro values are per
// the listed quantity. Slot types mark which eating occasions an item suits;
// dietary tags drive preference/allergy filtering.
var foodDatabase = []domain.FoodItem{
	// Breakfast staples
	{Name: "Rolled oats", Category: domain.CategoryPantry, Quantity: 60, Unit: "g", Calories: 230, ProteinG: 8, CarbsG: 40, FatG: 4,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast}},
	{Name: "Whole eggs", Category: domain.CategoryDairyEggs, Quantity: 2, Unit: "piece", Calories: 156, ProteinG: 13, CarbsG: 1, FatG: 11,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotLunch}, Tags: []domain.FoodTag{domain.TagEgg}},
	{Name: "Greek yogurt", Category: domain.CategoryDairyEggs, Quantity: 170, Unit: "g", Calories: 100, ProteinG: 17, CarbsG: 6, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotSnack, domain.SlotEveningSnack}, Tags: []domain.FoodTag{domain.TagDairy}},
	{Name: "Whole grain bread", Category: domain.CategoryBakery, Quantity: 2, Unit: "piece", Calories: 160, ProteinG: 8, CarbsG: 28, FatG: 2,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotSnack}},
	{Name: "Peanut butter", Category: domain.CategoryPantry, Quantity: 30, Unit: "g", Calories: 180, ProteinG: 7, CarbsG: 6, FatG: 15,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotSnack, domain.SlotEveningSnack}},
	{Name: "Banana", Category: domain.CategoryProduce, Quantity: 1, Unit: "piece", Calories: 105, ProteinG: 1, CarbsG: 27, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotSnack, domain.SlotPreWorkout}},
	{Name: "Blueberries", Category: domain.CategoryProduce, Quantity: 100, Unit: "g", Calories: 57, ProteinG: 1, CarbsG: 14, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotSnack}},
	{Name: "Whole milk", Category: domain.CategoryDairyEggs, Quantity: 250, Unit: "ml", Calories: 155, ProteinG: 8, CarbsG: 12, FatG: 8,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotEveningSnack}, Tags: []domain.FoodTag{domain.TagDairy}},
	{Name: "Almond milk", Category: domain.CategoryBeverages, Quantity: 250, Unit: "ml", Calories: 40, ProteinG: 1, CarbsG: 3, FatG: 3,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotPreWorkout}},

	// Lunch / dinner proteins
	{Name: "Chicken breast", Category: domain.CategoryMeatFish, Quantity: 150, Unit: "g", Calories: 248, ProteinG: 47, CarbsG: 0, FatG: 5,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner, domain.SlotPostWorkout}, Tags: []domain.FoodTag{domain.TagMeat}},
	{Name: "Lean beef mince", Category: domain.CategoryMeatFish, Quantity: 150, Unit: "g", Calories: 260, ProteinG: 39, CarbsG: 0, FatG: 11,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}, Tags: []domain.FoodTag{domain.TagMeat}},
	{Name: "Salmon fillet", Category: domain.CategoryMeatFish, Quantity: 150, Unit: "g", Calories: 310, ProteinG: 34, CarbsG: 0, FatG: 19,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}, Tags: []domain.FoodTag{domain.TagFish}},
	{Name: "Canned tuna", Category: domain.CategoryMeatFish, Quantity: 100, Unit: "g", Calories: 116, ProteinG: 26, CarbsG: 0, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotPostWorkout}, Tags: []domain.FoodTag{domain.TagFish}},
	{Name: "Firm tofu", Category: domain.CategoryPantry, Quantity: 150, Unit: "g", Calories: 110, ProteinG: 13, CarbsG: 3, FatG: 6,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner, domain.SlotPostWorkout}},
	{Name: "Chickpeas", Category: domain.CategoryPantry, Quantity: 150, Unit: "g", Calories: 246, ProteinG: 13, CarbsG: 41, FatG: 4,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Red lentils", Category: domain.CategoryPantry, Quantity: 80, Unit: "g", Calories: 280, ProteinG: 20, CarbsG: 48, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Cottage cheese", Category: domain.CategoryDairyEggs, Quantity: 150, Unit: "g", Calories: 147, ProteinG: 17, CarbsG: 5, FatG: 6,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotEveningSnack}, Tags: []domain.FoodTag{domain.TagDairy}},

	// Carbohydrate sides
	{Name: "Basmati rice", Category: domain.CategoryPantry, Quantity: 75, Unit: "g", Calories: 262, ProteinG: 6, CarbsG: 58, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner, domain.SlotPostWorkout}},
	{Name: "Sweet potato", Category: domain.CategoryProduce, Quantity: 200, Unit: "g", Calories: 172, ProteinG: 3, CarbsG: 40, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Whole wheat pasta", Category: domain.CategoryPantry, Quantity: 75, Unit: "g", Calories: 260, ProteinG: 10, CarbsG: 52, FatG: 2,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Quinoa", Category: domain.CategoryPantry, Quantity: 75, Unit: "g", Calories: 275, ProteinG: 10, CarbsG: 48, FatG: 4,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Potatoes", Category: domain.CategoryProduce, Quantity: 250, Unit: "g", Calories: 193, ProteinG: 5, CarbsG: 43, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotDinner}},

	// Vegetables
	{Name: "Broccoli", Category: domain.CategoryProduce, Quantity: 150, Unit: "g", Calories: 51, ProteinG: 4, CarbsG: 10, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Spinach", Category: domain.CategoryProduce, Quantity: 100, Unit: "g", Calories: 23, ProteinG: 3, CarbsG: 4, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Mixed salad", Category: domain.CategoryProduce, Quantity: 150, Unit: "g", Calories: 30, ProteinG: 2, CarbsG: 6, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Bell peppers", Category: domain.CategoryProduce, Quantity: 120, Unit: "g", Calories: 37, ProteinG: 1, CarbsG: 9, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Carrots", Category: domain.CategoryProduce, Quantity: 120, Unit: "g", Calories: 49, ProteinG: 1, CarbsG: 12, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotSnack, domain.SlotDinner}},

	// Snacks and workout window
	{Name: "Almonds", Category: domain.CategoryPantry, Quantity: 30, Unit: "g", Calories: 174, ProteinG: 6, CarbsG: 6, FatG: 15,
		SlotTypes: []domain.MealSlotType{domain.SlotSnack, domain.SlotEveningSnack}},
	{Name: "Apple", Category: domain.CategoryProduce, Quantity: 1, Unit: "piece", Calories: 95, ProteinG: 0, CarbsG: 25, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotSnack, domain.SlotPreWorkout}},
	{Name: "Rice cakes", Category: domain.CategoryBakery, Quantity: 3, Unit: "piece", Calories: 105, ProteinG: 2, CarbsG: 22, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotSnack, domain.SlotPreWorkout}},
	{Name: "Whey protein", Category: domain.CategoryPantry, Quantity: 30, Unit: "g", Calories: 120, ProteinG: 24, CarbsG: 3, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotPostWorkout, domain.SlotSnack}, Tags: []domain.FoodTag{domain.TagDairy}},
	{Name: "Soy protein isolate", Category: domain.CategoryPantry, Quantity: 30, Unit: "g", Calories: 110, ProteinG: 25, CarbsG: 2, FatG: 1,
		SlotTypes: []domain.MealSlotType{domain.SlotPostWorkout, domain.SlotSnack}},
	{Name: "Dates", Category: domain.CategoryProduce, Quantity: 40, Unit: "g", Calories: 113, ProteinG: 1, CarbsG: 30, FatG: 0,
		SlotTypes: []domain.MealSlotType{domain.SlotPreWorkout, domain.SlotSnack}},
	{Name: "Dark chocolate", Category: domain.CategoryPantry, Quantity: 20, Unit: "g", Calories: 120, ProteinG: 2, CarbsG: 9, FatG: 9,
		SlotTypes: []domain.MealSlotType{domain.SlotEveningSnack}},
	{Name: "Casein pudding", Category: domain.CategoryDairyEggs, Quantity: 200, Unit: "g", Calories: 180, ProteinG: 24, CarbsG: 10, FatG: 4,
		SlotTypes: []domain.MealSlotType{domain.SlotEveningSnack}, Tags: []domain.FoodTag{domain.TagDairy}},

	// Fats and flavor
	{Name: "Olive oil", Category: domain.CategoryPantry, Quantity: 10, Unit: "ml", Calories: 90, ProteinG: 0, CarbsG: 0, FatG: 10,
		SlotTypes: []domain.MealSlotType{domain.SlotLunch, domain.SlotDinner}},
	{Name: "Avocado", Category: domain.CategoryProduce, Quantity: 100, Unit: "g", Calories: 160, ProteinG: 2, CarbsG: 9, FatG: 15,
		SlotTypes: []domain.MealSlotType{domain.SlotBreakfast, domain.SlotLunch}},
	{Name: "Hummus", Category: domain.CategoryPantry, Quantity: 50, Unit: "g", Calories: 135, ProteinG: 4, CarbsG: 8, FatG: 10,
		SlotTypes: []domain.MealSlotType{domain.SlotSnack, domain.SlotDinner}},
}

// unitPrices estimates cost per single unit (g, ml or piece) of a food.
// Rough figures for shopping list totals only.
var unitPrices = map[string]float64{
	"Rolled oats":         0.003,
	"Whole eggs":          0.35,
	"Greek yogurt":        0.006,
	"Whole grain bread":   0.40,
	"Peanut butter":       0.012,
	"Banana":              0.30,
	"Blueberries":         0.020,
	"Whole milk":          0.002,
	"Almond milk":         0.003,
	"Chicken breast":      0.011,
	"Lean beef mince":     0.014,
	"Salmon fillet":       0.025,
	"Canned tuna":         0.012,
	"Firm tofu":           0.007,
	"Chickpeas":           0.003,
	"Red lentils":         0.004,
	"Cottage cheese":      0.006,
	"Basmati rice":        0.003,
	"Sweet potato":        0.003,
	"Whole wheat pasta":   0.003,
	"Quinoa":              0.008,
	"Potatoes":            0.002,
	"Broccoli":            0.005,
	"Spinach":             0.008,
	"Mixed salad":         0.007,
	"Bell peppers":        0.006,
	"Carrots":             0.002,
	"Almonds":             0.018,
	"Apple":               0.40,
	"Rice cakes":          0.15,
	"Whey protein":        0.030,
	"Soy protein isolate": 0.028,
	"Dates":               0.012,
	"Dark chocolate":      0.020,
	"Casein pudding":      0.008,
	"Olive oil":           0.010,
	"Avocado":             0.012,
	"Hummus":              0.008,
}

// defaultUnitPrice is used for foods missing from the price table.
const defaultUnitPrice = 0.01

// FoodLibrary returns a copy of the curated food database, used by the food
// seeder and available for inspection.
func FoodLibrary() []domain.FoodItem {
	out := make([]domain.FoodItem, len(foodDatabase))
	copy(out, foodDatabase)
	return out
}

func unitPriceFor(name string) float64 {
	if price, ok := unitPrices[name]; ok {
		return price
	}
	return defaultUnitPrice
}
