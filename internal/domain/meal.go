package domain

import (
	"context"
	"time"
)

// MealSlotType identifies a scheduled eating occasion.
type MealSlotType string

const (
	SlotBreakfast    MealSlotType = "breakfast"
	SlotSnack        MealSlotType = "snack"
	SlotLunch        MealSlotType = "lunch"
	SlotPreWorkout   MealSlotType = "pre_workout"
	SlotPostWorkout  MealSlotType = "post_workout"
	SlotDinner       MealSlotType = "dinner"
	SlotEveningSnack MealSlotType = "evening_snack"
)

// SlotImportance ranks how essential a slot is to the day's plan.
type SlotImportance string

const (
	ImportanceCritical SlotImportance = "critical"
	ImportanceHigh     SlotImportance = "high"
	ImportanceMedium   SlotImportance = "medium"
	ImportanceOptional SlotImportance = "optional"
)

// FoodCategory buckets shopping list items.
type FoodCategory string

const (
	CategoryProduce   FoodCategory = "Produce"
	CategoryMeatFish  FoodCategory = "Meat & Fish"
	CategoryDairyEggs FoodCategory = "Dairy & Eggs"
	CategoryPantry    FoodCategory = "Pantry"
	CategoryBakery    FoodCategory = "Bakery"
	CategorySpices    FoodCategory = "Spices"
	CategoryBeverages FoodCategory = "Beverages"
	CategoryOther     FoodCategory = "Other"
)

// FoodTag marks dietary-relevant properties of a database food.
type FoodTag string

const (
	TagMeat  FoodTag = "meat"
	TagFish  FoodTag = "fish"
	TagDairy FoodTag = "dairy"
	TagEgg   FoodTag = "egg"
)

// FoodItem is an entry in the curated regional food database. Macro values
// are per the listed quantity.
type FoodItem struct {
	Name      string         `bson:"name" json:"name"`
	Category  FoodCategory   `bson:"category" json:"category"`
	Quantity  float64        `bson:"quantity" json:"quantity"`
	Unit      string         `bson:"unit" json:"unit"` // "g", "ml", "piece"
	Calories  int            `bson:"calories" json:"calories"`
	ProteinG  int            `bson:"protein_g" json:"protein_g"`
	CarbsG    int            `bson:"carbs_g" json:"carbs_g"`
	FatG      int            `bson:"fat_g" json:"fat_g"`
	SlotTypes []MealSlotType `bson:"slot_types" json:"slot_types"`
	Tags      []FoodTag      `bson:"tags,omitempty" json:"tags,omitempty"`
}

// HasTag reports whether the food carries the given dietary tag.
func (f *FoodItem) HasTag(tag FoodTag) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FoodPortion is a concrete scaled serving assigned to a meal slot.
type FoodPortion struct {
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"` // rounded to 1 decimal
	Unit     string  `bson:"unit" json:"unit"`
	Calories int     `bson:"calories" json:"calories"`
	ProteinG int     `bson:"protein_g" json:"protein_g"`
	CarbsG   int     `bson:"carbs_g" json:"carbs_g"`
	FatG     int     `bson:"fat_g" json:"fat_g"`
}

// MealSlot is one scheduled eating occasion with calorie/macro targets and
// the concrete foods chosen to hit them.
type MealSlot struct {
	Type          MealSlotType   `bson:"type" json:"type"`
	ScheduledTime ClockTime      `bson:"scheduled_time" json:"scheduled_time"`
	Calories      int            `bson:"calories" json:"calories"`
	ProteinG      int            `bson:"protein_g" json:"protein_g"`
	CarbsG        int            `bson:"carbs_g" json:"carbs_g"`
	FatG          int            `bson:"fat_g" json:"fat_g"`
	Importance    SlotImportance `bson:"importance" json:"importance"`
	Foods         []FoodPortion  `bson:"foods,omitempty" json:"foods,omitempty"`
}

// MealDay is the scheduled slots for one day of the week.
type MealDay struct {
	DayIndex int        `bson:"day_index" json:"day_index"` // 0=Monday
	Slots    []MealSlot `bson:"slots" json:"slots"`
}

// ShoppingItem aggregates one (name, unit) pair across the week.
type ShoppingItem struct {
	Name          string  `bson:"name" json:"name"`
	Quantity      float64 `bson:"quantity" json:"quantity"`
	Unit          string  `bson:"unit" json:"unit"`
	EstimatedCost float64 `bson:"estimated_cost" json:"estimated_cost"`
}

// ShoppingCategory groups shopping items under a store section.
type ShoppingCategory struct {
	Name  FoodCategory   `bson:"name" json:"name"`
	Items []ShoppingItem `bson:"items" json:"items"`
}

// ShoppingList is the weekly aggregate across all meal days.
type ShoppingList struct {
	Categories    []ShoppingCategory `bson:"categories" json:"categories"`
	EstimatedCost float64            `bson:"estimated_cost" json:"estimated_cost"`
}

// MealPlan is a full weekly meal plan produced by one generator run.
type MealPlan struct {
	ID           string           `bson:"_id,omitempty" json:"id"`
	PlanULID     string           `bson:"plan_ulid" json:"plan_ulid"`
	UserID       string           `bson:"user_id" json:"user_id"`
	Days         []MealDay        `bson:"days" json:"days"`
	ShoppingList ShoppingList     `bson:"shopping_list" json:"shopping_list"`
	Targets      NutritionTargets `bson:"targets" json:"targets"`
	GeneratedAt  time.Time        `bson:"generated_at" json:"generated_at"`
}

// MealPlanRepository defines persistence for generated meal plans.
type MealPlanRepository interface {
	Save(ctx context.Context, plan *MealPlan) error
	GetLatestByUserID(ctx context.Context, userID string) (*MealPlan, error)
}
