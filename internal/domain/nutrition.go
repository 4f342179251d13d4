package domain

// MacroSplit is a percentage allocation of daily calories across
// macronutrients. Fractions must sum to 1.0.
type MacroSplit struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Sum returns the total of the three fractions.
func (m MacroSplit) Sum() float64 {
	return m.Protein + m.Carbs + m.Fat
}

// NutritionTargets are the derived daily energy and macro targets. They are
// recomputed from the profile snapshot that produced them and never persisted
// as an independent source of truth.
type NutritionTargets struct {
	BMR            int `bson:"bmr" json:"bmr"`
	TDEE           int `bson:"tdee" json:"tdee"`
	TargetCalories int `bson:"target_calories" json:"target_calories"`
	ProteinGrams   int `bson:"protein_grams" json:"protein_grams"`
	CarbGrams      int `bson:"carb_grams" json:"carb_grams"`
	FatGrams       int `bson:"fat_grams" json:"fat_grams"`
	WaterMl        int `bson:"water_ml" json:"water_ml"`
}
