package service

import (
	"math"

	"github.com/trainloop/fitplan/internal/domain"
)

// activityMultipliers maps activity levels to their TDEE multiplier. The set
// is closed at parse time, so every key present here is reachable.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// waterActivityBonusMl is the extra daily water on top of the body-mass
// baseline (35 ml/kg).
var waterActivityBonusMl = map[domain.ActivityLevel]int{
	domain.ActivitySedentary:  0,
	domain.ActivityLight:      150,
	domain.ActivityModerate:   300,
	domain.ActivityActive:     500,
	domain.ActivityVeryActive: 700,
}

// macroSplits maps each goal to its protein/carb/fat calorie allocation.
var macroSplits = map[domain.Goal]domain.MacroSplit{
	domain.GoalBuildMuscle:      {Protein: 0.30, Carbs: 0.45, Fat: 0.25},
	domain.GoalLoseWeight:       {Protein: 0.35, Carbs: 0.35, Fat: 0.30},
	domain.GoalIncreaseStrength: {Protein: 0.30, Carbs: 0.50, Fat: 0.20},
	domain.GoalMaintain:         {Protein: 0.25, Carbs: 0.45, Fat: 0.30},
	domain.GoalImproveEndurance: {Protein: 0.25, Carbs: 0.45, Fat: 0.30},
}

// calorieOffsets maps each goal to its daily calorie delta against TDEE.
var calorieOffsets = map[domain.Goal]int{
	domain.GoalLoseWeight:       -500,
	domain.GoalBuildMuscle:      +300,
	domain.GoalIncreaseStrength: +200,
	domain.GoalMaintain:         0,
	domain.GoalImproveEndurance: 0,
}

const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
	waterMlPerKg       = 35
)

// BiometricCalculator derives energy, macro and hydration targets from a
// profile. Pure transforms, no dependencies.
type BiometricCalculator struct{}

// NewBiometricCalculator creates a new biometric calculator.
func NewBiometricCalculator() *BiometricCalculator {
	return &BiometricCalculator{}
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor. The result
// is truncated to whole calories. Returns ErrIncompleteProfile when a
// required field is missing so callers can't proceed with zeroed targets.
// Gender "other" uses the female offset.
func (c *BiometricCalculator) CalculateBMR(p *domain.UserProfile) (int, error) {
	if p == nil || !p.Complete() {
		return 0, domain.ErrIncompleteProfile
	}

	raw := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == domain.GenderMale {
		raw += 5
	} else {
		raw -= 161
	}
	if raw <= 0 {
		return 0, domain.ErrIncompleteProfile
	}
	return int(raw), nil
}

// CalculateTDEE scales BMR by the activity multiplier, rounded to the
// nearest calorie.
func (c *BiometricCalculator) CalculateTDEE(bmr int, level domain.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[domain.ActivityModerate]
	}
	return int(math.Round(float64(bmr) * mult))
}

// CalculateTargetCalories applies the goal offset to TDEE.
func (c *BiometricCalculator) CalculateTargetCalories(tdee int, goal domain.Goal) int {
	return tdee + calorieOffsets[goal]
}

// MacroSplitFor returns the percentage allocation for a goal.
func (c *BiometricCalculator) MacroSplitFor(goal domain.Goal) domain.MacroSplit {
	if split, ok := macroSplits[goal]; ok {
		return split
	}
	return macroSplits[domain.GoalMaintain]
}

// CalculateMacros converts a calorie total into per-macro gram targets.
func (c *BiometricCalculator) CalculateMacros(calories int, goal domain.Goal) (proteinG, carbsG, fatG int) {
	split := c.MacroSplitFor(goal)
	proteinG = int(math.Round(float64(calories) * split.Protein / kcalPerGramProtein))
	carbsG = int(math.Round(float64(calories) * split.Carbs / kcalPerGramCarb))
	fatG = int(math.Round(float64(calories) * split.Fat / kcalPerGramFat))
	return proteinG, carbsG, fatG
}

// CalculateWaterGoal computes the daily hydration target: 35 ml per kg of
// body mass plus an activity bonus. Typical adult inputs land in the
// 2000-4000 ml range.
func (c *BiometricCalculator) CalculateWaterGoal(weightKg float64, level domain.ActivityLevel) int {
	if weightKg <= 0 {
		return 0
	}
	return int(math.Round(weightKg*waterMlPerKg)) + waterActivityBonusMl[level]
}

// DeriveTargets runs the full derivation chain for a profile.
func (c *BiometricCalculator) DeriveTargets(p *domain.UserProfile) (*domain.NutritionTargets, error) {
	bmr, err := c.CalculateBMR(p)
	if err != nil {
		return nil, err
	}

	tdee := c.CalculateTDEE(bmr, p.ActivityLevel)
	calories := c.CalculateTargetCalories(tdee, p.Goal)
	proteinG, carbsG, fatG := c.CalculateMacros(calories, p.Goal)

	return &domain.NutritionTargets{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: calories,
		ProteinGrams:   proteinG,
		CarbGrams:      carbsG,
		FatGrams:       fatG,
		WaterMl:        c.CalculateWaterGoal(p.WeightKg, p.ActivityLevel),
	}, nil
}
