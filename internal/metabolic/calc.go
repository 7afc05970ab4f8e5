// ABOUTME: Pure metabolic calculations: BMI, BMR, TDEE, calorie and macro goals.
// ABOUTME: Invalid input yields zero values with a logged warning, never an error.
package metabolic

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/harperreed/nosh/internal/models"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// proteinPerKg maps fitness goals to daily protein targets in g/kg body weight.
var proteinPerKg = map[models.FitnessGoal]float64{
	models.GoalLose:     2.2,
	models.GoalMaintain: 1.8,
	models.GoalGain:     2.0,
}

const (
	minCalorieGoal   = 1200 // floor for a weight-loss calorie budget
	maxGainSurplus   = 1000 // cap on the gain surplus above TDEE
	fatCalorieShare  = 0.25 // fraction of calories allotted to fat
	minFatPerKg      = 0.8  // g/kg floor for fat intake
	kcalPerGramFat   = 9
	kcalPerGramOther = 4 // protein and carbs
)

// BMI computes Body Mass Index from weight (kg) and height (cm),
// rounded to one decimal. Returns 0 for non-positive input.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		log.Warn("bmi: invalid input, returning 0", "weight_kg", weightKg, "height_cm", heightCm)
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMR computes Basal Metabolic Rate via the Mifflin-St Jeor equation.
// Gender "other" (and anything unrecognized) uses the female offset; the
// formula is only defined for male/female, so we take the lower bound rather
// than overestimate a calorie budget. Returns 0 for non-positive input.
func BMR(weightKg, heightCm float64, age int, gender models.Gender) float64 {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		log.Warn("bmr: invalid input, returning 0",
			"weight_kg", weightKg, "height_cm", heightCm, "age", age)
		return 0
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	if bmr < 0 {
		return 0
	}
	return bmr
}

// TDEE scales a BMR by the activity level multiplier. An unrecognized level
// falls back to sedentary (1.2) with a logged warning.
func TDEE(bmr float64, level models.ActivityLevel) float64 {
	if bmr <= 0 {
		return 0
	}
	mult, ok := activityMultipliers[level]
	if !ok {
		log.Warn("tdee: unknown activity level, assuming sedentary", "level", level)
		mult = activityMultipliers[models.ActivitySedentary]
	}
	return bmr * mult
}

// CalorieGoal derives the daily calorie budget from TDEE and the fitness goal.
// Lose is a 20% deficit floored at 1200 kcal; gain is a 10% surplus capped at
// TDEE+1000; maintain (or an unknown goal) is TDEE unchanged.
func CalorieGoal(tdee float64, goal models.FitnessGoal) float64 {
	if tdee <= 0 {
		return 0
	}
	switch goal {
	case models.GoalLose:
		return math.Max(minCalorieGoal, math.Round(tdee*0.8))
	case models.GoalGain:
		return math.Min(tdee+maxGainSurplus, math.Round(tdee*1.1))
	case models.GoalMaintain:
		return math.Round(tdee)
	default:
		log.Warn("calorie goal: unknown fitness goal, using TDEE", "goal", goal)
		return math.Round(tdee)
	}
}

// MacroGoals splits a calorie budget into protein/carbs/fat gram targets.
// Protein scales with body weight by goal, fat takes a fixed calorie share
// with a g/kg floor, and carbs absorb the remainder (never negative).
// 4p + 4c + 9f stays within rounding tolerance of the calorie goal whenever
// the budget covers the protein and fat floors.
func MacroGoals(calorieGoal float64, goal models.FitnessGoal, weightKg float64) models.MacroGoals {
	if calorieGoal <= 0 || weightKg <= 0 {
		log.Warn("macro goals: invalid input, returning zeros",
			"calorie_goal", calorieGoal, "weight_kg", weightKg)
		return models.MacroGoals{}
	}

	perKg, ok := proteinPerKg[goal]
	if !ok {
		log.Warn("macro goals: unknown fitness goal, using maintain protein target", "goal", goal)
		perKg = proteinPerKg[models.GoalMaintain]
	}
	protein := math.Round(weightKg * perKg)
	fat := math.Round(math.Max(weightKg*minFatPerKg, calorieGoal*fatCalorieShare/kcalPerGramFat))

	carbCalories := calorieGoal - protein*kcalPerGramOther - fat*kcalPerGramFat
	carbs := math.Max(0, math.Round(carbCalories/kcalPerGramOther))

	return models.MacroGoals{Protein: protein, Carbs: carbs, Fat: fat}
}

// CaloriesBurned estimates calories burned from a step count using a linear
// model. A non-positive weight falls back to 70 kg.
func CaloriesBurned(steps int, weightKg float64) float64 {
	if steps <= 0 {
		return 0
	}
	if weightKg <= 0 {
		weightKg = 70
	}
	return float64(steps) * weightKg * 0.0005
}

// StepsToDistance converts a step count to kilometers using a stride length
// of 0.42×height. A non-positive height falls back to 170 cm.
func StepsToDistance(steps int, heightCm float64) float64 {
	if steps <= 0 {
		return 0
	}
	if heightCm <= 0 {
		heightCm = 170
	}
	strideM := 0.42 * heightCm / 100
	return float64(steps) * strideM / 1000
}

// WaterIntake recommends daily water in liters: 33 ml per kg of body weight,
// scaled by an activity multiplier. A non-positive multiplier falls back to 1.
func WaterIntake(weightKg, activityMultiplier float64) float64 {
	if weightKg <= 0 {
		log.Warn("water intake: invalid weight, returning 0", "weight_kg", weightKg)
		return 0
	}
	if activityMultiplier <= 0 {
		activityMultiplier = 1
	}
	return weightKg * 0.033 * activityMultiplier
}

// Goals computes the full set of derived metabolic targets for a profile.
// A nil profile yields a zeroed Goals.
func Goals(p *models.UserProfile) models.Goals {
	if p == nil {
		return models.Goals{}
	}
	bmr := BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)
	calorieGoal := CalorieGoal(tdee, p.FitnessGoal)
	return models.Goals{
		BMI:         BMI(p.WeightKg, p.HeightCm),
		BMR:         bmr,
		TDEE:        tdee,
		CalorieGoal: calorieGoal,
		Macros:      MacroGoals(calorieGoal, p.FitnessGoal, p.WeightKg),
	}
}
