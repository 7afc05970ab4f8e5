// ABOUTME: UserProfile model with gender, activity and fitness-goal enums.
// ABOUTME: Goals holds the metabolic targets derived from a profile.
package models

// Gender is the user's gender as selected at onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AllActivityLevels lists valid activity levels from least to most active.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate,
	ActivityActive, ActivityVeryActive,
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, al := range AllActivityLevels {
		if string(al) == s {
			return true
		}
	}
	return false
}

// FitnessGoal is the user's weight objective.
type FitnessGoal string

const (
	GoalLose     FitnessGoal = "lose"
	GoalMaintain FitnessGoal = "maintain"
	GoalGain     FitnessGoal = "gain"
)

// IsValidFitnessGoal checks if a string is a valid fitness goal.
func IsValidFitnessGoal(s string) bool {
	switch FitnessGoal(s) {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}

// UserProfile holds the user's attributes entered at onboarding.
// Derived values (BMI, BMR, TDEE, goals) are computed, never entered.
type UserProfile struct {
	Name                string        `json:"name"`
	Age                 int           `json:"age"`
	Gender              Gender        `json:"gender"`
	WeightKg            float64       `json:"weight_kg"`
	HeightCm            float64       `json:"height_cm"`
	ActivityLevel       ActivityLevel `json:"activity_level"`
	FitnessGoal         FitnessGoal   `json:"fitness_goal"`
	DietaryRestrictions []string      `json:"dietary_restrictions,omitempty"`
}

// MacroGoals are the daily macro targets in grams.
type MacroGoals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Goals are the metabolic targets derived from a UserProfile.
type Goals struct {
	BMI         float64    `json:"bmi"`
	BMR         float64    `json:"bmr"`
	TDEE        float64    `json:"tdee"`
	CalorieGoal float64    `json:"calorie_goal"`
	Macros      MacroGoals `json:"macro_goals"`
}

// MacroTotals are summed macros for a day, in grams.
type MacroTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroPercent is each macro's share of total macro calories, in whole percents.
type MacroPercent struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// DailyAggregate is the computed nutritional state for one date.
// Derived on demand, never persisted.
type DailyAggregate struct {
	CaloriesConsumed  float64      `json:"calories_consumed"`
	CaloriesRemaining float64      `json:"calories_remaining"`
	Totals            MacroTotals  `json:"macro_totals"`
	Percent           MacroPercent `json:"macro_percent"`
}
