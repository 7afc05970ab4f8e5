// ABOUTME: Daily aggregator folding food log entries against metabolic goals.
// ABOUTME: Pure computation; zero inputs yield a fully zeroed aggregate.
package aggregate

import (
	"math"

	"github.com/harperreed/nosh/internal/models"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Daily folds a day's entries into consumed/remaining totals and macro
// percentages. Never fails: an empty entry list and zeroed goals produce a
// zeroed aggregate with CaloriesRemaining equal to the calorie goal.
func Daily(entries []models.FoodLogEntry, goals models.Goals) models.DailyAggregate {
	var agg models.DailyAggregate
	for _, e := range entries {
		agg.CaloriesConsumed += e.Calories
		agg.Totals.Protein += e.Protein
		agg.Totals.Carbs += e.Carbs
		agg.Totals.Fat += e.Fat
	}

	agg.CaloriesRemaining = math.Max(0, goals.CalorieGoal-agg.CaloriesConsumed)

	proteinCal := agg.Totals.Protein * kcalPerGramProtein
	carbsCal := agg.Totals.Carbs * kcalPerGramCarbs
	fatCal := agg.Totals.Fat * kcalPerGramFat
	totalMacroCal := proteinCal + carbsCal + fatCal
	if totalMacroCal > 0 {
		agg.Percent = models.MacroPercent{
			Protein: percent(proteinCal, totalMacroCal),
			Carbs:   percent(carbsCal, totalMacroCal),
			Fat:     percent(fatCal, totalMacroCal),
		}
	}
	return agg
}

func percent(part, total float64) int {
	return int(math.Round(part / total * 100))
}
