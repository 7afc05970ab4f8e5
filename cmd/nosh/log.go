// ABOUTME: CLI command for logging food entries.
// ABOUTME: Positional nutrition values with flags for meal type and timestamp.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/spf13/cobra"
)

var (
	logMeal  string
	logAt    string
	logFiber float64
	logSugar float64
)

var logCmd = &cobra.Command{
	Use:     "log <name> <calories> [protein] [carbs] [fat]",
	Aliases: []string{"add"},
	Short:   "Log a food entry",
	Long: `Log a food entry for a meal. Calories are required; macro grams are
optional positionals.

Examples:
  nosh log "oatmeal" 300
  nosh log "chicken salad" 450 40 12 25 --meal lunch
  nosh log "midnight toast" 200 --at "2024-01-01 23:45"`,
	Args: cobra.RangeArgs(2, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMealType(logMeal) {
			return fmt.Errorf("unknown meal type: %s\nValid types: breakfast, lunch, dinner, snack", logMeal)
		}

		nums := make([]float64, 4)
		for i, arg := range args[1:] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("invalid value: %s", arg)
			}
			nums[i] = v
		}

		entry := models.NewEntry(args[0], models.MealType(logMeal)).
			WithNutrition(nums[0], nums[1], nums[2], nums[3]).
			WithFiberSugar(logFiber, logSugar)

		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			entry.WithTimestamp(t)
		}

		if err := logStore.SaveEntry(cmd.Context(), entry); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		color.Green("✓ Logged %s", entry.Name)
		fmt.Printf("  %s %s %.0f kcal  P %.0fg  C %.0fg  F %.0fg\n",
			color.New(color.Faint).Sprint(shortID(entry.ID)),
			entry.LogDate(), entry.Calories,
			entry.Protein, entry.Carbs, entry.Fat)

		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logMeal, "meal", "m", "snack", "meal type (breakfast, lunch, dinner, snack)")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (defaults to now)")
	logCmd.Flags().Float64Var(&logFiber, "fiber", 0, "fiber grams")
	logCmd.Flags().Float64Var(&logSugar, "sugar", 0, "sugar grams")
	rootCmd.AddCommand(logCmd)
}
