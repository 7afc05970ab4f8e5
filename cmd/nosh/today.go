// ABOUTME: CLI command for the daily consumed/remaining summary.
// ABOUTME: Aggregates a date's entries against the profile's derived goals.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/aggregate"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"day"},
	Short:   "Show the daily nutrition summary",
	Long: `Show calories and macros consumed for a date, against your goals.

Examples:
  nosh today
  nosh today --date 2024-01-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := todayDate
		if date == "" {
			date = today()
		}
		if _, err := parseDate(date); err != nil {
			return err
		}

		entries, err := logStore.EntriesForDate(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		goals, err := profileStore.Goals(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		agg := aggregate.Daily(entries, goals)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("%s\n", date)
		if len(entries) == 0 {
			fmt.Println("No entries logged.")
		}
		for _, e := range entries {
			fmt.Printf("  %s %s %s %.0f kcal\n",
				faint.Sprint(shortID(e.ID)),
				padRight(string(e.MealType), 10),
				padRight(truncate(e.Name, 28), 28),
				e.Calories)
		}

		fmt.Println()
		fmt.Printf("Consumed:  %.0f kcal", agg.CaloriesConsumed)
		if goals.CalorieGoal > 0 {
			fmt.Printf(" of %.0f", goals.CalorieGoal)
		}
		fmt.Println()
		if goals.CalorieGoal > 0 && agg.CaloriesRemaining == 0 {
			color.Red("Remaining: 0 kcal (over budget)")
		} else {
			fmt.Printf("Remaining: %.0f kcal\n", agg.CaloriesRemaining)
		}
		fmt.Printf("Macros:    P %.0fg (%d%%)  C %.0fg (%d%%)  F %.0fg (%d%%)\n",
			agg.Totals.Protein, agg.Percent.Protein,
			agg.Totals.Carbs, agg.Percent.Carbs,
			agg.Totals.Fat, agg.Percent.Fat)

		return nil
	},
}

func init() {
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "date (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(todayCmd)
}
