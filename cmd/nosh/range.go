// ABOUTME: CLI command for per-day totals over a date range.
// ABOUTME: Walks the date index; days without entries are omitted.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:     "range <start> <end>",
	Aliases: []string{"history"},
	Short:   "Show per-day totals for a date range",
	Long: `Show per-day calorie and macro totals for an inclusive date range.
Only days with logged entries appear.

Examples:
  nosh range 2024-01-01 2024-01-31`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDate(args[0])
		if err != nil {
			return err
		}
		end, err := parseDate(args[1])
		if err != nil {
			return err
		}
		if start > end {
			return fmt.Errorf("start must not be after end")
		}

		byDate, err := logStore.EntriesForRange(cmd.Context(), start, end)
		if err != nil {
			return fmt.Errorf("failed to load range: %w", err)
		}
		if len(byDate) == 0 {
			fmt.Println("No entries in range.")
			return nil
		}

		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		faint := color.New(color.Faint)
		for _, d := range dates {
			var calories, protein, carbs, fat float64
			for _, e := range byDate[d] {
				calories += e.Calories
				protein += e.Protein
				carbs += e.Carbs
				fat += e.Fat
			}
			fmt.Printf("%s  %7.0f kcal  P %4.0f  C %4.0f  F %4.0f  %s\n",
				d, calories, protein, carbs, fat,
				faint.Sprintf("(%d entries)", len(byDate[d])))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
