// ABOUTME: CLI command for listing food log entries.
// ABOUTME: Shows one date's entries with IDs usable for delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listFullIDs bool

var listCmd = &cobra.Command{
	Use:     "list [date]",
	Aliases: []string{"ls", "l"},
	Short:   "List food log entries for a date",
	Long: `List entries for a date (defaults to today).

OUTPUT FORMAT:

  Each line shows: ID  TIME  MEAL  NAME  CALORIES  MACROS

  The ID column shows the first 8 characters. 'nosh delete' needs the
  full ID; print it with --ids.

Examples:
  nosh list
  nosh list 2024-01-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := today()
		if len(args) == 1 {
			var err error
			if date, err = parseDate(args[0]); err != nil {
				return err
			}
		}

		entries, err := logStore.EntriesForDate(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No entries for %s.\n", date)
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			id := shortID(e.ID)
			if listFullIDs {
				id = e.ID
			}
			fmt.Printf("%s %s %s %s %.0f kcal  P %.0f C %.0f F %.0f\n",
				faint.Sprint(id),
				faint.Sprint(e.Timestamp.Format("15:04")),
				padRight(string(e.MealType), 10),
				padRight(truncate(e.Name, 28), 28),
				e.Calories, e.Protein, e.Carbs, e.Fat)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listFullIDs, "ids", false, "print full entry IDs")
	rootCmd.AddCommand(listCmd)
}
