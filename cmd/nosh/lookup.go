// ABOUTME: CLI command for nutrition lookup via Open Food Facts.
// ABOUTME: Optionally logs the top search result directly.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/analysis"
	"github.com/harperreed/nosh/internal/provider/openfoodfacts"
	"github.com/spf13/cobra"
)

var (
	lookupLimit int
	lookupLog   bool
	lookupMeal  string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Search Open Food Facts for nutrition data",
	Long: `Search Open Food Facts by food name. Values are per 100g.

Examples:
  nosh lookup "greek yogurt"
  nosh lookup banana --log --meal breakfast`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &openfoodfacts.Client{}
		records, err := client.Search(cmd.Context(), args[0], lookupLimit)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No results.")
			return nil
		}

		for i, r := range records {
			entry, err := analysis.CoerceEntry(r)
			if err != nil {
				continue
			}
			fmt.Printf("%d. %s  %.0f kcal  P %.1f  C %.1f  F %.1f (per 100g)\n",
				i+1, truncate(entry.Name, 40),
				entry.Calories, entry.Protein, entry.Carbs, entry.Fat)
		}

		if !lookupLog {
			return nil
		}

		top := records[0]
		top["meal_type"] = lookupMeal
		entry, err := analysis.CoerceEntry(top)
		if err != nil {
			return fmt.Errorf("failed to coerce result: %w", err)
		}
		if err := logStore.SaveEntry(cmd.Context(), entry); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}
		color.Green("✓ Logged %s", entry.Name)
		fmt.Printf("  %s %s %.0f kcal\n",
			color.New(color.Faint).Sprint(shortID(entry.ID)),
			entry.LogDate(), entry.Calories)
		return nil
	},
}

func init() {
	lookupCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 5, "max results")
	lookupCmd.Flags().BoolVar(&lookupLog, "log", false, "log the top result")
	lookupCmd.Flags().StringVarP(&lookupMeal, "meal", "m", "snack", "meal type when logging")
	rootCmd.AddCommand(lookupCmd)
}
