// ABOUTME: CLI commands for profile management and derived goals.
// ABOUTME: Subcommands: show (default), set, reset.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileAge      int
	profileGender   string
	profileWeight   float64
	profileHeight   float64
	profileActivity string
	profileGoal     string
	profileDiet     []string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the user profile and derived goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profileStore.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile yet. Run 'nosh profile set' to create one.")
			return nil
		}
		goals, err := profileStore.Goals(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to compute goals: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s\n", p.Name)
		fmt.Printf("  age %d, %s, %.1f kg, %.0f cm\n", p.Age, p.Gender, p.WeightKg, p.HeightCm)
		fmt.Printf("  activity: %s, goal: %s\n", p.ActivityLevel, p.FitnessGoal)
		if len(p.DietaryRestrictions) > 0 {
			fmt.Printf("  restrictions: %s\n", strings.Join(p.DietaryRestrictions, ", "))
		}
		fmt.Println()
		fmt.Printf("BMI:          %.1f\n", goals.BMI)
		fmt.Printf("BMR:          %.0f kcal\n", goals.BMR)
		fmt.Printf("TDEE:         %.0f kcal\n", goals.TDEE)
		fmt.Printf("Calorie goal: %.0f kcal\n", goals.CalorieGoal)
		fmt.Printf("Macro goals:  P %.0fg  C %.0fg  F %.0fg\n",
			goals.Macros.Protein, goals.Macros.Carbs, goals.Macros.Fat)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	Long: `Create or update the profile. On update, only the provided flags change.

Examples:
  nosh profile set --name Harper --age 40 --gender male \
      --weight 80 --height 180 --activity moderate --goal lose
  nosh profile set --weight 78.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profileStore.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			p = &models.UserProfile{}
		}

		if cmd.Flags().Changed("name") {
			p.Name = profileName
		}
		if cmd.Flags().Changed("age") {
			p.Age = profileAge
		}
		if cmd.Flags().Changed("gender") {
			switch g := models.Gender(profileGender); g {
			case models.GenderMale, models.GenderFemale, models.GenderOther:
				p.Gender = g
			default:
				return fmt.Errorf("unknown gender: %s (male, female, other)", profileGender)
			}
		}
		if cmd.Flags().Changed("weight") {
			p.WeightKg = profileWeight
		}
		if cmd.Flags().Changed("height") {
			p.HeightCm = profileHeight
		}
		if cmd.Flags().Changed("activity") {
			if !models.IsValidActivityLevel(profileActivity) {
				return fmt.Errorf("unknown activity level: %s (sedentary, light, moderate, active, very_active)", profileActivity)
			}
			p.ActivityLevel = models.ActivityLevel(profileActivity)
		}
		if cmd.Flags().Changed("goal") {
			if !models.IsValidFitnessGoal(profileGoal) {
				return fmt.Errorf("unknown fitness goal: %s (lose, maintain, gain)", profileGoal)
			}
			p.FitnessGoal = models.FitnessGoal(profileGoal)
		}
		if cmd.Flags().Changed("restrictions") {
			p.DietaryRestrictions = profileDiet
		}

		if err := profileStore.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		goals, err := profileStore.Goals(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to compute goals: %w", err)
		}
		color.Green("✓ Profile saved")
		fmt.Printf("  calorie goal %.0f kcal, P %.0fg C %.0fg F %.0fg\n",
			goals.CalorieGoal, goals.Macros.Protein, goals.Macros.Carbs, goals.Macros.Fat)
		return nil
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profileStore.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset profile: %w", err)
		}
		color.Green("✓ Profile reset")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "gender (male, female, other)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "fitness goal (lose, maintain, gain)")
	profileSetCmd.Flags().StringSliceVar(&profileDiet, "restrictions", nil, "dietary restrictions")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileResetCmd)
	rootCmd.AddCommand(profileCmd)
}
