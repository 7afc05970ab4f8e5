// ABOUTME: MCP tool implementations for the nutrition tracker.
// ABOUTME: Exposes food logging, daily summaries, and profile management.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/nosh/internal/aggregate"
	"github.com/harperreed/nosh/internal/analysis"
	"github.com/harperreed/nosh/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a food item with its nutrition values",
	}, s.handleLogFood)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get entries and the consumed/remaining summary for a date",
	}, s.handleGetDay)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a food log entry by ID (no-op if unknown)",
	}, s.handleDeleteEntry)

	// get_range
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_range",
		Description: "Get per-day calorie and macro totals for a date range",
	}, s.handleGetRange)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user profile and derived metabolic goals",
	}, s.handleGetProfile)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Create or replace the user profile",
	}, s.handleSetProfile)
}

// Tool input/output types

type logFoodInput struct {
	Name      string  `json:"name" jsonschema:"Food name"`
	Calories  float64 `json:"calories,omitempty" jsonschema:"Calories (kcal)"`
	Protein   float64 `json:"protein,omitempty" jsonschema:"Protein grams"`
	Carbs     float64 `json:"carbs,omitempty" jsonschema:"Carb grams"`
	Fat       float64 `json:"fat,omitempty" jsonschema:"Fat grams"`
	Fiber     float64 `json:"fiber,omitempty" jsonschema:"Fiber grams"`
	Sugar     float64 `json:"sugar,omitempty" jsonschema:"Sugar grams"`
	MealType  string  `json:"meal_type,omitempty" jsonschema:"Meal type (breakfast, lunch, dinner, snack); defaults to snack"`
	Timestamp string  `json:"timestamp,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type entryOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type dayOutput struct {
	Date    string                `json:"date"`
	Entries []models.FoodLogEntry `json:"entries"`
	Summary models.DailyAggregate `json:"summary"`
	Goals   models.Goals          `json:"goals"`
}

type deleteEntryInput struct {
	ID string `json:"id" jsonschema:"Entry ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getRangeInput struct {
	Start string `json:"start" jsonschema:"Start date (YYYY-MM-DD) inclusive"`
	End   string `json:"end" jsonschema:"End date (YYYY-MM-DD) inclusive"`
}

type dayTotals struct {
	Date     string  `json:"date"`
	Entries  int     `json:"entries"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type rangeOutput struct {
	Days []dayTotals `json:"days"`
}

type profileOutput struct {
	Profile *models.UserProfile `json:"profile,omitempty"`
	Goals   models.Goals        `json:"goals"`
	Message string              `json:"message,omitempty"`
}

type getProfileInput struct{}

type setProfileInput struct {
	Name                string   `json:"name,omitempty" jsonschema:"Display name"`
	Age                 int      `json:"age" jsonschema:"Age in years"`
	Gender              string   `json:"gender" jsonschema:"Gender (male, female, other)"`
	WeightKg            float64  `json:"weight_kg" jsonschema:"Weight in kilograms"`
	HeightCm            float64  `json:"height_cm" jsonschema:"Height in centimeters"`
	ActivityLevel       string   `json:"activity_level" jsonschema:"Activity level (sedentary, light, moderate, active, very_active)"`
	FitnessGoal         string   `json:"fitness_goal" jsonschema:"Fitness goal (lose, maintain, gain)"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty" jsonschema:"Dietary restrictions"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	if input.Name == "" {
		return nil, entryOutput{}, fmt.Errorf("name is required")
	}

	// Route through the analyzer coercion so meal type and timestamp
	// defaults match every other entry source.
	entry, err := analysis.CoerceEntry(analysis.Record{
		"name":      input.Name,
		"calories":  input.Calories,
		"protein":   input.Protein,
		"carbs":     input.Carbs,
		"fat":       input.Fat,
		"fiber":     input.Fiber,
		"sugar":     input.Sugar,
		"meal_type": input.MealType,
		"timestamp": input.Timestamp,
	})
	if err != nil {
		return nil, entryOutput{}, err
	}

	if err := s.logs.SaveEntry(ctx, entry); err != nil {
		return nil, entryOutput{}, err
	}

	return nil, entryOutput{
		ID:      entry.ID,
		Name:    entry.Name,
		Date:    entry.LogDate(),
		Message: fmt.Sprintf("Logged %s (%.0f kcal) for %s", entry.Name, entry.Calories, entry.LogDate()),
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, dayOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format(models.DateLayout)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, dayOutput{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	entries, err := s.logs.EntriesForDate(ctx, date)
	if err != nil {
		return nil, dayOutput{}, err
	}
	goals, err := s.profiles.Goals(ctx)
	if err != nil {
		return nil, dayOutput{}, err
	}

	return nil, dayOutput{
		Date:    date,
		Entries: entries,
		Summary: aggregate.Daily(entries, goals),
		Goals:   goals,
	}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.ID == "" {
		return nil, simpleOutput{}, fmt.Errorf("id is required")
	}
	if err := s.logs.DeleteEntry(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted entry %s (if it existed)", input.ID)}, nil
}

func (s *Server) handleGetRange(ctx context.Context, req *mcp.CallToolRequest, input getRangeInput) (*mcp.CallToolResult, rangeOutput, error) {
	for _, d := range []string{input.Start, input.End} {
		if _, err := time.Parse(models.DateLayout, d); err != nil {
			return nil, rangeOutput{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
		}
	}
	if input.Start > input.End {
		return nil, rangeOutput{}, fmt.Errorf("start must not be after end")
	}

	byDate, err := s.logs.EntriesForRange(ctx, input.Start, input.End)
	if err != nil {
		return nil, rangeOutput{}, err
	}

	var out rangeOutput
	for date, entries := range byDate {
		day := dayTotals{Date: date, Entries: len(entries)}
		for _, e := range entries {
			day.Calories += e.Calories
			day.Protein += e.Protein
			day.Carbs += e.Carbs
			day.Fat += e.Fat
		}
		out.Days = append(out.Days, day)
	}
	sortDays(out.Days)
	return nil, out, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input getProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	p, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, profileOutput{}, err
	}
	if p == nil {
		return nil, profileOutput{Message: "No profile saved yet"}, nil
	}
	goals, err := s.profiles.Goals(ctx)
	if err != nil {
		return nil, profileOutput{}, err
	}
	return nil, profileOutput{Profile: p, Goals: goals}, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	if !models.IsValidActivityLevel(input.ActivityLevel) {
		return nil, profileOutput{}, fmt.Errorf("unknown activity level: %s", input.ActivityLevel)
	}
	if !models.IsValidFitnessGoal(input.FitnessGoal) {
		return nil, profileOutput{}, fmt.Errorf("unknown fitness goal: %s", input.FitnessGoal)
	}

	p := &models.UserProfile{
		Name:                input.Name,
		Age:                 input.Age,
		Gender:              models.Gender(input.Gender),
		WeightKg:            input.WeightKg,
		HeightCm:            input.HeightCm,
		ActivityLevel:       models.ActivityLevel(input.ActivityLevel),
		FitnessGoal:         models.FitnessGoal(input.FitnessGoal),
		DietaryRestrictions: input.DietaryRestrictions,
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, profileOutput{}, err
	}
	goals, err := s.profiles.Goals(ctx)
	if err != nil {
		return nil, profileOutput{}, err
	}
	return nil, profileOutput{Profile: p, Goals: goals, Message: "Profile saved"}, nil
}

// sortDays orders day totals by date ascending.
func sortDays(days []dayTotals) {
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
}
