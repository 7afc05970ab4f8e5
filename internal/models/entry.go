// ABOUTME: FoodLogEntry model and MealType enum for the food log.
// ABOUTME: Entries are partitioned by the calendar date derived from Timestamp.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MealType categorizes a food log entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes returns all valid meal types.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// DateLayout is the partition key layout for food log dates.
const DateLayout = "2006-01-02"

// FoodLogEntry represents a single logged food item.
// Nutrient fields are grams except Calories (kcal); absent values are zero.
type FoodLogEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Fiber     float64   `json:"fiber"`
	Sugar     float64   `json:"sugar"`
	MealType  MealType  `json:"meal_type"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry creates a new FoodLogEntry with generated UUID and current timestamp.
func NewEntry(name string, mealType MealType) *FoodLogEntry {
	return &FoodLogEntry{
		ID:        uuid.New().String(),
		Name:      name,
		MealType:  mealType,
		Timestamp: time.Now(),
	}
}

// WithTimestamp sets a custom timestamp.
func (e *FoodLogEntry) WithTimestamp(t time.Time) *FoodLogEntry {
	e.Timestamp = t
	return e
}

// WithNutrition sets the core nutrition values.
func (e *FoodLogEntry) WithNutrition(calories, protein, carbs, fat float64) *FoodLogEntry {
	e.Calories = calories
	e.Protein = protein
	e.Carbs = carbs
	e.Fat = fat
	return e
}

// WithFiberSugar sets the secondary nutrition values.
func (e *FoodLogEntry) WithFiberSugar(fiber, sugar float64) *FoodLogEntry {
	e.Fiber = fiber
	e.Sugar = sugar
	return e
}

// LogDate derives the partition date (YYYY-MM-DD, UTC) from the timestamp.
// The date is never stored independently from the timestamp.
func (e *FoodLogEntry) LogDate() string {
	return e.Timestamp.UTC().Format(DateLayout)
}
