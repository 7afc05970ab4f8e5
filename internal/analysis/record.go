// ABOUTME: Contract for external nutrition analyzers and defensive coercion
// ABOUTME: of their loosely-shaped records into well-formed food log entries.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/nosh/internal/models"
)

// Record is the loosely-shaped nutrition payload an external analyzer (an AI
// vision/text model, a food database, manual input) returns. Fields may be
// missing, extra, or mistyped; the shape is never trusted.
type Record map[string]any

// Provider is an opaque nutrition-analysis service. Implementations own
// their transport, retries, and timeouts; this core only consumes records.
type Provider interface {
	AnalyzeText(ctx context.Context, text string) (Record, error)
}

// CoerceEntry turns a Record into a well-formed FoodLogEntry. Missing or
// mistyped numeric fields coerce to 0, unknown meal types fall back to snack,
// a missing timestamp becomes now, and a missing id is generated. Only a nil
// record errors.
func CoerceEntry(r Record) (*models.FoodLogEntry, error) {
	if r == nil {
		return nil, fmt.Errorf("nil nutrition record")
	}

	e := &models.FoodLogEntry{
		ID:       str(r, "id"),
		Name:     str(r, "name"),
		Calories: num(r, "calories"),
		Protein:  num(r, "protein"),
		Carbs:    num(r, "carbs"),
		Fat:      num(r, "fat"),
		Fiber:    num(r, "fiber"),
		Sugar:    num(r, "sugar"),
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	meal := str(r, "meal_type")
	if meal == "" {
		meal = str(r, "mealType")
	}
	if !models.IsValidMealType(meal) {
		if meal != "" {
			log.Warn("nutrition record has unknown meal type, using snack", "meal_type", meal)
		}
		meal = string(models.MealSnack)
	}
	e.MealType = models.MealType(meal)

	e.Timestamp = timestamp(r, "timestamp")
	return e, nil
}

// CoerceJSON decodes raw analyzer output and coerces it into an entry.
func CoerceJSON(raw []byte) (*models.FoodLogEntry, error) {
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode nutrition record: %w", err)
	}
	return CoerceEntry(r)
}

// num extracts a non-negative number, accepting numbers-as-strings.
// Anything else (missing, null, objects, negatives) coerces to 0.
func num(r Record, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		if v > 0 {
			return v
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return 0
}

func str(r Record, key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

func timestamp(r Record, key string) time.Time {
	if s, ok := r[key].(string); ok && s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
		log.Warn("nutrition record has unparseable timestamp, using now", "timestamp", s)
	}
	return time.Now()
}
