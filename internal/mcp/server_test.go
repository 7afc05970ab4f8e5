// ABOUTME: Tests for MCP server and tool handlers.
// ABOUTME: Exercises handlers directly over an in-memory blob store.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/nosh/internal/foodlog"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/profile"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupServer creates a server over an in-memory blob store.
func setupServer(t *testing.T) *Server {
	t.Helper()

	blob := storage.NewMemStore()
	server, err := NewServer(foodlog.New(blob), profile.New(blob))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupServer(t)
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.logs == nil || server.profiles == nil {
		t.Error("Expected non-nil stores")
	}
}

func TestHandleLogFood(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logFoodInput
		wantErr   bool
		errSubstr string
	}{
		{
			name: "full entry",
			input: logFoodInput{
				Name:      "oatmeal",
				Calories:  300,
				Protein:   10,
				Carbs:     54,
				Fat:       5,
				MealType:  "breakfast",
				Timestamp: "2024-01-01T08:00:00Z",
			},
		},
		{
			name:  "minimal entry defaults applied",
			input: logFoodInput{Name: "mystery snack"},
		},
		{
			name:      "missing name",
			input:     logFoodInput{Calories: 100},
			wantErr:   true,
			errSubstr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("handleLogFood failed: %v", err)
			}
			if output.ID == "" || output.Date == "" {
				t.Errorf("incomplete output: %+v", output)
			}
		})
	}
}

func TestHandleGetDay(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, logged, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name: "toast", Calories: 200, Protein: 6, Carbs: 36, Fat: 2,
		Timestamp: "2024-01-01T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("handleLogFood failed: %v", err)
	}

	_, day, err := server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("handleGetDay failed: %v", err)
	}
	if len(day.Entries) != 1 || day.Entries[0].ID != logged.ID {
		t.Errorf("unexpected entries: %+v", day.Entries)
	}
	if day.Summary.CaloriesConsumed != 200 {
		t.Errorf("CaloriesConsumed = %v, want 200", day.Summary.CaloriesConsumed)
	}

	_, _, err = server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{Date: "01/01/2024"})
	if err == nil {
		t.Error("expected error for bad date format")
	}
}

func TestHandleDeleteEntry(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, logged, _ := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name: "toast", Timestamp: "2024-01-01T08:00:00Z",
	})

	if _, _, err := server.handleDeleteEntry(ctx, &mcp.CallToolRequest{}, deleteEntryInput{ID: logged.ID}); err != nil {
		t.Fatalf("handleDeleteEntry failed: %v", err)
	}
	_, day, _ := server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{Date: "2024-01-01"})
	if len(day.Entries) != 0 {
		t.Errorf("expected empty day after delete, got %d entries", len(day.Entries))
	}

	// Unknown id is a no-op, not an error
	if _, _, err := server.handleDeleteEntry(ctx, &mcp.CallToolRequest{}, deleteEntryInput{ID: "nope"}); err != nil {
		t.Errorf("delete of unknown id should succeed, got %v", err)
	}
}

func TestHandleGetRange(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	for _, ts := range []string{"2024-01-01T08:00:00Z", "2024-01-01T12:00:00Z", "2024-01-03T08:00:00Z"} {
		server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
			Name: "meal", Calories: 100, Timestamp: ts,
		})
	}

	_, out, err := server.handleGetRange(ctx, &mcp.CallToolRequest{}, getRangeInput{Start: "2024-01-01", End: "2024-01-02"})
	if err != nil {
		t.Fatalf("handleGetRange failed: %v", err)
	}
	if len(out.Days) != 1 {
		t.Fatalf("expected 1 day in range, got %d", len(out.Days))
	}
	if out.Days[0].Calories != 200 || out.Days[0].Entries != 2 {
		t.Errorf("unexpected day totals: %+v", out.Days[0])
	}

	_, _, err = server.handleGetRange(ctx, &mcp.CallToolRequest{}, getRangeInput{Start: "2024-02-01", End: "2024-01-01"})
	if err == nil {
		t.Error("expected error when start is after end")
	}
}

func TestHandleProfileRoundTrip(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, out, err := server.handleGetProfile(ctx, &mcp.CallToolRequest{}, getProfileInput{})
	if err != nil {
		t.Fatalf("handleGetProfile failed: %v", err)
	}
	if out.Profile != nil {
		t.Errorf("expected no profile yet, got %+v", out.Profile)
	}

	_, saved, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{
		Name: "harper", Age: 40, Gender: "male",
		WeightKg: 80, HeightCm: 180,
		ActivityLevel: "moderate", FitnessGoal: "lose",
	})
	if err != nil {
		t.Fatalf("handleSetProfile failed: %v", err)
	}
	if saved.Goals.CalorieGoal <= 0 {
		t.Errorf("expected positive calorie goal, got %v", saved.Goals.CalorieGoal)
	}

	_, out, err = server.handleGetProfile(ctx, &mcp.CallToolRequest{}, getProfileInput{})
	if err != nil {
		t.Fatalf("handleGetProfile failed: %v", err)
	}
	if out.Profile == nil || out.Profile.Name != "harper" {
		t.Errorf("unexpected profile: %+v", out.Profile)
	}
	if out.Goals != (models.Goals{}) && out.Goals.CalorieGoal <= 0 {
		t.Errorf("unexpected goals: %+v", out.Goals)
	}
}

func TestHandleSetProfileValidation(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{
		Age: 40, Gender: "male", WeightKg: 80, HeightCm: 180,
		ActivityLevel: "couch", FitnessGoal: "lose",
	})
	if err == nil {
		t.Error("expected error for unknown activity level")
	}

	_, _, err = server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{
		Age: 40, Gender: "male", WeightKg: 80, HeightCm: 180,
		ActivityLevel: "moderate", FitnessGoal: "bulk",
	})
	if err == nil {
		t.Error("expected error for unknown fitness goal")
	}
}
