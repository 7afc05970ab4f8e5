// ABOUTME: Tests for the metabolic calculator functions.
// ABOUTME: Covers formula values, fallbacks, and the macro calorie invariant.
package metabolic

import (
	"math"
	"testing"

	"github.com/harperreed/nosh/internal/models"
)

func TestBMI(t *testing.T) {
	got := BMI(70, 175)
	if got != 22.9 {
		t.Errorf("BMI(70, 175) = %v, want 22.9", got)
	}
}

func TestBMIInvalidInput(t *testing.T) {
	if got := BMI(0, 175); got != 0 {
		t.Errorf("BMI(0, 175) = %v, want 0", got)
	}
	if got := BMI(70, -1); got != 0 {
		t.Errorf("BMI(70, -1) = %v, want 0", got)
	}
}

func TestBMR(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 = 1643.75
	male := BMR(70, 175, 30, models.GenderMale)
	if male != 1648.75 {
		t.Errorf("male BMR = %v, want 1648.75", male)
	}
	female := BMR(70, 175, 30, models.GenderFemale)
	if female != 1482.75 {
		t.Errorf("female BMR = %v, want 1482.75", female)
	}
	// "other" uses the female offset (documented policy)
	other := BMR(70, 175, 30, models.GenderOther)
	if other != female {
		t.Errorf("other BMR = %v, want %v (female offset)", other, female)
	}
}

func TestBMRInvalidInput(t *testing.T) {
	if got := BMR(0, 175, 30, models.GenderMale); got != 0 {
		t.Errorf("BMR with zero weight = %v, want 0", got)
	}
	if got := BMR(70, 175, 0, models.GenderMale); got != 0 {
		t.Errorf("BMR with zero age = %v, want 0", got)
	}
}

func TestTDEEMonotone(t *testing.T) {
	const bmr = 1650.0
	prev := 0.0
	for _, level := range models.AllActivityLevels {
		tdee := TDEE(bmr, level)
		if tdee < prev {
			t.Errorf("TDEE not monotone: %s gave %v after %v", level, tdee, prev)
		}
		prev = tdee
	}
}

func TestTDEEUnknownLevelFallsBackToSedentary(t *testing.T) {
	const bmr = 1650.0
	if got, want := TDEE(bmr, "couch"), TDEE(bmr, models.ActivitySedentary); got != want {
		t.Errorf("TDEE with unknown level = %v, want sedentary %v", got, want)
	}
}

func TestCalorieGoal(t *testing.T) {
	tests := []struct {
		name string
		tdee float64
		goal models.FitnessGoal
		want float64
	}{
		{"lose is 20% deficit", 2000, models.GoalLose, 1600},
		{"lose floored at 1200", 1400, models.GoalLose, 1200},
		{"maintain is tdee", 2000, models.GoalMaintain, 2000},
		{"gain is 10% surplus", 2000, models.GoalGain, 2200},
		{"gain capped at tdee+1000", 20000, models.GoalGain, 21000},
		{"unknown goal is tdee", 2000, "bulk", 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalorieGoal(tt.tdee, tt.goal); got != tt.want {
				t.Errorf("CalorieGoal(%v, %s) = %v, want %v", tt.tdee, tt.goal, got, tt.want)
			}
		})
	}
}

func TestMacroGoalsCalorieInvariant(t *testing.T) {
	goals := []models.FitnessGoal{models.GoalLose, models.GoalMaintain, models.GoalGain}
	weights := []float64{55, 70, 85, 100}
	budgets := []float64{1500, 2000, 2500, 3200}

	for _, goal := range goals {
		for _, weight := range weights {
			for _, budget := range budgets {
				m := MacroGoals(budget, goal, weight)
				if m.Carbs < 0 {
					t.Errorf("MacroGoals(%v, %s, %v): negative carbs %v", budget, goal, weight, m.Carbs)
				}
				total := m.Protein*4 + m.Carbs*4 + m.Fat*9
				if m.Carbs > 0 && math.Abs(total-budget) > 5 {
					t.Errorf("MacroGoals(%v, %s, %v): macro calories %v off budget by more than 5",
						budget, goal, weight, total)
				}
			}
		}
	}
}

func TestMacroGoalsZeroInput(t *testing.T) {
	if m := MacroGoals(0, models.GoalMaintain, 70); m != (models.MacroGoals{}) {
		t.Errorf("MacroGoals with zero budget = %+v, want zeros", m)
	}
	if m := MacroGoals(2000, models.GoalMaintain, 0); m != (models.MacroGoals{}) {
		t.Errorf("MacroGoals with zero weight = %+v, want zeros", m)
	}
}

func TestCaloriesBurned(t *testing.T) {
	if got := CaloriesBurned(10000, 70); got != 350 {
		t.Errorf("CaloriesBurned(10000, 70) = %v, want 350", got)
	}
	// Default weight is 70 kg
	if got := CaloriesBurned(10000, 0); got != 350 {
		t.Errorf("CaloriesBurned with default weight = %v, want 350", got)
	}
	if got := CaloriesBurned(0, 70); got != 0 {
		t.Errorf("CaloriesBurned(0, 70) = %v, want 0", got)
	}
}

func TestStepsToDistance(t *testing.T) {
	// 0.42 * 170cm = 0.714m stride; 10000 steps = 7.14 km
	got := StepsToDistance(10000, 170)
	if math.Abs(got-7.14) > 1e-9 {
		t.Errorf("StepsToDistance(10000, 170) = %v, want 7.14", got)
	}
	if def := StepsToDistance(10000, 0); def != got {
		t.Errorf("StepsToDistance default height = %v, want %v", def, got)
	}
}

func TestWaterIntake(t *testing.T) {
	got := WaterIntake(70, 1)
	if math.Abs(got-2.31) > 1e-9 {
		t.Errorf("WaterIntake(70, 1) = %v, want 2.31", got)
	}
	scaled := WaterIntake(70, 1.5)
	if scaled <= got {
		t.Errorf("WaterIntake(70, 1.5) = %v, want more than %v", scaled, got)
	}
	if zero := WaterIntake(0, 1); zero != 0 {
		t.Errorf("WaterIntake(0, 1) = %v, want 0", zero)
	}
}

func TestGoals(t *testing.T) {
	p := &models.UserProfile{
		Name:          "test",
		Age:           30,
		Gender:        models.GenderMale,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: models.ActivityModerate,
		FitnessGoal:   models.GoalMaintain,
	}
	g := Goals(p)
	if g.BMI != 22.9 {
		t.Errorf("Goals BMI = %v, want 22.9", g.BMI)
	}
	if g.BMR != 1648.75 {
		t.Errorf("Goals BMR = %v, want 1648.75", g.BMR)
	}
	wantTDEE := 1648.75 * 1.55
	if math.Abs(g.TDEE-wantTDEE) > 1e-9 {
		t.Errorf("Goals TDEE = %v, want %v", g.TDEE, wantTDEE)
	}
	if g.CalorieGoal != math.Round(wantTDEE) {
		t.Errorf("Goals CalorieGoal = %v, want %v", g.CalorieGoal, math.Round(wantTDEE))
	}
	if g.Macros.Protein != 126 { // 70 * 1.8
		t.Errorf("Goals protein = %v, want 126", g.Macros.Protein)
	}
}

func TestGoalsNilProfile(t *testing.T) {
	if g := Goals(nil); g != (models.Goals{}) {
		t.Errorf("Goals(nil) = %+v, want zeros", g)
	}
}
