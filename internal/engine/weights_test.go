package engine

import (
	"errors"
	"testing"

	"github.com/claude/liftplan/internal/catalog"
)

func defaultSettings() UserEquipmentSettings {
	return DefaultEquipmentSettings()
}

// TestAgeMultiplierBoundaries verifies the tier boundaries are exact:
// the multiplier steps down after 40 and again after 50.
func TestAgeMultiplierBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want float64
	}{
		{25, 1.0},
		{40, 1.0},
		{41, 0.9},
		{50, 0.9},
		{51, 0.8},
		{70, 0.8},
	}
	for _, c := range cases {
		if got := ageMultiplier(c.age); got != c.want {
			t.Errorf("ageMultiplier(%d) = %v, want %v", c.age, got, c.want)
		}
	}
}

// TestDumbbellRounding verifies the asymmetric dumbbell rule: weights at or
// below 10 kg round to the nearest whole unit regardless of the configured
// increment, heavier dumbbells use the increment.
func TestDumbbellRounding(t *testing.T) {
	s := defaultSettings() // dumbbell increment 2.5

	if got := RoundWeight(7.3, catalog.EquipmentDumbbell, s); got != 7 {
		t.Errorf("RoundWeight(7.3, dumbbell) = %v, want 7", got)
	}
	if got := RoundWeight(23.3, catalog.EquipmentDumbbell, s); got != 22.5 {
		t.Errorf("RoundWeight(23.3, dumbbell) = %v, want 22.5", got)
	}
}

// TestRoundWeightClampsAtZero verifies rounding never goes negative.
func TestRoundWeightClampsAtZero(t *testing.T) {
	s := defaultSettings()
	if got := RoundWeight(-5, catalog.EquipmentBarbell, s); got != 0 {
		t.Errorf("RoundWeight(-5) = %v, want 0", got)
	}
	if got := RoundWeight(0, catalog.EquipmentMachine, s); got != 0 {
		t.Errorf("RoundWeight(0) = %v, want 0", got)
	}
}

// TestStartingWeightsAppliesAgeAndIncrement verifies the full pipeline:
// base weight, age multiplier, equipment classification, increment rounding.
func TestStartingWeightsAppliesAgeAndIncrement(t *testing.T) {
	e := testEngine(t)
	s := defaultSettings()

	refs := []ExerciseRef{
		{ID: "bp", Name: "Barbell Bench Press"},
		{ID: "sp", Name: "Dumbbell Shoulder Press"},
	}
	weights, err := e.CalculateStartingWeights(refs, 45, catalog.GenderMale, &s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bench: 30 kg base x 0.9 = 27, barbell increment 2.5 -> 27.5.
	if weights[0].WeightKg != 27.5 {
		t.Errorf("bench = %v, want 27.5", weights[0].WeightKg)
	}
	// Shoulder press: 8 kg base x 0.9 = 7.2, light dumbbell -> 7.
	if weights[1].WeightKg != 7 {
		t.Errorf("shoulder press = %v, want 7", weights[1].WeightKg)
	}
}

// TestStartingWeightsUnknownExercise verifies unlisted exercises default to
// a zero starting weight with a note, never an error.
func TestStartingWeightsUnknownExercise(t *testing.T) {
	e := testEngine(t)
	s := defaultSettings()

	weights, err := e.CalculateStartingWeights(
		[]ExerciseRef{{ID: "x", Name: "Band Pull-Apart"}}, 30, catalog.GenderFemale, &s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weights[0].WeightKg != 0 {
		t.Errorf("weight = %v, want 0", weights[0].WeightKg)
	}
	if weights[0].Note == "" {
		t.Error("expected a bodyweight note for an unmapped exercise")
	}
}

// TestStartingWeightsMissingSettings verifies an absent equipment-settings
// record is a ConfigurationError, not a silent default.
func TestStartingWeightsMissingSettings(t *testing.T) {
	e := testEngine(t)
	_, err := e.CalculateStartingWeights(
		[]ExerciseRef{{ID: "bp", Name: "Barbell Bench Press"}}, 30, catalog.GenderMale, nil)
	if err == nil {
		t.Fatal("expected error for missing settings")
	}
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *ConfigurationError", err)
	}
}

// TestStartingWeightsGenderTable verifies the base-weight table is keyed by
// gender.
func TestStartingWeightsGenderTable(t *testing.T) {
	e := testEngine(t)
	s := defaultSettings()
	refs := []ExerciseRef{{ID: "sq", Name: "Barbell Back Squat"}}

	male, err := e.CalculateStartingWeights(refs, 30, catalog.GenderMale, &s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	female, err := e.CalculateStartingWeights(refs, 30, catalog.GenderFemale, &s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if male[0].WeightKg <= female[0].WeightKg {
		t.Errorf("male %v should exceed female %v for the same lift", male[0].WeightKg, female[0].WeightKg)
	}
}
