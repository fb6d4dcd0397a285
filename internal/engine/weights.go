package engine

import (
	"math"

	"github.com/claude/liftplan/internal/catalog"
)

// Age-multiplier tiers. Closed, non-overlapping, inclusive upper bounds:
// age 40 keeps the full base weight, 41-50 takes 90%, 51+ takes 80%.
func ageMultiplier(age int) float64 {
	switch {
	case age <= 40:
		return 1.0
	case age <= 50:
		return 0.9
	default:
		return 0.8
	}
}

// CalculateStartingWeights derives an initial working weight for each
// exercise from the base-weight table, the user's age and gender, and the
// user's equipment increments. Exercises absent from the table start at
// zero (bodyweight assumption) with an explanatory note rather than
// failing. A nil settings record is a precondition violation and returns a
// ConfigurationError.
func (e *Engine) CalculateStartingWeights(refs []ExerciseRef, age int, gender catalog.Gender, settings *UserEquipmentSettings) ([]ExerciseWeight, error) {
	if settings == nil {
		return nil, &ConfigurationError{Missing: "user equipment settings"}
	}

	mult := ageMultiplier(age)
	weights := make([]ExerciseWeight, 0, len(refs))

	for _, ref := range refs {
		base, known := e.cat.BaseWeight(ref.Name, gender)
		w := ExerciseWeight{ExerciseID: ref.ID, Exercise: ref.Name}
		if !known {
			w.Note = "no base weight on file; starting from bodyweight"
			weights = append(weights, w)
			continue
		}

		eq := e.cat.EquipmentFor(ref.Name)
		w.WeightKg = RoundWeight(base*mult, eq, *settings)
		weights = append(weights, w)
	}

	return weights, nil
}

// RoundWeight rounds a raw weight to the user's increment for the given
// equipment type and clamps at zero. Dumbbells at or below 10 kg round to
// the nearest whole unit regardless of the configured increment, because
// light dumbbell racks step in 1 kg.
func RoundWeight(raw float64, eq catalog.EquipmentType, settings UserEquipmentSettings) float64 {
	if raw <= 0 {
		return 0
	}
	if eq == catalog.EquipmentDumbbell && raw <= 10 {
		return math.Round(raw)
	}

	inc := settings.IncrementFor(eq)
	if inc <= 0 {
		inc = 2.5
	}
	rounded := math.Round(raw/inc) * inc
	if rounded < 0 {
		return 0
	}
	return rounded
}
