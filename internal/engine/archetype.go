package engine

import (
	"math"

	"github.com/claude/liftplan/internal/catalog"
)

// ProgramTypeFor maps weekly frequency to a program archetype.
func ProgramTypeFor(frequency int) ProgramType {
	switch {
	case frequency <= 3:
		return ProgramFullBody
	case frequency == 4:
		return ProgramUpperLower
	default:
		return ProgramPPL
	}
}

// generationStrategy produces the workout templates for one archetype.
// Dispatching through this interface keeps archetype branching in one place.
type generationStrategy interface {
	workouts(e *Engine, prefs UserPreferences) ([]GeneratedWorkout, []string)
}

func strategyFor(t ProgramType) generationStrategy {
	switch t {
	case ProgramUpperLower:
		return upperLowerStrategy{}
	case ProgramPPL:
		return pplStrategy{}
	default:
		return fullBodyStrategy{}
	}
}

// fullBodyStrategy builds a single template repeated across the week.
type fullBodyStrategy struct{}

func (fullBodyStrategy) workouts(e *Engine, prefs UserPreferences) ([]GeneratedWorkout, []string) {
	w, warnings := e.buildWorkout("Full Body", prefs, "", prefs.ExerciseCount)
	return []GeneratedWorkout{w}, warnings
}

// upperLowerStrategy runs the full-body algorithm independently on the
// upper and lower pattern subsets, splitting the requested exercise count
// roughly 60/40 in favor of the upper session.
type upperLowerStrategy struct{}

func (upperLowerStrategy) workouts(e *Engine, prefs UserPreferences) ([]GeneratedWorkout, []string) {
	upperCount := int(math.Round(0.6 * float64(prefs.ExerciseCount)))
	if upperCount < 1 {
		upperCount = 1
	}
	lowerCount := prefs.ExerciseCount - upperCount
	if lowerCount < 1 {
		lowerCount = 1
	}

	upper, upWarnings := e.buildWorkout("Upper Body", prefs, catalog.RegionUpper, upperCount)
	lower, lowWarnings := e.buildWorkout("Lower Body", prefs, catalog.RegionLower, lowerCount)

	return []GeneratedWorkout{upper, lower}, append(upWarnings, lowWarnings...)
}

// pplStrategy is a documented fallback: the catalog does not yet carry
// enough push/pull/leg depth for a true three-way split, so high-frequency
// requests get a full-body template and a warning rather than a failure.
type pplStrategy struct{}

func (pplStrategy) workouts(e *Engine, prefs UserPreferences) ([]GeneratedWorkout, []string) {
	workouts, warnings := fullBodyStrategy{}.workouts(e, prefs)
	warnings = append(warnings, "push/pull/legs split is not yet supported by the catalog; generated a full-body program instead")
	return workouts, warnings
}
