package engine

import "fmt"

// Preference bounds.
const (
	MinFrequency       = 2
	MaxFrequency       = 6
	MinSessionTimeMin  = 25
	MaxSessionTimeMin  = 120
	MinExerciseCount   = 3
	MaxExerciseCount   = 6
	MinSetsPerExercise = 2
	MaxSetsPerExercise = 4
)

// ValidatePreferences checks every preference field against its documented
// bound and returns a ValidationError listing all violations, or nil when
// the preferences are generatable.
func ValidatePreferences(p UserPreferences) error {
	var errs []string

	if p.Frequency < MinFrequency || p.Frequency > MaxFrequency {
		errs = append(errs, fmt.Sprintf("frequency must be %d-%d, got %d", MinFrequency, MaxFrequency, p.Frequency))
	}
	switch p.Goal {
	case GoalStrength, GoalHypertrophy:
	default:
		errs = append(errs, fmt.Sprintf("goal must be %s or %s, got %q", GoalStrength, GoalHypertrophy, p.Goal))
	}
	switch p.Experience {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
	default:
		errs = append(errs, fmt.Sprintf("experience must be %s, %s or %s, got %q",
			ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, p.Experience))
	}
	if p.SessionTimeMin < MinSessionTimeMin || p.SessionTimeMin > MaxSessionTimeMin {
		errs = append(errs, fmt.Sprintf("session time must be %d-%d minutes, got %d", MinSessionTimeMin, MaxSessionTimeMin, p.SessionTimeMin))
	}
	if p.ExerciseCount < MinExerciseCount || p.ExerciseCount > MaxExerciseCount {
		errs = append(errs, fmt.Sprintf("exercise count must be %d-%d, got %d", MinExerciseCount, MaxExerciseCount, p.ExerciseCount))
	}
	if p.SetsPerExercise < MinSetsPerExercise || p.SetsPerExercise > MaxSetsPerExercise {
		errs = append(errs, fmt.Sprintf("sets per exercise must be %d-%d, got %d", MinSetsPerExercise, MaxSetsPerExercise, p.SetsPerExercise))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
