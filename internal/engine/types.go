// Package engine implements the training-program synthesis and
// progressive-overload engine. Everything in this package is pure
// computation: the catalog and per-user settings come in as parameters and
// results come out as new values, so all functions are safe to call
// concurrently for different users without locking.
package engine

import "github.com/claude/liftplan/internal/catalog"

// Goal is the user's training goal.
type Goal string

// Training goals.
const (
	GoalStrength    Goal = "STRENGTH"
	GoalHypertrophy Goal = "HYPERTROPHY"
)

// Experience is the user's training experience tier.
type Experience string

// Experience tiers.
const (
	ExperienceBeginner     Experience = "BEGINNER"
	ExperienceIntermediate Experience = "INTERMEDIATE"
	ExperienceAdvanced     Experience = "ADVANCED"
)

// ProgramType is the weekly split archetype.
type ProgramType string

// Program archetypes.
const (
	ProgramFullBody   ProgramType = "FULL_BODY"
	ProgramUpperLower ProgramType = "UPPER_LOWER"
	ProgramPPL        ProgramType = "PPL"
)

// UserPreferences is the raw generation input. All fields are validated
// against their documented bounds before any generation happens.
type UserPreferences struct {
	Frequency         int        `json:"frequency"`          // 2-6 sessions per week
	Goal              Goal       `json:"goal"`               // STRENGTH or HYPERTROPHY
	Experience        Experience `json:"experience"`         // BEGINNER, INTERMEDIATE, ADVANCED
	SessionTimeMin    int        `json:"session_time_min"`   // 25-120 minutes
	ExerciseCount     int        `json:"exercise_count"`     // 3-6 per workout
	SetsPerExercise   int        `json:"sets_per_exercise"`  // 2-4
	FocusMuscleGroups []string   `json:"focus_muscle_groups,omitempty"`
}

// VolumeAllocation is one exercise's allocated set count with the reason
// when it was reduced below the requested target.
type VolumeAllocation struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reason   string `json:"reason,omitempty"`
}

// ExerciseAllocation is a fully prescribed exercise slot within a workout.
type ExerciseAllocation struct {
	Exercise         string   `json:"exercise"`
	Sets             int      `json:"sets"`
	RepRange         string   `json:"rep_range"`
	StartingWeightKg *float64 `json:"starting_weight_kg,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// StructureType distinguishes standalone exercises from superset pairs.
type StructureType string

// Structure types.
const (
	StructureSingle   StructureType = "single"
	StructureSuperset StructureType = "superset"
)

// SupersetStructure groups one or two exercises performed back to back.
type SupersetStructure struct {
	Type      StructureType        `json:"type"`
	Exercises []ExerciseAllocation `json:"exercises"`
}

// GeneratedWorkout is one session template within a program.
type GeneratedWorkout struct {
	Name             string              `json:"name"`
	Structures       []SupersetStructure `json:"structures"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
}

// VolumeAnalysis summarizes prescribed volume and carries the soft warnings
// accumulated during generation (caps applied, degraded selection, fallbacks).
type VolumeAnalysis struct {
	TotalSets int      `json:"total_sets"`
	Warnings  []string `json:"warnings,omitempty"`
}

// GeneratedProgram is the engine's generation output.
type GeneratedProgram struct {
	Type          ProgramType        `json:"type"`
	Frequency     int                `json:"frequency"`
	Goal          Goal               `json:"goal"`
	Workouts      []GeneratedWorkout `json:"workouts"`
	WeeklyMinutes int                `json:"weekly_minutes"`
	Volume        VolumeAnalysis     `json:"volume"`
}

// ExerciseRef identifies an exercise the host wants a starting weight for.
type ExerciseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExerciseWeight is a computed starting weight for one exercise.
type ExerciseWeight struct {
	ExerciseID string  `json:"exercise_id"`
	Exercise   string  `json:"exercise"`
	WeightKg   float64 `json:"weight_kg"`
	Note       string  `json:"note,omitempty"`
}

// UserEquipmentSettings holds the per-equipment loading increments a user's
// gym supports, owned by the user profile and supplied read-only by the host.
type UserEquipmentSettings struct {
	BarbellIncrementKg  float64    `json:"barbell_increment_kg"`
	DumbbellIncrementKg float64    `json:"dumbbell_increment_kg"`
	CableIncrementKg    float64    `json:"cable_increment_kg"`
	MachineIncrementKg  float64    `json:"machine_increment_kg"`
	Experience          Experience `json:"experience"`
}

// DefaultEquipmentSettings returns typical commercial-gym increments.
func DefaultEquipmentSettings() UserEquipmentSettings {
	return UserEquipmentSettings{
		BarbellIncrementKg:  2.5,
		DumbbellIncrementKg: 2.5,
		CableIncrementKg:    2.5,
		MachineIncrementKg:  5,
		Experience:          ExperienceBeginner,
	}
}

// IncrementFor returns the loading increment for an equipment type.
// Bodyweight and unknown equipment use the barbell increment, mirroring the
// classifier's default.
func (s UserEquipmentSettings) IncrementFor(eq catalog.EquipmentType) float64 {
	switch eq {
	case catalog.EquipmentDumbbell:
		return s.DumbbellIncrementKg
	case catalog.EquipmentCable:
		return s.CableIncrementKg
	case catalog.EquipmentMachine:
		return s.MachineIncrementKg
	default:
		return s.BarbellIncrementKg
	}
}
