package engine

import (
	"fmt"

	"github.com/claude/liftplan/internal/catalog"
)

// Config holds the engine's tunable thresholds. Values here are policy, not
// magic numbers scattered through the generation path.
type Config struct {
	// MuscleGroupSetCap limits prescribed sets per muscle group per session.
	MuscleGroupSetCap int
	// WarmupMinutes is the fixed session overhead in duration estimates.
	WarmupMinutes int
	// MinutesPerSingleSet and MinutesPerSupersetSet estimate time per set
	// including rest; supersets share rest so their per-set cost is lower.
	MinutesPerSingleSet   int
	MinutesPerSupersetSet int

	Progression ProgressionConfig
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		MuscleGroupSetCap:     10,
		WarmupMinutes:         10,
		MinutesPerSingleSet:   3,
		MinutesPerSupersetSet: 2,
		Progression:           DefaultProgressionConfig(),
	}
}

// Engine generates programs and progression prescriptions against an
// injected catalog. It holds no mutable state.
type Engine struct {
	cat *catalog.Catalog
	cfg Config
}

// New creates an Engine over the given catalog.
func New(cat *catalog.Catalog, cfg Config) *Engine {
	if cfg.MuscleGroupSetCap <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{cat: cat, cfg: cfg}
}

// Catalog exposes the engine's catalog to the host for listing endpoints.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// GenerateProgram validates preferences and assembles a full program:
// archetype selection, conflict-free exercise selection, volume allocation,
// superset composition, and rep-range resolution. Fails only on malformed
// preferences; degraded results (fewer exercises than requested, capped
// volume) succeed with warnings in the volume analysis.
func (e *Engine) GenerateProgram(prefs UserPreferences) (*GeneratedProgram, error) {
	if err := ValidatePreferences(prefs); err != nil {
		return nil, err
	}

	programType := ProgramTypeFor(prefs.Frequency)
	workouts, warnings := strategyFor(programType).workouts(e, prefs)

	totalSets := 0
	for _, w := range workouts {
		for _, st := range w.Structures {
			for _, ex := range st.Exercises {
				totalSets += ex.Sets
			}
		}
		if prefs.SessionTimeMin > 0 && w.EstimatedMinutes > prefs.SessionTimeMin {
			warnings = append(warnings, w.Name+" is estimated to exceed the requested session time")
		}
	}

	// Sessions cycle through the workout templates across the week.
	weekly := 0
	for i := 0; i < prefs.Frequency; i++ {
		weekly += workouts[i%len(workouts)].EstimatedMinutes
	}

	return &GeneratedProgram{
		Type:          programType,
		Frequency:     prefs.Frequency,
		Goal:          prefs.Goal,
		Workouts:      workouts,
		WeeklyMinutes: weekly,
		Volume: VolumeAnalysis{
			TotalSets: totalSets,
			Warnings:  warnings,
		},
	}, nil
}

// buildWorkout runs the per-session pipeline: selection for the given region
// scope, volume allocation, rep-range resolution, superset composition.
func (e *Engine) buildWorkout(name string, prefs UserPreferences, region catalog.Region, count int) (GeneratedWorkout, []string) {
	var warnings []string

	selected := e.selectExercises(prefs, region, count)
	if len(selected) < count {
		warnings = append(warnings, fmt.Sprintf("%s: only %d of %d requested exercises were compatible", name, len(selected), count))
	}

	allocations, volWarnings := e.allocateVolume(selected, prefs.SetsPerExercise)
	warnings = append(warnings, volWarnings...)

	allocs := make([]ExerciseAllocation, len(allocations))
	for i, va := range allocations {
		allocs[i] = ExerciseAllocation{
			Exercise: va.Exercise,
			Sets:     va.Sets,
			RepRange: e.repRangeFor(va.Exercise, prefs.Goal),
			Notes:    va.Reason,
		}
	}

	structures := composeStructures(allocs)
	return GeneratedWorkout{
		Name:             name,
		Structures:       structures,
		EstimatedMinutes: e.estimateMinutes(structures),
	}, warnings
}
