package engine

import "fmt"

// allocateVolume assigns a set count per selected exercise, reducing below
// the requested target when a muscle group's running session total would
// exceed the configured cap. Allocation never drops below one set; capped
// exercises carry a reason string and produce a warning.
func (e *Engine) allocateVolume(exercises []string, setsPerExercise int) ([]VolumeAllocation, []string) {
	var warnings []string
	usage := make(map[string]int)

	allocations := make([]VolumeAllocation, 0, len(exercises))
	for _, name := range exercises {
		group := "other"
		if ex, ok := e.cat.Exercise(name); ok && ex.MuscleGroup != "" {
			group = ex.MuscleGroup
		}

		sets := setsPerExercise
		reason := ""
		if remaining := e.cfg.MuscleGroupSetCap - usage[group]; remaining < sets {
			sets = remaining
			if sets < 1 {
				sets = 1
			}
			reason = fmt.Sprintf("capped for volume management (%s at session limit)", group)
			warnings = append(warnings, fmt.Sprintf("%s: reduced to %d sets for volume management", name, sets))
		}
		usage[group] += sets

		allocations = append(allocations, VolumeAllocation{
			Exercise: name,
			Sets:     sets,
			Reason:   reason,
		})
	}

	return allocations, warnings
}
