package engine

// Goal-level rep-range defaults for exercises without a catalog entry.
const (
	defaultStrengthRange    = "6-8"
	defaultHypertrophyRange = "8-12"
)

// composeStructures pairs exercises into supersets by arity, following the
// selection order so pairs combine complementary movement patterns:
//
//	3 exercises -> superset(1,2) + single(3)
//	4           -> superset(1,2) + superset(3,4)
//	5           -> superset(1,2) + superset(3,4) + single(5)
//	6           -> three supersets
//
// Shorter (degraded) lists pair the same way.
func composeStructures(allocs []ExerciseAllocation) []SupersetStructure {
	var structures []SupersetStructure
	for i := 0; i < len(allocs); i += 2 {
		if i+1 < len(allocs) {
			structures = append(structures, SupersetStructure{
				Type:      StructureSuperset,
				Exercises: []ExerciseAllocation{allocs[i], allocs[i+1]},
			})
		} else {
			structures = append(structures, SupersetStructure{
				Type:      StructureSingle,
				Exercises: []ExerciseAllocation{allocs[i]},
			})
		}
	}
	return structures
}

// repRangeFor resolves the prescribed rep range for an exercise and goal:
// catalog entry first, goal default when the exercise is unlisted.
func (e *Engine) repRangeFor(exercise string, goal Goal) string {
	if rr, ok := e.cat.RepRange(exercise); ok {
		switch goal {
		case GoalStrength:
			if rr.Strength != "" {
				return rr.Strength
			}
		case GoalHypertrophy:
			if rr.Hypertrophy != "" {
				return rr.Hypertrophy
			}
		}
	}
	if goal == GoalStrength {
		return defaultStrengthRange
	}
	return defaultHypertrophyRange
}

// estimateMinutes estimates session duration from structure shape: supersets
// share rest between partners, so their per-set cost is lower.
func (e *Engine) estimateMinutes(structures []SupersetStructure) int {
	minutes := e.cfg.WarmupMinutes
	for _, st := range structures {
		sets := 0
		for _, ex := range st.Exercises {
			sets += ex.Sets
		}
		if st.Type == StructureSuperset {
			minutes += sets * e.cfg.MinutesPerSupersetSet
		} else {
			minutes += sets * e.cfg.MinutesPerSingleSet
		}
	}
	return minutes
}
