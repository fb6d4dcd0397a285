package engine

import (
	"sort"

	"github.com/claude/liftplan/internal/catalog"
)

// primaryOrder fixes the iteration order over primary movement patterns so
// selection (and the superset pairing derived from it) is deterministic and
// alternates complementary patterns.
var primaryOrder = []string{"squat", "hinge", "push", "pull"}

// equipmentBias orders equipment types by preference per experience tier.
// Beginners skew toward machines and dumbbells; advanced lifters toward
// free weights. Candidates within the same equipment class keep catalog
// order.
var equipmentBias = map[Experience][]catalog.EquipmentType{
	ExperienceBeginner: {
		catalog.EquipmentMachine, catalog.EquipmentDumbbell,
		catalog.EquipmentCable, catalog.EquipmentBarbell, catalog.EquipmentBodyweight,
	},
	ExperienceIntermediate: {
		catalog.EquipmentBarbell, catalog.EquipmentDumbbell,
		catalog.EquipmentMachine, catalog.EquipmentCable, catalog.EquipmentBodyweight,
	},
	ExperienceAdvanced: {
		catalog.EquipmentBarbell, catalog.EquipmentDumbbell,
		catalog.EquipmentCable, catalog.EquipmentMachine, catalog.EquipmentBodyweight,
	},
}

// selectExercises picks up to count conflict-free exercises for one session.
// Primary patterns are walked first in fixed order, one pick each, then
// remaining slots fill from the pooled secondary patterns. A result shorter
// than count means the catalog ran out of compatible candidates; callers
// treat that as soft degradation, not an error.
func (e *Engine) selectExercises(prefs UserPreferences, region catalog.Region, count int) []string {
	var selected []string

	for _, tag := range primaryOrder {
		if len(selected) >= count {
			break
		}
		pattern, ok := e.cat.PatternByTag(tag, catalog.TierPrimary)
		if !ok || (region != "" && pattern.Region != region) {
			continue
		}
		candidates := e.rankCandidates(pattern.Exercises, prefs)
		if pick := e.pickCompatible(candidates, selected); pick != "" {
			selected = append(selected, pick)
		}
	}

	// Secondary fill: pool every secondary pattern in scope and run a
	// general compatibility search over the ranked pool.
	var pool []string
	for _, p := range e.cat.Patterns(catalog.TierSecondary, region) {
		pool = append(pool, p.Exercises...)
	}
	pool = e.rankCandidates(pool, prefs)

	for len(selected) < count {
		pick := e.pickCompatible(pool, selected)
		if pick == "" {
			break
		}
		selected = append(selected, pick)
	}

	return selected
}

// rankCandidates orders candidates by focus-muscle-group membership, then
// by the experience tier's equipment preference, keeping catalog order
// within ties.
func (e *Engine) rankCandidates(candidates []string, prefs UserPreferences) []string {
	bias := equipmentBias[prefs.Experience]
	if bias == nil {
		bias = equipmentBias[ExperienceIntermediate]
	}

	focus := make(map[string]bool, len(prefs.FocusMuscleGroups))
	for _, mg := range prefs.FocusMuscleGroups {
		focus[mg] = true
	}

	ranked := make([]string, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		fi, fj := e.isFocused(ranked[i], focus), e.isFocused(ranked[j], focus)
		if fi != fj {
			return fi
		}
		return biasRank(bias, e.cat.EquipmentFor(ranked[i])) < biasRank(bias, e.cat.EquipmentFor(ranked[j]))
	})
	return ranked
}

func (e *Engine) isFocused(exercise string, focus map[string]bool) bool {
	if len(focus) == 0 {
		return false
	}
	ex, ok := e.cat.Exercise(exercise)
	return ok && focus[ex.MuscleGroup]
}

func biasRank(bias []catalog.EquipmentType, eq catalog.EquipmentType) int {
	for i, b := range bias {
		if b == eq {
			return i
		}
	}
	return len(bias)
}

// pickCompatible returns the first candidate that is not already selected
// and conflicts with nothing in the accumulated selection.
func (e *Engine) pickCompatible(candidates, selected []string) string {
	for _, cand := range candidates {
		if containsString(selected, cand) {
			continue
		}
		compatible := true
		for _, s := range selected {
			if e.cat.Conflicts(cand, s) {
				compatible = false
				break
			}
		}
		if compatible {
			return cand
		}
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
