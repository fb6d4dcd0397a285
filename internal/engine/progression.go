package engine

import "github.com/claude/liftplan/internal/catalog"

// ProgressionConfig holds the progression thresholds. The shape of the rule
// is fixed; the numbers are tunable per deployment.
type ProgressionConfig struct {
	// HighEffortRating is the minimum perceived-effort rating (1-10) that,
	// combined with meeting the rep target, earns a weight increase.
	HighEffortRating int
	// DeloadAfterMisses is how many consecutive sessions may miss the rep
	// floor before the weight is deloaded.
	DeloadAfterMisses int
	// DeloadPercent is the fractional weight reduction on deload.
	DeloadPercent float64
}

// DefaultProgressionConfig returns the standard double-progression tuning.
func DefaultProgressionConfig() ProgressionConfig {
	return ProgressionConfig{
		HighEffortRating:  8,
		DeloadAfterMisses: 2,
		DeloadPercent:     0.10,
	}
}

// ExerciseData is one completed-session observation for a single exercise,
// together with the prior prescription state. The engine holds no memory
// between calls; the caller supplies prior state explicitly.
type ExerciseData struct {
	Exercise  string                `json:"exercise"`
	Sets      int                   `json:"sets"`
	Reps      int                   `json:"reps"`      // reps achieved on the working sets
	WeightKg  float64               `json:"weight_kg"` // weight used
	Rating    int                   `json:"rating"`    // perceived effort, 1-10
	Equipment catalog.EquipmentType `json:"equipment"`
	Compound  bool                  `json:"compound"`

	// Prior prescription state.
	PrescribedReps    int `json:"prescribed_reps"`
	TargetRepMin      int `json:"target_rep_min"`
	TargetRepMax      int `json:"target_rep_max"`
	ConsecutiveMisses int `json:"consecutive_misses"` // sessions below the rep floor so far
}

// ProgressionResult is the next prescription for an exercise.
type ProgressionResult struct {
	NewWeightKg float64 `json:"new_weight_kg"`
	NewReps     int     `json:"new_reps"`
	Deload      bool    `json:"deload"`
	Reason      string  `json:"reason,omitempty"`
}

// CalculateProgression computes the next prescription from one observation.
// High effort with the rep target met adds one equipment increment and
// resets reps to the range floor. Missing the rep floor holds the weight,
// and repeated floor misses trigger a deload. Otherwise the weight holds
// and the rep target nudges toward the range ceiling. Compound lifts
// progress once the prescribed reps are met; isolation lifts use double
// progression and only add weight at the range ceiling. The function is
// pure: identical inputs always produce identical output.
func CalculateProgression(d ExerciseData, settings UserEquipmentSettings, cfg ProgressionConfig) ProgressionResult {
	floor := d.TargetRepMin
	if floor <= 0 {
		floor = d.PrescribedReps
	}
	ceiling := d.TargetRepMax
	if ceiling < floor {
		ceiling = floor
	}
	prescribed := d.PrescribedReps
	if prescribed < floor {
		prescribed = floor
	}

	// Missed the rep floor: hold or deload, never increase.
	if d.Reps < floor {
		if d.ConsecutiveMisses+1 >= cfg.DeloadAfterMisses {
			return ProgressionResult{
				NewWeightKg: RoundWeight(d.WeightKg*(1-cfg.DeloadPercent), d.Equipment, settings),
				NewReps:     floor,
				Deload:      true,
				Reason:      "deload after repeated missed rep targets",
			}
		}
		return ProgressionResult{
			NewWeightKg: d.WeightKg,
			NewReps:     prescribed,
			Reason:      "rep floor missed; holding weight",
		}
	}

	// Progression gate: compounds need the prescribed reps, isolation
	// movements need the range ceiling (double progression).
	gate := prescribed
	if !d.Compound {
		gate = ceiling
	}

	if d.Rating >= cfg.HighEffortRating && d.Reps >= gate {
		inc := settings.IncrementFor(d.Equipment)
		return ProgressionResult{
			NewWeightKg: RoundWeight(d.WeightKg+inc, d.Equipment, settings),
			NewReps:     floor,
			Reason:      "rep target met at high effort; adding load",
		}
	}

	// Low effort or reps short of the gate: hold weight, nudge reps while
	// still under the range ceiling.
	newReps := prescribed
	if newReps < ceiling {
		newReps++
	}
	return ProgressionResult{
		NewWeightKg: d.WeightKg,
		NewReps:     newReps,
		Reason:      "holding weight; working up the rep range",
	}
}

// CalculateProgression applies the engine's configured thresholds.
func (e *Engine) CalculateProgression(d ExerciseData, settings UserEquipmentSettings) ProgressionResult {
	return CalculateProgression(d, settings, e.cfg.Progression)
}
