package logbook

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/liftplan/internal/engine"
)

// Stats tracks a sync run.
type Stats struct {
	Pending  int
	Synced   int
	Rejected int
}

// Logbook records completed sets offline and syncs them to the server. A
// local engine gives an immediate progression preview without a round trip.
type Logbook struct {
	state    *StateDB
	client   *Client
	eng      *engine.Engine
	settings engine.UserEquipmentSettings
	log      *slog.Logger
}

// New creates a Logbook. The client may be nil for offline-only use.
func New(state *StateDB, client *Client, eng *engine.Engine, settings engine.UserEquipmentSettings, log *slog.Logger) *Logbook {
	return &Logbook{
		state:    state,
		client:   client,
		eng:      eng,
		settings: settings,
		log:      log,
	}
}

// Record stores an observation and returns the locally computed next
// prescription. When the exercise has local history, prior state fields
// left at zero are filled from the last entry.
func (l *Logbook) Record(d engine.ExerciseData, performedAt time.Time) (*engine.ProgressionResult, error) {
	if d.PrescribedReps == 0 || d.TargetRepMin == 0 {
		last, err := l.state.LastEntry(d.Exercise)
		if err != nil {
			return nil, err
		}
		if last != nil {
			if d.PrescribedReps == 0 {
				d.PrescribedReps = last.Data.PrescribedReps
			}
			if d.TargetRepMin == 0 {
				d.TargetRepMin = last.Data.TargetRepMin
			}
			if d.TargetRepMax == 0 {
				d.TargetRepMax = last.Data.TargetRepMax
			}
			if d.ConsecutiveMisses == 0 {
				d.ConsecutiveMisses = last.Data.ConsecutiveMisses
			}
		}
	}

	id, err := l.state.AddEntry(d, performedAt)
	if err != nil {
		return nil, err
	}

	result := l.eng.CalculateProgression(d, l.settings)
	l.log.Info("recorded set", "id", id, "exercise", d.Exercise,
		"next_weight_kg", result.NewWeightKg, "next_reps", result.NewReps, "deload", result.Deload)
	return &result, nil
}

// Sync pushes all pending entries to the server and marks delivered ones.
func (l *Logbook) Sync() (*Stats, error) {
	if l.client == nil {
		return nil, fmt.Errorf("no server configured")
	}

	pending, err := l.state.PendingEntries()
	if err != nil {
		return nil, err
	}
	stats := &Stats{Pending: len(pending)}
	if len(pending) == 0 {
		return stats, nil
	}

	result, err := l.client.Sync(pending)
	if err != nil {
		return stats, err
	}

	ids := make([]int64, len(pending))
	for i, e := range pending {
		ids[i] = e.ID
	}
	if err := l.state.MarkSynced(ids); err != nil {
		return stats, err
	}

	stats.Synced = len(pending)
	stats.Rejected = result.Received - int(result.Inserted)
	l.log.Info("sync complete", "pending", stats.Pending, "synced", stats.Synced, "duplicates", stats.Rejected)
	return stats, nil
}
