package logbook

import (
	"testing"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
)

func testEntry(exercise string, weight float64) engine.ExerciseData {
	return engine.ExerciseData{
		Exercise:       exercise,
		Sets:           3,
		Reps:           8,
		WeightKg:       weight,
		Rating:         8,
		Equipment:      catalog.EquipmentBarbell,
		Compound:       true,
		PrescribedReps: 8,
		TargetRepMin:   8,
		TargetRepMax:   12,
	}
}

// TestStateDBRoundTrip verifies entries survive storage and come back with
// every field intact.
func TestStateDBRoundTrip(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	at := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	id, err := state.AddEntry(testEntry("Barbell Bench Press", 60), at)
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Error("id = 0, want nonzero")
	}

	pending, err := state.PendingEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending, want 1", len(pending))
	}

	e := pending[0]
	if e.Data.Exercise != "Barbell Bench Press" {
		t.Errorf("exercise = %q", e.Data.Exercise)
	}
	if e.Data.WeightKg != 60 {
		t.Errorf("weight = %v, want 60", e.Data.WeightKg)
	}
	if e.Data.Equipment != catalog.EquipmentBarbell {
		t.Errorf("equipment = %q, want barbell", e.Data.Equipment)
	}
	if !e.Data.Compound {
		t.Error("compound flag lost")
	}
	if e.Synced {
		t.Error("new entry marked synced")
	}
}

// TestMarkSyncedClearsPending verifies synced entries drop out of the
// pending set.
func TestMarkSyncedClearsPending(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	now := time.Now().UTC()
	id1, _ := state.AddEntry(testEntry("Barbell Back Squat", 80), now.Add(-time.Hour))
	id2, _ := state.AddEntry(testEntry("Barbell Bench Press", 60), now)

	if err := state.MarkSynced([]int64{id1}); err != nil {
		t.Fatal(err)
	}

	pending, err := state.PendingEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending, want 1", len(pending))
	}
	if pending[0].ID != id2 {
		t.Errorf("pending id = %d, want %d", pending[0].ID, id2)
	}
}

// TestLastEntryPrefill verifies the newest entry for an exercise is
// returned regardless of sync state, and that unknown exercises return nil.
func TestLastEntryPrefill(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	now := time.Now().UTC()
	old := testEntry("Barbell Bench Press", 57.5)
	id, _ := state.AddEntry(old, now.Add(-48*time.Hour))
	_ = state.MarkSynced([]int64{id})

	newer := testEntry("Barbell Bench Press", 60)
	newer.ConsecutiveMisses = 1
	if _, err := state.AddEntry(newer, now); err != nil {
		t.Fatal(err)
	}

	last, err := state.LastEntry("Barbell Bench Press")
	if err != nil {
		t.Fatal(err)
	}
	if last == nil {
		t.Fatal("last = nil, want entry")
	}
	if last.Data.WeightKg != 60 {
		t.Errorf("weight = %v, want the newer entry's 60", last.Data.WeightKg)
	}
	if last.Data.ConsecutiveMisses != 1 {
		t.Errorf("misses = %d, want 1", last.Data.ConsecutiveMisses)
	}

	none, err := state.LastEntry("Deadlift Nobody Logged")
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Errorf("unknown exercise returned %+v", none)
	}
}
