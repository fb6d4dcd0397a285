package logbook

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
)

func testLogbook(t *testing.T, client *Client) *Logbook {
	t.Helper()
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { state.Close() })

	eng := engine.New(catalog.Default(), engine.DefaultConfig())
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return New(state, client, eng, engine.DefaultEquipmentSettings(), log)
}

// TestRecordReturnsPreview verifies recording a high-effort session returns
// the incremented prescription immediately.
func TestRecordReturnsPreview(t *testing.T) {
	lb := testLogbook(t, nil)

	result, err := lb.Record(testEntry("Barbell Bench Press", 60), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if result.NewWeightKg != 62.5 {
		t.Errorf("next weight = %v, want 62.5", result.NewWeightKg)
	}
	if result.NewReps != 8 {
		t.Errorf("next reps = %d, want range floor 8", result.NewReps)
	}
}

// TestRecordPrefillsPriorState verifies zero prior-state fields are filled
// from the exercise's last entry.
func TestRecordPrefillsPriorState(t *testing.T) {
	lb := testLogbook(t, nil)

	first := testEntry("Barbell Back Squat", 80)
	if _, err := lb.Record(first, time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatal(err)
	}

	// Second session reports only the performance; targets come from history.
	second := engine.ExerciseData{
		Exercise:  "Barbell Back Squat",
		Sets:      3,
		Reps:      8,
		WeightKg:  80,
		Rating:    9,
		Equipment: catalog.EquipmentBarbell,
		Compound:  true,
	}
	result, err := lb.Record(second, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	// Prefilled prescribed reps (8) met at rating 9 → weight increments.
	if result.NewWeightKg != 82.5 {
		t.Errorf("next weight = %v, want 82.5", result.NewWeightKg)
	}
}

// TestSyncMarksEntries verifies a successful sync flags all pending entries.
func TestSyncMarksEntries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Entries []syncEntry `json:"entries"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncResult{Received: len(req.Entries), Inserted: int64(len(req.Entries))})
	}))
	defer ts.Close()

	lb := testLogbook(t, NewClient(ts.URL, "secret", "alice@example.com"))

	if _, err := lb.Record(testEntry("Barbell Bench Press", 60), time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, err := lb.Record(testEntry("Barbell Back Squat", 80), time.Now()); err != nil {
		t.Fatal(err)
	}

	stats, err := lb.Sync()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Pending != 2 || stats.Synced != 2 {
		t.Errorf("stats = %+v, want 2 pending, 2 synced", stats)
	}

	pending, err := lb.state.PendingEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("%d entries still pending after sync", len(pending))
	}
}
