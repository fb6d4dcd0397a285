package logbook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestClientSync verifies the sync request shape: API key header, login,
// and entry payload, plus response decoding.
func TestClientSync(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sync/progression" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "secret" {
			t.Errorf("api key = %q, want secret", got)
		}

		var req struct {
			Login   string      `json:"login"`
			Entries []syncEntry `json:"entries"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Login != "alice@example.com" {
			t.Errorf("login = %q", req.Login)
		}
		if len(req.Entries) != 1 || req.Entries[0].Exercise != "Barbell Bench Press" {
			t.Errorf("entries = %+v", req.Entries)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncResult{Received: 1, Inserted: 1})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "secret", "alice@example.com")
	entries := []Entry{{
		ID:          1,
		PerformedAt: time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC),
		Data:        testEntry("Barbell Bench Press", 60),
	}}

	result, err := client.Sync(entries)
	if err != nil {
		t.Fatal(err)
	}
	if result.Received != 1 || result.Inserted != 1 {
		t.Errorf("result = %+v", result)
	}
}
