package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/google/uuid"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestCreateProgram verifies the client posts preferences and parses the
// created program response.
func TestCreateProgram(t *testing.T) {
	wantID := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/programs": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}

			var prefs engine.UserPreferences
			if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
				t.Fatalf("decode prefs: %v", err)
			}
			if prefs.Frequency != 3 {
				t.Errorf("frequency = %d, want 3", prefs.Frequency)
			}

			w.WriteHeader(http.StatusCreated)
			writeTestJSON(t, w, map[string]any{
				"id": wantID,
				"program": &engine.GeneratedProgram{
					Type:      engine.ProgramFullBody,
					Frequency: 3,
				},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	id, program, err := client.CreateProgram(context.Background(), 1, engine.UserPreferences{Frequency: 3})
	if err != nil {
		t.Fatal(err)
	}
	if id != wantID {
		t.Errorf("id = %s, want %s", id, wantID)
	}
	if program.Type != engine.ProgramFullBody {
		t.Errorf("type = %s, want FULL_BODY", program.Type)
	}
}

// TestGetProgramNotFound verifies a 404 maps to (nil, nil), matching the
// local data source's contract.
func TestGetProgramNotFound(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/programs/" + id.String(): func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	rec, err := client.GetProgram(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Errorf("rec = %+v, want nil", rec)
	}
}

// TestProgressionLogParams verifies query parameter encoding for the log
// endpoint.
func TestProgressionLogParams(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/progression/log": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("exercise"); got != "bench" {
				t.Errorf("exercise = %q, want bench", got)
			}
			if got := r.URL.Query().Get("start"); got == "" {
				t.Error("start param missing")
			}
			writeTestJSON(t, w, []any{})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows, err := client.ProgressionLog(context.Background(), start, end, 1, "bench")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

// TestErrorStatusSurfaced verifies non-2xx responses (other than 404)
// surface as errors with the body included.
func TestErrorStatusSurfaced(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/progression": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			writeTestJSON(t, w, map[string]string{"error": "user equipment settings missing"})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.Progression(context.Background(), 1, engine.ExerciseData{Exercise: "Barbell Bench Press"})
	if err == nil {
		t.Fatal("expected error")
	}
}
