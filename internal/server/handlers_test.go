package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return &Server{
		eng: engine.New(catalog.Default(), engine.DefaultConfig()),
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

func withUser(req *http.Request, uid int) *http.Request {
	ctx := context.WithValue(req.Context(), userIDKey, uid)
	return req.WithContext(ctx)
}

// TestHandleMe verifies the /api/v1/me endpoint returns the identity set
// by middleware.
func TestHandleMe(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	ctx := context.WithValue(req.Context(), userInfoKey, UserInfo{Login: "alice@example.com", DisplayName: "Alice"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	s.handleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "alice@example.com" {
		t.Errorf("login = %q, want %q", info.Login, "alice@example.com")
	}
}

// TestGenerateProgramRejectsInvalidPreferences verifies that out-of-range
// preferences return 422 with the full violation list, before any
// persistence is attempted.
func TestGenerateProgramRejectsInvalidPreferences(t *testing.T) {
	s := testServer(t)

	body := `{"frequency": 1, "goal": "STRENGTH", "experience": "BEGINNER",
		"session_time_min": 10, "exercise_count": 4, "sets_per_exercise": 3}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/programs", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	s.handleGenerateProgram(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Details) != 2 {
		t.Errorf("details = %v, want 2 violations (frequency, session time)", resp.Details)
	}
}

// TestGenerateProgramInvalidJSON verifies malformed bodies return 400.
func TestGenerateProgramInvalidJSON(t *testing.T) {
	s := testServer(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/programs", strings.NewReader("{not json")), 1)
	rec := httptest.NewRecorder()

	s.handleGenerateProgram(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestStartingWeightsWithInlineSettings verifies the calculator endpoint
// works statelessly when the body carries age, gender, and settings.
func TestStartingWeightsWithInlineSettings(t *testing.T) {
	s := testServer(t)

	body := `{
		"exercises": [{"id": "e1", "name": "Barbell Bench Press"}],
		"age": 45,
		"gender": "male",
		"settings": {
			"barbell_increment_kg": 2.5, "dumbbell_increment_kg": 2.5,
			"cable_increment_kg": 2.5, "machine_increment_kg": 5,
			"experience": "BEGINNER"
		}
	}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/starting-weights", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	s.handleStartingWeights(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var weights []engine.ExerciseWeight
	if err := json.NewDecoder(rec.Body).Decode(&weights); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(weights) != 1 {
		t.Fatalf("got %d weights, want 1", len(weights))
	}
	// 30kg base * 0.9 age multiplier = 27, rounded to 2.5 increment
	if weights[0].WeightKg != 27.5 {
		t.Errorf("weight = %v, want 27.5", weights[0].WeightKg)
	}
}

// TestStartingWeightsRequiresExercises verifies an empty exercise list is
// rejected before touching any stored profile.
func TestStartingWeightsRequiresExercises(t *testing.T) {
	s := testServer(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/starting-weights", strings.NewReader(`{"exercises": []}`)), 1)
	rec := httptest.NewRecorder()

	s.handleStartingWeights(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestValidateEquipmentSettings exercises the PUT validation rules.
func TestValidateEquipmentSettings(t *testing.T) {
	valid := engine.DefaultEquipmentSettings()
	if err := validateEquipmentSettings(valid); err != nil {
		t.Errorf("default settings rejected: %v", err)
	}

	zeroed := valid
	zeroed.CableIncrementKg = 0
	if err := validateEquipmentSettings(zeroed); err == nil {
		t.Error("zero cable increment accepted")
	}

	badExp := valid
	badExp.Experience = "EXPERT"
	if err := validateEquipmentSettings(badExp); err == nil {
		t.Error("unknown experience accepted")
	}
}

// TestParseTimeRangeDefaults verifies the 90-day default window and both
// accepted date formats.
func TestParseTimeRangeDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progression/log", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days := end.Sub(start).Hours() / 24; days < 89 || days > 91 {
		t.Errorf("default range = %.0f days, want ~90", days)
	}

	req = httptest.NewRequest(http.MethodGet, "/x?start=2026-01-01&end=2026-02-01", nil)
	start, end, err = parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Day() != 1 || start.Month() != 1 {
		t.Errorf("start = %v, want 2026-01-01", start)
	}
	// Date-only end is extended to end of day
	if end.Day() != 2 {
		t.Errorf("end = %v, want 2026-02-02 (end of Feb 1)", end)
	}

	req = httptest.NewRequest(http.MethodGet, "/x?start=garbage", nil)
	if _, _, err := parseTimeRange(req); err == nil {
		t.Error("garbage start date accepted")
	}
}

// TestCatalogExercises verifies the catalog endpoint serves every exercise
// with its resolved equipment type.
func TestCatalogExercises(t *testing.T) {
	s := testServer(t)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/exercises", nil), 1)
	rec := httptest.NewRecorder()

	s.handleCatalogExercises(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result []struct {
		Name      string `json:"name"`
		Equipment string `json:"equipment"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(result) == 0 {
		t.Fatal("empty catalog")
	}
	for _, ex := range result {
		if ex.Equipment == "" {
			t.Errorf("%s has no equipment type", ex.Name)
		}
	}
}
