package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleGenerateProgram(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var prefs engine.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	program, err := s.eng.GenerateProgram(prefs)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	id, err := s.db.InsertProgram(r.Context(), uid, program)
	if err != nil {
		s.log.Error("program insert failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"program": program,
	})
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := s.db.ListPrograms(r.Context(), uid, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}

	rec, err := s.db.GetProgram(r.Context(), id, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// startingWeightsRequest carries the calculator inputs. Age, gender, and
// equipment settings fall back to the stored profile when omitted.
type startingWeightsRequest struct {
	Exercises []engine.ExerciseRef          `json:"exercises"`
	Age       *int                          `json:"age,omitempty"`
	Gender    *catalog.Gender               `json:"gender,omitempty"`
	Settings  *engine.UserEquipmentSettings `json:"settings,omitempty"`
}

func (s *Server) handleStartingWeights(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req startingWeightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Exercises) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercises list is required"})
		return
	}

	age, gender := 0, catalog.Gender("")
	if req.Age != nil {
		age = *req.Age
	}
	if req.Gender != nil {
		gender = *req.Gender
	}
	if req.Age == nil || req.Gender == nil {
		profile, err := s.db.GetUserProfile(r.Context(), uid)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if req.Age == nil && profile.Age != nil {
			age = *profile.Age
		}
		if req.Gender == nil {
			gender = profile.Gender
		}
	}

	settings := req.Settings
	if settings == nil {
		var err error
		settings, err = s.db.GetEquipmentSettings(r.Context(), uid)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	weights, err := s.eng.CalculateStartingWeights(req.Exercises, age, gender, settings)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, weights)
}

// progressionRequest is one completed-session observation. When PerformedAt
// is set, the observation and resulting prescription are recorded in the
// progression log.
type progressionRequest struct {
	engine.ExerciseData
	PerformedAt *time.Time `json:"performed_at,omitempty"`
}

func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req progressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	settings, err := s.db.GetEquipmentSettings(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if settings == nil {
		werr := &engine.ConfigurationError{Missing: "user equipment settings"}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": werr.Error()})
		return
	}

	result := s.eng.CalculateProgression(req.ExerciseData, *settings)

	if req.PerformedAt != nil {
		row := storage.NewRowFromResult(uid, req.ExerciseData, result, *req.PerformedAt)
		if _, err := s.db.InsertProgressionRows(r.Context(), []storage.ProgressionRow{row}); err != nil {
			s.log.Error("progression log insert failed", "exercise", req.Exercise, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProgressionLog(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rows, err := s.db.QueryProgressionLog(r.Context(), start, end, uid, r.URL.Query().Get("exercise"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	exercise := chi.URLParam(r, "exercise")
	since := time.Now().AddDate(0, -6, 0)
	if v := r.URL.Query().Get("since"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid since date"})
			return
		}
		since = parsed
	}

	points, err := s.db.GetExerciseProgress(r.Context(), uid, exercise, since)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleCatalogExercises(w http.ResponseWriter, r *http.Request) {
	cat := s.eng.Catalog()

	type exerciseInfo struct {
		Name        string                `json:"name"`
		MuscleGroup string                `json:"muscle_group"`
		Compound    bool                  `json:"compound"`
		Equipment   catalog.EquipmentType `json:"equipment"`
		RepRange    *catalog.RepRange     `json:"rep_range,omitempty"`
	}

	exercises := cat.Exercises()
	result := make([]exerciseInfo, 0, len(exercises))
	for _, ex := range exercises {
		info := exerciseInfo{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Compound:    ex.Compound,
			Equipment:   cat.EquipmentFor(ex.Name),
		}
		if rr, ok := cat.RepRange(ex.Name); ok {
			info.RepRange = &rr
		}
		result = append(result, info)
	}
	writeJSON(w, http.StatusOK, result)
}

// writeEngineError maps engine error types to HTTP responses: validation
// failures carry the full per-field list at 422, missing configuration is a
// server-side 500.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   "invalid preferences",
			"details": verr.Errors,
		})
		return
	}

	var cerr *engine.ConfigurationError
	if errors.As(err, &cerr) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": cerr.Error()})
		return
	}

	s.log.Error("engine error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 90 days
		end = time.Now()
		start = end.AddDate(0, 0, -90)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
