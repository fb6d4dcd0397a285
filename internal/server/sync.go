package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/storage"
)

// syncEntry is one completed-session observation pushed by the logbook CLI.
type syncEntry struct {
	engine.ExerciseData
	PerformedAt time.Time `json:"performed_at"`
}

// syncRequest is the logbook sync payload. Login identifies the user since
// API-key requests carry no Tailscale identity.
type syncRequest struct {
	Login   string      `json:"login"`
	Entries []syncEntry `json:"entries"`
}

// syncResult reports what the server did with a sync batch.
type syncResult struct {
	Received int                        `json:"received"`
	Inserted int64                      `json:"inserted"`
	Results  []engine.ProgressionResult `json:"results"`
}

func (s *Server) handleProgressionSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Login == "" {
		req.Login = "local"
	}
	if len(req.Entries) == 0 {
		writeJSON(w, http.StatusOK, syncResult{})
		return
	}

	uid, err := s.db.GetOrCreateUser(r.Context(), req.Login, "")
	if err != nil {
		s.log.Error("sync user lookup failed", "login", req.Login, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	settings, err := s.db.GetEquipmentSettings(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if settings == nil {
		def := engine.DefaultEquipmentSettings()
		settings = &def
	}

	rows := make([]storage.ProgressionRow, 0, len(req.Entries))
	results := make([]engine.ProgressionResult, 0, len(req.Entries))
	for _, entry := range req.Entries {
		res := s.eng.CalculateProgression(entry.ExerciseData, *settings)
		results = append(results, res)
		rows = append(rows, storage.NewRowFromResult(uid, entry.ExerciseData, res, entry.PerformedAt))
	}

	inserted, err := s.db.InsertProgressionRows(r.Context(), rows)
	if err != nil {
		s.log.Error("sync insert failed", "count", len(rows), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("progression sync", "login", req.Login, "received", len(req.Entries), "inserted", inserted)
	writeJSON(w, http.StatusOK, syncResult{
		Received: len(req.Entries),
		Inserted: inserted,
		Results:  results,
	})
}
