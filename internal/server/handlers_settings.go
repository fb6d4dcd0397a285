package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	profile, err := s.db.GetUserProfile(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Age    int            `json:"age"`
		Gender catalog.Gender `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Age < 13 || req.Age > 120 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "age must be between 13 and 120"})
		return
	}
	if req.Gender != catalog.GenderMale && req.Gender != catalog.GenderFemale {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "gender must be 'male' or 'female'"})
		return
	}

	if err := s.db.UpdateUserProfile(r.Context(), uid, req.Age, req.Gender); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleGetEquipmentSettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	settings, err := s.db.GetEquipmentSettings(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if settings == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no equipment settings configured"})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutEquipmentSettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var settings engine.UserEquipmentSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := validateEquipmentSettings(settings); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.UpsertEquipmentSettings(r.Context(), uid, settings); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func validateEquipmentSettings(s engine.UserEquipmentSettings) error {
	for _, inc := range []struct {
		name  string
		value float64
	}{
		{"barbell_increment_kg", s.BarbellIncrementKg},
		{"dumbbell_increment_kg", s.DumbbellIncrementKg},
		{"cable_increment_kg", s.CableIncrementKg},
		{"machine_increment_kg", s.MachineIncrementKg},
	} {
		if inc.value <= 0 {
			return &invalidSettingError{field: inc.name}
		}
	}
	switch s.Experience {
	case engine.ExperienceBeginner, engine.ExperienceIntermediate, engine.ExperienceAdvanced:
		return nil
	default:
		return &invalidSettingError{field: "experience"}
	}
}

type invalidSettingError struct {
	field string
}

func (e *invalidSettingError) Error() string {
	return e.field + " is invalid"
}
