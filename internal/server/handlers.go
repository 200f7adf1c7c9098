package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/draft"
	"github.com/claude/liftlog/internal/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.book.Sessions())
}

func (s *Server) handleLastWorkout(w http.ResponseWriter, r *http.Request) {
	wt, ok := mustType(w, r)
	if !ok {
		return
	}
	last := s.book.LastWorkout(wt)
	if last == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, last)
}

func (s *Server) handleBestSets(w http.ResponseWriter, r *http.Request) {
	wt, ok := mustType(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.book.BestSets(wt))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.book.State())
}

func (s *Server) handleSelectType(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	wt, err := models.ParseWorkoutType(body.Type)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.book.SelectType(wt)
	writeJSON(w, http.StatusOK, s.book.State())
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	var in draft.SetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	set := s.book.AddSet(in)
	writeJSON(w, http.StatusCreated, set)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch draft.SetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.book.UpdateSet(id, patch) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "set not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.book.State())
}

func (s *Server) handleRemoveSet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.book.RemoveSet(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "set not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.book.State())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	session, err := s.book.Save(r.Context())
	if err != nil {
		s.log.Error("save error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if session == nil {
		// No category selected, empty draft, or a save already in flight.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// mustType parses the required type query parameter, writing a 400 on
// failure.
func mustType(w http.ResponseWriter, r *http.Request) (models.WorkoutType, bool) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type parameter required"})
		return "", false
	}
	wt, err := models.ParseWorkoutType(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return "", false
	}
	return wt, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
