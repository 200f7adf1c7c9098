package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/liftlog/internal/history"
	"github.com/claude/liftlog/internal/logbook"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	rs, err := store.OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite error: %v", err)
	}
	t.Cleanup(func() { rs.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	book := logbook.New(rs, log)
	if err := book.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	return New(book, log)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestCatalogEndpoint verifies the catalog lists all three categories.
func TestCatalogEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var cat map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&cat); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	for _, wt := range []string{"Push", "Pull", "Legs"} {
		if len(cat[wt]) == 0 {
			t.Errorf("catalog[%s] empty", wt)
		}
	}
}

// TestLastWorkoutRequiresType verifies the type parameter is validated.
func TestLastWorkoutRequiresType(t *testing.T) {
	s := newTestServer(t)
	if rec := doJSON(t, s, http.MethodGet, "/api/v1/history/last", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("missing type: status = %d, want 400", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodGet, "/api/v1/history/last?type=Cardio", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad type: status = %d, want 400", rec.Code)
	}
}

// TestLastWorkoutEmpty verifies no session of a category yields 204.
func TestLastWorkoutEmpty(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/history/last?type=Push", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

// TestSaveFlow drives the whole API: select a category, add and patch a
// draft set, save, then read the refreshed history panels.
func TestSaveFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/state/type", `{"type":"Push"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("select type: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/draft/sets", `{"weight":95,"reps":5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add set: status = %d, want 201", rec.Code)
	}
	var set models.ExerciseSet
	if err := json.NewDecoder(rec.Body).Decode(&set); err != nil {
		t.Fatalf("decode set: %v", err)
	}
	if set.Exercise != "Barbell Bench Press" {
		t.Errorf("default exercise = %q, want Barbell Bench Press", set.Exercise)
	}

	rec = doJSON(t, s, http.MethodPatch, "/api/v1/draft/sets/"+set.ID, `{"weight":100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch set: status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/save", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("save: status = %d, want 200", rec.Code)
	}
	var session models.WorkoutSession
	if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.Type != models.TypePush || len(session.Sets) != 1 || session.Sets[0].Weight != 100 {
		t.Errorf("session = %+v, want one Push set at 100", session)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/history/last?type=Push", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("last workout: status = %d, want 200", rec.Code)
	}
	var last models.WorkoutSession
	if err := json.NewDecoder(rec.Body).Decode(&last); err != nil {
		t.Fatalf("decode last: %v", err)
	}
	if last.ID != session.ID {
		t.Errorf("last = %s, want %s", last.ID, session.ID)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/history/best?type=Push", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("best sets: status = %d, want 200", rec.Code)
	}
	var best []history.BestSet
	if err := json.NewDecoder(rec.Body).Decode(&best); err != nil {
		t.Fatalf("decode best: %v", err)
	}
	if len(best) != 1 || best[0].OneRepMax != 117 {
		t.Errorf("best = %+v, want bench 1RM 117", best)
	}
}

// TestSaveEmptyDraftReturnsNoContent verifies the no-op save contract at
// the API level.
func TestSaveEmptyDraftReturnsNoContent(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/api/v1/state/type", `{"type":"Legs"}`)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/save", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/sessions", "")
	var sessions []models.WorkoutSession
	if err := json.NewDecoder(rec.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %+v, want empty", sessions)
	}
}

// TestDraftSetNotFound verifies patch/delete on unknown ids return 404
// without touching the draft.
func TestDraftSetNotFound(t *testing.T) {
	s := newTestServer(t)
	if rec := doJSON(t, s, http.MethodPatch, "/api/v1/draft/sets/nope", `{"reps":5}`); rec.Code != http.StatusNotFound {
		t.Errorf("patch: status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodDelete, "/api/v1/draft/sets/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("delete: status = %d, want 404", rec.Code)
	}
}

// TestStateSnapshot verifies the state endpoint reflects mutations.
func TestStateSnapshot(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/api/v1/state/type", `{"type":"Pull"}`)
	doJSON(t, s, http.MethodPost, "/api/v1/draft/sets", `{}`)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/state", "")
	var st logbook.State
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if st.SelectedType != models.TypePull {
		t.Errorf("selected = %s, want Pull", st.SelectedType)
	}
	if len(st.Draft) != 1 || st.Draft[0].Exercise != "Deadlift" {
		t.Errorf("draft = %+v, want one defaulted Deadlift set", st.Draft)
	}
	if st.Saving || st.Saved {
		t.Errorf("flags = saving:%v saved:%v, want false/false", st.Saving, st.Saved)
	}
}
