// Package logbook owns the editing state of the single active user: the
// selected workout category, the draft set list, and the save lifecycle.
// Queries are pure reads over the last loaded session list; callers re-run
// them after each mutation.
package logbook

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/liftlog/internal/draft"
	"github.com/claude/liftlog/internal/history"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/store"
)

// SavedFlagTTL is how long the transient saved acknowledgment stays up
// before auto-clearing.
const SavedFlagTTL = 2 * time.Second

// State is a snapshot of the editing state for the rendering surface.
type State struct {
	SelectedType models.WorkoutType   `json:"selected_type,omitempty"`
	Draft        []models.ExerciseSet `json:"draft"`
	Saving       bool                 `json:"saving"`
	Saved        bool                 `json:"saved"`
}

// Logbook is the controller. All methods are safe for concurrent use, but
// at most one save runs at a time; a save requested while one is in flight
// is ignored.
type Logbook struct {
	store store.RecordStore
	log   *slog.Logger

	mu         sync.Mutex
	selected   models.WorkoutType
	draft      *draft.Builder
	sessions   []models.WorkoutSession
	saving     bool
	saved      bool
	savedTimer *time.Timer
	savedTTL   time.Duration
}

// New creates a Logbook over the given record store.
func New(rs store.RecordStore, log *slog.Logger) *Logbook {
	return &Logbook{
		store:    rs,
		log:      log,
		draft:    draft.NewBuilder(),
		savedTTL: SavedFlagTTL,
	}
}

// Refresh reloads the session list from the store.
func (l *Logbook) Refresh(ctx context.Context) error {
	sessions, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.sessions = sessions
	l.mu.Unlock()
	return nil
}

// SelectType changes the selected category. An in-progress draft is
// retained: losing typed-in sets on an accidental category switch is worse
// than carrying them over, and the save stamps the category current at
// save time.
func (l *Logbook) SelectType(t models.WorkoutType) {
	l.mu.Lock()
	l.selected = t
	l.mu.Unlock()
}

// State returns a snapshot of the editing state.
func (l *Logbook) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{
		SelectedType: l.selected,
		Draft:        l.draft.Sets(),
		Saving:       l.saving,
		Saved:        l.saved,
	}
}

// Sessions returns the last loaded session list.
func (l *Logbook) Sessions() []models.WorkoutSession {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.WorkoutSession, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// LastWorkout returns the most recent session of the category, or nil.
func (l *Logbook) LastWorkout(t models.WorkoutType) *models.WorkoutSession {
	l.mu.Lock()
	defer l.mu.Unlock()
	return history.LastWorkout(l.sessions, t)
}

// BestSets returns the strongest set per exercise for the category, each
// with its estimated one-rep max.
func (l *Logbook) BestSets(t models.WorkoutType) []history.BestSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return history.BestSets(l.sessions, t)
}

// AddSet appends a new draft set, defaulting the exercise from the
// selected category's catalog.
func (l *Logbook) AddSet(in draft.SetInput) models.ExerciseSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.draft.AddSet(l.selected, in)
}

// UpdateSet patches a draft set. Unknown ids are a no-op.
func (l *Logbook) UpdateSet(id string, patch draft.SetPatch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.draft.UpdateSet(id, patch)
}

// RemoveSet deletes a draft set. Unknown ids are a no-op.
func (l *Logbook) RemoveSet(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.draft.RemoveSet(id)
}

// Save commits the draft as a new session. It is a silent no-op when no
// category is selected, the draft is empty, or a save is already in
// flight; the returned session is nil in those cases. A store failure
// propagates, and the in-progress flag clears on every exit path.
func (l *Logbook) Save(ctx context.Context) (*models.WorkoutSession, error) {
	l.mu.Lock()
	if l.saving || l.selected == "" || l.draft.Len() == 0 {
		l.mu.Unlock()
		return nil, nil
	}
	l.saving = true
	session := models.WorkoutSession{
		ID:   models.NewID(),
		Type: l.selected,
		Date: time.Now().UTC(),
		Sets: l.draft.Sets(),
	}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.saving = false
		l.mu.Unlock()
	}()

	if err := l.store.Save(ctx, session); err != nil {
		return nil, err
	}

	sessions, err := l.store.Load(ctx)

	l.mu.Lock()
	if err != nil {
		// The write landed; keep the stale cache rather than failing the save.
		l.log.Warn("reload after save failed", "error", err)
	} else {
		l.sessions = sessions
	}
	l.draft.Clear()
	l.markSavedLocked()
	l.mu.Unlock()

	l.log.Info("session saved", "id", session.ID, "type", session.Type, "sets", len(session.Sets))
	return &session, nil
}

// markSavedLocked raises the saved flag and arms its auto-clear. A save
// landing inside a pending window rearms it so the flag never clears early.
func (l *Logbook) markSavedLocked() {
	l.saved = true
	if l.savedTimer != nil {
		l.savedTimer.Stop()
	}
	l.savedTimer = time.AfterFunc(l.savedTTL, func() {
		l.mu.Lock()
		l.saved = false
		l.mu.Unlock()
	})
}
