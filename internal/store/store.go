// Package store persists the full workout session list as a single JSON
// record under one key. Each save is a whole-record overwrite; there is no
// merge or partial-write path, and a single logical writer is assumed.
package store

import (
	"context"

	"github.com/claude/liftlog/internal/models"
)

// recordKey addresses the one persisted record holding all sessions.
const recordKey = "workout_sessions"

// RecordStore loads and saves the session list. Load never fails on
// malformed content: anything that does not decode as a session array is
// treated as empty history.
type RecordStore interface {
	// Load returns all stored sessions, newest-first by insertion.
	Load(ctx context.Context) ([]models.WorkoutSession, error)
	// Save prepends the session to the stored list and writes the whole
	// list back, replacing prior content.
	Save(ctx context.Context, session models.WorkoutSession) error
	Close() error
}
