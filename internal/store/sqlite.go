package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/liftlog/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the session record in a local SQLite database. This is
// the default backend: a key/value table with one row per record key.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the record database at dir/liftlog.db.
func OpenSQLite(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "liftlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening record db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating records table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns all stored sessions. A missing row or undecodable value is
// empty history, not an error.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.WorkoutSession, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`, recordKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session record: %w", err)
	}
	return models.DecodeSessions([]byte(value)), nil
}

// Save prepends the session and overwrites the stored record.
func (s *SQLiteStore) Save(ctx context.Context, session models.WorkoutSession) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}

	data, err := models.EncodeSessions(append([]models.WorkoutSession{session}, existing...))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO records (key, value) VALUES (?, ?)`,
		recordKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing session record: %w", err)
	}
	return nil
}

// Close closes the record database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
