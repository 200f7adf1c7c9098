package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the session record in Postgres, for deployments where
// the local database is replaced by the future remote backend. Same
// single-key contract as the SQLite store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects a pgx pool and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Load returns all stored sessions. A missing row or undecodable value is
// empty history, not an error.
func (s *PostgresStore) Load(ctx context.Context) ([]models.WorkoutSession, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM records WHERE key = $1`, recordKey,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session record: %w", err)
	}
	return models.DecodeSessions([]byte(value)), nil
}

// Save prepends the session and overwrites the stored record.
func (s *PostgresStore) Save(ctx context.Context, session models.WorkoutSession) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}

	data, err := models.EncodeSessions(append([]models.WorkoutSession{session}, existing...))
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO records (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		recordKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing session record: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
