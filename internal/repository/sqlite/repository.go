package sqlite

import (
	"context"
	"database/sql"

	"ttb/internal/errors"
	"ttb/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store defines the interface for the append-only session log. Completed
// sessions are appended and never updated or deleted.
type Store interface {
	// AppendSession appends a completed session to the log
	AppendSession(ctx context.Context, session *Session) error

	// ListSessions retrieves all sessions in insertion order
	ListSessions(ctx context.Context) ([]*Session, error)

	// Utility
	Close() error
}

// SQLiteStore implements the Store interface
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store instance. Opening a path that does not exist
// yet creates the database and its schema, so a first run starts with an
// empty log instead of a load failure.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewLoadError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewLoadError("run migrations", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendSession appends a completed session to the log
func (s *SQLiteStore) AppendSession(ctx context.Context, session *Session) error {
	query := `
	INSERT INTO sessions (project, date, start_time, end_time, duration_minutes, rate, currency)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, s.db, query, "append session",
		session.Project,
		session.Date,
		session.StartTime,
		session.EndTime,
		session.DurationMinutes,
		session.Rate,
		session.Currency,
	)
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// ListSessions retrieves all sessions in insertion order
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]*Session, error) {
	query := `
	SELECT id, project, date, start_time, end_time, duration_minutes, rate, currency
	FROM sessions
	ORDER BY id ASC`

	return QueryMultiple(ctx, s.db, query, ScanSessions, "sessions")
}
