// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the session history lives unless overridden.
const DefaultPath = "~/.spriteloop/sessions.db"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished run of the game.
type Session struct {
	ID         string
	StartedAt  time.Time
	Duration   time.Duration
	Frames     uint64
	Distance   float64
	Renderer   string
	ExitReason string
}

// NewSession returns a session with a fresh ID starting at t.
func NewSession(t time.Time) Session {
	return Session{ID: uuid.NewString(), StartedAt: t.UTC()}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			renderer TEXT NOT NULL DEFAULT '',
			exit_reason TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a finished session. An empty ID is filled in.
func (s *Store) Save(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, started_at, duration_ms, frames, distance, renderer, exit_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.StartedAt.UnixMilli(),
		sess.Duration.Milliseconds(),
		int64(sess.Frames),
		sess.Distance,
		sess.Renderer,
		sess.ExitReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

// Recent retrieves the most recent sessions, newest first.
func (s *Store) Recent(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, duration_ms, frames, distance, renderer, exit_reason
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess       Session
			startedAt  int64
			durationMS int64
			frames     int64
		)
		if err := rows.Scan(&sess.ID, &startedAt, &durationMS, &frames, &sess.Distance, &sess.Renderer, &sess.ExitReason); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.UnixMilli(startedAt).UTC()
		sess.Duration = time.Duration(durationMS) * time.Millisecond
		sess.Frames = uint64(frames)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Count returns the number of recorded sessions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}

// Clear deletes all sessions.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
