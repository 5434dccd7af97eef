// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished playthrough.
type Session struct {
	ID        string
	Score     int
	Length    int     // final snake length in cells
	TopSpeed  float64 // ticks per second when the session ended
	Normal    int     // foods eaten per kind
	Gold      int
	Poison    int
	Timer     int
	Duration  time.Duration
	NewRecord bool
	CreatedAt time.Time
}

// Stats aggregates every recorded session.
type Stats struct {
	Sessions   int
	BestScore  int
	AvgScore   float64
	FoodsEaten int
	PlayTime   time.Duration
	LastPlayed time.Time
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
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			top_speed REAL NOT NULL,
			eaten_normal INTEGER NOT NULL DEFAULT 0,
			eaten_gold INTEGER NOT NULL DEFAULT 0,
			eaten_poison INTEGER NOT NULL DEFAULT 0,
			eaten_timer INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			new_record INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// RecordSession stores a finished session and returns its ID.
// An empty ID is replaced by a fresh UUID.
func (s *Store) RecordSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, score, length, top_speed, eaten_normal, eaten_gold, eaten_poison, eaten_timer, duration_ms, new_record)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.Score,
		sess.Length,
		sess.TopSpeed,
		sess.Normal,
		sess.Gold,
		sess.Poison,
		sess.Timer,
		sess.Duration.Milliseconds(),
		sess.NewRecord,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record session: %w", err)
	}
	return sess.ID, nil
}

// TopSessions retrieves the N best sessions by score.
func (s *Store) TopSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, score, length, top_speed, eaten_normal, eaten_gold, eaten_poison, eaten_timer,
		        duration_ms, new_record, created_at
		 FROM sessions
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentSessions retrieves the N most recent sessions.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, score, length, top_speed, eaten_normal, eaten_gold, eaten_poison, eaten_timer,
		        duration_ms, new_record, created_at
		 FROM sessions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionByID retrieves one session. Returns nil when it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	sessions, err := s.querySessions(
		`SELECT id, score, length, top_speed, eaten_normal, eaten_gold, eaten_poison, eaten_timer,
		        duration_ms, new_record, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.Score,
			&sess.Length,
			&sess.TopSpeed,
			&sess.Normal,
			&sess.Gold,
			&sess.Poison,
			&sess.Timer,
			&durationMS,
			&sess.NewRecord,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Duration = time.Duration(durationMS) * time.Millisecond
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Stats returns aggregates over every recorded session.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var playMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(eaten_normal + eaten_gold + eaten_poison + eaten_timer), 0),
		        COALESCE(SUM(duration_ms), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.BestScore, &stats.AvgScore, &stats.FoodsEaten, &playMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM sessions ORDER BY created_at DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes the whole history.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
