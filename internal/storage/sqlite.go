// Package storage provides SQLite-based persistence for simulator sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session log.
type Store struct {
	db *sql.DB
}

// SessionEntry records one simulator session.
type SessionEntry struct {
	ID             int64
	StartedAt      time.Time
	DurationSecs   int
	Generations    int
	PeakPopulation int
	CellsPainted   int
	Rows           int
	Cols           int
}

// Totals aggregates the whole session log.
type Totals struct {
	Sessions       int
	Generations    int64
	PeakPopulation int
	CellsPainted   int64
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

	// Create parent directories
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			cells_painted INTEGER NOT NULL DEFAULT 0,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL
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

// SaveSession records a completed session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (started_at, duration_secs, generations, peak_population, cells_painted, grid_rows, grid_cols)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.StartedAt.UTC().Format("2006-01-02 15:04:05"),
		e.DurationSecs,
		e.Generations,
		e.PeakPopulation,
		e.CellsPainted,
		e.Rows,
		e.Cols,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, duration_secs, generations, peak_population, cells_painted, grid_rows, grid_cols
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var startedAt any
		if err := rows.Scan(&e.ID, &startedAt, &e.DurationSecs, &e.Generations,
			&e.PeakPopulation, &e.CellsPainted, &e.Rows, &e.Cols); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := startedAt.(type) {
		case time.Time:
			e.StartedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.StartedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetTotals returns aggregate statistics across all sessions.
func (s *Store) GetTotals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(generations), 0),
		        COALESCE(MAX(peak_population), 0),
		        COALESCE(SUM(cells_painted), 0)
		 FROM sessions`,
	).Scan(&t.Sessions, &t.Generations, &t.PeakPopulation, &t.CellsPainted)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	return t, nil
}

// ClearSessions deletes the whole session log.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
