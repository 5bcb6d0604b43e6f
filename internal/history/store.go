// Package history records command runs in a local SQLite database so
// past generation activity can be inspected per project.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// timeNow is a package-level var to allow test injection.
var timeNow = time.Now

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Run is one recorded command invocation.
type Run struct {
	ID        string
	Command   string // idea, plan, code, review, ...
	Project   string // project slug, empty for commands without one
	Mode      string // coding runs only: create, update or fix
	Files     int    // files written by the run
	Status    string
	Detail    string // error text or extra notes
	StartedAt time.Time
	Duration  time.Duration
}

// Store is the run log backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating the file and its
// directory when needed, and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create directory: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			command     TEXT NOT NULL,
			project     TEXT NOT NULL DEFAULT '',
			mode        TEXT NOT NULL DEFAULT '',
			files       INTEGER NOT NULL DEFAULT 0,
			status      TEXT NOT NULL,
			detail      TEXT NOT NULL DEFAULT '',
			started_at  TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts one run and returns its ID, generating one when unset.
// A zero StartedAt is filled with the current time.
func (s *Store) Record(r Run) (string, error) {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	started := r.StartedAt
	if started.IsZero() {
		started = timeNow()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, command, project, mode, files, status, detail, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Command, r.Project, r.Mode, r.Files, r.Status, r.Detail,
		started.UTC().Format(time.RFC3339), r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("history: record run: %w", err)
	}
	return id, nil
}

// List returns recent runs, newest first, optionally filtered by project
// slug. A non-positive limit defaults to 20.
func (s *Store) List(project string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, command, project, mode, files, status, detail, started_at, duration_ms FROM runs`
	args := []any{}
	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}
	query += " ORDER BY started_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
			ms      int64
		)
		if err := rows.Scan(&r.ID, &r.Command, &r.Project, &r.Mode, &r.Files, &r.Status, &r.Detail, &started, &ms); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.Duration = time.Duration(ms) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
