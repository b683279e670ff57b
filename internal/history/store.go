// Package history persists a record of each simulation attempt so past
// runs can be reviewed from the CLI.
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

// Status values for a recorded run.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record is one simulation attempt.
type Record struct {
	ID         string
	StartedAt  time.Time
	Status     string
	PackLayout string
	DriveName  string
	Models     string
	FinalSoc   string
	Error      string
}

// Store keeps run records in a local sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set history db journal mode: %w", err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	status TEXT NOT NULL,
	pack_layout TEXT NOT NULL,
	drive_name TEXT NOT NULL,
	models TEXT NOT NULL,
	final_soc TEXT NOT NULL DEFAULT '',
	error TEXT NOT NULL DEFAULT ''
)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultPath returns the history database location under the user's home.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ycsim", "history.db")
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append records one run attempt. A zero ID and StartedAt are filled in.
func (s *Store) Append(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
INSERT INTO runs (id, started_at, status, pack_layout, drive_name, models, final_soc, error)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt.Format(time.RFC3339), rec.Status,
		rec.PackLayout, rec.DriveName, rec.Models, rec.FinalSoc, rec.Error)
	if err != nil {
		return Record{}, fmt.Errorf("append run record: %w", err)
	}
	return rec, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
SELECT id, started_at, status, pack_layout, drive_name, models, final_soc, error
FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list run records: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var rec Record
		var startedAt string
		if err := rows.Scan(&rec.ID, &startedAt, &rec.Status, &rec.PackLayout,
			&rec.DriveName, &rec.Models, &rec.FinalSoc, &rec.Error); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}
