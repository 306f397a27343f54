// Package history persists a record of completed runs in a small
// SQLite database, so `funbf history` can show what was executed, for
// how long, and whether it failed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded execution.
type Run struct {
	ID          string
	SourcePath  string
	Mode        string // "run" or "debug"
	Steps       uint64
	OutputBytes int
	Duration    time.Duration
	StartedAt   time.Time
	Error       string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	source_path  TEXT NOT NULL,
	mode         TEXT NOT NULL,
	steps        INTEGER NOT NULL,
	output_bytes INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	started_at   TEXT NOT NULL,
	error        TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one run, assigning it an id when absent.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_path, mode, steps, output_bytes, duration_ms, started_at, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.Mode, run.Steps, run.OutputBytes,
		run.Duration.Milliseconds(), run.StartedAt.UTC().Format(time.RFC3339Nano), run.Error,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, mode, steps, output_bytes, duration_ms, started_at, error
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run        Run
			durationMS int64
			startedAt  string
		)
		if err := rows.Scan(&run.ID, &run.SourcePath, &run.Mode, &run.Steps,
			&run.OutputBytes, &durationMS, &startedAt, &run.Error); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			run.StartedAt = t
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// Prune deletes runs older than the given age and returns how many
// were removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
