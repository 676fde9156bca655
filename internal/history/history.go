// Package history keeps a log of documentation runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/moduledoc/internal/documenter"
	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// Run is one recorded generation run.
type Run struct {
	ID                   string
	Application          string
	Start                time.Time
	Duration             time.Duration
	Modules              int
	Fragments            map[string]int
	ConfigurationWritten bool
	Artifacts            int
	Outcome              string
	Error                string
}

// TotalFragments sums fragments over all modules.
func (r Run) TotalFragments() int {
	total := 0
	for _, n := range r.Fragments {
		total += n
	}
	return total
}

// FromReport converts a run report and the run's error into a Run.
func FromReport(rep documenter.RunReport, runErr error) Run {
	run := Run{
		ID:                   rep.RunID,
		Application:          rep.Application,
		Start:                rep.Start,
		Duration:             rep.Duration(),
		Modules:              rep.Modules,
		Fragments:            rep.Fragments,
		ConfigurationWritten: rep.ConfigurationWritten,
		Artifacts:            len(rep.Artifacts),
		Outcome:              string(rep.Outcome),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	return run
}

// SQLiteStore persists runs in a single table.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (and if needed creates) the store at dbPath.
// ":memory:" gives a throwaway in-memory store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryHistory, "open history store").
			WithContext("path", dbPath).
			Build()
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, ferrors.WrapError(err, ferrors.CategoryHistory, "initialize history store").
			WithContext("path", dbPath).
			Build()
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		application TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		modules INTEGER NOT NULL,
		fragments TEXT NOT NULL,
		configuration_written INTEGER NOT NULL,
		artifacts INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores run. Recording the same run id twice replaces the earlier
// row, so a publish after a generate keeps one entry.
func (s *SQLiteStore) Record(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fragments, err := json.Marshal(run.Fragments)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "marshal fragment counts").Build()
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, application, started_at, duration_ms, modules, fragments,
			configuration_written, artifacts, outcome, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			duration_ms = excluded.duration_ms,
			fragments = excluded.fragments,
			configuration_written = excluded.configuration_written,
			artifacts = excluded.artifacts,
			outcome = excluded.outcome,
			error = excluded.error`,
		run.ID, run.Application, run.Start.UnixMilli(), run.Duration.Milliseconds(), run.Modules,
		string(fragments), run.ConfigurationWritten, run.Artifacts, run.Outcome, run.Error,
	)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryHistory, "insert run").
			WithContext("run_id", run.ID).
			Build()
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, application, started_at, duration_ms, modules, fragments,
			configuration_written, artifacts, outcome, COALESCE(error, '')
		FROM runs ORDER BY started_at DESC, seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryHistory, "query runs").Build()
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			startedAt  int64
			durationMS int64
			fragments  string
		)
		if err := rows.Scan(&r.ID, &r.Application, &startedAt, &durationMS, &r.Modules, &fragments,
			&r.ConfigurationWritten, &r.Artifacts, &r.Outcome, &r.Error); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryHistory, "scan run").Build()
		}
		r.Start = time.UnixMilli(startedAt)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		if err := json.Unmarshal([]byte(fragments), &r.Fragments); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "unmarshal fragment counts").
				WithContext("run_id", r.ID).
				Build()
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryHistory, "iterate runs").Build()
	}
	return runs, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
