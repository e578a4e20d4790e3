package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
	"github.com/cognicore/bizonto/pkg/bizonto/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	checked INTEGER DEFAULT 0,
	accepted INTEGER DEFAULT 0,
	duplicates INTEGER DEFAULT 0,
	rejected_json TEXT
);

CREATE TABLE IF NOT EXISTS concepts (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL,
	label TEXT,
	kind TEXT,
	domain TEXT,
	source TEXT,
	related TEXT,
	run_id TEXT NOT NULL,
	UNIQUE(run_id, id),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS statements (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	task_id TEXT NOT NULL,
	verb TEXT NOT NULL,
	object TEXT NOT NULL,
	preposition TEXT NOT NULL DEFAULT '',
	complement TEXT NOT NULL DEFAULT '',
	source TEXT,
	UNIQUE(run_id, verb, object, preposition, complement),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_concepts_id ON concepts(id);
CREATE INDEX IF NOT EXISTS idx_statements_object ON statements(object);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// BeginRun records a new run.
func (s *sqliteStore) BeginRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id is empty", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source, started_at) VALUES (?, ?, ?)`,
		r.ID, r.Source, r.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// FinishRun stores the final counters of a run.
func (s *sqliteStore) FinishRun(ctx context.Context, id string, stats store.RunStats, finishedAt time.Time) error {
	rejected, err := json.Marshal(stats.Rejected)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE runs SET finished_at=?, checked=?, accepted=?, duplicates=?, rejected_json=?
WHERE id=?`,
		finishedAt.UTC().Format(time.RFC3339Nano),
		stats.Checked, stats.Accepted, stats.Duplicates, string(rejected), id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return nil
}

// GetRun retrieves a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, source, started_at, finished_at, checked, accepted, duplicates, rejected_json
FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns the most recent runs first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, source, started_at, finished_at, checked, accepted, duplicates, rejected_json
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var (
		r                  store.Run
		source             sql.NullString
		started            string
		finished, rejected sql.NullString
	)
	err := sc.Scan(&r.ID, &source, &started, &finished,
		&r.Stats.Checked, &r.Stats.Accepted, &r.Stats.Duplicates, &rejected)
	if err != nil {
		return store.Run{}, err
	}
	r.Source = source.String
	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return store.Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if finished.Valid && finished.String != "" {
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
			return store.Run{}, fmt.Errorf("parse finished_at: %w", err)
		}
	}
	if rejected.Valid && rejected.String != "" && rejected.String != "null" {
		if err := json.Unmarshal([]byte(rejected.String), &r.Stats.Rejected); err != nil {
			return store.Run{}, fmt.Errorf("parse rejected counts: %w", err)
		}
	}
	return r, nil
}

// AddConcept inserts a concept unless the run already stored its id.
func (s *sqliteStore) AddConcept(ctx context.Context, c store.Concept) (bool, error) {
	if c.ID == "" {
		return false, fmt.Errorf("%w: concept id is empty", internalerr.ErrInvalidInput)
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO concepts (id, label, kind, domain, source, related, run_id)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(run_id, id) DO NOTHING`,
		c.ID, c.Label, c.Kind, c.Domain, c.Source, c.Related, c.RunID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetConcept returns the earliest stored record for an id.
func (s *sqliteStore) GetConcept(ctx context.Context, id string) (store.Concept, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, label, kind, domain, source, related, run_id
FROM concepts WHERE id = ? ORDER BY seq LIMIT 1`, id)
	c, err := scanConcept(row)
	if err == sql.ErrNoRows {
		return store.Concept{}, false, nil
	}
	if err != nil {
		return store.Concept{}, false, err
	}
	return c, true, nil
}

// ConceptsByRun returns a run's concepts in insertion order.
func (s *sqliteStore) ConceptsByRun(ctx context.Context, runID string) ([]store.Concept, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, label, kind, domain, source, related, run_id
FROM concepts WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Concept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConcept(sc scanner) (store.Concept, error) {
	var (
		c                                    store.Concept
		label, kind, domain, source, related sql.NullString
	)
	if err := sc.Scan(&c.ID, &label, &kind, &domain, &source, &related, &c.RunID); err != nil {
		return store.Concept{}, err
	}
	c.Label = label.String
	c.Kind = kind.String
	c.Domain = domain.String
	c.Source = source.String
	c.Related = related.String
	return c, nil
}

// AddStatement stores a statement row; repeats within a run are ignored.
func (s *sqliteStore) AddStatement(ctx context.Context, st store.Statement) error {
	if st.Verb == "" || st.Object == "" {
		return fmt.Errorf("%w: statement needs verb and object", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO statements (run_id, task_id, verb, object, preposition, complement, source)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(run_id, verb, object, preposition, complement) DO NOTHING`,
		st.RunID, st.TaskID, st.Verb, st.Object, st.Preposition, st.Complement, st.Source,
	)
	return err
}

// StatementsByRun returns a run's statements in insertion order.
func (s *sqliteStore) StatementsByRun(ctx context.Context, runID string) ([]store.Statement, error) {
	return s.queryStatements(ctx, `
SELECT run_id, task_id, verb, object, preposition, complement, source
FROM statements WHERE run_id = ? ORDER BY seq`, runID)
}

// StatementsByObject returns statements acting on an object concept.
func (s *sqliteStore) StatementsByObject(ctx context.Context, objectID string, limit int) ([]store.Statement, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.queryStatements(ctx, `
SELECT run_id, task_id, verb, object, preposition, complement, source
FROM statements WHERE object = ? ORDER BY seq LIMIT ?`, objectID, limit)
}

func (s *sqliteStore) queryStatements(ctx context.Context, query string, args ...any) ([]store.Statement, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Statement
	for rows.Next() {
		var (
			st     store.Statement
			source sql.NullString
		)
		if err := rows.Scan(&st.RunID, &st.TaskID, &st.Verb, &st.Object, &st.Preposition, &st.Complement, &source); err != nil {
			return nil, err
		}
		st.Source = source.String
		out = append(out, st)
	}
	return out, rows.Err()
}
