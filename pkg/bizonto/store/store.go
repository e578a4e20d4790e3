package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists the accepted output of corpus runs.
type Store interface {
	Close() error

	// Runs
	BeginRun(ctx context.Context, r Run) error
	FinishRun(ctx context.Context, id string, stats RunStats, finishedAt time.Time) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Concepts are keyed by run and id. AddConcept keeps the first record
	// for an id within a run and reports whether this call inserted it;
	// GetConcept returns the earliest record across runs.
	AddConcept(ctx context.Context, c Concept) (bool, error)
	GetConcept(ctx context.Context, id string) (Concept, bool, error)
	ConceptsByRun(ctx context.Context, runID string) ([]Concept, error)

	// Statements
	AddStatement(ctx context.Context, s Statement) error
	StatementsByRun(ctx context.Context, runID string) ([]Statement, error)
	StatementsByObject(ctx context.Context, objectID string, limit int) ([]Statement, error)
}

// Run is one corpus-generation pass.
type Run struct {
	ID         string
	Source     string // input file or label
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
	Stats      RunStats
}

// Finished reports whether FinishRun was recorded.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// RunStats are the quality counters recorded when a run finishes.
type RunStats struct {
	Checked    int64
	Accepted   int64
	Duplicates int64
	Rejected   map[string]int64 // reason -> count
}

// Concept is a stored identifier.
type Concept struct {
	ID      string
	Label   string
	Kind    string
	Domain  string
	Source  string
	Related string
	RunID   string
}

// Statement is a stored task relationship row.
type Statement struct {
	RunID       string
	TaskID      string
	Verb        string
	Object      string
	Preposition string
	Complement  string
	Source      string
}

var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a lexicographically sortable run id for t.
func NewRunID(t time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), idEntropy).String()
}
