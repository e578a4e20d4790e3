package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
	"github.com/cognicore/bizonto/pkg/bizonto/store"
)

// Store is an in-memory implementation of store.Store for tests and
// one-shot CLI runs.
type Store struct {
	mu         sync.RWMutex
	runs       map[string]store.Run
	concepts   []store.Concept // insertion order
	conceptIdx map[string]int  // run id + id -> index into concepts
	firstIdx   map[string]int  // id -> earliest index
	statements []store.Statement
	stmtKeys   map[string]struct{}
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:       make(map[string]store.Run),
		conceptIdx: make(map[string]int),
		firstIdx:   make(map[string]int),
		stmtKeys:   make(map[string]struct{}),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// BeginRun records a new run.
func (s *Store) BeginRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id is empty", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[r.ID]; ok {
		return fmt.Errorf("run %s: %w", r.ID, internalerr.ErrDuplicate)
	}
	s.runs[r.ID] = copyRun(r)
	return nil
}

// FinishRun stores the final counters of a run.
func (s *Store) FinishRun(ctx context.Context, id string, stats store.RunStats, finishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[id]
	if !ok {
		return fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	r.FinishedAt = finishedAt
	r.Stats = stats
	s.runs[id] = copyRun(r)
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, false, nil
	}
	return copyRun(r), true, nil
}

// ListRuns returns the most recent runs first. Run ids sort by time.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	out := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, copyRun(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AddConcept keeps the first record for an id within a run.
func (s *Store) AddConcept(ctx context.Context, c store.Concept) (bool, error) {
	if c.ID == "" {
		return false, fmt.Errorf("%w: concept id is empty", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.RunID + "\x00" + c.ID
	if _, ok := s.conceptIdx[key]; ok {
		return false, nil
	}
	s.conceptIdx[key] = len(s.concepts)
	if _, ok := s.firstIdx[c.ID]; !ok {
		s.firstIdx[c.ID] = len(s.concepts)
	}
	s.concepts = append(s.concepts, c)
	return true, nil
}

// GetConcept returns the earliest stored record for an id.
func (s *Store) GetConcept(ctx context.Context, id string) (store.Concept, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.firstIdx[id]
	if !ok {
		return store.Concept{}, false, nil
	}
	return s.concepts[i], true, nil
}

// ConceptsByRun returns a run's concepts in insertion order.
func (s *Store) ConceptsByRun(ctx context.Context, runID string) ([]store.Concept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Concept
	for _, c := range s.concepts {
		if c.RunID == runID {
			out = append(out, c)
		}
	}
	return out, nil
}

// AddStatement stores a statement row; repeats within a run are ignored.
func (s *Store) AddStatement(ctx context.Context, st store.Statement) error {
	if st.Verb == "" || st.Object == "" {
		return fmt.Errorf("%w: statement needs verb and object", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := st.RunID + "\x00" + st.Verb + "\x00" + st.Object + "\x00" + st.Preposition + "\x00" + st.Complement
	if _, ok := s.stmtKeys[key]; ok {
		return nil
	}
	s.stmtKeys[key] = struct{}{}
	s.statements = append(s.statements, st)
	return nil
}

// StatementsByRun returns a run's statements in insertion order.
func (s *Store) StatementsByRun(ctx context.Context, runID string) ([]store.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Statement
	for _, st := range s.statements {
		if st.RunID == runID {
			out = append(out, st)
		}
	}
	return out, nil
}

// StatementsByObject returns statements acting on an object concept.
func (s *Store) StatementsByObject(ctx context.Context, objectID string, limit int) ([]store.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	var out []store.Statement
	for _, st := range s.statements {
		if st.Object != objectID {
			continue
		}
		out = append(out, st)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func copyRun(r store.Run) store.Run {
	if r.Stats.Rejected != nil {
		rejected := make(map[string]int64, len(r.Stats.Rejected))
		for k, v := range r.Stats.Rejected {
			rejected[k] = v
		}
		r.Stats.Rejected = rejected
	}
	return r
}

var _ store.Store = (*Store)(nil)
