// Package bizonto ties the normalization pipeline to a store: each corpus
// pass is a run whose accepted concepts and statements are persisted and
// can be exported as TSV tables.
package bizonto

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cognicore/bizonto/pkg/bizonto/concept"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/ingest"
	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
	"github.com/cognicore/bizonto/pkg/bizonto/source"
	"github.com/cognicore/bizonto/pkg/bizonto/store"
	"github.com/cognicore/bizonto/pkg/bizonto/store/memstore"
)

// Engine is the main normalization facade
type Engine struct {
	store    store.Store
	pipeline *ingest.Pipeline
	logger   *slog.Logger
	now      func() time.Time

	runID string
}

// Options configures an Engine
type Options struct {
	Store    store.Store      // nil uses an in-memory store
	Pipeline *ingest.Pipeline // nil uses built-in defaults
	Logger   *slog.Logger     // Optional, uses slog.Default() if nil
	Now      func() time.Time // clock for run timestamps
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	e := &Engine{
		store:    opts.Store,
		pipeline: opts.Pipeline,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.store == nil {
		e.store = memstore.New()
	}
	if e.pipeline == nil {
		e.pipeline = ingest.NewPipeline(ingest.Options{Logger: e.logger})
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Close cleanly shuts down the engine's store
func (e *Engine) Close() error {
	return e.store.Close()
}

// Pipeline returns the underlying pipeline.
func (e *Engine) Pipeline() *ingest.Pipeline { return e.pipeline }

// Store returns the underlying store.
func (e *Engine) Store() store.Store { return e.store }

// RunID returns the active run, or "" between runs.
func (e *Engine) RunID() string { return e.runID }

// Begin starts a run labelled with src and returns its id. Each run gets
// a fresh registry, so identical input yields identical tables.
func (e *Engine) Begin(ctx context.Context, src string) (string, error) {
	if e.runID != "" {
		return "", fmt.Errorf("%w: run %s still active", internalerr.ErrInvalidInput, e.runID)
	}
	now := e.now()
	id := store.NewRunID(now)
	if err := e.store.BeginRun(ctx, store.Run{ID: id, Source: src, StartedAt: now}); err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	e.runID = id
	e.pipeline.Reset()
	e.logger.Info("run started", "run", id, "source", src)
	return id, nil
}

// IngestTask parses a task description and persists its accepted concepts
// and statements.
func (e *Engine) IngestTask(ctx context.Context, text string) (ingest.TaskResult, error) {
	if err := e.active(); err != nil {
		return ingest.TaskResult{}, err
	}
	res := e.pipeline.ProcessTask(text)
	if err := e.saveConcepts(ctx, res.Concepts); err != nil {
		return res, err
	}
	for _, st := range res.Statements {
		err := e.store.AddStatement(ctx, store.Statement{
			RunID:       e.runID,
			TaskID:      st.TaskID(),
			Verb:        st.Verb,
			Object:      st.Object,
			Preposition: st.Preposition,
			Complement:  st.Complement,
			Source:      text,
		})
		if err != nil {
			return res, fmt.Errorf("add statement %s: %w", st.TaskID(), err)
		}
	}
	return res, nil
}

// IngestName expands a title or product name and persists its concepts.
func (e *Engine) IngestName(ctx context.Context, domain expand.Domain, text string) (ingest.NameResult, error) {
	if err := e.active(); err != nil {
		return ingest.NameResult{}, err
	}
	res := e.pipeline.ProcessName(domain, text)
	return res, e.saveConcepts(ctx, res.Concepts)
}

// IngestTechnology registers a technology name and its acronym.
func (e *Engine) IngestTechnology(ctx context.Context, text string) (ingest.NameResult, error) {
	if err := e.active(); err != nil {
		return ingest.NameResult{}, err
	}
	res := e.pipeline.ProcessTechnology(text)
	return res, e.saveConcepts(ctx, res.Concepts)
}

// Finish records the run's counters and closes it.
func (e *Engine) Finish(ctx context.Context) (store.Run, error) {
	if err := e.active(); err != nil {
		return store.Run{}, err
	}
	id := e.runID
	stats := runStats(e.pipeline.Stats())
	if err := e.store.FinishRun(ctx, id, stats, e.now()); err != nil {
		return store.Run{}, fmt.Errorf("finish run: %w", err)
	}
	e.runID = ""

	run, ok, err := e.store.GetRun(ctx, id)
	if err != nil {
		return store.Run{}, fmt.Errorf("get run: %w", err)
	}
	if !ok {
		return store.Run{}, fmt.Errorf("get run %s: %w", id, internalerr.ErrNotFound)
	}
	e.logger.Info("run finished", "run", id,
		"checked", stats.Checked, "accepted", stats.Accepted, "duplicates", stats.Duplicates)
	return run, nil
}

// NearDuplicates reports registered ids that differ only by inflection or
// spelling noise.
func (e *Engine) NearDuplicates(threshold float64) []concept.NearDuplicate {
	return concept.NearDuplicates(e.pipeline.Registry().IDs(), threshold)
}

// WriteConcepts emits a run's concepts as a concepts.tsv table.
func (e *Engine) WriteConcepts(ctx context.Context, w io.Writer, runID string) (int, error) {
	concepts, err := e.store.ConceptsByRun(ctx, runID)
	if err != nil {
		return 0, fmt.Errorf("list concepts: %w", err)
	}
	tw, err := source.NewWriter(w, source.ConceptHeader)
	if err != nil {
		return 0, err
	}
	for _, c := range concepts {
		if err := tw.Write(c.ID, c.Label, c.Kind, c.Domain, c.Source, c.Related); err != nil {
			return tw.Rows(), err
		}
	}
	return tw.Rows(), tw.Flush()
}

// WriteStatements emits a run's statements as a statements.tsv table.
func (e *Engine) WriteStatements(ctx context.Context, w io.Writer, runID string) (int, error) {
	stmts, err := e.store.StatementsByRun(ctx, runID)
	if err != nil {
		return 0, fmt.Errorf("list statements: %w", err)
	}
	tw, err := source.NewWriter(w, source.StatementHeader)
	if err != nil {
		return 0, err
	}
	for _, s := range stmts {
		if err := tw.Write(s.TaskID, s.Verb, s.Object, s.Preposition, s.Complement, s.Source); err != nil {
			return tw.Rows(), err
		}
	}
	return tw.Rows(), tw.Flush()
}

func (e *Engine) active() error {
	if e.runID == "" {
		return fmt.Errorf("%w: no active run", internalerr.ErrInvalidInput)
	}
	return nil
}

func (e *Engine) saveConcepts(ctx context.Context, concepts []ingest.Concept) error {
	for _, c := range concepts {
		_, err := e.store.AddConcept(ctx, store.Concept{
			ID:      c.ID,
			Label:   c.Label,
			Kind:    string(c.Kind),
			Domain:  string(c.Domain),
			Source:  c.Source,
			Related: c.Related,
			RunID:   e.runID,
		})
		if err != nil {
			return fmt.Errorf("add concept %s: %w", c.ID, err)
		}
	}
	return nil
}

func runStats(s *concept.Stats) store.RunStats {
	rs := store.RunStats{
		Checked:    s.Checked,
		Accepted:   s.Accepted,
		Duplicates: s.Duplicates,
		Rejected:   make(map[string]int64, len(s.Rejected)),
	}
	for r, n := range s.Rejected {
		if n > 0 {
			rs.Rejected[string(r)] = n
		}
	}
	return rs
}
