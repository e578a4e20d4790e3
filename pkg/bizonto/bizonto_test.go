package bizonto

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/ingest"
	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
	"github.com/cognicore/bizonto/pkg/bizonto/store"
	"github.com/cognicore/bizonto/pkg/bizonto/store/memstore"
	"github.com/cognicore/bizonto/pkg/bizonto/store/sqlite"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return newEngineWithStore(t, memstore.New())
}

func newEngineWithStore(t *testing.T, st store.Store) *Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := New(Options{
		Store:    st,
		Pipeline: ingest.NewPipeline(ingest.Options{Logger: logger}),
		Logger:   logger,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	t.Cleanup(func() { e.Close() })
	return e
}

func TestEngineRun(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	runID, err := e.Begin(ctx, "Task Statements.txt")
	require.NoError(t, err)
	assert.Equal(t, runID, e.RunID())

	res, err := e.IngestTask(ctx, "Direct or coordinate financial activities to fund operations")
	require.NoError(t, err)
	assert.Len(t, res.Statements, 2)

	_, err = e.IngestTask(ctx, "Report to the board")
	require.NoError(t, err)

	names, err := e.IngestName(ctx, expand.Roles, "Farm, Ranch, and Aquaculture Supervisors")
	require.NoError(t, err)
	assert.Len(t, names.Concepts, 3)

	run, err := e.Finish(ctx)
	require.NoError(t, err)
	assert.Empty(t, e.RunID())
	assert.True(t, run.Finished())
	assert.Equal(t, "Task Statements.txt", run.Source)
	assert.EqualValues(t, 8, run.Stats.Checked)
	assert.EqualValues(t, 7, run.Stats.Accepted)
	assert.EqualValues(t, 2, run.Stats.Duplicates)
	assert.Equal(t, map[string]int64{"leading-function-word": 1}, run.Stats.Rejected)

	concepts, err := e.Store().ConceptsByRun(ctx, runID)
	require.NoError(t, err)
	require.Len(t, concepts, 5)
	assert.Equal(t, "FinancialActivities", concepts[0].ID)
	assert.Equal(t, "object", concepts[0].Kind)
	assert.Equal(t, "roles", concepts[2].Domain)

	stmts, err := e.Store().StatementsByRun(ctx, runID)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, "Direct_Financial_Activities_To_Fund_Operations", stmts[0].TaskID)
	assert.Equal(t, "FundOperations", stmts[1].Complement)
}

func TestEngineStatsArePerRun(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	_, err := e.Begin(ctx, "first")
	require.NoError(t, err)
	_, err = e.IngestName(ctx, expand.Roles, "Farm Supervisors")
	require.NoError(t, err)
	_, err = e.Finish(ctx)
	require.NoError(t, err)

	_, err = e.Begin(ctx, "second")
	require.NoError(t, err)
	_, err = e.IngestName(ctx, expand.Roles, "Farm Supervisors")
	require.NoError(t, err)
	run, err := e.Finish(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, run.Stats.Checked)
	assert.EqualValues(t, 1, run.Stats.Accepted)
	assert.Zero(t, run.Stats.Duplicates)
	assert.Empty(t, run.Stats.Rejected)

	runs, err := e.Store().ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "second", runs[0].Source)
}

func TestEngineRequiresActiveRun(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	_, err := e.IngestTask(ctx, "Review budgets")
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
	_, err = e.Finish(ctx)
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))

	_, err = e.Begin(ctx, "a")
	require.NoError(t, err)
	_, err = e.Begin(ctx, "b")
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}

func TestEngineWriteTables(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	runID, err := e.Begin(ctx, "tech")
	require.NoError(t, err)
	_, err = e.IngestTechnology(ctx, "Amazon Web Services AWS")
	require.NoError(t, err)
	_, err = e.IngestTask(ctx, "Review budgets")
	require.NoError(t, err)
	_, err = e.Finish(ctx)
	require.NoError(t, err)

	var concepts bytes.Buffer
	n, err := e.WriteConcepts(ctx, &concepts, runID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	lines := strings.Split(strings.TrimSpace(concepts.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id\tlabel\tkind\tdomain\tsource\trelated", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "AmazonWebServices\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\tAWS"))

	var stmts bytes.Buffer
	n, err = e.WriteStatements(ctx, &stmts, runID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, stmts.String(), "ReviewBudgets\treview\tBudgets\t\t\tReview budgets")
}

func TestEngineNearDuplicates(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	_, err := e.Begin(ctx, "dups")
	require.NoError(t, err)
	for _, name := range []string{"Budget Analysts", "Budget Analyst", "Farm Supervisors"} {
		_, err := e.IngestName(ctx, expand.Roles, name)
		require.NoError(t, err)
	}

	dups := e.NearDuplicates(0)
	require.NotEmpty(t, dups)
	assert.Equal(t, "BudgetAnalysts", dups[0].A)
	assert.Equal(t, "BudgetAnalyst", dups[0].B)
	assert.True(t, dups[0].SameStem)
}

func TestEngineRerunIsIdentical(t *testing.T) {
	tasks := []string{
		"Direct or coordinate financial activities to fund operations",
		"Prepare budget reports",
	}
	tables := func(t *testing.T, e *Engine) (string, string) {
		ctx := context.Background()
		runID, err := e.Begin(ctx, "tasks.tsv")
		require.NoError(t, err)
		for _, task := range tasks {
			_, err := e.IngestTask(ctx, task)
			require.NoError(t, err)
		}
		_, err = e.Finish(ctx)
		require.NoError(t, err)

		var concepts, stmts bytes.Buffer
		_, err = e.WriteConcepts(ctx, &concepts, runID)
		require.NoError(t, err)
		_, err = e.WriteStatements(ctx, &stmts, runID)
		require.NoError(t, err)
		return concepts.String(), stmts.String()
	}

	t.Run("memstore", func(t *testing.T) {
		e := newTestEngine(t)
		c1, s1 := tables(t, e)
		c2, s2 := tables(t, e)
		assert.Contains(t, c1, "\nBudgetReports\t")
		assert.Equal(t, c1, c2)
		assert.Equal(t, s1, s2)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bizonto.db")
		open := func() *Engine {
			st, err := sqlite.OpenSQLite(context.Background(), path)
			require.NoError(t, err)
			return newEngineWithStore(t, st)
		}
		c1, s1 := tables(t, open())
		c2, s2 := tables(t, open())
		lines := strings.Split(strings.TrimSpace(c1), "\n")
		assert.Len(t, lines, 4)
		assert.Equal(t, c1, c2)
		assert.Equal(t, s1, s2)
	})
}
