package ingest

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/bizonto/pkg/bizonto/concept"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
)

func quietPipeline() *Pipeline {
	return NewPipeline(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestProcessTaskSharedObject(t *testing.T) {
	p := quietPipeline()

	res := p.ProcessTask("Direct or coordinate financial activities to fund operations")
	require.Len(t, res.Statements, 2)
	assert.Equal(t, "direct", res.Statements[0].Verb)
	assert.Equal(t, "coordinate", res.Statements[1].Verb)

	require.Len(t, res.Concepts, 2)
	assert.Equal(t, Concept{
		ID: "FinancialActivities", Label: "financial activities", Kind: KindObject,
		Domain: expand.Objects, Source: res.Original,
	}, res.Concepts[0])
	assert.Equal(t, "FundOperations", res.Concepts[1].ID)
	assert.Equal(t, KindComplement, res.Concepts[1].Kind)
	assert.Empty(t, res.Rejected)

	stats := p.Stats()
	assert.EqualValues(t, 4, stats.Checked)
	assert.EqualValues(t, 4, stats.Accepted)
	assert.EqualValues(t, 2, stats.Duplicates)
	assert.Equal(t, 2, p.Registry().Len())
}

func TestProcessTaskRejectsArtifacts(t *testing.T) {
	p := quietPipeline()

	res := p.ProcessTask("Report to the board")
	assert.Empty(t, res.Statements)
	assert.Empty(t, res.Concepts)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "ToTheBoard", res.Rejected[0].ID)
	assert.Equal(t, concept.ReasonLeadingFunction, res.Rejected[0].Reason)
	assert.InDelta(t, 1.0, p.Stats().Rate(concept.ReasonLeadingFunction), 1e-9)
}

func TestProcessTaskDropsRejectedComplement(t *testing.T) {
	p := quietPipeline()

	res := p.ProcessTask("Write reports on findings, using ERP software")
	require.Len(t, res.Statements, 2)
	assert.Equal(t, "Findings", res.Statements[0].Complement)
	assert.Equal(t, "write", res.Statements[1].Verb)
	assert.Equal(t, "Reports", res.Statements[1].Object)
	assert.False(t, res.Statements[1].HasComplement())
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "UsingERPSoftware", res.Rejected[0].ID)

	res = p.ProcessTask("Prepare reports for it and the board")
	require.Len(t, res.Statements, 2)
	assert.Empty(t, res.Statements[0].Complement)
	assert.Equal(t, "Board", res.Statements[1].Complement)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "IT", res.Rejected[0].ID)

	// Every statement references registered ids only.
	for _, st := range res.Statements {
		assert.True(t, p.Registry().Contains(st.Object))
		if st.HasComplement() {
			assert.True(t, p.Registry().Contains(st.Complement))
		}
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	p := quietPipeline()
	p.ProcessName(expand.Roles, "Farm Supervisors")
	require.Equal(t, 1, p.Registry().Len())

	p.Reset()
	assert.Zero(t, p.Registry().Len())
	assert.Zero(t, p.Stats().Checked)

	res := p.ProcessName(expand.Roles, "Farm Supervisors")
	require.Len(t, res.Concepts, 1)
	assert.Zero(t, p.Stats().Duplicates)
}

func TestProcessTaskNoVerb(t *testing.T) {
	p := quietPipeline()
	res := p.ProcessTask("quarterly budget")
	assert.Empty(t, res.Statements)
	assert.Zero(t, p.Stats().Checked)
}

func TestProcessNameExpandsAndDeduplicates(t *testing.T) {
	p := quietPipeline()

	res := p.ProcessName(expand.Roles, "Farm, Ranch, and Aquaculture Supervisors")
	assert.Equal(t, []string{"Farm Supervisors", "Ranch Supervisors", "Aquaculture Supervisors"}, res.Variants)
	require.Len(t, res.Concepts, 3)
	assert.Equal(t, "FarmSupervisors", res.Concepts[0].ID)
	assert.Equal(t, expand.Roles, res.Concepts[0].Domain)

	// A later row naming an already-registered role adds nothing.
	res = p.ProcessName(expand.Roles, "Farm Supervisors")
	assert.Empty(t, res.Concepts)
	assert.Equal(t, 3, p.Registry().Len())
	assert.EqualValues(t, 1, p.Stats().Duplicates)
}

func TestProcessNameCustomExpander(t *testing.T) {
	cfg := expand.Preset(expand.Roles, nil)
	cfg.Suffixes = nil
	p := NewPipeline(Options{
		Expanders: map[expand.Domain]*expand.Expander{expand.Roles: expand.New(cfg)},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	res := p.ProcessName(expand.Roles, "Oil and Gas Supervisors")
	assert.Equal(t, []string{"Oil and Gas Supervisors"}, res.Variants)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, concept.ReasonEmbeddedConj, res.Rejected[0].Reason)
}

func TestProcessTechnology(t *testing.T) {
	p := quietPipeline()

	res := p.ProcessTechnology("Cascading Style Sheets (CSS)")
	assert.Equal(t, []string{"Cascading Style Sheets", "CSS"}, res.Variants)
	require.Len(t, res.Concepts, 2)
	assert.Equal(t, "CascadingStyleSheets", res.Concepts[0].ID)
	assert.Equal(t, "CSS", res.Concepts[0].Related)
	assert.Equal(t, "CSS", res.Concepts[1].ID)
	assert.Equal(t, KindAcronym, res.Concepts[1].Kind)
	assert.Equal(t, "CascadingStyleSheets", res.Concepts[1].Related)

	res = p.ProcessTechnology("Amazon Web Services AWS")
	require.Len(t, res.Concepts, 2)
	assert.Equal(t, "AWS", res.Concepts[1].ID)

	res = p.ProcessTechnology("Microsoft Excel")
	require.Len(t, res.Concepts, 1)
	assert.Empty(t, res.Concepts[0].Related)

	assert.Empty(t, p.ProcessTechnology("  ").Concepts)
}

func TestRejectionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewPipeline(Options{Logger: logger})

	p.ProcessTask("Report to the board")
	assert.Contains(t, buf.String(), "concept rejected")
	assert.Contains(t, buf.String(), "reason=leading-function-word")
}

func TestSharedRegistryAcrossPipelines(t *testing.T) {
	reg := concept.NewRegistry()
	tasks := NewPipeline(Options{Registry: reg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	names := NewPipeline(Options{Registry: reg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	tasks.ProcessTask("Maintain financial records")
	res := names.ProcessName(expand.Objects, "Financial Records")
	assert.Empty(t, res.Concepts)
	assert.Equal(t, []string{"FinancialRecords"}, reg.IDs())
}
