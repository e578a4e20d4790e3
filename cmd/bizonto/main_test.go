package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const taskFixture = "O*NET-SOC Code\tTitle\tTask\n" +
	"11-1011.00\tChief Executives\tDirect or coordinate an organization's financial or budget activities to fund operations.\n" +
	"11-3031.01\tTreasurers and Controllers\tPrepare and review budgets and forecasts.\n" +
	"11-1011.00\tChief Executives\tReport to the board\n"

func TestConceptsCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tasks.tsv")
	require.NoError(t, os.WriteFile(input, []byte(taskFixture), 0o644))
	outDir := filepath.Join(dir, "out")
	db := filepath.Join(dir, "bizonto.db")

	out, err := execute(t, "concepts", input, "--out", outDir, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "3 rows from")
	assert.Contains(t, out, "leading-function-word")

	concepts, err := os.ReadFile(filepath.Join(outDir, "concepts.tsv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(concepts), "id\tlabel\tkind"))
	assert.Contains(t, string(concepts), "\nBudgets\t")

	stmts, err := os.ReadFile(filepath.Join(outDir, "statements.tsv"))
	require.NoError(t, err)
	assert.Contains(t, string(stmts), "\treview\tForecasts\t")

	out, err = execute(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "source=tasks.tsv")
}

func TestConceptsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tasks.tsv")
	require.NoError(t, os.WriteFile(input, []byte(taskFixture), 0o644))

	_, err := execute(t, "concepts", input, "--column", "Description", "--out", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestNamesCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "titles.tsv")
	fixture := "Code\tTitle\n45-1011\tFarm, Ranch, and Aquaculture Supervisors\n45-1012\tFarm Supervisors\n"
	require.NoError(t, os.WriteFile(input, []byte(fixture), 0o644))

	_, err := execute(t, "names", input, "--out", dir, "--domain", "roles")
	require.NoError(t, err)

	concepts, err := os.ReadFile(filepath.Join(dir, "concepts.tsv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(concepts)), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[3], "AquacultureSupervisors\t"))

	_, err = execute(t, "names", input, "--out", dir, "--domain", "planets")
	assert.Error(t, err)
}

func TestInspectCommands(t *testing.T) {
	out, err := execute(t, "expand", "Farm, Ranch, and Aquaculture Supervisors")
	require.NoError(t, err)
	assert.Contains(t, out, "[shared-suffix]")
	assert.Contains(t, out, "Ranch Supervisors\tRanchSupervisors\n")

	out, err = execute(t, "parse", "Direct or coordinate financial activities to fund operations")
	require.NoError(t, err)
	assert.Contains(t, out, "coordinate\tFinancialActivities\tto\tFundOperations\t")

	out, err = execute(t, "conjugate", "plan", "occur")
	require.NoError(t, err)
	assert.Equal(t, "plan\tplanned\tplanning\noccur\toccurred\toccurring\n", out)

	out, err = execute(t, "conjugate", "--gerund", "managing")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "manage\tmanaged\t"))

	out, err = execute(t, "acronym", "Cascading Style Sheets (CSS)")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Cascading Style Sheets\tCSS\tCascadingStyleSheets\t"))
}

func TestConfigErrorsSurface(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bizonto.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("domains:\n  planets: {}\n"), 0o644))

	_, err := execute(t, "--config", cfg, "expand", "Farm Supervisors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSuffixesCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "titles.tsv")
	fixture := "Title\nPark and Forest Stewards\nWildlife Stewards\nLand, Water, and Soil Stewards\nFarm Supervisors\n"
	require.NoError(t, os.WriteFile(input, []byte(fixture), 0o644))
	overlay := filepath.Join(dir, "overlay.yaml")

	out, err := execute(t, "suffixes", input, "--out", overlay)
	require.NoError(t, err)
	assert.Contains(t, out, "Stewards")
	assert.NotContains(t, out, "Supervisors")

	out, err = execute(t, "--lexicon", overlay, "expand", "Park and Forest Stewards")
	require.NoError(t, err)
	assert.Contains(t, out, "[shared-suffix]")
}
