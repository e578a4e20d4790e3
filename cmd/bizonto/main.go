// Package main provides the bizonto binary: it turns task statements, job
// titles and product names from TSV sources into canonical concept and
// statement tables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognicore/bizonto/pkg/bizonto/config"
	"github.com/cognicore/bizonto/pkg/bizonto/store"
	"github.com/cognicore/bizonto/pkg/bizonto/store/memstore"
	"github.com/cognicore/bizonto/pkg/bizonto/store/sqlite"
)

const appName = "bizonto"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the persistent flags and the components they load.
type app struct {
	configPath  string
	lexiconPath string
	verbsPath   string
	verbose     bool

	logger *slog.Logger
	comp   *config.Components
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Normalize business phrases into canonical concepts",
		Long: `bizonto expands coordinated titles and names, parses imperative task
statements into verb/object/complement triples, and emits validated
PascalCase concept identifiers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&a.lexiconPath, "lexicon", "", "Lexicon overlay (YAML), overrides the config file")
	flags.StringVar(&a.verbsPath, "verbs", "", "Verb table (TSV), overrides the config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log rejected identifiers")

	cmd.AddCommand(
		conceptsCmd(a),
		namesCmd(a),
		runsCmd(a),
		expandCmd(a),
		parseCmd(a),
		conjugateCmd(a),
		acronymCmd(a),
		suffixesCmd(a),
	)
	return cmd
}

func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	loader := &config.Loader{
		ConfigPath:  a.configPath,
		LexiconPath: a.lexiconPath,
		VerbsPath:   a.verbsPath,
	}
	comp, err := loader.Load()
	if err != nil {
		return err
	}
	a.comp = comp
	return nil
}

// openStore opens the sqlite database at path, falling back to the config
// file's store and then to memory.
func (a *app) openStore(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		path = a.comp.Config.Store
	}
	if path == "" {
		return memstore.New(), nil
	}
	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return st, nil
}
