package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/bizonto/pkg/bizonto"
	"github.com/cognicore/bizonto/pkg/bizonto/concept"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
	"github.com/cognicore/bizonto/pkg/bizonto/source"
	"github.com/cognicore/bizonto/pkg/bizonto/store"
)

// corpusFlags are shared by the commands that process a whole TSV file.
type corpusFlags struct {
	column     string
	outDir     string
	dbPath     string
	dups       bool
	similarity float64
}

func (f *corpusFlags) register(cmd *cobra.Command, column string) {
	cmd.Flags().StringVar(&f.column, "column", column, "Input column to read")
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "Directory for the emitted TSV tables")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "SQLite database for run history (default: in memory)")
	cmd.Flags().BoolVar(&f.dups, "dups", false, "Report near-duplicate identifiers")
	cmd.Flags().Float64Var(&f.similarity, "similarity", 0, "Jaro-Winkler threshold for --dups (default from config, else 0.92)")
}

func conceptsCmd(a *app) *cobra.Command {
	var f corpusFlags
	cmd := &cobra.Command{
		Use:   "concepts <tasks.tsv>",
		Short: "Parse task statements into concepts and statements",
		Long: `Parse every task statement of a TSV file and write concepts.tsv and
statements.tsv.

Examples:
  bizonto concepts "Task Statements.txt" --column Task --out build/
  bizonto concepts tasks.tsv --db bizonto.db --dups`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCorpus(cmd, args[0], &f, true, func(ctx context.Context, e *bizonto.Engine, text string) error {
				_, err := e.IngestTask(ctx, text)
				return err
			})
		},
	}
	f.register(cmd, "Task")
	return cmd
}

func namesCmd(a *app) *cobra.Command {
	var (
		f          corpusFlags
		domain     string
		technology bool
	)
	cmd := &cobra.Command{
		Use:   "names <names.tsv>",
		Short: "Expand titles or product names into concepts",
		Long: `Expand every title or name of a TSV file with a domain preset and write
concepts.tsv. With --technology, names are split into full name and
acronym instead.

Examples:
  bizonto names occupations.tsv --column Title --domain roles
  bizonto names naics.tsv --column "NAICS Title" --domain industries
  bizonto names tools.tsv --column Example --technology`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDomain(domain)
			if err != nil {
				return err
			}
			return a.runCorpus(cmd, args[0], &f, false, func(ctx context.Context, e *bizonto.Engine, text string) error {
				if technology {
					_, err := e.IngestTechnology(ctx, text)
					return err
				}
				_, err := e.IngestName(ctx, d, text)
				return err
			})
		},
	}
	f.register(cmd, "Title")
	cmd.Flags().StringVarP(&domain, "domain", "d", string(expand.Roles), "Expander preset (roles, industries, products, services, processes, objects)")
	cmd.Flags().BoolVar(&technology, "technology", false, "Treat rows as technology names with acronyms")
	return cmd
}

func runsCmd(a *app) *cobra.Command {
	var (
		dbPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(ctx, limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, r := range runs {
				printRun(out, r)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database (default from config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list")
	return cmd
}

// runCorpus drives one engine run over the rows of path.
func (a *app) runCorpus(cmd *cobra.Command, path string, f *corpusFlags, statements bool,
	each func(ctx context.Context, e *bizonto.Engine, text string) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := readColumn(cmd.InOrStdin(), path, f.column)
	if err != nil {
		return err
	}

	st, err := a.openStore(ctx, f.dbPath)
	if err != nil {
		return err
	}
	engine := bizonto.New(bizonto.Options{
		Store:    st,
		Pipeline: a.comp.NewPipeline(a.logger),
		Logger:   a.logger,
	})
	defer engine.Close()

	runID, err := engine.Begin(ctx, filepath.Base(path))
	if err != nil {
		return err
	}
	for _, text := range rows {
		if err := each(ctx, engine, text); err != nil {
			return err
		}
	}
	run, err := engine.Finish(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeTable(filepath.Join(f.outDir, "concepts.tsv"), func(w io.Writer) (int, error) {
		return engine.WriteConcepts(ctx, w, runID)
	}); err != nil {
		return err
	}
	if statements {
		if err := writeTable(filepath.Join(f.outDir, "statements.tsv"), func(w io.Writer) (int, error) {
			return engine.WriteStatements(ctx, w, runID)
		}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d rows from %s\n", len(rows), path)
	printRun(out, run)
	printReasons(out, engine.Pipeline().Stats())

	if f.dups {
		threshold := f.similarity
		if threshold == 0 {
			threshold = a.comp.Config.Similarity
		}
		for _, d := range engine.NearDuplicates(threshold) {
			fmt.Fprintf(out, "near-duplicate\t%s\t%s\t%.3f\n", d.A, d.B, d.Score)
		}
	}
	return nil
}

// readColumn reads one column from path, or from stdin when path is "-".
func readColumn(stdin io.Reader, path, column string) ([]string, error) {
	if path == "-" {
		return source.ReadRows(stdin, column)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	rows, err := source.ReadRows(file, column)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func writeTable(path string, write func(io.Writer) (int, error)) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

func printRun(out io.Writer, r store.Run) {
	status := "running"
	if r.Finished() {
		status = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
	}
	fmt.Fprintf(out, "run %s  source=%s  checked=%d accepted=%d duplicates=%d  %s\n",
		r.ID, r.Source, r.Stats.Checked, r.Stats.Accepted, r.Stats.Duplicates, status)
}

func printReasons(out io.Writer, stats *concept.Stats) {
	for _, r := range stats.TopReasons() {
		fmt.Fprintf(out, "  rejected %-22s %5d  (%.1f%%)\n", r, stats.Rejected[r], 100*stats.Rate(r))
	}
}

func parseDomain(name string) (expand.Domain, error) {
	for _, d := range expand.Domains {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown domain %q", internalerr.ErrInvalidInput, name)
}
