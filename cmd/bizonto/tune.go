package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognicore/bizonto/pkg/bizonto/autotune"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
)

func suffixesCmd(a *app) *cobra.Command {
	var (
		column     string
		domain     string
		outPath    string
		thresholds autotune.Thresholds
	)
	cmd := &cobra.Command{
		Use:   "suffixes <titles.tsv>",
		Short: "Suggest suffix vocabulary for a domain",
		Long: `Count the head words of a title column and suggest the ones missing from
the domain's suffix vocabulary. With --out, the suggestions are written as
a lexicon overlay for --lexicon.

Examples:
  bizonto suffixes occupations.tsv --column Title --domain roles
  bizonto suffixes naics.tsv --column "NAICS Title" -d industries --out overlay.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDomain(domain)
			if err != nil {
				return err
			}
			titles, err := readColumn(cmd.InOrStdin(), args[0], column)
			if err != nil {
				return err
			}

			tuner := autotune.AutoTuner{Lexicon: a.comp.Lexicon, Domain: string(d), Thresholds: thresholds}
			cands, err := tuner.Run(cmd.Context(), titles)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cands {
				fmt.Fprintf(out, "%-24s support=%d coordinated=%d share=%.3f  %s\n",
					c.Word, c.Support, c.Coordinated, c.Share, c.Reason)
			}
			if outPath == "" {
				return nil
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create overlay: %w", err)
			}
			if err := autotune.WriteOverlay(file, string(d), cands); err != nil {
				file.Close()
				return err
			}
			return file.Close()
		},
	}
	cmd.Flags().StringVar(&column, "column", "Title", "Input column to read")
	cmd.Flags().StringVarP(&domain, "domain", "d", string(expand.Roles), "Domain whose vocabulary is tuned")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write suggestions as a lexicon overlay (YAML)")
	cmd.Flags().IntVar(&thresholds.MinSupport, "min-support", 0, "Minimum titles ending in the word (default 3)")
	cmd.Flags().IntVar(&thresholds.MinCoordinated, "min-coordinated", 0, "Minimum coordinated titles (default 1)")
	cmd.Flags().Float64Var(&thresholds.MinShare, "min-share", 0, "Minimum share of all titles (default 0.005)")
	return cmd
}
