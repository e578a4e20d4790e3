package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/bizonto/pkg/bizonto/concept"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/ident"
	"github.com/cognicore/bizonto/pkg/bizonto/verbs"
)

func expandCmd(a *app) *cobra.Command {
	var domain string
	cmd := &cobra.Command{
		Use:   "expand <phrase>...",
		Short: "Show how a title or name expands",
		Long: `Print the rule that fired and every variant with its identifier.

Examples:
  bizonto expand "Farm, Ranch, and Aquaculture Supervisors"
  bizonto expand -d products "Fish - Fresh/Frozen - Whole/Filleted"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDomain(domain)
			if err != nil {
				return err
			}
			exp := a.comp.Expanders[d]
			canon := ident.New(a.comp.Lexicon)
			out := cmd.OutOrStdout()
			for _, phrase := range args {
				rule, variants := exp.Explain(phrase)
				fmt.Fprintf(out, "%s  [%s]\n", phrase, rule)
				for _, v := range variants {
					id := canon.ToPascalCase(v)
					fmt.Fprintf(out, "  %s\t%s%s\n", v, id, verdict(a.comp.Validator, id))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&domain, "domain", "d", string(expand.Roles), "Expander preset")
	return cmd
}

func parseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <task>...",
		Short: "Parse task statements into verb/object/complement triples",
		Long: `Examples:
  bizonto parse "Direct or coordinate financial activities to fund operations"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.comp.NewPipeline(a.logger)
			out := cmd.OutOrStdout()
			for _, text := range args {
				res := p.ProcessTask(text)
				fmt.Fprintln(out, text)
				for _, st := range res.Statements {
					fmt.Fprintf(out, "  %s\t%s\t%s\t%s\t%s\n", st.Verb, st.Object, st.Preposition, st.Complement, st.TaskID())
				}
				for _, r := range res.Rejected {
					fmt.Fprintf(out, "  rejected %s (%s)\n", r.ID, r.Reason)
				}
			}
			return nil
		},
	}
}

func conjugateCmd(a *app) *cobra.Command {
	var fromGerund bool
	cmd := &cobra.Command{
		Use:   "conjugate <verb>...",
		Short: "Print base, past tense and gerund forms",
		Long: `Examples:
  bizonto conjugate plan occur admit
  bizonto conjugate --gerund running managing`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, word := range args {
				base := word
				if fromGerund {
					base = verbs.GerundToBase(word)
				}
				forms, ok := a.comp.Verbs.Forms(base)
				if !ok {
					forms = verbs.Forms(base)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", forms.Base, forms.PastTense, forms.Gerund)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromGerund, "gerund", false, "Arguments are gerunds; recover the base form first")
	return cmd
}

func acronymCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "acronym <name>...",
		Short: "Split technology names into full name and acronym",
		Long: `Examples:
  bizonto acronym "Cascading Style Sheets (CSS)" "Oracle ERP software"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canon := ident.New(a.comp.Lexicon)
			out := cmd.OutOrStdout()
			for _, name := range args {
				pair := ident.ExtractAcronym(name)
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", pair.FullName, pair.Acronym,
					canon.ToPascalCase(pair.FullName), canon.ToShortName(pair.FullName))
			}
			return nil
		},
	}
}

func verdict(v *concept.Validator, id string) string {
	if r := v.Check(id); r != concept.Valid {
		return "\trejected: " + string(r)
	}
	return ""
}
