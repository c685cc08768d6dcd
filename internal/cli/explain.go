package cli

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/render"
	"github.com/spf13/cobra"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "explain risk|touchpoint|glossary <phrase>",
		Short:     "Explain a risk, touchpoint or glossary term",
		Example:   `  flowsmith explain risk "model drift"`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"risk", "touchpoint", "glossary"},
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.dependencies()
			if err != nil {
				return err
			}
			kind := strings.ToLower(args[0])
			phrase := strings.Join(args[1:], " ")
			out := cmd.OutOrStdout()

			switch kind {
			case "risk", "touchpoint":
				lookup := deps.KB.LookupRisk
				if kind == "touchpoint" {
					lookup = deps.KB.LookupTouchpoint
				}
				d, ok := lookup(phrase)
				if !ok {
					return fmt.Errorf("no %s guidance for %q", kind, phrase)
				}
				return a.emit(out, d, func(p *render.Printer) error { return p.Detail(d) })
			case "glossary":
				t, ok := deps.KB.LookupGlossary(phrase)
				if !ok {
					return fmt.Errorf("%q is not in the glossary", phrase)
				}
				return a.emit(out, t, func(p *render.Printer) error { return p.Term(t) })
			}
			return fmt.Errorf("unknown kind %q: use risk, touchpoint or glossary", args[0])
		},
	}
}

func newChecklistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Print the AI feature design checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.dependencies()
			if err != nil {
				return err
			}
			sections := deps.KB.Checklist()
			return a.emit(cmd.OutOrStdout(), sections, func(p *render.Printer) error {
				return p.Checklist(sections)
			})
		},
	}
}
