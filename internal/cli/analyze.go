package cli

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/render"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		industry string
		save     bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [concept]",
		Short: "Analyze an AI feature concept",
		Example: `  flowsmith analyze "Auto-approve PTO requests with team coverage validation" --industry hcm
  flowsmith analyze "Detect fraudulent transactions" --industry finance -o json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			concept := strings.Join(args, " ")

			deps, err := a.dependencies()
			if err != nil {
				return err
			}
			r := deps.Engine.Analyze(concept, pick(cmd, industry, a.cfg.Industry))
			a.log.Debug("concept analyzed", "pattern", r.Pattern, "score", r.Complexity.Score)

			out := cmd.OutOrStdout()
			if err := a.emit(out, r, func(p *render.Printer) error { return p.Analysis(r, deps.KB) }); err != nil {
				return err
			}

			if !save {
				return nil
			}
			if deps.History == nil {
				return fmt.Errorf("history is disabled; enable history.enabled to use --save")
			}
			id, err := deps.History.Save(r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "saved as %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&industry, "industry", "i", "", "industry overlay: generic, hcm or finance (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "record the analysis in local history")
	return cmd
}
