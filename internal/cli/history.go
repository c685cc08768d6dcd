package cli

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/history"
	"github.com/HendryAvila/flowsmith/internal/render"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var opts history.SearchOptions
	cmd := &cobra.Command{
		Use:   "history [query]",
		Short: "Search saved analyses",
		Long: `Search saved analyses by concept text, pattern key or AI type.
Without a query the most recent analyses are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.history()
			if err != nil {
				return err
			}
			recs, err := store.Search(strings.Join(args, " "), opts)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), recs, func(p *render.Printer) error { return p.Records(recs) })
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.Industry, "industry", "i", "", "only analyses for this industry")
	f.StringVar(&opts.Pattern, "pattern", "", "only analyses with this pattern key")
	f.StringVar(&opts.Level, "level", "", "only analyses at this complexity level")
	f.IntVarP(&opts.Limit, "limit", "n", 10, "maximum number of results")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a saved analysis",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.history()
				if err != nil {
					return err
				}
				e, err := store.Get(args[0])
				if err != nil {
					return err
				}
				return a.emit(cmd.OutOrStdout(), e, func(p *render.Printer) error {
					return p.Analysis(e.Result, a.deps.KB)
				})
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Summarize saved analyses",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.history()
				if err != nil {
					return err
				}
				st, err := store.Stats()
				if err != nil {
					return err
				}
				return a.emit(cmd.OutOrStdout(), st, func(p *render.Printer) error { return p.Stats(st) })
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a saved analysis",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.history()
				if err != nil {
					return err
				}
				if err := store.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

// history returns the open history store or explains why there is none.
func (a *app) history() (*history.Store, error) {
	deps, err := a.dependencies()
	if err != nil {
		return nil, err
	}
	if deps.History == nil {
		return nil, fmt.Errorf("history is not available (disabled or failed to open %s)", a.cfg.History.DataDir)
	}
	return deps.History, nil
}
