package cli

import (
	"fmt"

	"github.com/HendryAvila/flowsmith/internal/config"
	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/render"
	"github.com/spf13/cobra"
)

func newPatternsCmd(a *app) *cobra.Command {
	var industry string
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List workflow patterns in detection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.dependencies()
			if err != nil {
				return err
			}
			cat := deps.Engine.Catalog()
			ind := domain.Generic
			if ov := deps.Engine.Overlay(pick(cmd, industry, a.cfg.Industry)); ov != nil {
				ind = ov.Industry
			}
			return a.emit(cmd.OutOrStdout(), cat.All(), func(p *render.Printer) error {
				return p.Patterns(cat, ind)
			})
		},
	}
	cmd.Flags().StringVarP(&industry, "industry", "i", "", "industry whose examples to show")
	return cmd
}

func newObjectsCmd(a *app) *cobra.Command {
	var industry string
	cmd := &cobra.Command{
		Use:   "objects [key...]",
		Short: "Show business objects for an industry",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.dependencies()
			if err != nil {
				return err
			}
			reg := deps.Engine.Registry(pick(cmd, industry, a.cfg.Industry))

			keys := make([]objects.Key, 0, len(args))
			for _, arg := range args {
				keys = append(keys, objects.Key(arg))
			}
			if len(keys) == 0 {
				keys = reg.Keys()
			}

			var found []objects.ObjectType
			for _, k := range keys {
				if o, ok := reg.Lookup(k); ok {
					found = append(found, o)
				} else if a.cfg.Output != config.OutputText {
					return fmt.Errorf("object %q is not registered", k)
				}
			}
			return a.emit(cmd.OutOrStdout(), found, func(p *render.Printer) error {
				return p.Objects(reg, keys...)
			})
		},
	}
	cmd.Flags().StringVarP(&industry, "industry", "i", "", "industry registry (default from config)")
	return cmd
}

// pick returns the flag value when the user set it, else the fallback.
func pick(cmd *cobra.Command, flagValue, fallback string) string {
	if cmd.Flags().Changed("industry") {
		return flagValue
	}
	return fallback
}
