package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/HendryAvila/flowsmith/internal/release"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "flowsmith %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
			if !check {
				return nil
			}
			return checkRelease(cmd.Context(), out, appVersion)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	return cmd
}

// checkRelease prints whether a newer release exists.
func checkRelease(ctx context.Context, w io.Writer, current string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := release.NewChecker().Check(ctx, current)
	if err != nil {
		return err
	}
	if res.UpdateAvailable {
		fmt.Fprintf(w, "\nflowsmith v%s is available (you have v%s): %s\n", res.Latest, res.Current, res.URL)
		return nil
	}
	fmt.Fprintf(w, "\nUp to date (latest release v%s).\n", res.Latest)
	return nil
}
