package cli

import (
	"fmt"

	"github.com/HendryAvila/flowsmith/internal/server"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the MCP server on stdin/stdout. Logs go to stderr so the
JSON-RPC stream on stdout stays clean.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := server.New(a.cfg, a.log)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			a.log.Info("flowsmith MCP server starting",
				"version", server.Version, "overlays", a.cfg.Overlays, "history", a.cfg.History.Enabled)
			return mcpserver.ServeStdio(s)
		},
	}
}
