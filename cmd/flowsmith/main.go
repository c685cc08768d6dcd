// flowsmith: design briefs for AI features in enterprise workflows.
//
// Usage:
//
//	flowsmith serve                         # MCP server on stdio
//	flowsmith analyze "<concept>" -i hcm    # one-off analysis
//	flowsmith patterns                      # list workflow patterns
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/flowsmith/internal/cli"
)

// Set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
