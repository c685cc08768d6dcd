// Package cli implements the flowsmith command tree.
package cli

import (
	"io"
	"log/slog"

	"github.com/HendryAvila/flowsmith/internal/config"
	"github.com/HendryAvila/flowsmith/internal/logging"
	"github.com/HendryAvila/flowsmith/internal/render"
	"github.com/HendryAvila/flowsmith/internal/server"
	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	server.Version = version
}

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	output     string
	logLevel   string

	cfg  *config.Config
	log  *slog.Logger
	deps *server.Deps
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run commands in parallel.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "flowsmith",
		Short: "Design AI features for enterprise workflows",
		Long: `flowsmith turns a one-sentence AI feature concept into a design brief:
what kind of AI it needs, how visible it should be, which workflow pattern
it follows, the business objects and steps involved, the risks, and a
complexity estimate.

Run it as an MCP server (flowsmith serve) or straight from the shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: ./flowsmith.yaml or ~/.flowsmith/flowsmith.yaml)")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newServeCmd(a),
		newAnalyzeCmd(a),
		newPatternsCmd(a),
		newObjectsCmd(a),
		newExplainCmd(a),
		newChecklistCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)
	closeAfterRun(root, a)
	return root
}

// closeAfterRun wraps every RunE so dependencies are released even when
// the command fails. Cobra skips post-run hooks after a RunE error.
func closeAfterRun(cmd *cobra.Command, a *app) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, a)
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	a.cfg = cfg
	a.log = log
	if cfg.File != "" {
		log.Debug("config loaded", "file", cfg.File)
	}
	return nil
}

// dependencies builds the engine, knowledge base and history on first use.
func (a *app) dependencies() (*server.Deps, error) {
	if a.deps != nil {
		return a.deps, nil
	}
	d, err := server.Build(a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	a.deps = d
	return d, nil
}

func (a *app) close() {
	if a.deps == nil {
		return
	}
	if err := a.deps.Close(); err != nil {
		a.log.Warn("closing dependencies", "err", err)
	}
	a.deps = nil
}

// emit writes v in a structured format, or calls text for the text format.
func (a *app) emit(w io.Writer, v any, text func(p *render.Printer) error) error {
	if a.cfg.Output == config.OutputText {
		return text(render.NewPrinter(w))
	}
	return render.Encode(w, a.cfg.Output, v)
}
