// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the engine, the knowledge base
// and the optional history store, and injects them into tools, prompts
// and resources. No business logic lives here.
package server

import (
	"fmt"
	"log/slog"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/config"
	"github.com/HendryAvila/flowsmith/internal/history"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/HendryAvila/flowsmith/internal/logging"
	"github.com/HendryAvila/flowsmith/internal/prompts"
	"github.com/HendryAvila/flowsmith/internal/resources"
	"github.com/HendryAvila/flowsmith/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Deps are the shared components behind both the MCP server and the CLI.
type Deps struct {
	Engine  *analysis.Engine
	KB      *knowledge.Base
	History *history.Store // nil when history is disabled or failed to open
}

// Close releases the history store, if any.
func (d *Deps) Close() error {
	if d.History == nil {
		return nil
	}
	return d.History.Close()
}

// Build resolves every dependency from cfg. The engine and knowledge base
// are required; history is optional and a failure to open it is logged
// and otherwise ignored.
func Build(cfg *config.Config, log *slog.Logger) (*Deps, error) {
	log = logging.OrDefault(log)

	engine, err := analysis.NewDefault(cfg.Overlays...)
	if err != nil {
		return nil, fmt.Errorf("creating analysis engine: %w", err)
	}
	kb, err := knowledge.Load()
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	d := &Deps{Engine: engine, KB: kb}
	if !cfg.History.Enabled {
		log.Debug("history disabled by configuration")
		return d, nil
	}

	store, err := history.New(history.Config{
		DataDir:          cfg.History.DataDir,
		MaxSearchResults: cfg.History.MaxResults,
	})
	if err != nil {
		log.Warn("history subsystem disabled", "err", err)
		return d, nil
	}
	d.History = store
	log.Debug("history opened", "dir", cfg.History.DataDir)
	return d, nil
}

// New creates the MCP server with every tool, prompt and resource
// registered.
//
// The returned cleanup function closes the history store and must be
// called on shutdown. It is always non-nil.
func New(cfg *config.Config, log *slog.Logger) (*server.MCPServer, func(), error) {
	log = logging.OrDefault(log)

	deps, err := Build(cfg, log)
	if err != nil {
		return nil, noop, err
	}
	cleanup := func() {
		if err := deps.Close(); err != nil {
			log.Warn("history store close", "err", err)
		}
	}

	s := server.NewMCPServer(
		"flowsmith",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Analysis tools ---

	analyzeTool := tools.NewAnalyzeTool(deps.Engine, deps.KB, deps.History, log)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	detectPattern := tools.NewDetectPatternTool(deps.Engine)
	s.AddTool(detectPattern.Definition(), detectPattern.Handle)

	detectObjects := tools.NewDetectObjectsTool(deps.Engine)
	s.AddTool(detectObjects.Definition(), detectObjects.Handle)

	explainTool := tools.NewExplainTool(deps.KB)
	s.AddTool(explainTool.Definition(), explainTool.Handle)

	patternsTool := tools.NewPatternsTool(deps.Engine)
	s.AddTool(patternsTool.Definition(), patternsTool.Handle)

	objectTool := tools.NewObjectTool(deps.Engine)
	s.AddTool(objectTool.Definition(), objectTool.Handle)

	// --- History tools ---
	//
	// History is independent of the engine: without it every analysis tool
	// still works, the history tools are simply not offered.

	if deps.History != nil {
		registerHistoryTools(s, deps.History, deps.KB)
	}

	// --- Prompts ---

	assess := prompts.NewAssessPrompt(deps.Engine)
	s.AddPrompt(assess.Definition(), assess.Handle)

	// --- Resources ---

	rh := resources.NewHandler(deps.Engine.Catalog(), deps.KB)
	s.AddResource(rh.PatternsResource(), rh.HandlePatterns)
	s.AddResource(rh.ChecklistResource(), rh.HandleChecklist)

	return s, cleanup, nil
}

// noop is the cleanup returned when construction fails.
func noop() {}

func registerHistoryTools(s *server.MCPServer, store *history.Store, kb *knowledge.Base) {
	search := tools.NewHistorySearchTool(store)
	s.AddTool(search.Definition(), search.Handle)

	get := tools.NewHistoryGetTool(store, kb)
	s.AddTool(get.Definition(), get.Handle)

	stats := tools.NewHistoryStatsTool(store)
	s.AddTool(stats.Definition(), stats.Handle)
}

// serverInstructions tells the AI when and how to use flowsmith.
func serverInstructions() string {
	return `You have access to flowsmith, a decision-support engine for designing AI features in enterprise software.

## WHEN TO USE flowsmith

Use it whenever the user describes an AI feature idea, for example
"auto-approve PTO requests" or "flag duplicate invoices", and wants to know
how to build it, how risky it is, or how much work it will be.

## HOW TO USE IT

1. Call flow_analyze with the concept and, when known, the industry (hcm or finance).
2. Present the pattern, the workflow and the complexity score. Keep branch
   steps (4a, 4b) together with their condition.
3. For any risk or touchpoint the user asks about, call flow_explain.
4. Use flow_object to show what data a step touches.
5. When the user wants to compare with earlier ideas, use flow_history_search
   (only available when history is enabled). Pass save=true to flow_analyze
   to record an analysis.

## RULES

- The engine is deterministic. Do not re-run it hoping for a different answer;
  rephrase the concept instead.
- Pattern detection is first-match in catalog order. If the result looks wrong,
  call flow_detect_pattern to see the other matches and explain the ordering.
- Complexity scores are estimates for planning, not commitments.`
}
