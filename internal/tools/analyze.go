package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/history"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/HendryAvila/flowsmith/internal/logging"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeTool handles the flow_analyze MCP tool.
type AnalyzeTool struct {
	engine *analysis.Engine
	kb     *knowledge.Base
	store  *history.Store
	log    *slog.Logger
}

// NewAnalyzeTool creates an AnalyzeTool. store may be nil, in which case
// save requests are acknowledged but not persisted.
func NewAnalyzeTool(engine *analysis.Engine, kb *knowledge.Base, store *history.Store, log *slog.Logger) *AnalyzeTool {
	return &AnalyzeTool{engine: engine, kb: kb, store: store, log: logging.OrDefault(log)}
}

// Definition returns the MCP tool definition for flow_analyze.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_analyze",
		mcp.WithDescription(
			"Analyze a one-sentence AI feature concept. Returns the AI type and visibility, "+
				"the matching workflow pattern, the business objects involved, a step-by-step flow "+
				"with AI touchpoints, risks, and a 0-100 implementation complexity score.",
		),
		mcp.WithString("concept",
			mcp.Description("The feature concept, e.g. 'Auto-approve PTO requests with team coverage validation'. "+
				"An empty concept gets the default classification and the generic workflow."),
		),
		industryOption(),
		mcp.WithBoolean("save",
			mcp.Description("Record the analysis in local history (default: false)"),
		),
		mcp.WithString("detail_level",
			mcp.Description("summary, standard (default) or full"),
			mcp.Enum(DetailLevelValues()...),
		),
	)
}

// Handle processes the flow_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	concept := req.GetString("concept", "")
	industry := req.GetString("industry", "")
	level := ParseDetailLevel(req.GetString("detail_level", ""))

	r := t.engine.Analyze(concept, industry)
	t.log.Debug("concept analyzed",
		"pattern", r.Pattern, "industry", r.Industry, "score", r.Complexity.Score)

	text := FormatAnalysis(r, level, t.kb)

	if boolArg(req, "save", false) {
		switch {
		case t.store == nil:
			text += "\n\n⚠️ History is disabled; the analysis was not saved."
		default:
			id, err := t.store.Save(r)
			if err != nil {
				t.log.Warn("saving analysis failed", "err", err)
				text += fmt.Sprintf("\n\n⚠️ Could not save the analysis: %v", err)
			} else {
				text += fmt.Sprintf("\n\n💾 Saved as `%s`.", id)
			}
		}
	}

	text += "\n" + TokenFooter(EstimateTokens(text))
	return mcp.NewToolResultText(text), nil
}
