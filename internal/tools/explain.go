package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/mark3labs/mcp-go/mcp"
)

// ExplainTool handles the flow_explain MCP tool.
type ExplainTool struct {
	kb *knowledge.Base
}

// NewExplainTool creates an ExplainTool over a knowledge base.
func NewExplainTool(kb *knowledge.Base) *ExplainTool {
	return &ExplainTool{kb: kb}
}

// Definition returns the MCP tool definition for flow_explain.
func (t *ExplainTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_explain",
		mcp.WithDescription(
			"Explain a risk, an AI touchpoint or a glossary term from an analysis. "+
				"Phrases are matched exactly first, then by case-insensitive containment.",
		),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("risk, touchpoint or glossary"),
			mcp.Enum("risk", "touchpoint", "glossary"),
		),
		mcp.WithString("phrase",
			mcp.Required(),
			mcp.Description("The phrase to explain, as it appeared in the analysis"),
		),
	)
}

// Handle processes the flow_explain tool call.
func (t *ExplainTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phrase, ok := requiredString(req, "phrase")
	if !ok {
		return mcp.NewToolResultError("'phrase' is required"), nil
	}

	kind := strings.ToLower(req.GetString("kind", ""))
	switch kind {
	case "risk", "touchpoint":
		lookup := t.kb.LookupRisk
		if kind == "touchpoint" {
			lookup = t.kb.LookupTouchpoint
		}
		d, ok := lookup(phrase)
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("No %s guidance found for %q.", kind, phrase)), nil
		}
		return mcp.NewToolResultText(formatDetail(d)), nil

	case "glossary":
		term, ok := t.kb.LookupGlossary(phrase)
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("%q is not in the glossary.", phrase)), nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "**%s**: %s\n", term.Term, term.Definition)
		if len(term.See) > 0 {
			fmt.Fprintf(&b, "\nSee also: %s\n", strings.Join(term.See, ", "))
		}
		return mcp.NewToolResultText(b.String()), nil
	}

	return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q: use risk, touchpoint or glossary", kind)), nil
}

func formatDetail(d knowledge.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n_%s_\n\n%s\n", d.Key, d.Category, d.Summary)
	if d.Impact != "" {
		fmt.Fprintf(&b, "\n**Impact:** %s\n", d.Impact)
	}
	if len(d.Guidance) > 0 {
		b.WriteString("\n**Guidance:**\n")
		for _, g := range d.Guidance {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}
	return b.String()
}
