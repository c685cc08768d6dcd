package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/mark3labs/mcp-go/mcp"
)

// DetectPatternTool handles the flow_detect_pattern MCP tool.
type DetectPatternTool struct {
	engine *analysis.Engine
}

// NewDetectPatternTool creates a DetectPatternTool.
func NewDetectPatternTool(engine *analysis.Engine) *DetectPatternTool {
	return &DetectPatternTool{engine: engine}
}

// Definition returns the MCP tool definition for flow_detect_pattern.
func (t *DetectPatternTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_detect_pattern",
		mcp.WithDescription(
			"Detect which workflow pattern a concept falls into. The first pattern in catalog "+
				"order whose trigger keywords appear wins; every other match is listed too.",
		),
		mcp.WithString("concept",
			mcp.Description("Free-text concept to classify; may be empty"),
		),
	)
}

// Handle processes the flow_detect_pattern tool call.
func (t *DetectPatternTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	concept := req.GetString("concept", "")

	cat := t.engine.Catalog()
	key := cat.Detect(concept)

	var b strings.Builder
	if key == patterns.Generic {
		b.WriteString("**Pattern:** none matched, the generic workflow applies.\n")
		return mcp.NewToolResultText(b.String()), nil
	}

	p, _ := cat.Get(key)
	fmt.Fprintf(&b, "**Pattern:** %s (`%s`)\n\n%s\n", p.Name, p.Key, p.Description)
	fmt.Fprintf(&b, "\n**Human oversight:** %s\n", p.Oversight)

	matches := cat.Matches(concept)
	if len(matches) > 1 {
		b.WriteString("\n### Also matched (lower priority)\n\n")
		for _, m := range matches[1:] {
			fmt.Fprintf(&b, "- `%s` via %s\n", m.Key, strings.Join(m.Keywords, ", "))
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// DetectObjectsTool handles the flow_detect_objects MCP tool.
type DetectObjectsTool struct {
	engine *analysis.Engine
}

// NewDetectObjectsTool creates a DetectObjectsTool.
func NewDetectObjectsTool(engine *analysis.Engine) *DetectObjectsTool {
	return &DetectObjectsTool{engine: engine}
}

// Definition returns the MCP tool definition for flow_detect_objects.
func (t *DetectObjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_detect_objects",
		mcp.WithDescription("List the business objects a concept implicates, resolved against an industry's object registry."),
		mcp.WithString("concept",
			mcp.Description("Free-text concept; may be empty"),
		),
		industryOption(),
	)
}

// Handle processes the flow_detect_objects tool call.
func (t *DetectObjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	concept := req.GetString("concept", "")

	keys := t.engine.DetectRelevantObjects(concept)
	if len(keys) == 0 {
		return mcp.NewToolResultText("No business objects detected in this concept."), nil
	}

	reg := t.engine.Registry(req.GetString("industry", ""))
	var b strings.Builder
	fmt.Fprintf(&b, "Detected %d objects:\n\n", len(keys))
	for _, k := range keys {
		if o, ok := reg.Lookup(k); ok {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", o.Name, k, o.Description)
		} else {
			fmt.Fprintf(&b, "- `%s` (not registered for this industry)\n", k)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}
