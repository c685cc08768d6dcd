package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/mark3labs/mcp-go/mcp"
)

// PatternsTool handles the flow_patterns MCP tool.
type PatternsTool struct {
	engine *analysis.Engine
}

// NewPatternsTool creates a PatternsTool.
func NewPatternsTool(engine *analysis.Engine) *PatternsTool {
	return &PatternsTool{engine: engine}
}

// Definition returns the MCP tool definition for flow_patterns.
func (t *PatternsTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_patterns",
		mcp.WithDescription("List the workflow pattern catalog in detection order, with trigger keywords and an industry example."),
		industryOption(),
		mcp.WithString("detail_level",
			mcp.Description("summary (names only), standard (default) or full"),
			mcp.Enum(DetailLevelValues()...),
		),
	)
}

// Handle processes the flow_patterns tool call.
func (t *PatternsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ind := t.engine.Overlay(req.GetString("industry", ""))
	industry := domain.Generic
	if ind != nil {
		industry = ind.Industry
	}
	level := ParseDetailLevel(req.GetString("detail_level", ""))
	return mcp.NewToolResultText(FormatCatalog(t.engine.Catalog(), industry, level)), nil
}

// FormatCatalog renders the pattern catalog as markdown.
func FormatCatalog(cat *patterns.Catalog, ind domain.Industry, level string) string {
	var b strings.Builder
	all := cat.All()
	fmt.Fprintf(&b, "# Workflow Patterns (%d)\n\nChecked in this order; the first match wins.\n\n", len(all))
	for i, p := range all {
		if level == DetailSummary {
			fmt.Fprintf(&b, "%d. %s (`%s`)\n", i+1, p.Name, p.Key)
			continue
		}
		fmt.Fprintf(&b, "## %d. %s (`%s`)\n\n%s\n\n", i+1, p.Name, p.Key, p.Description)
		fmt.Fprintf(&b, "- **Triggers:** %s\n", strings.Join(p.Triggers, ", "))
		if ex := p.Example(ind); ex != "" {
			fmt.Fprintf(&b, "- **Example:** %s\n", ex)
		}
		if level == DetailFull {
			fmt.Fprintf(&b, "- **Objects:** %s\n", strings.Join(p.Objects, ", "))
			fmt.Fprintf(&b, "- **Oversight:** %s\n", p.Oversight)
		}
		b.WriteString("\n")
	}
	if level == DetailSummary {
		b.WriteString(SummaryFooter)
	}
	return b.String()
}

// ObjectTool handles the flow_object MCP tool.
type ObjectTool struct {
	engine *analysis.Engine
}

// NewObjectTool creates an ObjectTool.
func NewObjectTool(engine *analysis.Engine) *ObjectTool {
	return &ObjectTool{engine: engine}
}

// Definition returns the MCP tool definition for flow_object.
func (t *ObjectTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_object",
		mcp.WithDescription(
			"Describe a business object from an industry's registry: fields, actions and relationships. "+
				"Omit key to list every registered object.",
		),
		mcp.WithString("key",
			mcp.Description("Object key, e.g. request, transaction, ledgerAccount"),
		),
		industryOption(),
	)
}

// Handle processes the flow_object tool call.
func (t *ObjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reg := t.engine.Registry(req.GetString("industry", ""))

	key, ok := requiredString(req, "key")
	if !ok {
		var b strings.Builder
		fmt.Fprintf(&b, "%d registered objects:\n\n", reg.Len())
		for _, k := range reg.Keys() {
			o, _ := reg.Lookup(k)
			fmt.Fprintf(&b, "- `%s`: %s\n", k, o.Name)
		}
		return mcp.NewToolResultText(b.String()), nil
	}

	o, found := reg.Lookup(objects.Key(key))
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("object %q is not registered for this industry", key)), nil
	}
	return mcp.NewToolResultText(formatObject(reg, o)), nil
}

func formatObject(reg *objects.Registry, o objects.ObjectType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (`%s`)\n\n%s\n", o.Name, o.Key, o.Description)
	writeList(&b, "Core Fields", o.CoreFields)
	writeList(&b, "Metadata Fields", o.MetadataFields)
	writeList(&b, "Actions", o.Actions)
	if len(o.Relationships) > 0 {
		b.WriteString("\n## Relationships\n\n")
		for _, rel := range o.Relationships {
			target := fmt.Sprintf("`%s` (unregistered)", rel.Target)
			if t, ok := reg.Target(rel); ok {
				target = t.Name
			}
			fmt.Fprintf(&b, "- %s %s: %s\n", rel.Kind, target, rel.Description)
		}
	}
	return b.String()
}
