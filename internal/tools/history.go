package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/history"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/mark3labs/mcp-go/mcp"
)

// HistorySearchTool handles the flow_history_search MCP tool.
type HistorySearchTool struct {
	store *history.Store
}

// NewHistorySearchTool creates a HistorySearchTool.
func NewHistorySearchTool(store *history.Store) *HistorySearchTool {
	return &HistorySearchTool{store: store}
}

// Definition returns the MCP tool definition for flow_history_search.
func (t *HistorySearchTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_history_search",
		mcp.WithDescription(
			"Search previously saved analyses by concept text, pattern key or AI type. "+
				"Leave query empty to list the most recent analyses.",
		),
		mcp.WithString("query",
			mcp.Description("Keywords; empty lists recent analyses"),
		),
		industryOption(),
		mcp.WithString("pattern",
			mcp.Description("Filter by pattern key, e.g. autoApproval"),
		),
		mcp.WithString("level",
			mcp.Description("Filter by complexity level: Low, Medium or High"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 10)"),
		),
	)
}

// Handle processes the flow_history_search tool call.
func (t *HistorySearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	opts := history.SearchOptions{
		Industry: req.GetString("industry", ""),
		Pattern:  req.GetString("pattern", ""),
		Level:    req.GetString("level", ""),
		Limit:    intArg(req, "limit", 10),
	}
	recs, err := t.store.Search(query, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(recs) == 0 {
		return mcp.NewToolResultText("No saved analyses found."), nil
	}
	total, err := t.store.Count(query, opts)
	if err != nil {
		total = len(recs)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d analyses:\n\n", len(recs))
	for i, r := range recs {
		fmt.Fprintf(&b, "[%d] `%s` %s | %s | %d/100 %s\n    %s\n\n",
			i+1, r.ID, r.Pattern, r.Industry, r.Score, r.Level,
			history.Truncate(r.Concept, 200),
		)
	}
	b.WriteString("Use flow_history_get with an ID for the full analysis.")
	b.WriteString(NavigationHint(len(recs), total, "Narrow the query or raise limit."))
	return mcp.NewToolResultText(b.String()), nil
}

// HistoryGetTool handles the flow_history_get MCP tool.
type HistoryGetTool struct {
	store *history.Store
	kb    *knowledge.Base
}

// NewHistoryGetTool creates a HistoryGetTool.
func NewHistoryGetTool(store *history.Store, kb *knowledge.Base) *HistoryGetTool {
	return &HistoryGetTool{store: store, kb: kb}
}

// Definition returns the MCP tool definition for flow_history_get.
func (t *HistoryGetTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_history_get",
		mcp.WithDescription("Fetch one saved analysis by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Analysis ID from flow_history_search or flow_analyze"),
		),
		mcp.WithString("detail_level",
			mcp.Description("summary, standard (default) or full"),
			mcp.Enum(DetailLevelValues()...),
		),
	)
}

// Handle processes the flow_history_get tool call.
func (t *HistoryGetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := requiredString(req, "id")
	if !ok {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	e, err := t.store.Get(id)
	if errors.Is(err, history.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no saved analysis with ID %s", id)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load analysis: %v", err)), nil
	}

	level := ParseDetailLevel(req.GetString("detail_level", ""))
	text := fmt.Sprintf("_Saved %s as `%s`_\n\n", e.CreatedAt, e.ID) + FormatAnalysis(e.Result, level, t.kb)
	return mcp.NewToolResultText(text), nil
}

// HistoryStatsTool handles the flow_history_stats MCP tool.
type HistoryStatsTool struct {
	store *history.Store
}

// NewHistoryStatsTool creates a HistoryStatsTool.
func NewHistoryStatsTool(store *history.Store) *HistoryStatsTool {
	return &HistoryStatsTool{store: store}
}

// Definition returns the MCP tool definition for flow_history_stats.
func (t *HistoryStatsTool) Definition() mcp.Tool {
	return mcp.NewTool("flow_history_stats",
		mcp.WithDescription("Summarize saved analyses: totals, average complexity, and counts per pattern, level and industry."),
	)
}

// Handle processes the flow_history_stats tool call.
func (t *HistoryStatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := t.store.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load stats: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString("# Analysis History\n\n")
	fmt.Fprintf(&sb, "- **Analyses:** %d\n", st.Total)
	fmt.Fprintf(&sb, "- **Average complexity:** %.1f\n", st.AverageScore)
	writeCounts(&sb, "By Level", st.ByLevel)
	writeCounts(&sb, "By Pattern", st.ByPattern)
	writeCounts(&sb, "By Industry", st.ByIndustry)
	return mcp.NewToolResultText(sb.String()), nil
}

func writeCounts(b *strings.Builder, title string, m map[string]int) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %d\n", k, m[k])
	}
}
