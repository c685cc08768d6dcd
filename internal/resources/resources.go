// Package resources implements MCP resource handlers.
//
// Resources are read-only documents the host can pull into context. They
// are addressed by flowsmith:// URIs.
package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/HendryAvila/flowsmith/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	PatternsURI  = "flowsmith://patterns"
	ChecklistURI = "flowsmith://checklist"
)

// Handler serves the static catalog and checklist resources.
type Handler struct {
	catalog *patterns.Catalog
	kb      *knowledge.Base
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(catalog *patterns.Catalog, kb *knowledge.Base) *Handler {
	return &Handler{catalog: catalog, kb: kb}
}

// PatternsResource returns the MCP resource definition for the catalog.
func (h *Handler) PatternsResource() mcp.Resource {
	return mcp.NewResource(
		PatternsURI,
		"Workflow Pattern Catalog",
		mcp.WithResourceDescription("All workflow patterns in detection order with triggers, objects and oversight notes"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandlePatterns returns the full catalog as markdown.
func (h *Handler) HandlePatterns(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return markdown(req.Params.URI, tools.FormatCatalog(h.catalog, domain.Generic, tools.DetailFull)), nil
}

// ChecklistResource returns the MCP resource definition for the checklist.
func (h *Handler) ChecklistResource() mcp.Resource {
	return mcp.NewResource(
		ChecklistURI,
		"AI Feature Design Checklist",
		mcp.WithResourceDescription("Questions to settle before building an AI feature"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleChecklist returns the checklist as markdown task lists.
func (h *Handler) HandleChecklist(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sections := h.kb.Checklist()
	if len(sections) == 0 {
		return errorResource(req.Params.URI, "checklist is empty"), nil
	}

	var b strings.Builder
	b.WriteString("# AI Feature Design Checklist\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
		for _, q := range s.Questions {
			fmt.Fprintf(&b, "- [ ] %s\n", q)
		}
	}
	return markdown(req.Params.URI, b.String()), nil
}

func markdown(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
