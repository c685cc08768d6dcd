package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/mark3labs/mcp-go/mcp"
)

func getPrompt(t *testing.T, args map[string]string) (*mcp.GetPromptResult, error) {
	t.Helper()
	p := NewAssessPrompt(analysis.MustDefault())
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = args
	return p.Handle(context.Background(), req)
}

func TestAssessPrompt_Definition(t *testing.T) {
	def := NewAssessPrompt(analysis.MustDefault()).Definition()
	if def.Name != "flow-assess" {
		t.Errorf("Name = %q, want flow-assess", def.Name)
	}
	if len(def.Arguments) != 2 || !def.Arguments[0].Required {
		t.Errorf("Arguments = %+v, want required concept plus industry", def.Arguments)
	}
}

func TestAssessPrompt_Handle(t *testing.T) {
	result, err := getPrompt(t, map[string]string{
		"concept":  "Auto-approve PTO requests with team coverage validation",
		"industry": "hcm",
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(result.Messages) != 1 || result.Messages[0].Role != mcp.RoleUser {
		t.Fatalf("Messages = %+v", result.Messages)
	}
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Messages[0].Content)
	}
	for _, want := range []string{"hcm industry", "`autoApproval`", "flow_explain", "flowsmith://checklist", "31/100, Medium"} {
		if !strings.Contains(tc.Text, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
}

func TestAssessPrompt_RequiresConcept(t *testing.T) {
	if _, err := getPrompt(t, map[string]string{"industry": "hcm"}); err == nil {
		t.Error("expected error without concept")
	}
	if _, err := getPrompt(t, nil); err == nil {
		t.Error("expected error with nil arguments")
	}
}
