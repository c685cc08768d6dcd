// Package prompts implements MCP prompt handlers.
//
// Prompts are user-triggered workflows, like slash commands. Unlike tools,
// which the AI decides to call, the user starts a prompt explicitly.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// AssessPrompt handles the flow-assess MCP prompt. It runs the analysis up
// front and asks the AI to turn it into a design review.
type AssessPrompt struct {
	engine *analysis.Engine
}

// NewAssessPrompt creates an AssessPrompt.
func NewAssessPrompt(engine *analysis.Engine) *AssessPrompt {
	return &AssessPrompt{engine: engine}
}

// Definition returns the MCP prompt definition for registration.
func (p *AssessPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("flow-assess",
		mcp.WithPromptDescription(
			"Assess an AI feature concept: classify it, sketch the workflow, "+
				"and walk through risks and open design questions.",
		),
		mcp.WithArgument("concept",
			mcp.ArgumentDescription("One-sentence feature concept"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("industry",
			mcp.ArgumentDescription("generic (default), hcm or finance"),
		),
	)
}

// Handle processes the flow-assess prompt request.
func (p *AssessPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	concept := strings.TrimSpace(args["concept"])
	if concept == "" {
		return nil, fmt.Errorf("flow-assess: 'concept' argument is required")
	}
	industry := args["industry"]

	r := p.engine.Analyze(concept, industry)
	report := tools.FormatAnalysis(r, tools.DetailStandard, nil)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Assess concept: %s", concept),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I'm designing this AI feature for the %s industry:\n\n> %s\n\n"+
						"Here is the automated analysis:\n\n%s\n\n"+
						"Please:\n"+
						"1. Sanity-check the detected pattern (`%s`). If another pattern fits better, say so and call `flow_detect_pattern` to see what else matched\n"+
						"2. Walk through the workflow and point out where a human must stay in control\n"+
						"3. For the top two risks, call `flow_explain` with kind=risk and turn the guidance into concrete design changes\n"+
						"4. Go through the `flowsmith://checklist` resource and list the questions this concept still leaves open\n"+
						"5. Finish with a go / rework recommendation and the complexity estimate (%d/100, %s)",
					r.Industry, concept, report, r.Pattern, r.Complexity.Score, r.Complexity.Level,
				)),
			},
		},
	}, nil
}
