package tools

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/HendryAvila/flowsmith/internal/workflow"
)

// FormatAnalysis renders r as markdown at the given detail level. kb is
// only consulted at full detail and may be nil.
func FormatAnalysis(r analysis.Result, level string, kb *knowledge.Base) string {
	var b strings.Builder
	cls := r.Classification
	cx := r.Complexity

	fmt.Fprintf(&b, "# Flow Analysis\n\n")
	if strings.TrimSpace(r.Concept) == "" {
		b.WriteString("> _(empty concept)_\n\n")
	} else {
		fmt.Fprintf(&b, "> %s\n\n", r.Concept)
	}
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Industry | %s |\n", r.Industry)
	fmt.Fprintf(&b, "| Pattern | %s (`%s`) |\n", r.PatternName, r.Pattern)
	fmt.Fprintf(&b, "| AI type | %s |\n", cls.AIType)
	fmt.Fprintf(&b, "| Visibility | %s |\n", cls.Visibility)
	fmt.Fprintf(&b, "| Complexity | %d/100 (%s, %s) |\n", cx.Score, cx.Level, cx.Effort)

	if level == DetailSummary {
		b.WriteString(SummaryFooter)
		return b.String()
	}

	fmt.Fprintf(&b, "\n**Why this AI type:** %s\n\n", cls.AITypeReason)
	fmt.Fprintf(&b, "**Why %s:** %s\n", cls.Visibility, cls.VisibilityReason)

	if len(r.Workflow.Objects) > 0 {
		b.WriteString("\n## Objects\n\n")
		for _, o := range r.Workflow.Objects {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", o.Name, o.Key, o.Description)
		}
	}

	b.WriteString("\n## Workflow\n\n")
	writeFlow(&b, r.Workflow.Flow)

	b.WriteString("\n## AI Touchpoints\n\n")
	for _, tp := range r.Workflow.AITouchpoints {
		fmt.Fprintf(&b, "- %s\n", tp)
		if level == DetailFull && kb != nil {
			if d, ok := kb.LookupTouchpoint(tp); ok {
				fmt.Fprintf(&b, "  - _%s_\n", d.Summary)
			}
		}
	}

	b.WriteString("\n## Risks\n\n")
	for _, risk := range cls.Risks {
		fmt.Fprintf(&b, "- %s\n", risk)
		if level == DetailFull && kb != nil {
			if d, ok := kb.LookupRisk(risk); ok {
				fmt.Fprintf(&b, "  - _%s_\n", d.Summary)
				for _, g := range d.Guidance {
					fmt.Fprintf(&b, "  - %s\n", g)
				}
			}
		}
	}

	b.WriteString("\n## Complexity Factors\n\n| Points | Impact | Factor |\n|---|---|---|\n")
	for _, f := range cx.Factors {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", f.Points, f.Impact, f.Label)
	}

	if level != DetailFull {
		return b.String()
	}

	if len(r.Workflow.ConfigurationNeeds) > 0 {
		b.WriteString("\n## Configuration Needs\n\n| Setting | Default | Description |\n|---|---|---|\n")
		for _, c := range r.Workflow.ConfigurationNeeds {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", c.Setting, c.Default, c.Description)
		}
	}

	writeList(&b, "Trust Cues", cls.TrustCues)
	writeList(&b, "Recommended Principles", cls.RecommendedPrinciples)
	writeList(&b, "Technical Considerations", cls.TechnicalConsiderations)
	writeList(&b, "Comparable Products", cls.Examples)
	return b.String()
}

func writeFlow(b *strings.Builder, steps []workflow.Step) {
	for _, s := range steps {
		indent := ""
		if s.IsBranch() {
			indent = "  "
		}
		fmt.Fprintf(b, "%s- **%s** [%s] %s", indent, s.Label, s.Actor, s.Action)
		if s.ObjectRef != "" {
			fmt.Fprintf(b, " → `%s`", s.ObjectRef)
		}
		if s.IsConfidenceBearing {
			b.WriteString(" _(confidence-bearing)_")
		}
		if s.IsBranchPoint {
			b.WriteString(" _(branch point)_")
		}
		b.WriteString("\n")
		if s.Condition != "" {
			fmt.Fprintf(b, "%s  - when: %s\n", indent, s.Condition)
		}
	}
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
