package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/history"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/HendryAvila/flowsmith/internal/workflow"
)

// Analysis prints a full analysis. Risks and touchpoints are annotated from
// kb when it knows them; kb may be nil.
func (p *Printer) Analysis(r analysis.Result, kb *knowledge.Base) error {
	p.printf("%s\n", p.st.heading.Render(Fit(r.Concept, p.width)))
	p.rule()
	p.field("Industry", Title(string(r.Industry)))
	p.field("Pattern", fmt.Sprintf("%s (%s)", r.PatternName, r.Pattern))
	p.field("AI type", r.Classification.AIType)
	p.field("Visibility", Title(string(r.Classification.Visibility)))
	p.field("Complexity", fmt.Sprintf("%d/100 %s · %s", r.Complexity.Score, p.level(string(r.Complexity.Level)), r.Complexity.Effort))

	p.heading("Why")
	p.bullets([]string{r.Classification.AITypeReason, r.Classification.VisibilityReason})

	if len(r.Workflow.Objects) > 0 {
		p.heading("Objects")
		for _, o := range r.Workflow.Objects {
			p.printf("  %s %s\n", p.st.label.Render(Pad(o.Name, 18)), p.st.muted.Render(Fit(o.Description, p.width-22)))
		}
	}

	p.heading("Workflow")
	p.flow(r.Workflow.Flow)

	p.heading("AI touchpoints")
	for _, tp := range r.Workflow.AITouchpoints {
		p.printf("  • %s\n", tp)
		if kb != nil {
			if d, ok := kb.LookupTouchpoint(tp); ok {
				p.printf("    %s\n", p.st.muted.Render(Fit(d.Summary, p.width-4)))
			}
		}
	}

	if len(r.Workflow.ConfigurationNeeds) > 0 {
		p.heading("Configuration")
		for _, c := range r.Workflow.ConfigurationNeeds {
			p.printf("  %s = %s  %s\n", p.st.label.Render(c.Setting), c.Default, p.st.muted.Render(c.Description))
		}
	}

	p.heading("Risks")
	for _, risk := range r.Classification.Risks {
		p.printf("  • %s\n", risk)
		if kb != nil {
			if d, ok := kb.LookupRisk(risk); ok {
				p.printf("    %s\n", p.st.muted.Render(Fit(d.Summary, p.width-4)))
			}
		}
	}

	p.heading("Trust cues")
	p.bullets(r.Classification.TrustCues)
	p.heading("Principles")
	p.bullets(r.Classification.RecommendedPrinciples)

	p.heading("Complexity factors")
	for _, f := range r.Complexity.Factors {
		p.printf("  %3d  %s  %s\n", f.Points, p.level(Pad(string(f.Impact), 8)), f.Label)
	}
	return p.err
}

func (p *Printer) flow(steps []workflow.Step) {
	for _, s := range steps {
		indent := "  "
		if s.IsBranch() {
			indent = "      "
		}
		actor := string(s.Actor)
		if s.Actor == workflow.AI {
			actor = p.st.ai.Render(actor)
		}
		line := fmt.Sprintf("%s%-3s %-6s %s", indent, s.Label, actor, s.Action)
		if s.IsConfidenceBearing {
			line += p.st.muted.Render(" [confidence]")
		}
		p.printf("%s\n", line)
		if s.Condition != "" {
			p.printf("%s    %s\n", indent, p.st.branch.Render("when "+s.Condition))
		}
	}
}

// Patterns prints the catalog in detection order with industry examples.
func (p *Printer) Patterns(cat *patterns.Catalog, ind domain.Industry) error {
	for i, pt := range cat.All() {
		p.printf("%2d. %s %s\n", i+1, p.st.label.Render(pt.Name), p.st.muted.Render("("+string(pt.Key)+")"))
		p.printf("    %s\n", Fit(pt.Description, p.width-4))
		p.printf("    %s %s\n", p.st.muted.Render("triggers:"), strings.Join(pt.Triggers, ", "))
		if ex := pt.Example(ind); ex != "" {
			p.printf("    %s %s\n", p.st.muted.Render("e.g."), Fit(ex, p.width-9))
		}
	}
	return p.err
}

// Objects prints every object in reg, or only keys when given.
func (p *Printer) Objects(reg *objects.Registry, keys ...objects.Key) error {
	if len(keys) == 0 {
		keys = reg.Keys()
	}
	for _, k := range keys {
		o, ok := reg.Lookup(k)
		if !ok {
			p.printf("%s %s\n", p.st.label.Render(string(k)), p.st.muted.Render("(not registered)"))
			continue
		}
		p.printf("%s %s\n", p.st.label.Render(o.Name), p.st.muted.Render("("+string(o.Key)+")"))
		p.printf("    %s\n", Fit(o.Description, p.width-4))
		if len(o.CoreFields) > 0 {
			p.printf("    core: %s\n", strings.Join(o.CoreFields, ", "))
		}
		if len(o.Actions) > 0 {
			p.printf("    actions: %s\n", strings.Join(o.Actions, ", "))
		}
		for _, rel := range o.Relationships {
			target := string(rel.Target)
			if t, ok := reg.Target(rel); ok {
				target = t.Name
			} else {
				target += p.st.muted.Render(" (dangling)")
			}
			p.printf("    %s %s\n", rel.Kind, target)
		}
	}
	if names := reg.Overlays(); len(names) > 0 {
		p.printf("\n%s %s\n", p.st.muted.Render("overlays:"), strings.Join(names, ", "))
	}
	return p.err
}

// Detail prints one knowledge-base entry.
func (p *Printer) Detail(d knowledge.Detail) error {
	p.printf("%s %s\n", p.st.label.Render(d.Key), p.st.muted.Render("["+d.Category+"]"))
	p.printf("  %s\n", d.Summary)
	if d.Impact != "" {
		p.field("  Impact", d.Impact)
	}
	p.bullets(d.Guidance)
	return p.err
}

// Term prints one glossary entry.
func (p *Printer) Term(t knowledge.Term) error {
	p.printf("%s\n  %s\n", p.st.label.Render(t.Term), t.Definition)
	if len(t.See) > 0 {
		p.printf("  %s %s\n", p.st.muted.Render("see:"), strings.Join(t.See, ", "))
	}
	return p.err
}

// Checklist prints the design checklist as numbered sections.
func (p *Printer) Checklist(sections []knowledge.Section) error {
	for i, s := range sections {
		p.printf("%d. %s\n", i+1, p.st.heading.Render(s.Title))
		for _, q := range s.Questions {
			p.printf("   [ ] %s\n", Fit(q, p.width-7))
		}
	}
	return p.err
}

// Records prints history records one per line.
func (p *Printer) Records(recs []history.Record) error {
	if len(recs) == 0 {
		p.printf("%s\n", p.st.muted.Render("No analyses recorded."))
		return p.err
	}
	for _, r := range recs {
		p.printf("%s  %3d %s  %-18s %s\n",
			p.st.muted.Render(r.ID[:min(8, len(r.ID))]),
			r.Score, p.level(Pad(r.Level, 6)),
			Fit(r.Pattern, 18),
			Fit(r.Concept, p.width-42),
		)
	}
	return p.err
}

// Stats prints aggregate history numbers.
func (p *Printer) Stats(st *history.Stats) error {
	p.field("Analyses", fmt.Sprint(st.Total))
	p.field("Average score", fmt.Sprintf("%.1f", st.AverageScore))
	for _, group := range []struct {
		name string
		m    map[string]int
	}{
		{"By level", st.ByLevel},
		{"By pattern", st.ByPattern},
		{"By industry", st.ByIndustry},
	} {
		if len(group.m) == 0 {
			continue
		}
		p.heading(group.name)
		for _, k := range sortedKeys(group.m) {
			p.printf("  %-22s %d\n", k, group.m[k])
		}
	}
	return p.err
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
