// Package analysis is the engine entry point. It runs the classifier, the
// relevance extractor, the pattern detector, the workflow synthesizer and
// the complexity scorer over one concept and bundles the results.
//
// An Engine is built once and is read-only afterwards, so one Engine can
// serve any number of goroutines.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/classify"
	"github.com/HendryAvila/flowsmith/internal/complexity"
	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/HendryAvila/flowsmith/internal/workflow"
)

// Result is one complete analysis.
type Result struct {
	Concept        string                `json:"concept" yaml:"concept"`
	Industry       domain.Industry       `json:"industry" yaml:"industry"`
	Pattern        patterns.Key          `json:"pattern" yaml:"pattern"`
	PatternName    string                `json:"pattern_name" yaml:"pattern_name"`
	ObjectKeys     []objects.Key         `json:"object_keys" yaml:"object_keys"`
	Classification classify.Result       `json:"classification" yaml:"classification"`
	Workflow       workflow.Document     `json:"workflow" yaml:"workflow"`
	Complexity     complexity.Assessment `json:"complexity" yaml:"complexity"`
}

// Engine holds a frozen registry per industry plus the catalog and
// synthesizer shared by all of them.
type Engine struct {
	catalog    *patterns.Catalog
	synth      *workflow.Synthesizer
	registries map[domain.Industry]*objects.Registry
	overlays   map[domain.Industry]*domain.Overlay
}

// New builds an Engine. Every overlay gets its own registry made of the
// generic table plus that overlay, so one industry's objects never leak
// into another's analysis. The generic registry has no overlay.
func New(cat *patterns.Catalog, overlays ...*domain.Overlay) (*Engine, error) {
	synth, err := workflow.NewSynthesizer(cat)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog: cat,
		synth:   synth,
		registries: map[domain.Industry]*objects.Registry{
			domain.Generic: objects.Build(objects.GenericTable()),
		},
		overlays: map[domain.Industry]*domain.Overlay{},
	}
	for _, ov := range overlays {
		if ov == nil {
			continue
		}
		if ov.Industry == domain.Generic {
			return nil, fmt.Errorf("analysis: overlay %q cannot target the generic industry", ov.Name)
		}
		e.registries[ov.Industry] = objects.Build(objects.GenericTable(), ov)
		e.overlays[ov.Industry] = ov
	}
	return e, nil
}

// NewDefault builds an Engine over the default catalog and the named
// built-in overlays.
func NewDefault(overlayNames ...string) (*Engine, error) {
	ovs, err := domain.LoadAll(overlayNames...)
	if err != nil {
		return nil, err
	}
	return New(patterns.Default(), ovs...)
}

// MustDefault is NewDefault with every built-in overlay. It panics if the
// embedded data is broken.
func MustDefault() *Engine {
	e, err := NewDefault(domain.Builtin()...)
	if err != nil {
		panic(err)
	}
	return e
}

// Analyze runs the whole pipeline. industry values the engine has no
// overlay for are treated as generic. Identical inputs give identical
// results.
func (e *Engine) Analyze(concept string, industry string) Result {
	ind := e.resolveIndustry(industry)
	return Analyze(e.catalog, e.synth, e.registries[ind], e.overlays[ind], concept, ind)
}

// Analyze is the engine-free form: every collaborator is passed in.
func Analyze(cat *patterns.Catalog, synth *workflow.Synthesizer, reg *objects.Registry, ov *domain.Overlay, concept string, ind domain.Industry) Result {
	cls := classify.Classify(concept)
	keys := objects.DetectRelevant(concept)
	pattern := cat.Detect(concept)

	doc := synth.Synthesize(workflow.Request{
		Concept:    concept,
		Pattern:    pattern,
		ObjectKeys: keys,
		Industry:   ind,
		Overlay:    ov,
		Registry:   reg,
	})

	name := "Generic Workflow"
	if p, ok := cat.Get(pattern); ok {
		name = p.Name
	}

	return Result{
		Concept:        concept,
		Industry:       ind,
		Pattern:        pattern,
		PatternName:    name,
		ObjectKeys:     keys,
		Classification: cls,
		Workflow:       doc,
		Complexity:     complexity.Score(concept, cls, doc),
	}
}

// DetectWorkflowPattern returns the pattern for text.
func (e *Engine) DetectWorkflowPattern(text string) patterns.Key {
	return e.catalog.Detect(text)
}

// DetectRelevantObjects returns the object keys implicated by text.
func (e *Engine) DetectRelevantObjects(text string) []objects.Key {
	return objects.DetectRelevant(text)
}

// Catalog returns the engine's pattern catalog.
func (e *Engine) Catalog() *patterns.Catalog { return e.catalog }

// Registry returns the frozen registry for an industry, falling back to
// the generic one.
func (e *Engine) Registry(industry string) *objects.Registry {
	return e.registries[e.resolveIndustry(industry)]
}

// Overlay returns the overlay for an industry, or nil.
func (e *Engine) Overlay(industry string) *domain.Overlay {
	return e.overlays[e.resolveIndustry(industry)]
}

// Industries lists the industries this engine can analyse, generic first.
func (e *Engine) Industries() []domain.Industry {
	out := make([]domain.Industry, 0, len(e.registries))
	for ind := range e.registries {
		if ind != domain.Generic {
			out = append(out, ind)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append([]domain.Industry{domain.Generic}, out...)
}

func (e *Engine) resolveIndustry(s string) domain.Industry {
	ind := domain.Industry(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := e.registries[ind]; !ok {
		return domain.Generic
	}
	return ind
}
