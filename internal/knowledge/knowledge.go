// Package knowledge is the read-only reference data behind analysis
// results: risk and touchpoint details, a glossary and the decision
// checklist.
//
// Lookups are best-effort. A miss is a normal outcome and callers are
// expected to show generic text instead.
package knowledge

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Detail explains one risk or touchpoint phrase.
type Detail struct {
	Key      string   `yaml:"key" json:"key"`
	Category string   `yaml:"category" json:"category"`
	Summary  string   `yaml:"summary" json:"summary"`
	Impact   string   `yaml:"impact,omitempty" json:"impact,omitempty"`
	Guidance []string `yaml:"guidance,omitempty" json:"guidance,omitempty"`
}

// Term is a glossary entry.
type Term struct {
	Term       string   `yaml:"term" json:"term"`
	Definition string   `yaml:"definition" json:"definition"`
	See        []string `yaml:"see,omitempty" json:"see,omitempty"`
}

// Section is one group of checklist questions.
type Section struct {
	Title     string   `yaml:"title" json:"title"`
	Questions []string `yaml:"questions" json:"questions"`
}

// Base holds the tables in their declared order.
type Base struct {
	risks       []Detail
	touchpoints []Detail
	glossary    []Term
	checklist   []Section
}

// Load decodes the embedded tables.
func Load() (*Base, error) {
	b := &Base{}
	for name, dst := range map[string]any{
		"risks.yaml":       &b.risks,
		"touchpoints.yaml": &b.touchpoints,
		"glossary.yaml":    &b.glossary,
		"checklist.yaml":   &b.checklist,
	} {
		data, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("knowledge: reading %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, dst); err != nil {
			return nil, fmt.Errorf("knowledge: decoding %s: %w", name, err)
		}
	}
	return b, nil
}

var defaultBase = sync.OnceValue(func() *Base {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
})

// Default returns the embedded knowledge base, decoded once.
func Default() *Base { return defaultBase() }

// LookupRisk resolves a risk phrase.
func (b *Base) LookupRisk(phrase string) (Detail, bool) {
	return lookup(b.risks, phrase)
}

// LookupTouchpoint resolves a touchpoint phrase.
func (b *Base) LookupTouchpoint(phrase string) (Detail, bool) {
	return lookup(b.touchpoints, phrase)
}

// LookupGlossary finds a glossary term, ignoring case.
func (b *Base) LookupGlossary(term string) (Term, bool) {
	for _, t := range b.glossary {
		if strings.EqualFold(t.Term, strings.TrimSpace(term)) {
			return t, true
		}
	}
	return Term{}, false
}

// Risks returns the risk table in declared order.
func (b *Base) Risks() []Detail { return append([]Detail(nil), b.risks...) }

// Touchpoints returns the touchpoint table in declared order.
func (b *Base) Touchpoints() []Detail { return append([]Detail(nil), b.touchpoints...) }

// Glossary returns every glossary entry in declared order.
func (b *Base) Glossary() []Term { return append([]Term(nil), b.glossary...) }

// Checklist returns the decision checklist.
func (b *Base) Checklist() []Section { return append([]Section(nil), b.checklist...) }

// lookup tries an exact key first, then scans in table order for the
// first key that contains the phrase or is contained by it, ignoring case.
// A blank phrase never matches.
func lookup(table []Detail, phrase string) (Detail, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return Detail{}, false
	}
	for _, d := range table {
		if d.Key == phrase {
			return d, true
		}
	}
	lower := strings.ToLower(phrase)
	for _, d := range table {
		key := strings.ToLower(d.Key)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return d, true
		}
	}
	return Detail{}, false
}

// Package-level helpers over Default.

func LookupRisk(phrase string) (Detail, bool)       { return Default().LookupRisk(phrase) }
func LookupTouchpoint(phrase string) (Detail, bool) { return Default().LookupTouchpoint(phrase) }
func LookupGlossary(term string) (Term, bool)       { return Default().LookupGlossary(term) }
func Checklist() []Section                          { return Default().Checklist() }
