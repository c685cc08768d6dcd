// Package domain loads industry overlays: object-type replacements merged
// into the object registry, per-pattern example text used when
// synthesizing workflows, and a descriptive terminology table.
//
// Built-in overlays are embedded YAML files under overlays/.
package domain

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/objects"
	"gopkg.in/yaml.v3"
)

//go:embed overlays/*.yaml
var overlayFS embed.FS

// --- Industry enum ---

// Industry selects the domain context for an analysis.
type Industry string

const (
	Generic Industry = "generic"
	HCM     Industry = "hcm"
	Finance Industry = "finance"
)

// ParseIndustry normalizes s. Anything other than a known industry name
// maps to Generic; this is never an error.
func ParseIndustry(s string) Industry {
	switch Industry(strings.ToLower(strings.TrimSpace(s))) {
	case HCM:
		return HCM
	case Finance:
		return Finance
	default:
		return Generic
	}
}

// --- Overlay ---

// PatternExample is industry-flavoured text for one workflow pattern.
// Besides the common title/query/entity fields each pattern reads its own
// named fields (criteria, detection, factors, recipient, ...).
type PatternExample struct {
	Title  string            `yaml:"title" json:"title"`
	Query  string            `yaml:"query" json:"query"`
	Entity string            `yaml:"entity" json:"entity"`
	Fields map[string]string `yaml:",inline" json:"fields,omitempty"`
}

// Field returns a named field, or "" when the example does not define it.
// "title", "query" and "entity" are accepted as field names too.
func (e PatternExample) Field(name string) string {
	switch name {
	case "title":
		return e.Title
	case "query":
		return e.Query
	case "entity":
		return e.Entity
	}
	return e.Fields[name]
}

// Overlay is one industry's data package.
type Overlay struct {
	Name            string                    `yaml:"name"`
	Industry        Industry                  `yaml:"industry"`
	Description     string                    `yaml:"description"`
	ObjectTypes     objects.Table             `yaml:"objectTypes"`
	PatternExamples map[string]PatternExample `yaml:"patternExamples"`
	Terminology     map[string]string         `yaml:"terminology"`
}

// OverlayName implements objects.Overlay.
func (o *Overlay) OverlayName() string { return o.Name }

// OverlayObjects implements objects.Overlay.
func (o *Overlay) OverlayObjects() objects.Table { return o.ObjectTypes }

// Example returns the example for a pattern key, if the overlay has one.
func (o *Overlay) Example(patternKey string) (PatternExample, bool) {
	if o == nil {
		return PatternExample{}, false
	}
	ex, ok := o.PatternExamples[patternKey]
	return ex, ok
}

// Term returns the domain-preferred label for a generic term, or the term
// itself when the overlay has no substitution.
func (o *Overlay) Term(generic string) string {
	if o != nil {
		if v, ok := o.Terminology[generic]; ok && v != "" {
			return v
		}
	}
	return generic
}

// Parse decodes an overlay from YAML and fills each object's Key from its
// map key.
func Parse(data []byte) (*Overlay, error) {
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("decoding overlay: %w", err)
	}
	if ov.Name == "" {
		return nil, fmt.Errorf("overlay has no name")
	}
	if ov.Industry == "" {
		ov.Industry = Industry(ov.Name)
	}
	for k, o := range ov.ObjectTypes {
		o.Key = k
		for _, rel := range o.Relationships {
			if err := objects.ValidateKind(rel.Kind); err != nil {
				return nil, fmt.Errorf("overlay %s, object %s: %w", ov.Name, k, err)
			}
		}
		ov.ObjectTypes[k] = o
	}
	return &ov, nil
}

// Builtin returns the names of the embedded overlays, sorted.
func Builtin() []string {
	entries, err := overlayFS.ReadDir("overlays")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load decodes a built-in overlay by name.
func Load(name string) (*Overlay, error) {
	data, err := overlayFS.ReadFile("overlays/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown overlay %q: must be one of: %s", name, strings.Join(Builtin(), ", "))
	}
	return Parse(data)
}

// LoadAll decodes the named built-in overlays in the given order.
func LoadAll(names ...string) ([]*Overlay, error) {
	out := make([]*Overlay, 0, len(names))
	for _, n := range names {
		ov, err := Load(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ov)
	}
	return out, nil
}
