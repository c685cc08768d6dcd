// Package workflow turns a detected pattern into an object-oriented workflow
// document: the objects involved, an ordered step flow with branches, the
// AI touchpoints and the configuration knobs an implementation needs.
//
// Each pattern has one synthesis function. They are held in a registry
// keyed by pattern, and New refuses a registry that leaves any catalog
// pattern without a function.
package workflow

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/HendryAvila/flowsmith/internal/rules"
)

// Actor performs a step.
type Actor string

const (
	User   Actor = "User"
	System Actor = "System"
	AI     Actor = "AI"
)

// Step is one entry in a flow. A label with a trailing letter ("4a") is an
// exclusive branch of the integer-labelled step right before it.
type Step struct {
	Label               string      `json:"step" yaml:"step"`
	Actor               Actor       `json:"actor" yaml:"actor"`
	Action              string      `json:"action" yaml:"action"`
	ObjectRef           objects.Key `json:"object" yaml:"object"`
	IsBranchPoint       bool        `json:"is_branch_point" yaml:"is_branch_point"`
	Condition           string      `json:"condition,omitempty" yaml:"condition,omitempty"`
	IsConfidenceBearing bool        `json:"is_confidence_bearing" yaml:"is_confidence_bearing"`
}

// IsBranch reports whether the step is a lettered alternative.
func (s Step) IsBranch() bool {
	if s.Label == "" {
		return false
	}
	last := s.Label[len(s.Label)-1]
	return last >= 'a' && last <= 'z'
}

// ConfigNeed is a setting an implementation must expose.
type ConfigNeed struct {
	Setting     string `json:"setting" yaml:"setting"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default" yaml:"default"`
}

// Document is the synthesized workflow.
type Document struct {
	Pattern            patterns.Key         `json:"pattern" yaml:"pattern"`
	Objects            []objects.ObjectType `json:"objects" yaml:"objects"`
	Flow               []Step               `json:"flow" yaml:"flow"`
	AITouchpoints      []string             `json:"ai_touchpoints" yaml:"ai_touchpoints"`
	ConfigurationNeeds []ConfigNeed         `json:"configuration_needs" yaml:"configuration_needs"`
}

// Touchpoints holds the three pre-authored touchpoint lists for a pattern.
// Exactly one whole list is chosen per industry; lists are never merged.
type Touchpoints struct {
	HCM     []string
	Finance []string
	Generic []string
}

// For picks the list for an industry.
func (t Touchpoints) For(ind domain.Industry) []string {
	switch ind {
	case domain.HCM:
		return t.HCM
	case domain.Finance:
		return t.Finance
	default:
		return t.Generic
	}
}

// Parts is what a synthesis function produces. Objects are resolved by the
// Synthesizer, not by the function.
type Parts struct {
	Flow        []Step
	Touchpoints Touchpoints
	Config      []ConfigNeed
}

// Func synthesizes one pattern's workflow.
type Func func(c Context) Parts

// Request carries everything a synthesis needs.
type Request struct {
	Concept    string
	Pattern    patterns.Key
	ObjectKeys []objects.Key
	Industry   domain.Industry
	// Overlay supplies the industry's example terms. Nil for generic.
	Overlay  *domain.Overlay
	Registry *objects.Registry
}

// Synthesizer dispatches a request to the function registered for its
// pattern. It is immutable after New.
type Synthesizer struct {
	funcs    map[patterns.Key]Func
	fallback Func
}

// New builds a Synthesizer and checks that every pattern in cat has a
// function. fallback handles unknown keys and patterns.Generic.
func New(cat *patterns.Catalog, funcs map[patterns.Key]Func, fallback Func) (*Synthesizer, error) {
	if fallback == nil {
		return nil, fmt.Errorf("workflow: fallback synthesizer is required")
	}
	var missing []string
	for _, k := range cat.Keys() {
		if funcs[k] == nil {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("workflow: no synthesizer for pattern(s): %s", strings.Join(missing, ", "))
	}

	s := &Synthesizer{funcs: make(map[patterns.Key]Func, len(funcs)), fallback: fallback}
	for k, f := range funcs {
		s.funcs[k] = f
	}
	return s, nil
}

// NewSynthesizer builds a Synthesizer with the built-in functions for cat.
func NewSynthesizer(cat *patterns.Catalog) (*Synthesizer, error) {
	return New(cat, Builtin(), synthGeneric)
}

// Builtin returns a fresh copy of the built-in pattern functions.
func Builtin() map[patterns.Key]Func {
	return map[patterns.Key]Func{
		patterns.AutoApproval:            synthAutoApproval,
		patterns.AnomalyDetection:        synthAnomalyDetection,
		patterns.IntelligentScheduling:   synthScheduling,
		patterns.PredictiveForecasting:   synthForecasting,
		patterns.ConversationalAssistant: synthAssistant,
		patterns.DocumentIntelligence:    synthDocuments,
		patterns.SmartRecommendation:     synthRecommendation,
		patterns.CrossSystemInsights:     synthInsights,
		patterns.IntelligentSearch:       synthSearch,
		patterns.ComplianceMonitoring:    synthCompliance,
		patterns.SentimentAnalysis:       synthSentiment,
		patterns.RiskScoring:             synthRiskScoring,
	}
}

// Has reports whether a dedicated function is registered for key.
func (s *Synthesizer) Has(key patterns.Key) bool {
	_, ok := s.funcs[key]
	return ok
}

// Synthesize builds the document for req. It never fails: unknown patterns
// use the fallback and object keys missing from the registry are dropped.
func (s *Synthesizer) Synthesize(req Request) Document {
	f, ok := s.funcs[req.Pattern]
	if !ok {
		f = s.fallback
	}

	c := Context{
		Concept:  req.Concept,
		Industry: req.Industry,
		Overlay:  req.Overlay,
		Pattern:  req.Pattern,
		lower:    rules.Normalize(req.Concept),
	}
	parts := f(c)

	doc := Document{
		Pattern:            req.Pattern,
		Objects:            []objects.ObjectType{},
		Flow:               append([]Step{}, parts.Flow...),
		AITouchpoints:      append([]string{}, parts.Touchpoints.For(req.Industry)...),
		ConfigurationNeeds: append([]ConfigNeed{}, parts.Config...),
	}
	if req.Registry != nil {
		doc.Objects = req.Registry.Resolve(req.ObjectKeys)
	}
	return doc
}

// --- term resolution ---

// Context is the input a synthesis function reads terms from.
type Context struct {
	Concept  string
	Industry domain.Industry
	Overlay  *domain.Overlay
	Pattern  patterns.Key
	lower    string
}

// Term resolves a domain term in three stages: the overlay's example field
// for this pattern, then the first derivation rule matching the concept,
// then def.
func (c Context) Term(field string, derive []rules.Rule[string], def string) string {
	if ex, ok := c.Overlay.Example(string(c.Pattern)); ok {
		if v := ex.Field(field); v != "" {
			return v
		}
	}
	if v, ok := rules.First(derive, c.lower); ok {
		return v
	}
	return def
}

// Entity resolves the label for the main actor or subject.
func (c Context) Entity() string {
	return c.Term("entity", entityTerms, "user")
}

// Mentions reports whether the concept contains any of the keywords.
func (c Context) Mentions(keywords ...string) bool {
	return rules.ContainsAny(c.lower, keywords...)
}

// --- step builders ---

func step(label string, actor Actor, ref objects.Key, action string) Step {
	return Step{Label: label, Actor: actor, Action: action, ObjectRef: ref}
}

func (s Step) branchPoint() Step {
	s.IsBranchPoint = true
	return s
}

func (s Step) when(cond string) Step {
	s.Condition = cond
	return s
}

func (s Step) confident() Step {
	s.IsConfidenceBearing = true
	return s
}

// derive is shorthand for a keyword-to-term derivation rule.
func derive(term string, keywords ...string) rules.Rule[string] {
	return rules.Rule[string]{Name: term, Match: rules.Any(keywords...), Result: term}
}

var entityTerms = []rules.Rule[string]{
	derive("employee", "employee", "staff", "worker", "pto", "leave", "shift", "payroll", "hire"),
	derive("vendor", "vendor", "supplier", "invoice", "purchase"),
	derive("customer", "customer", "client", "account"),
	derive("candidate", "candidate", "applicant", "recruit"),
	derive("manager", "manager"),
}
