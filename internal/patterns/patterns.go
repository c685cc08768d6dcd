// Package patterns holds the catalog of canonical workflow patterns and the
// detector that routes a concept to exactly one of them.
//
// Detection is first-match-wins over the catalog's declaration order. A
// concept that hits several patterns' triggers is routed by order alone,
// never by keyword count or specificity.
package patterns

import (
	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/rules"
)

// Key identifies a workflow pattern.
type Key string

const (
	AutoApproval            Key = "autoApproval"
	AnomalyDetection        Key = "anomalyDetection"
	IntelligentScheduling   Key = "intelligentScheduling"
	PredictiveForecasting   Key = "predictiveForecasting"
	ConversationalAssistant Key = "conversationalAssistant"
	DocumentIntelligence    Key = "documentIntelligence"
	SmartRecommendation     Key = "smartRecommendation"
	CrossSystemInsights     Key = "crossSystemInsights"
	IntelligentSearch       Key = "intelligentSearch"
	ComplianceMonitoring    Key = "complianceMonitoring"
	SentimentAnalysis       Key = "sentimentAnalysis"
	RiskScoring             Key = "riskScoring"

	// Generic is returned when no pattern's triggers match.
	Generic Key = "generic"
)

// Pattern is one canonical workflow shape.
type Pattern struct {
	Key         Key                        `json:"key"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Triggers    []string                   `json:"triggers"`
	Objects     []string                   `json:"objects"`
	Oversight   string                     `json:"human_oversight"`
	Examples    map[domain.Industry]string `json:"examples"`
}

// Example returns the example sentence for an industry, falling back to
// the generic one.
func (p Pattern) Example(ind domain.Industry) string {
	if s, ok := p.Examples[ind]; ok {
		return s
	}
	return p.Examples[domain.Generic]
}

// Catalog is an ordered, read-only list of patterns.
type Catalog struct {
	patterns []Pattern
	index    map[Key]int
	rules    []rules.Rule[Key]
}

// NewCatalog builds a catalog preserving the given order. Duplicate keys
// keep their first position.
func NewCatalog(ps []Pattern) *Catalog {
	c := &Catalog{index: make(map[Key]int, len(ps))}
	for _, p := range ps {
		if _, dup := c.index[p.Key]; dup {
			continue
		}
		c.index[p.Key] = len(c.patterns)
		c.patterns = append(c.patterns, p)
		c.rules = append(c.rules, rules.Rule[Key]{
			Name:   string(p.Key),
			Match:  rules.Any(p.Triggers...),
			Result: p.Key,
		})
	}
	return c
}

// Default returns the built-in twelve-pattern catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = NewCatalog(builtinPatterns)

// All returns the patterns in declaration order.
func (c *Catalog) All() []Pattern {
	return append([]Pattern(nil), c.patterns...)
}

// Keys returns pattern keys in declaration order.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, len(c.patterns))
	for i, p := range c.patterns {
		keys[i] = p.Key
	}
	return keys
}

// Get returns the pattern for key.
func (c *Catalog) Get(key Key) (Pattern, bool) {
	i, ok := c.index[key]
	if !ok {
		return Pattern{}, false
	}
	return c.patterns[i], true
}

// Rules exposes the ordered detection rules.
func (c *Catalog) Rules() []rules.Rule[Key] {
	return append([]rules.Rule[Key](nil), c.rules...)
}

// Detect returns the key of the first pattern, in declaration order, with a
// trigger keyword occurring in text. Generic when none match.
func (c *Catalog) Detect(text string) Key {
	if k, ok := rules.First(c.rules, rules.Normalize(text)); ok {
		return k
	}
	return Generic
}

// Matches lists every pattern whose triggers hit text, in catalog order,
// with the keywords that hit. Detect always picks the first entry.
func (c *Catalog) Matches(text string) []Match {
	lower := rules.Normalize(text)
	var out []Match
	for _, p := range c.patterns {
		if hits := rules.MatchedKeywords(lower, p.Triggers); len(hits) > 0 {
			out = append(out, Match{Key: p.Key, Keywords: hits})
		}
	}
	return out
}

// Match is one pattern whose triggers hit a concept.
type Match struct {
	Key      Key      `json:"key"`
	Keywords []string `json:"keywords"`
}

// Detect routes text with the default catalog.
func Detect(text string) Key {
	return defaultCatalog.Detect(text)
}
