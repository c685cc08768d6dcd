// Package complexity - implementation effort scoring.
//
// Eight independent factors each add points, capped per dimension. The
// raw sum is divided by a fixed 110-point denominator and mapped to a
// Low / Medium / High band with a fixed effort estimate. The caps add up
// to 102, so the highest reachable score is 93.
package complexity

import (
	"fmt"
	"math"
	"sort"

	"github.com/HendryAvila/flowsmith/internal/classify"
	"github.com/HendryAvila/flowsmith/internal/rules"
	"github.com/HendryAvila/flowsmith/internal/workflow"
)

// MaxRaw is the normalisation denominator. It is larger than the sum of
// the dimension caps (see MaxReachable), so a score never reaches 100.
const MaxRaw = 110

// Level is the qualitative band of a score.
type Level string

const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Dimension describes one scoring factor and its point ceiling.
type Dimension struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Max         int    `json:"max"`
}

// Dimension indexes, in evaluation order.
const (
	dimAIType = iota
	dimInteraction
	dimIntegration
	dimRealTime
	dimSteps
	dimDataVolume
	dimPredictive
	dimRisks
)

var dimensions = DefaultDimensions()

// MaxReachable is the sum of every dimension cap.
func MaxReachable() int {
	sum := 0
	for _, d := range dimensions {
		sum += d.Max
	}
	return sum
}

// DefaultDimensions returns the eight factors in evaluation order. Score
// caps each factor at its dimension's Max.
func DefaultDimensions() []Dimension {
	return []Dimension{
		{Name: "ai_type", Description: "Technique weight: LLM concepts cost more", Max: 15},
		{Name: "interaction", Description: "Co-pilot surfaces cost more than backstage automation", Max: 12},
		{Name: "integration", Description: "How many systems the concept spans", Max: 15},
		{Name: "real_time", Description: "Latency expectations", Max: 15},
		{Name: "workflow_steps", Description: "Length of the synthesized flow", Max: 15},
		{Name: "data_volume", Description: "How much data is touched", Max: 10},
		{Name: "predictive", Description: "Forward-looking features", Max: 10},
		{Name: "risk_count", Description: "Number of identified risks", Max: 10},
	}
}

// Factor is one contribution to a score.
type Factor struct {
	Label  string `json:"factor" yaml:"factor"`
	Impact Level  `json:"impact" yaml:"impact"`
	Points int    `json:"points" yaml:"points"`
}

// Assessment is the scored result.
type Assessment struct {
	Score   int      `json:"score" yaml:"score"`
	Level   Level    `json:"level" yaml:"level"`
	Effort  string   `json:"effort" yaml:"effort"`
	Factors []Factor `json:"factors" yaml:"factors"`
}

var efforts = map[Level]string{
	Low:    "2-4 weeks",
	Medium: "1-3 months",
	High:   "3-6 months",
}

// Effort returns the fixed effort estimate for a level.
func Effort(l Level) string { return efforts[l] }

// LevelFor bands a normalised score.
func LevelFor(score int) Level {
	switch {
	case score <= 30:
		return Low
	case score <= 60:
		return Medium
	default:
		return High
	}
}

// Normalize converts a raw factor sum into the 0-100 score.
func Normalize(raw int) int {
	return int(math.Round(math.Min(100, float64(raw)/MaxRaw*100)))
}

// Score assesses a concept given its classification and workflow.
func Score(text string, cls classify.Result, doc workflow.Document) Assessment {
	lower := rules.Normalize(text)

	var factors []Factor
	add := func(dim int, label string, pts int, always bool) {
		pts = min(pts, dimensions[dim].Max)
		if pts > 0 || always {
			factors = append(factors, Factor{Label: label, Impact: impactOf(pts), Points: pts})
		}
	}

	// The bonus only applies to the bare "LLM" value. Classifier output is
	// always the long form, so concepts currently get 8 here.
	aiPts := 8
	if cls.AIType == "LLM" {
		aiPts = 15
	}
	add(dimAIType, "AI type: "+cls.AIType, aiPts, true)

	interPts := 6
	if cls.Visibility == classify.CoPilot {
		interPts = 12
	}
	add(dimInteraction, "Interaction: "+string(cls.Visibility), interPts, true)

	switch {
	case rules.ContainsAny(lower, "unified", "cross-domain", "360", "across all", "multi-system"):
		add(dimIntegration, "Cross-system integration", 15, false)
	case rules.ContainsAny(lower, "across", "multiple"):
		add(dimIntegration, "Multi-system integration", 8, false)
	}

	switch {
	case rules.ContainsAny(lower, "real-time", "instant", "immediate"):
		add(dimRealTime, "Real-time processing", 15, false)
	case rules.ContainsAny(lower, "monitor", "detect", "alert"):
		add(dimRealTime, "Continuous monitoring", 8, false)
	}

	steps := len(doc.Flow)
	add(dimSteps, fmt.Sprintf("Workflow steps (%d)", steps), stepPoints(steps), false)

	switch {
	case rules.ContainsAny(lower, "all", "every", "entire"):
		add(dimDataVolume, "Large data volume", 10, false)
	case rules.ContainsAny(lower, "historical", "past"):
		add(dimDataVolume, "Historical data", 6, false)
	}

	if rules.ContainsAny(lower, "predict", "forecast", "recommend") {
		add(dimPredictive, "Predictive features", 10, false)
	}

	add(dimRisks, fmt.Sprintf("Risks identified (%d)", len(cls.Risks)), len(cls.Risks)*2, false)

	raw := 0
	for _, f := range factors {
		raw += f.Points
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Points > factors[j].Points
	})

	score := Normalize(raw)
	level := LevelFor(score)
	return Assessment{
		Score:   score,
		Level:   level,
		Effort:  efforts[level],
		Factors: factors,
	}
}

func stepPoints(n int) int {
	switch {
	case n > 8:
		return 15
	case n > 5:
		return 10
	case n > 0:
		return 5
	default:
		return 0
	}
}

func impactOf(points int) Level {
	switch {
	case points >= 12:
		return High
	case points >= 8:
		return Medium
	default:
		return Low
	}
}
