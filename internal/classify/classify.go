// Package classify derives an AI-technique category and an interaction
// visibility from a concept, plus the guidance lists that go with them.
package classify

import (
	"github.com/HendryAvila/flowsmith/internal/rules"
)

// AI technique categories. Values are display strings and appear verbatim
// in results.
const (
	LLM            = "LLM (Large Language Model)"
	ComputerVision = "Computer Vision"
	TimeSeries     = "Time Series Forecasting"
	AnomalyML      = "Anomaly Detection ML"
	Recommendation = "Recommendation Engine"
	RuleBased      = "Rule-Based AI + ML"
	TraditionalML  = "Traditional ML"
)

// Visibility says whether the AI works behind the scenes or alongside the user.
type Visibility string

const (
	Backstage Visibility = "backstage"
	CoPilot   Visibility = "co-pilot"
)

// Result is the classification of one concept.
type Result struct {
	AIType           string     `json:"ai_type" yaml:"ai_type"`
	AITypeReason     string     `json:"ai_type_reason" yaml:"ai_type_reason"`
	Visibility       Visibility `json:"visibility" yaml:"visibility"`
	VisibilityReason string     `json:"visibility_reason" yaml:"visibility_reason"`

	RecommendedPrinciples   []string `json:"recommended_principles" yaml:"recommended_principles"`
	TechnicalConsiderations []string `json:"technical_considerations" yaml:"technical_considerations"`
	TrustCues               []string `json:"trust_cues" yaml:"trust_cues"`
	Risks                   []string `json:"risks" yaml:"risks"`
	Examples                []string `json:"examples" yaml:"examples"`
}

// AITypeRules is the ordered technique ladder. The first rule that matches
// decides; later rules are never consulted.
var AITypeRules = []rules.Rule[string]{
	{
		Name:   "llm",
		Match:  rules.Any("chat", "conversation", "question", "answer", "natural language", "summarize", "write", "generate text"),
		Result: LLM,
	},
	{
		Name:   "computer-vision",
		Match:  rules.Any("image", "photo", "visual", "video", "recognize", "detect face", "ocr", "scan"),
		Result: ComputerVision,
	},
	{
		Name:   "time-series",
		Match:  rules.Any("forecast", "predict", "trend", "time series", "seasonal"),
		Result: TimeSeries,
	},
	{
		Name:   "anomaly",
		Match:  rules.Any("anomal", "outlier", "unusual", "fraud"),
		Result: AnomalyML,
	},
	{
		Name:   "recommendation",
		Match:  rules.Any("recommend", "suggest", "personalize", "similar"),
		Result: Recommendation,
	},
	{
		Name: "rule-based",
		Match: rules.Or(
			rules.Any("rule", "policy", "threshold"),
			rules.Every("auto", "approv"),
		),
		Result: RuleBased,
	},
}

// VisibilityRule decides co-pilot. Anything it does not match is backstage.
var VisibilityRule = rules.Rule[Visibility]{
	Name: "co-pilot",
	Match: rules.Or(
		rules.Any("chat", "assistant", "copilot", "conversational", "explore", "dashboard", "view", "ask"),
		rules.And(rules.Any("intelligent"), rules.Any("vantage", "hub")),
	),
	Result: CoPilot,
}

var aiTypeReasons = map[string]string{
	LLM:            "Involves natural language understanding or generation",
	ComputerVision: "Involves processing images, video or scanned content",
	TimeSeries:     "Involves predicting future values from historical patterns",
	AnomalyML:      "Involves spotting unusual patterns or outliers in data",
	Recommendation: "Involves ranking or suggesting options for a user",
	RuleBased:      "Combines explicit business rules with learned signals",
	TraditionalML:  "General classification or regression over structured data",
}

var visibilityReasons = map[Visibility]string{
	Backstage: "Runs in the background; users see outcomes, not the AI itself",
	CoPilot:   "Works alongside the user in an interactive surface",
}

// AIType returns the technique category for text. The bool reports whether
// a rule matched; false means the TraditionalML default applied.
func AIType(text string) (string, bool) {
	if t, ok := rules.First(AITypeRules, rules.Normalize(text)); ok {
		return t, true
	}
	return TraditionalML, false
}

// VisibilityOf returns the interaction visibility for text.
func VisibilityOf(text string) Visibility {
	if VisibilityRule.Match(rules.Normalize(text)) {
		return VisibilityRule.Result
	}
	return Backstage
}

// Classify runs both rule sets and attaches the derived guidance. It is a
// pure function of text; the empty string yields the defaults.
func Classify(text string) Result {
	aiType, _ := AIType(text)
	vis := VisibilityOf(text)

	g := guidanceFor[aiType]
	vg := visibilityGuidance[vis]

	return Result{
		AIType:           aiType,
		AITypeReason:     aiTypeReasons[aiType],
		Visibility:       vis,
		VisibilityReason: visibilityReasons[vis],

		RecommendedPrinciples:   concat(g.principles, vg.principles),
		TechnicalConsiderations: concat(g.technical, nil),
		TrustCues:               concat(vg.trustCues, nil),
		Risks:                   concat(g.risks, vg.risks),
		Examples:                concat(g.examples, nil),
	}
}

// AITypes lists every category the classifier can produce, in ladder order
// with the default last.
func AITypes() []string {
	out := make([]string, 0, len(AITypeRules)+1)
	for _, r := range AITypeRules {
		out = append(out, r.Result)
	}
	return append(out, TraditionalML)
}

// concat always returns a fresh non-nil slice so results never share
// backing arrays with the static tables.
func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
