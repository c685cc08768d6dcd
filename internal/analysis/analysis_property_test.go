package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var vocabulary = []string{
	"auto", "approve", "pto", "expense", "detect", "fraud", "flag", "schedule", "shift",
	"forecast", "predict", "chat", "ask", "invoice", "extract", "recommend", "unified",
	"across", "all", "search", "audit", "policy", "survey", "risk", "score", "real-time",
	"monitor", "historical", "dashboard", "team", "vendor", "employee", "the", "for",
}

func genConcept(t *rapid.T) string {
	n := rapid.IntRange(0, 10).Draw(t, "words")
	words := make([]string, n)
	for i := range words {
		words[i] = rapid.SampledFrom(vocabulary).Draw(t, "word")
	}
	return strings.Join(words, " ")
}

func TestAnalyzeDeterministicProperty(t *testing.T) {
	e := MustDefault()
	rapid.Check(t, func(t *rapid.T) {
		concept := genConcept(t)
		industry := rapid.SampledFrom([]string{"generic", "hcm", "finance", "retail", ""}).Draw(t, "industry")

		a, err := json.Marshal(e.Analyze(concept, industry))
		if err != nil {
			t.Fatal(err)
		}
		b, err := json.Marshal(e.Analyze(concept, industry))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Fatalf("Analyze(%q, %q) is not deterministic", concept, industry)
		}
	})
}

func TestAnalyzeScoreBoundsProperty(t *testing.T) {
	e := MustDefault()
	rapid.Check(t, func(t *rapid.T) {
		concept := genConcept(t)
		industry := rapid.SampledFrom([]string{"generic", "hcm", "finance"}).Draw(t, "industry")

		r := e.Analyze(concept, industry)
		if r.Complexity.Score < 0 || r.Complexity.Score > 100 {
			t.Fatalf("score %d out of range for %q", r.Complexity.Score, concept)
		}
		if len(r.Workflow.Flow) == 0 {
			t.Fatalf("empty flow for %q", concept)
		}
	})
}
