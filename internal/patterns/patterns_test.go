package patterns

import (
	"bytes"
	"go/format"
	"os"
	"reflect"
	"testing"

	"github.com/HendryAvila/flowsmith/internal/domain"
)

func TestDefault_DeclarationOrder(t *testing.T) {
	want := []Key{
		AutoApproval, AnomalyDetection, IntelligentScheduling, PredictiveForecasting,
		ConversationalAssistant, DocumentIntelligence, SmartRecommendation,
		CrossSystemInsights, IntelligentSearch, ComplianceMonitoring,
		SentimentAnalysis, RiskScoring,
	}
	if got := Default().Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	rs := Default().Rules()
	if len(rs) != len(want) {
		t.Fatalf("Rules() has %d entries, want %d", len(rs), len(want))
	}
	for i, r := range rs {
		if r.Result != want[i] || r.Name != string(want[i]) {
			t.Errorf("Rules()[%d] = %s/%s, want %s", i, r.Name, r.Result, want[i])
		}
	}
}

func TestDefault_PatternsAreComplete(t *testing.T) {
	for _, p := range Default().All() {
		if p.Name == "" || p.Description == "" || p.Oversight == "" {
			t.Errorf("pattern %s missing name, description or oversight", p.Key)
		}
		if len(p.Triggers) == 0 {
			t.Errorf("pattern %s has no triggers", p.Key)
		}
		for _, ind := range []domain.Industry{domain.Generic, domain.HCM, domain.Finance} {
			if p.Example(ind) == "" {
				t.Errorf("pattern %s has no %s example", p.Key, ind)
			}
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want Key
	}{
		{"Auto-approve PTO requests with team coverage validation", AutoApproval},
		{"Detect fraudulent transactions and flag for review", AnomalyDetection},
		{"auto-close tickets once we detect a duplicate", AutoApproval},
		{"Build next week's shift roster", IntelligentScheduling},
		{"Forecast headcount for next year", PredictiveForecasting},
		{"Chat with your benefits", ConversationalAssistant},
		{"Extract totals from receipts", DocumentIntelligence},
		{"Recommend training courses", SmartRecommendation},
		{"Unified workforce view", CrossSystemInsights},
		{"Search candidates by skill", IntelligentSearch},
		{"Continuous audit of payments", ComplianceMonitoring},
		{"Summarize survey comments", SentimentAnalysis},
		{"Vendor fraud score", RiskScoring},
		{"Make things better", Generic},
		{"", Generic},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetect_OrderBeatsSpecificity(t *testing.T) {
	// "fraud" and "score" are riskScoring triggers, but "flag" belongs to
	// anomalyDetection which is declared earlier.
	text := "flag fraud risk score"
	if got := Detect(text); got != AnomalyDetection {
		t.Errorf("Detect(%q) = %s, want %s", text, got, AnomalyDetection)
	}

	m := Default().Matches(text)
	if len(m) != 2 || m[0].Key != AnomalyDetection || m[1].Key != RiskScoring {
		t.Fatalf("Matches(%q) = %+v", text, m)
	}
	if want := []string{"fraud", "risk", "score"}; !reflect.DeepEqual(m[1].Keywords, want) {
		t.Errorf("riskScoring keywords = %v, want %v", m[1].Keywords, want)
	}
}

func TestNewCatalog_ReorderingChangesRouting(t *testing.T) {
	auto, _ := Default().Get(AutoApproval)
	anomaly, _ := Default().Get(AnomalyDetection)

	c := NewCatalog([]Pattern{anomaly, auto})
	if got := c.Detect("auto detect"); got != AnomalyDetection {
		t.Errorf("Detect() = %s, want %s when anomalyDetection is first", got, AnomalyDetection)
	}
}

func TestNewCatalog_DuplicatesKeepFirst(t *testing.T) {
	c := NewCatalog([]Pattern{
		{Key: "a", Name: "first", Triggers: []string{"x"}},
		{Key: "a", Name: "second", Triggers: []string{"y"}},
	})
	if len(c.All()) != 1 {
		t.Fatalf("All() has %d patterns, want 1", len(c.All()))
	}
	p, _ := c.Get("a")
	if p.Name != "first" {
		t.Errorf("Get(a).Name = %q, want first", p.Name)
	}
	if got := c.Detect("y"); got != Generic {
		t.Errorf("Detect(y) = %s, want generic", got)
	}
}

func TestPattern_ExampleFallsBackToGeneric(t *testing.T) {
	p := Pattern{Examples: map[domain.Industry]string{domain.Generic: "g"}}
	if got := p.Example(domain.HCM); got != "g" {
		t.Errorf("Example(hcm) = %q, want g", got)
	}
}

func TestPatternSourceIsGofmted(t *testing.T) {
	src, err := os.ReadFile("patterns.go")
	if err != nil {
		t.Fatal(err)
	}
	got, err := format.Source(src)
	if err != nil {
		t.Fatalf("format.Source: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Error("patterns.go is not gofmt-formatted")
	}
}
