package complexity

import (
	"testing"

	"github.com/HendryAvila/flowsmith/internal/classify"
	"github.com/HendryAvila/flowsmith/internal/workflow"
)

func flowOf(n int) workflow.Document {
	return workflow.Document{Flow: make([]workflow.Step, n)}
}

func risks(n int) []string {
	return make([]string, n)
}

// --- DefaultDimensions ---

func TestDefaultDimensions_Ceilings(t *testing.T) {
	dims := DefaultDimensions()
	if len(dims) != 8 {
		t.Fatalf("DefaultDimensions() returned %d dimensions, want 8", len(dims))
	}
	sum := 0
	for _, d := range dims {
		sum += d.Max
	}
	if sum != 102 {
		t.Errorf("sum of ceilings = %d, want 102", sum)
	}
	if MaxReachable() != sum {
		t.Errorf("MaxReachable() = %d, want %d", MaxReachable(), sum)
	}
	if Normalize(sum) != 93 {
		t.Errorf("Normalize(%d) = %d, want 93", sum, Normalize(sum))
	}
}

func TestScore_FactorsNeverExceedDimensionCap(t *testing.T) {
	caps := map[string]int{}
	for _, d := range DefaultDimensions() {
		caps[d.Name] = d.Max
	}
	got := Score("real-time unified predict every", classify.Result{AIType: "LLM", Visibility: classify.CoPilot, Risks: risks(40)}, flowOf(50))
	for _, f := range got.Factors {
		if f.Points > 15 {
			t.Errorf("factor %q = %d points, above every cap", f.Label, f.Points)
		}
	}
	for _, f := range got.Factors {
		if f.Label == "Risks identified (40)" && f.Points != caps["risk_count"] {
			t.Errorf("risk points = %d, want cap %d", f.Points, caps["risk_count"])
		}
	}
}

// --- banding ---

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, Low}, {30, Low}, {31, Medium}, {60, Medium}, {61, High}, {100, High},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw, want int
	}{
		{0, 0},
		{34, 31},
		{55, 50},
		{110, 100},
		{200, 100},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

// --- Score ---

func TestScore_ScenarioA(t *testing.T) {
	text := "Auto-approve PTO requests with team coverage validation"
	cls := classify.Classify(text)

	got := Score(text, cls, flowOf(7))

	if got.Score != 31 {
		t.Errorf("Score = %d, want 31", got.Score)
	}
	if got.Level != Medium || got.Effort != "1-3 months" {
		t.Errorf("Level/Effort = %s/%s, want Medium/1-3 months", got.Level, got.Effort)
	}

	wantPoints := []int{10, 10, 8, 6}
	if len(got.Factors) != len(wantPoints) {
		t.Fatalf("factors = %+v, want %d entries", got.Factors, len(wantPoints))
	}
	for i, p := range wantPoints {
		if got.Factors[i].Points != p {
			t.Errorf("Factors[%d].Points = %d, want %d", i, got.Factors[i].Points, p)
		}
	}
	// Stable sort keeps workflow steps ahead of risks on a tie.
	if got.Factors[0].Label != "Workflow steps (7)" {
		t.Errorf("Factors[0] = %q", got.Factors[0].Label)
	}
}

func TestScore_LLMBonusNeedsBareValue(t *testing.T) {
	long := Score("", classify.Result{AIType: classify.LLM, Visibility: classify.Backstage}, flowOf(0))
	bare := Score("", classify.Result{AIType: "LLM", Visibility: classify.Backstage}, flowOf(0))

	if long.Factors[0].Points != 8 {
		t.Errorf("long-form LLM points = %d, want 8", long.Factors[0].Points)
	}
	if bare.Factors[0].Points != 15 {
		t.Errorf("bare LLM points = %d, want 15", bare.Factors[0].Points)
	}
}

func TestScore_BaseFactorsAlwaysListed(t *testing.T) {
	got := Score("", classify.Result{Visibility: classify.Backstage}, flowOf(0))
	if len(got.Factors) != 2 {
		t.Fatalf("factors = %+v, want only the two base factors", got.Factors)
	}
	if got.Score != Normalize(14) {
		t.Errorf("Score = %d, want %d", got.Score, Normalize(14))
	}
}

func TestScore_FactorTiers(t *testing.T) {
	base := classify.Result{Visibility: classify.Backstage}
	tests := []struct {
		name string
		text string
		want int // total raw points beyond the 14 base points
	}{
		{"cross-system strong", "unified view", 15},
		{"cross-system weak", "across teams", 8},
		{"across all beats across", "across all teams", 15 + 10},
		{"real-time", "instant alerts", 15},
		{"monitoring", "monitor queues", 8},
		{"data volume", "every record", 10},
		{"historical", "historical records", 6},
		{"predictive", "recommend actions", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.text, base, flowOf(0))
			raw := 0
			for _, f := range got.Factors {
				raw += f.Points
			}
			if raw-14 != tt.want {
				t.Errorf("extra points for %q = %d, want %d (%+v)", tt.text, raw-14, tt.want, got.Factors)
			}
		})
	}
}

func TestScore_StepBands(t *testing.T) {
	tests := []struct {
		steps, want int
	}{
		{0, 0}, {1, 5}, {5, 5}, {6, 10}, {8, 10}, {9, 15},
	}
	for _, tt := range tests {
		if got := stepPoints(tt.steps); got != tt.want {
			t.Errorf("stepPoints(%d) = %d, want %d", tt.steps, got, tt.want)
		}
	}
}

func TestScore_RiskCapped(t *testing.T) {
	got := Score("", classify.Result{Visibility: classify.Backstage, Risks: risks(9)}, flowOf(0))
	for _, f := range got.Factors {
		if f.Label == "Risks identified (9)" && f.Points != 10 {
			t.Errorf("risk points = %d, want 10", f.Points)
		}
	}
}

func TestScore_Maximum(t *testing.T) {
	text := "real-time unified predict every"
	cls := classify.Result{AIType: "LLM", Visibility: classify.CoPilot, Risks: risks(10)}
	got := Score(text, cls, flowOf(20))
	if got.Score != 93 || got.Level != High {
		t.Errorf("Score = %d %s, want 93 High", got.Score, got.Level)
	}
}

func TestScore_SortedDescending(t *testing.T) {
	got := Score("real-time forecast across history", classify.Result{Visibility: classify.CoPilot, Risks: risks(2)}, flowOf(3))
	for i := 1; i < len(got.Factors); i++ {
		if got.Factors[i-1].Points < got.Factors[i].Points {
			t.Errorf("factors not sorted: %+v", got.Factors)
		}
	}
}
