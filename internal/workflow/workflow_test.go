package workflow

import (
	"reflect"
	"strings"
	"testing"

	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/patterns"
)

func newTestSynth(t *testing.T) *Synthesizer {
	t.Helper()
	s, err := NewSynthesizer(patterns.Default())
	if err != nil {
		t.Fatalf("NewSynthesizer() error = %v", err)
	}
	return s
}

func loadOverlay(t *testing.T, name string) *domain.Overlay {
	t.Helper()
	ov, err := domain.Load(name)
	if err != nil {
		t.Fatalf("domain.Load(%s) error = %v", name, err)
	}
	return ov
}

func labels(flow []Step) []string {
	out := make([]string, len(flow))
	for i, s := range flow {
		out[i] = s.Label
	}
	return out
}

// --- registry ---

func TestNew_RejectsMissingSynthesizer(t *testing.T) {
	funcs := Builtin()
	delete(funcs, patterns.RiskScoring)
	delete(funcs, patterns.IntelligentSearch)

	_, err := New(patterns.Default(), funcs, synthGeneric)
	if err == nil {
		t.Fatal("New() should fail when patterns lack a synthesizer")
	}
	for _, k := range []string{"riskScoring", "intelligentSearch"} {
		if !strings.Contains(err.Error(), k) {
			t.Errorf("error %q does not name %s", err, k)
		}
	}
}

func TestNew_RequiresFallback(t *testing.T) {
	if _, err := New(patterns.Default(), Builtin(), nil); err == nil {
		t.Error("New() should fail without a fallback")
	}
}

func TestNewSynthesizer_CoversCatalog(t *testing.T) {
	s := newTestSynth(t)
	for _, k := range patterns.Default().Keys() {
		if !s.Has(k) {
			t.Errorf("no synthesizer for %s", k)
		}
	}
}

// --- autoApproval ---

func TestSynthesize_AutoApprovalHCM(t *testing.T) {
	s := newTestSynth(t)
	hcm := loadOverlay(t, "hcm")
	reg := objects.Build(objects.GenericTable(), hcm)

	doc := s.Synthesize(Request{
		Concept:    "Auto-approve PTO requests with team coverage validation",
		Pattern:    patterns.AutoApproval,
		ObjectKeys: objects.DetectRelevant("Auto-approve PTO requests with team coverage validation"),
		Industry:   domain.HCM,
		Overlay:    hcm,
		Registry:   reg,
	})

	want := []string{"1", "2", "3", "4", "4a", "4b", "5"}
	if got := labels(doc.Flow); !reflect.DeepEqual(got, want) {
		t.Fatalf("flow labels = %v, want %v", got, want)
	}

	if !doc.Flow[3].IsBranchPoint {
		t.Error("step 4 must be the branch point")
	}
	for _, i := range []int{4, 5} {
		if doc.Flow[i].Condition == "" || !doc.Flow[i].IsBranch() {
			t.Errorf("step %s must be a conditioned branch", doc.Flow[i].Label)
		}
	}
	for _, i := range []int{0, 1, 2, 3, 6} {
		if doc.Flow[i].Condition != "" {
			t.Errorf("non-branch step %s carries condition %q", doc.Flow[i].Label, doc.Flow[i].Condition)
		}
	}
	if !doc.Flow[2].IsConfidenceBearing {
		t.Error("AI evaluation step must be confidence-bearing")
	}

	if !strings.Contains(doc.Flow[0].Action, "time-off request") {
		t.Errorf("step 1 = %q, want the overlay's request type", doc.Flow[0].Action)
	}
	if !strings.Contains(doc.Flow[5].Action, "people manager") {
		t.Errorf("step 4b = %q, want the overlay's approver", doc.Flow[5].Action)
	}

	if doc.AITouchpoints[1] != "Team coverage impact analysis" {
		t.Errorf("touchpoints = %v, want the HCM list", doc.AITouchpoints)
	}

	if len(doc.Objects) != 5 || doc.Objects[2].Name != "Employee" {
		t.Errorf("objects = %+v, want five with entity resolved to Employee", doc.Objects)
	}

	var approver string
	for _, n := range doc.ConfigurationNeeds {
		if n.Setting == "escalationApprover" {
			approver = n.Default
		}
	}
	if approver != "people manager" {
		t.Errorf("escalationApprover default = %q, want people manager", approver)
	}
}

func TestSynthesize_TermFallbackChain(t *testing.T) {
	s := newTestSynth(t)
	reg := objects.Build(objects.GenericTable())

	tests := []struct {
		name    string
		concept string
		overlay *domain.Overlay
		want    string
	}{
		{"overlay wins", "auto-approve purchase orders", loadOverlay(t, "finance"), "Submits a new expense report"},
		{"keyword derivation", "auto-approve purchase orders", nil, "Submits a new purchase requisition"},
		{"default phrase", "auto-approve things", nil, "Submits a new request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := s.Synthesize(Request{
				Concept:  tt.concept,
				Pattern:  patterns.AutoApproval,
				Overlay:  tt.overlay,
				Registry: reg,
			})
			if doc.Flow[0].Action != tt.want {
				t.Errorf("step 1 = %q, want %q", doc.Flow[0].Action, tt.want)
			}
		})
	}
}

func TestSynthesize_FinanceSentimentDerivesTerms(t *testing.T) {
	s := newTestSynth(t)
	doc := s.Synthesize(Request{
		Concept:  "Analyse sentiment in supplier feedback",
		Pattern:  patterns.SentimentAnalysis,
		Industry: domain.Finance,
		Overlay:  loadOverlay(t, "finance"),
	})
	if doc.Flow[0].Action != "Collects supplier feedback" {
		t.Errorf("step 1 = %q", doc.Flow[0].Action)
	}
	if doc.AITouchpoints[0] != "Supplier feedback sentiment classification" {
		t.Errorf("touchpoints = %v, want the finance list", doc.AITouchpoints)
	}
}

// --- touchpoints ---

func TestSynthesize_TouchpointsAreWholeArrays(t *testing.T) {
	s := newTestSynth(t)
	tp := Builtin()[patterns.AnomalyDetection](Context{}).Touchpoints

	for _, ind := range []domain.Industry{domain.HCM, domain.Finance, domain.Generic, "retail"} {
		doc := s.Synthesize(Request{Pattern: patterns.AnomalyDetection, Industry: ind})
		if want := tp.For(ind); !reflect.DeepEqual(doc.AITouchpoints, want) {
			t.Errorf("%s touchpoints = %v, want %v", ind, doc.AITouchpoints, want)
		}
	}
	if reflect.DeepEqual(tp.For(domain.HCM), tp.For(domain.Finance)) {
		t.Error("HCM and finance lists should differ")
	}
}

// --- fallback and objects ---

func TestSynthesize_UnknownPatternUsesGeneric(t *testing.T) {
	s := newTestSynth(t)
	for _, k := range []patterns.Key{patterns.Generic, "mystery"} {
		doc := s.Synthesize(Request{Pattern: k})
		if len(doc.Flow) != 4 {
			t.Errorf("pattern %s: len(flow) = %d, want 4 (generic)", k, len(doc.Flow))
		}
		if doc.Pattern != k {
			t.Errorf("Pattern = %s, want %s", doc.Pattern, k)
		}
	}
}

func TestSynthesize_DropsUnknownObjects(t *testing.T) {
	s := newTestSynth(t)
	doc := s.Synthesize(Request{
		Pattern:    patterns.Generic,
		ObjectKeys: []objects.Key{objects.KeyInsight, "ghost", objects.KeyDataSource},
		Registry:   objects.Build(objects.GenericTable()),
	})
	if len(doc.Objects) != 2 {
		t.Fatalf("len(objects) = %d, want 2", len(doc.Objects))
	}
	if doc.Objects[0].Key != objects.KeyInsight || doc.Objects[1].Key != objects.KeyDataSource {
		t.Errorf("objects = %s,%s", doc.Objects[0].Key, doc.Objects[1].Key)
	}
}

func TestSynthesize_NilRegistryYieldsEmptyObjects(t *testing.T) {
	doc := newTestSynth(t).Synthesize(Request{Pattern: patterns.RiskScoring})
	if doc.Objects == nil || len(doc.Objects) != 0 {
		t.Errorf("Objects = %#v, want empty non-nil slice", doc.Objects)
	}
}

// --- shape invariants across every pattern ---

func TestBuiltin_FlowShape(t *testing.T) {
	for key, f := range Builtin() {
		for _, ind := range []domain.Industry{domain.Generic, domain.HCM, domain.Finance} {
			parts := f(Context{Industry: ind, Pattern: key})
			checkFlowShape(t, string(key), parts.Flow)
			if len(parts.Touchpoints.For(ind)) == 0 {
				t.Errorf("%s/%s has no touchpoints", key, ind)
			}
			if len(parts.Config) == 0 {
				t.Errorf("%s has no configuration needs", key)
			}
		}
	}
	checkFlowShape(t, "generic", synthGeneric(Context{}).Flow)
}

func checkFlowShape(t *testing.T, name string, flow []Step) {
	t.Helper()
	if len(flow) == 0 {
		t.Errorf("%s: empty flow", name)
		return
	}
	lastInt := ""
	for i, s := range flow {
		if s.Action == "" {
			t.Errorf("%s step %s: empty action", name, s.Label)
		}
		switch s.Actor {
		case User, System, AI:
		default:
			t.Errorf("%s step %s: bad actor %q", name, s.Label, s.Actor)
		}
		if s.IsBranch() {
			parent := s.Label[:len(s.Label)-1]
			if parent != lastInt {
				t.Errorf("%s step %s follows %s", name, s.Label, lastInt)
			}
			if s.Condition == "" {
				t.Errorf("%s step %s: branch without condition", name, s.Label)
			}
			continue
		}
		if s.Condition != "" {
			t.Errorf("%s step %s: non-branch step with condition", name, s.Label)
		}
		if s.IsBranchPoint && (i+1 >= len(flow) || !flow[i+1].IsBranch()) {
			t.Errorf("%s step %s: branch point without branches", name, s.Label)
		}
		lastInt = s.Label
	}
}

func TestStep_IsBranch(t *testing.T) {
	tests := map[string]bool{"4": false, "4a": true, "12": false, "3c": true, "": false}
	for label, want := range tests {
		if got := (Step{Label: label}).IsBranch(); got != want {
			t.Errorf("Step{%q}.IsBranch() = %v, want %v", label, got, want)
		}
	}
}
