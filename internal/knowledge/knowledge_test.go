package knowledge

import (
	"testing"

	"github.com/HendryAvila/flowsmith/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, b.Risks())
	assert.NotEmpty(t, b.Touchpoints())
	assert.NotEmpty(t, b.Glossary())
	assert.Len(t, b.Checklist(), 5)
}

func TestLookupRisk(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		wantKey string
		found   bool
	}{
		{"exact", "Silent failures going unnoticed", "Silent failures going unnoticed", true},
		{"case-insensitive contains key", "ALERT FATIGUE FOR REVIEWERS in the AP team", "Alert fatigue for reviewers", true},
		{"phrase inside key", "model drift", "Model drift as conditions change", true},
		{"short key inside phrase", "Hidden bias in promotion data", "bias", true},
		{"miss", "Quantum decoherence", "", false},
		{"blank", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := LookupRisk(tt.phrase)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantKey, d.Key)
		})
	}
}

func TestLookupRisk_ExactBeatsEarlierSubstring(t *testing.T) {
	// "Bias in recognition across populations" contains "bias" but the
	// exact entry must win over the scan.
	d, ok := LookupRisk("Bias in recognition across populations")
	require.True(t, ok)
	assert.Equal(t, "Bias in recognition across populations", d.Key)
}

func TestLookupRisk_ScanFollowsTableOrder(t *testing.T) {
	// Both "False positives eroding trust" and "bias" occur in the phrase;
	// the earlier table entry wins.
	d, ok := LookupRisk("false positives eroding trust and bias")
	require.True(t, ok)
	assert.Equal(t, "False positives eroding trust", d.Key)
}

func TestEveryClassifierRiskHasDetail(t *testing.T) {
	texts := []string{
		"chat", "scan", "forecast", "fraud", "recommend", "policy", "classify", "dashboard",
	}
	for _, text := range texts {
		for _, r := range classify.Classify(text).Risks {
			_, ok := LookupRisk(r)
			assert.True(t, ok, "risk %q from %q has no detail", r, text)
		}
	}
}

func TestLookupTouchpoint(t *testing.T) {
	d, ok := LookupTouchpoint("Blackout period and policy rule evaluation")
	require.True(t, ok)
	assert.Equal(t, "policy rule evaluation", d.Key)

	d, ok = LookupTouchpoint("Duplicate payment detection")
	require.True(t, ok)
	assert.Equal(t, "Duplicate", d.Key)

	_, ok = LookupTouchpoint("Teleportation planning")
	assert.False(t, ok)
}

func TestLookupGlossary(t *testing.T) {
	term, ok := LookupGlossary("  co-pilot ")
	require.True(t, ok)
	assert.Equal(t, "Co-pilot", term.Term)
	assert.Contains(t, term.See, "Backstage")

	_, ok = LookupGlossary("blockchain")
	assert.False(t, ok)
}

func TestChecklist_ReturnsCopy(t *testing.T) {
	c := Checklist()
	c[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Checklist()[0].Title)
}
