package knowledge_test

import (
	"testing"

	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/HendryAvila/flowsmith/internal/knowledge"
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/patterns"
	"github.com/HendryAvila/flowsmith/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverySynthesizedTouchpointHasDetail(t *testing.T) {
	synth, err := workflow.NewSynthesizer(patterns.Default())
	require.NoError(t, err)
	reg := objects.Build(objects.GenericTable())

	keys := []patterns.Key{patterns.Generic}
	for k := range workflow.Builtin() {
		keys = append(keys, k)
	}

	for _, key := range keys {
		for _, ind := range []domain.Industry{domain.Generic, domain.HCM, domain.Finance} {
			doc := synth.Synthesize(workflow.Request{Pattern: key, Industry: ind, Registry: reg})
			require.NotEmpty(t, doc.AITouchpoints, "%s/%s has no touchpoints", key, ind)
			for _, tp := range doc.AITouchpoints {
				_, ok := knowledge.LookupTouchpoint(tp)
				assert.True(t, ok, "touchpoint %q (%s/%s) has no detail", tp, key, ind)
			}
		}
	}
}
