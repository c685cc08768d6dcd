package objects

import "github.com/HendryAvila/flowsmith/internal/rules"

// relevanceRules are independent: every matching rule contributes its keys.
var relevanceRules = []rules.Rule[[]Key]{
	{
		Name:   "request",
		Match:  rules.Any("request", "application", "approv"),
		Result: []Key{KeyRequest, KeyApproval, KeyEntity},
	},
	{
		Name:   "anomaly",
		Match:  rules.Any("anomal", "error", "flag", "detect", "missing"),
		Result: []Key{KeyAnomaly, KeyTransaction},
	},
	{
		Name:   "scheduling",
		Match:  rules.Any("schedul", "shift", "roster", "coverage"),
		Result: []Key{KeySchedule, KeyShift, KeyEntity},
	},
	{
		Name:   "time",
		Match:  rules.Any("time", "attendance", "clock", "timesheet"),
		Result: []Key{KeyTimeEntry, KeyEntity},
	},
	{
		Name:   "insight",
		Match:  rules.Any("intelligen", "insight"),
		Result: []Key{KeyInsight, KeyDataSource},
	},
	{
		Name:   "cross-system",
		Match:  rules.Any("across", "unified", "360", "cross"),
		Result: []Key{KeyDataSource, KeyInsight, KeyEntity},
	},
	{
		Name:   "search",
		Match:  rules.Any("search", "find", "lookup"),
		Result: []Key{KeySearchQuery, KeyEntity},
	},
	{
		Name:   "conversational",
		Match:  rules.Any("chat", "ask", "assistant", "conversation"),
		Result: []Key{KeyConversation, KeyMessage},
	},
	{
		Name:   "forecast",
		Match:  rules.Any("forecast", "predict"),
		Result: []Key{KeyForecast, KeyDataSource},
	},
	{
		Name:   "document",
		Match:  rules.Any("document", "invoice", "receipt"),
		Result: []Key{KeyDocument, KeyEntity},
	},
	{
		Name:   "recommendation",
		Match:  rules.Any("recommend", "suggest"),
		Result: []Key{KeyRecommendation, KeyEntity},
	},
	{
		Name:   "notification",
		Match:  rules.Any("notify", "alert"),
		Result: []Key{KeyNotification},
	},
}

// DetectRelevant returns the object-type keys implicated by text. All
// matching rules fire; keys are unioned in first-seen order with duplicates
// removed. Text with no cues yields an empty slice.
func DetectRelevant(text string) []Key {
	lower := rules.Normalize(text)

	seen := make(map[Key]bool)
	out := []Key{}
	for _, keys := range rules.All(relevanceRules, lower) {
		for _, k := range keys {
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
