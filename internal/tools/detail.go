package tools

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// detail_level values, from cheapest to most verbose.
const (
	DetailSummary  = "summary"  // header table only
	DetailStandard = "standard" // adds flow, risks and scoring factors
	DetailFull     = "full"     // adds knowledge-base annotations
)

// DetailLevelValues is the enum shared by every tool that takes detail_level.
func DetailLevelValues() []string {
	return []string{DetailSummary, DetailStandard, DetailFull}
}

// ParseDetailLevel maps user input onto a known level. Anything
// unrecognised, including "", is standard.
func ParseDetailLevel(s string) string {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case DetailSummary, DetailFull:
		return v
	}
	return DetailStandard
}

// SummaryFooter closes summary responses.
const SummaryFooter = "\n---\n💡 Use detail_level: standard or full for more detail."

// NavigationHint reports a capped result set. It is empty when nothing
// was left out.
func NavigationHint(showing, total int, hint string) string {
	if total <= 0 || showing >= total {
		return ""
	}
	line := fmt.Sprintf("\n📊 Showing %d of %d.", showing, total)
	if hint != "" {
		line += " " + hint
	}
	return line
}

// EstimateTokens is the usual len/4 rule of thumb. Non-empty text is at
// least one token.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return max(1, len(text)/4)
}

var numbers = message.NewPrinter(language.English)

// TokenFooter reports the estimated size of a response.
func TokenFooter(estimatedTokens int) string {
	return numbers.Sprintf("\n📏 ~%d tokens", estimatedTokens)
}
