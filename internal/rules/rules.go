// Package rules provides the keyword predicates and the ordered
// first-match combinator shared by the classifier and the pattern detector.
//
// Matching is plain case-insensitive substring search. Callers lower-case
// the text once (see Normalize) and every predicate works on that string.
package rules

import "strings"

// Predicate reports whether an already lower-cased text satisfies a rule.
type Predicate func(lower string) bool

// Rule pairs a predicate with the result it produces when it matches.
// Name is only used for diagnostics and tests.
type Rule[T any] struct {
	Name   string
	Match  Predicate
	Result T
}

// Normalize lower-cases text for matching. Empty input stays empty.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// First evaluates rules top-to-bottom against lower and returns the result
// of the first rule that matches. The bool is false when nothing matched,
// in which case the zero value of T is returned.
func First[T any](rs []Rule[T], lower string) (T, bool) {
	for _, r := range rs {
		if r.Match != nil && r.Match(lower) {
			return r.Result, true
		}
	}
	var zero T
	return zero, false
}

// All returns the results of every matching rule, in rule order.
func All[T any](rs []Rule[T], lower string) []T {
	var out []T
	for _, r := range rs {
		if r.Match != nil && r.Match(lower) {
			out = append(out, r.Result)
		}
	}
	return out
}

// ContainsAny returns true if text contains any of the given substrings.
func ContainsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// ContainsAll returns true if text contains every one of the given substrings.
func ContainsAll(text string, subs ...string) bool {
	for _, s := range subs {
		if !strings.Contains(text, s) {
			return false
		}
	}
	return true
}

// Any builds a predicate that matches when any keyword is a substring.
func Any(keywords ...string) Predicate {
	return func(lower string) bool { return ContainsAny(lower, keywords...) }
}

// Every builds a predicate that matches only when every keyword is a
// substring.
func Every(keywords ...string) Predicate {
	return func(lower string) bool { return ContainsAll(lower, keywords...) }
}

// Or combines predicates; the result matches when any of them does.
func Or(ps ...Predicate) Predicate {
	return func(lower string) bool {
		for _, p := range ps {
			if p(lower) {
				return true
			}
		}
		return false
	}
}

// And combines predicates; the result matches only when all of them do.
func And(ps ...Predicate) Predicate {
	return func(lower string) bool {
		for _, p := range ps {
			if !p(lower) {
				return false
			}
		}
		return true
	}
}

// MatchedKeywords returns the keywords from the list that occur in lower,
// preserving list order.
func MatchedKeywords(lower string, keywords []string) []string {
	var hits []string
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			hits = append(hits, k)
		}
	}
	return hits
}
