// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package category

import "strings"

// MatchKind classifies how a pattern matched a category name.
type MatchKind uint8

const (
	None MatchKind = iota
	Exact
	StartsWith
	EndsWith
	Contains
	WildcardAll
)

var matchKindNames = [...]string{
	None:        "none",
	Exact:       "exact",
	StartsWith:  "starts_with",
	EndsWith:    "ends_with",
	Contains:    "contains",
	WildcardAll: "wildcard_all",
}

func (k MatchKind) String() string {
	if int(k) < len(matchKindNames) {
		return matchKindNames[k]
	}
	return "unknown"
}

// Matched reports whether k is anything other than None.
func (k MatchKind) Matched() bool {
	return k != None
}

// Match evaluates pattern against candidate. Comparison is case-insensitive.
//
//	Match("Orders", "orders")        // Exact
//	Match("*", "anything")           // WildcardAll
//	Match("*Service*", "MyServiceX") // Contains
//	Match("*Handler", "HttpHandler") // EndsWith
//	Match("Api.*", "api.v1")         // StartsWith
//
// Match is total: it never panics, for any pair of strings.
func Match(pattern, candidate string) MatchKind {
	if strings.EqualFold(pattern, candidate) {
		return Exact
	}

	n := len(pattern)
	if n == 1 && pattern[0] == '*' {
		return WildcardAll
	}

	leading := n > 1 && pattern[0] == '*'
	trailing := n > 1 && pattern[n-1] == '*'

	switch {
	case n > 2 && leading && trailing:
		if strings.Contains(strings.ToLower(candidate), strings.ToLower(pattern[1:n-1])) {
			return Contains
		}
	case leading:
		if strings.HasSuffix(strings.ToLower(candidate), strings.ToLower(pattern[1:])) {
			return EndsWith
		}
	case trailing:
		if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(pattern[:n-1])) {
			return StartsWith
		}
	}
	return None
}
