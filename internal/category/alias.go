// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package category

import (
	"fmt"
	"strings"
)

// Alias maps a category pattern to the name used by the downstream sink.
type Alias struct {
	Pattern string `koanf:"pattern" json:"pattern" validate:"required,category_pattern"`
	Target  string `koanf:"target" json:"target" validate:"required"`
}

// AliasMap is an ordered pattern -> target mapping. Order is significant:
// the first matching pattern wins.
type AliasMap []Alias

// Set assigns target to pattern. An existing entry with the same pattern
// (case-insensitive) keeps its position and gets the new target; otherwise
// the alias is appended.
func (m *AliasMap) Set(pattern, target string) {
	for i := range *m {
		if strings.EqualFold((*m)[i].Pattern, pattern) {
			(*m)[i].Target = target
			return
		}
	}
	*m = append(*m, Alias{Pattern: pattern, Target: target})
}

// Get returns the target for pattern (case-insensitive key lookup, no wildcard matching).
func (m AliasMap) Get(pattern string) (string, bool) {
	for _, a := range m {
		if strings.EqualFold(a.Pattern, pattern) {
			return a.Target, true
		}
	}
	return "", false
}

// Lookup returns the first alias whose pattern matches name, in map order.
func (m AliasMap) Lookup(name string) (Alias, MatchKind) {
	for _, a := range m {
		if kind := Match(a.Pattern, name); kind.Matched() {
			return a, kind
		}
	}
	return Alias{}, None
}

// Clone returns an independent copy.
func (m AliasMap) Clone() AliasMap {
	if m == nil {
		return nil
	}
	out := make(AliasMap, len(m))
	copy(out, m)
	return out
}

// String renders the map in the form accepted by ParseAliases.
func (m AliasMap) String() string {
	parts := make([]string, len(m))
	for i, a := range m {
		parts[i] = a.Pattern + "=" + a.Target
	}
	return strings.Join(parts, ",")
}

// ParseAliases parses "pattern=target" pairs separated by commas, e.g.
//
//	f*=Remap1,*name=Remap2
//
// Whitespace around pairs, patterns and targets is ignored. Later duplicates
// of a pattern replace the earlier target in place.
func ParseAliases(s string) (AliasMap, error) {
	var m AliasMap
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		pattern, target, ok := strings.Cut(pair, "=")
		pattern = strings.TrimSpace(pattern)
		target = strings.TrimSpace(target)
		if !ok || pattern == "" || target == "" {
			return nil, fmt.Errorf("invalid alias %q: want pattern=target", pair)
		}
		m.Set(pattern, target)
	}
	return m, nil
}
