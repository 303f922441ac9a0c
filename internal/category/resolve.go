// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package category

import "strings"

// Resolution is the outcome of resolving one category name.
type Resolution struct {
	// Accepted is false when neither the accepted list nor the aliases matched.
	Accepted bool

	// Name is the name the downstream sink should use: the alias target when an
	// alias matched, otherwise the requested category. Empty when rejected.
	Name string

	// Kind and Pattern describe the first matching entry of the accepted list.
	Kind    MatchKind
	Pattern string

	// Aliased is true when an alias supplied Name.
	Aliased      bool
	AliasKind    MatchKind
	AliasPattern string
}

// Resolver decides which categories are accepted and what they are called downstream.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	accepted []string
	aliases  AliasMap
}

// NewResolver copies the accepted patterns and aliases. Surrounding whitespace
// is trimmed from every pattern.
func NewResolver(accepted []string, aliases AliasMap) *Resolver {
	r := &Resolver{
		accepted: make([]string, 0, len(accepted)),
		aliases:  make(AliasMap, 0, len(aliases)),
	}
	for _, p := range accepted {
		r.accepted = append(r.accepted, strings.TrimSpace(p))
	}
	for _, a := range aliases {
		r.aliases = append(r.aliases, Alias{Pattern: strings.TrimSpace(a.Pattern), Target: a.Target})
	}
	return r
}

// AcceptAll reports whether the resolver has no patterns and no aliases,
// in which case every category is accepted under its own name.
func (r *Resolver) AcceptAll() bool {
	return len(r.accepted) == 0 && len(r.aliases) == 0
}

// Resolve applies the first-match rules:
//
//   - no patterns and no aliases: accepted as-is
//   - the accepted list and the aliases are each scanned in order, independently;
//     the first non-None match of each counts
//   - an alias match renames the category and also admits it on its own
//   - an accepted-list match without an alias keeps the category name
//   - nothing matched: rejected
func (r *Resolver) Resolve(name string) Resolution {
	if r.AcceptAll() {
		return Resolution{Accepted: true, Name: name, Kind: WildcardAll}
	}

	var res Resolution
	for _, p := range r.accepted {
		if kind := Match(p, name); kind.Matched() {
			res.Kind, res.Pattern = kind, p
			break
		}
	}

	if alias, kind := r.aliases.Lookup(name); kind.Matched() {
		res.Accepted = true
		res.Name = alias.Target
		res.Aliased = true
		res.AliasKind = kind
		res.AliasPattern = alias.Pattern
		return res
	}

	if res.Kind.Matched() {
		res.Accepted = true
		res.Name = name
	}
	return res
}

// Resolve is the stateless form of Resolver.Resolve.
func Resolve(name string, accepted []string, aliases AliasMap) (bool, string) {
	res := NewResolver(accepted, aliases).Resolve(name)
	return res.Accepted, res.Name
}
