// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

// Package category decides which log categories a sink accepts and under which
// name it records them.
//
// # Patterns
//
// A pattern is a plain string whose meaning follows from its shape:
//
//	Orders      literal, case-insensitive exact match
//	*           every category
//	Api.*       prefix match      (StartsWith)
//	*Handler    suffix match      (EndsWith)
//	*Service*   substring match   (Contains)
//
// Match classifies a single pattern against a single name and never fails.
//
// # Resolution
//
// A Resolver combines an ordered list of accepted patterns with an ordered
// AliasMap. Both lists are scanned front to back and the first match of each
// wins; there is no "best match" ranking between kinds:
//
//	r := category.NewResolver(
//	    []string{"f*", "*name"},
//	    category.AliasMap{{Pattern: "f*", Target: "Remap1"}, {Pattern: "*name", Target: "Remap2"}},
//	)
//	r.Resolve("fAbracadabra").Name // "Remap1"
//	r.Resolve("RoundNAmE").Name    // "Remap2"
//	r.Resolve("Abracadabra")       // rejected
//
// An alias match admits a category even when the accepted list does not.
// With no patterns and no aliases at all, every category is accepted unchanged.
package category
