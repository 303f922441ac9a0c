// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

// Package memlog provides the bounded, lock-free entry buffer behind the
// in-memory diagnostic sink.
//
// Each category logger owns one Buffer. Writers push without blocking; when the
// buffer is full the oldest entries are dropped. Readers take snapshots of the
// newest entries for diagnostics:
//
//	buf := memlog.New(1024)
//	buf.Push(entry)
//	recent := buf.Snapshot(50) // most recent last
package memlog
