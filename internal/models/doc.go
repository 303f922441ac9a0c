// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

// Package models defines the data types shared by every layer of Logroute.
//
// The types here carry no behavior beyond formatting and parsing:
//
//   - Level: ordered severity (Trace < Debug < Info < Warning < Error < Critical < None)
//   - EventID: numeric event identifier with an optional name
//   - ExceptionInfo: a captured error (type, message, verbose text, wrapped chain)
//   - LogEntry: one retained log event as served by the diagnostic API
//
// LogEntry values are written once by a category logger and then only read,
// which is what allows the in-memory buffer to hand them out without copying
// under a lock.
//
// # JSON
//
// Level marshals as its lower-case name:
//
//	{"timestamp":"2026-01-03T10:30:00Z","level":"warning","category":"Orders",
//	 "event_id":{"id":12},"message":"retrying"}
package models
