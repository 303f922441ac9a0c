// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/logroute/internal/logging"
	"github.com/tomtom215/logroute/internal/memlog"
	"github.com/tomtom215/logroute/internal/metrics"
	"github.com/tomtom215/logroute/internal/models"
)

// Sink receives finished entries. Write must be safe for concurrent use and
// must not retain or modify entry after returning unless it owns a copy.
type Sink interface {
	Write(entry *models.LogEntry)
}

// RecentReader is implemented by sinks that retain entries.
type RecentReader interface {
	// Recent returns up to n of the newest entries, most recent last.
	Recent(n int) []models.LogEntry
	Len() int
	Cap() int
}

// SinkFactory creates the sink for one logger, given its effective name.
type SinkFactory func(name string) Sink

// MemorySink retains entries in a bounded lock-free buffer.
type MemorySink struct {
	buf      *memlog.Buffer
	name     string
	sinkName string
	warn     *rate.Sometimes
}

// NewMemorySinkFactory returns a factory creating one MemorySink per logger,
// each with its own buffer of the given capacity. Eviction warnings are
// rate-limited across all sinks of the factory.
func NewMemorySinkFactory(sinkName string, capacity int) SinkFactory {
	warn := &rate.Sometimes{First: 1, Interval: time.Minute}
	return func(name string) Sink {
		return &MemorySink{
			buf:      memlog.New(capacity),
			name:     name,
			sinkName: sinkName,
			warn:     warn,
		}
	}
}

// Write copies entry into the buffer, evicting the oldest entries when full.
func (s *MemorySink) Write(entry *models.LogEntry) {
	evicted := s.buf.Push(*entry)
	if evicted == 0 {
		return
	}
	metrics.RecordEvictions(s.sinkName, evicted)
	s.warn.Do(func() {
		logging.Warn().
			Str("sink", s.sinkName).
			Str("category", s.name).
			Int("capacity", s.buf.Cap()).
			Msg("In-memory log buffer full, dropping oldest entries")
	})
}

// Recent returns up to n of the newest entries, most recent last.
func (s *MemorySink) Recent(n int) []models.LogEntry {
	return s.buf.Snapshot(n)
}

// Len returns the number of retained entries.
func (s *MemorySink) Len() int { return s.buf.Len() }

// Cap returns the buffer capacity.
func (s *MemorySink) Cap() int { return s.buf.Cap() }

// ZerologSink hands entries to a zerolog logger.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSinkFactory returns a factory whose sinks write to base, each
// tagged with a "logger" field holding the effective category name.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewZerologSinkFactory(base zerolog.Logger) SinkFactory {
	return func(name string) Sink {
		return &ZerologSink{logger: base.With().Str("logger", name).Logger()}
	}
}

// Write emits one zerolog event. When a scope trail is present it is
// prepended to the message.
func (s *ZerologSink) Write(entry *models.LogEntry) {
	event := s.logger.WithLevel(zerologLevel(entry.Level))
	if event == nil {
		return
	}

	event = event.Time(zerolog.TimestampFieldName, entry.Timestamp)
	if entry.EventID.ID != 0 {
		event = event.Int("event_id", entry.EventID.ID)
	}
	if entry.EventID.Name != "" {
		event = event.Str("event_name", entry.EventID.Name)
	}
	if exc := entry.Exception; exc != nil {
		event = event.Err(exc).Str("error_type", exc.Type)
		if exc.Stack != "" {
			event = event.Str("stack", exc.Stack)
		}
	}

	message := entry.Message
	if entry.Scope != "" {
		message = entry.Scope + " " + message
	}
	event.Msg(message)
}

// zerologLevel maps levels; Critical becomes zerolog's fatal level, which
// WithLevel writes without exiting.
func zerologLevel(level models.Level) zerolog.Level {
	switch level {
	case models.LevelTrace:
		return zerolog.TraceLevel
	case models.LevelDebug:
		return zerolog.DebugLevel
	case models.LevelInfo:
		return zerolog.InfoLevel
	case models.LevelWarning:
		return zerolog.WarnLevel
	case models.LevelError:
		return zerolog.ErrorLevel
	case models.LevelCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}
