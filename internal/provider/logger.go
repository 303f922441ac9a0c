// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/logroute/internal/metrics"
	"github.com/tomtom215/logroute/internal/models"
)

// Formatter composes the message for a log call from its state and error.
type Formatter func(state any, err error) string

// Logger is a category-bound logging handle.
type Logger interface {
	// Name is the name entries are recorded under (the alias target when aliased).
	Name() string

	// IsEnabled reports whether a call at level would produce an entry.
	IsEnabled(level models.Level) bool

	// BeginScope returns a child context carrying state as the innermost scope.
	BeginScope(ctx context.Context, state any) context.Context

	// Log writes one entry. err is recorded as data, never returned.
	Log(ctx context.Context, level models.Level, eventID models.EventID, state any, err error, format Formatter) error
}

// Nop is the shared handle returned for rejected categories. It is never
// enabled and discards everything.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Name() string { return "" }

func (nopLogger) IsEnabled(models.Level) bool { return false }

func (nopLogger) BeginScope(ctx context.Context, _ any) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func (nopLogger) Log(context.Context, models.Level, models.EventID, any, error, Formatter) error {
	return nil
}

// CategoryLogger is the handle for an accepted category. Handles are created
// by Provider.CreateLogger and are safe for concurrent use.
type CategoryLogger struct {
	category string // as requested
	name     string // effective, after aliasing
	aliased  bool
	sinkName string
	settings *Settings
	sink     Sink
	now      func() time.Time
}

// Name returns the effective category name.
func (l *CategoryLogger) Name() string { return l.name }

// Category returns the category name the logger was requested with.
func (l *CategoryLogger) Category() string { return l.category }

// Sink returns the sink entries are delivered to.
func (l *CategoryLogger) Sink() Sink { return l.sink }

// IsEnabled reports false for LevelNone and levels below the minimum; otherwise
// the configured filter decides, defaulting to true.
func (l *CategoryLogger) IsEnabled(level models.Level) bool {
	return l.settings.enabled(l.name, level)
}

// BeginScope pushes state onto the scope chain carried by ctx.
func (l *CategoryLogger) BeginScope(ctx context.Context, state any) context.Context {
	return BeginScope(ctx, state)
}

// Log writes one entry to the sink.
//
// Disabled levels return nil without calling format. A nil format on an
// enabled level returns ErrNilFormatter. An empty message without an error
// writes nothing. A panic from format, from err's Error or Unwrap methods, or
// from a scope value's String method writes nothing and returns an error
// wrapping ErrFormatterPanic.
func (l *CategoryLogger) Log(ctx context.Context, level models.Level, eventID models.EventID, state any, err error, format Formatter) error {
	if !l.IsEnabled(level) {
		metrics.RecordEntrySkipped(l.sinkName, metrics.SkipDisabled)
		return nil
	}
	if format == nil {
		metrics.RecordEntrySkipped(l.sinkName, metrics.SkipNilFormatter)
		return ErrNilFormatter
	}

	var message string
	if ferr := guard(func() { message = format(state, err) }); ferr != nil {
		metrics.RecordEntrySkipped(l.sinkName, metrics.SkipFormatterPanic)
		return ferr
	}
	if message == "" && err == nil {
		metrics.RecordEntrySkipped(l.sinkName, metrics.SkipEmpty)
		return nil
	}

	entry := &models.LogEntry{
		Timestamp: l.now().UTC(),
		Level:     level,
		Category:  l.name,
		EventID:   eventID,
		Message:   message,
	}
	// err and the scope values are caller code too: their Error and String
	// methods run here, inside the guard.
	if ferr := guard(func() {
		entry.Exception = models.NewExceptionInfo(err)
		if l.settings.IncludeScopes {
			entry.Scope = renderScopesStrict(ctx)
		}
	}); ferr != nil {
		metrics.RecordEntrySkipped(l.sinkName, metrics.SkipFormatterPanic)
		return ferr
	}

	l.sink.Write(entry)
	metrics.RecordEntryWritten(l.sinkName, level.String())
	return nil
}

// guard runs fn and turns a panic into an ErrFormatterPanic error.
func guard(fn func()) (ferr error) {
	defer func() {
		if r := recover(); r != nil {
			ferr = fmt.Errorf("%w: %v", ErrFormatterPanic, r)
		}
	}()
	fn()
	return nil
}
