// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"context"
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/tomtom215/logroute/internal/models"
)

// Message is a deferred printf-style message. It is only rendered when the
// level is enabled.
type Message struct {
	Format string
	Args   []any
}

func (m Message) String() string {
	if len(m.Args) == 0 {
		return m.Format
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = fmt.Fprintf(buf, m.Format, m.Args...)
	return buf.String()
}

// StringFormatter renders state with its natural string form; nil gives "".
func StringFormatter(state any, _ error) string {
	switch v := state.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// SprintfFormatter renders a Message state; any other state falls back to
// StringFormatter.
func SprintfFormatter(state any, err error) string {
	if m, ok := state.(Message); ok {
		return m.String()
	}
	return StringFormatter(state, err)
}

// Logf logs a printf-style message at level.
func Logf(ctx context.Context, l Logger, level models.Level, format string, args ...any) error {
	return l.Log(ctx, level, models.EventID{}, Message{Format: format, Args: args}, nil, SprintfFormatter)
}

// LogErr logs a printf-style message with err attached.
func LogErr(ctx context.Context, l Logger, level models.Level, err error, format string, args ...any) error {
	return l.Log(ctx, level, models.EventID{}, Message{Format: format, Args: args}, err, SprintfFormatter)
}

// Tracef logs at LevelTrace.
func Tracef(ctx context.Context, l Logger, format string, args ...any) error {
	return Logf(ctx, l, models.LevelTrace, format, args...)
}

// Debugf logs at LevelDebug.
func Debugf(ctx context.Context, l Logger, format string, args ...any) error {
	return Logf(ctx, l, models.LevelDebug, format, args...)
}

// Infof logs at LevelInfo.
func Infof(ctx context.Context, l Logger, format string, args ...any) error {
	return Logf(ctx, l, models.LevelInfo, format, args...)
}

// Warnf logs at LevelWarning.
func Warnf(ctx context.Context, l Logger, format string, args ...any) error {
	return Logf(ctx, l, models.LevelWarning, format, args...)
}

// Errorf logs at LevelError.
func Errorf(ctx context.Context, l Logger, format string, args ...any) error {
	return Logf(ctx, l, models.LevelError, format, args...)
}

// Criticalf logs at LevelCritical.
func Criticalf(ctx context.Context, l Logger, format string, args ...any) error {
	return Logf(ctx, l, models.LevelCritical, format, args...)
}
