// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newSlogForTest(level zerolog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf).Level(level))), &buf
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		zerologLevel zerolog.Level
		slogLevel    slog.Level
		want         bool
	}{
		{"debug at debug", zerolog.DebugLevel, slog.LevelDebug, true},
		{"debug at info", zerolog.InfoLevel, slog.LevelDebug, false},
		{"info at info", zerolog.InfoLevel, slog.LevelInfo, true},
		{"warn at error", zerolog.ErrorLevel, slog.LevelWarn, false},
		{"error at warn", zerolog.WarnLevel, slog.LevelError, true},
		{"below debug at trace", zerolog.TraceLevel, slog.LevelDebug - 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(tt.zerologLevel))
			if got := h.Enabled(context.Background(), tt.slogLevel); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.slogLevel, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, `"level":"debug"`},
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
		{slog.LevelError + 4, `"level":"error"`},
	}

	for _, tt := range tests {
		logger, buf := newSlogForTest(zerolog.TraceLevel)
		logger.Log(context.Background(), tt.level, "hello")
		if !strings.Contains(buf.String(), tt.want) || !strings.Contains(buf.String(), `"message":"hello"`) {
			t.Errorf("level %v: output %s, want %s", tt.level, buf.String(), tt.want)
		}
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	logger, buf := newSlogForTest(zerolog.TraceLevel)
	logger.With("service", "http").Info("started",
		"port", 8089,
		"ratio", 0.5,
		"ok", true,
		"elapsed", 2*time.Second,
		"err", errors.New("boom"),
		"id", uint64(7),
	)

	output := buf.String()
	for _, want := range []string{
		`"service":"http"`,
		`"port":8089`,
		`"ratio":0.5`,
		`"ok":true`,
		`"err":"boom"`,
		`"id":7`,
		`"elapsed":`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_Groups(t *testing.T) {
	t.Parallel()

	logger, buf := newSlogForTest(zerolog.TraceLevel)
	logger.WithGroup("supervisor").WithGroup("service").Info("event",
		slog.Group("failure", slog.Int("count", 3)),
		"name", "http",
	)

	output := buf.String()
	if !strings.Contains(output, `"supervisor.service.failure.count":3`) {
		t.Errorf("expected nested group key: %s", output)
	}
	if !strings.Contains(output, `"supervisor.service.name":"http"`) {
		t.Errorf("expected group prefix: %s", output)
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(nil))
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogHandler_WithAttrsDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := NewSlogHandlerWithLogger(zerolog.New(nil)).WithAttrs([]slog.Attr{slog.String("a", "1")}).(*SlogHandler)
	left := base.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*SlogHandler)
	right := base.WithAttrs([]slog.Attr{slog.String("c", "3")}).(*SlogHandler)

	if left.attrs[1].Key != "b" || right.attrs[1].Key != "c" {
		t.Errorf("attrs aliased: left=%v right=%v", left.attrs, right.attrs)
	}
	if len(base.attrs) != 1 {
		t.Errorf("base modified: %v", base.attrs)
	}
}

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer Init(DefaultConfig())

	NewSlogLogger().Info("via process logger")
	if !strings.Contains(buf.String(), "via process logger") {
		t.Errorf("expected process logger output: %s", buf.String())
	}
}
