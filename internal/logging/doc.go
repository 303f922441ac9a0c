// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package logging provides the process logger for logroute itself, built on zerolog.

This is the service's own diagnostic log (startup, configuration, HTTP
requests, supervisor events). Category-routed application logs go through
package provider instead; the external category sink reuses NewWriterLogger
and GuardedWriter from here.

# Quick Start

	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	logging.Info().Str("addr", addr).Msg("Diagnostic server listening")
	logging.Ctx(ctx).Warn().Err(err).Msg("Read failed")

Levels are applied to the process logger only, never via zerolog's global
level, so the external sink keeps its own filtering.

# Request Context

ContextWithRequestID and ContextWithCorrelationID store IDs in a context;
Ctx returns a logger carrying them:

	{"level":"info","request_id":"6f1c...","message":"Recent entries read"}

# slog Bridge

SlogHandler adapts zerolog to log/slog for libraries that require an
*slog.Logger, such as sutureslog in the supervisor tree.

# Guarded Output

GuardedWriter wraps an io.Writer in a sony/gobreaker circuit breaker. After
FailureThreshold consecutive failed writes the breaker opens and writes are
dropped (and counted) until Timeout elapses and a probe write succeeds:

	out := logging.NewGuardedWriter(file, logging.DefaultBreakerConfig("external"))
	zl := logging.NewWriterLogger(out, "json")
*/
package logging
