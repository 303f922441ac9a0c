// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package logging

import (
	"errors"
	"io"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/logroute/internal/metrics"
)

// BreakerConfig configures the circuit breaker of a GuardedWriter.
type BreakerConfig struct {
	// Name labels metrics and state-change log lines.
	Name string

	// FailureThreshold is the number of consecutive failed writes that opens the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before letting a probe write through.
	Timeout time.Duration

	// MaxRequests is the number of probe writes allowed while half-open.
	MaxRequests uint32
}

// DefaultBreakerConfig returns the breaker settings used when none are configured.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// GuardedWriter passes writes through a circuit breaker. Failed writes count
// against the breaker; while it is open, writes are dropped without touching
// the underlying writer.
//
// Write never returns an error: a logging call must not fail or stall because
// its output is unhealthy. Drops are visible in logroute_writer_dropped_total.
type GuardedWriter struct {
	w    io.Writer
	name string
	cb   *gobreaker.CircuitBreaker[int]
}

// NewGuardedWriter wraps w. Zero fields in cfg take DefaultBreakerConfig values.
func NewGuardedWriter(w io.Writer, cfg BreakerConfig) *GuardedWriter {
	def := DefaultBreakerConfig(cfg.Name)
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			Warn().
				Str("writer", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Log output circuit breaker changed state")
		},
	}

	return &GuardedWriter{
		w:    w,
		name: cfg.Name,
		cb:   gobreaker.NewCircuitBreaker[int](settings),
	}
}

// Write implements io.Writer.
func (g *GuardedWriter) Write(p []byte) (int, error) {
	_, err := g.cb.Execute(func() (int, error) {
		n, err := g.w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		return n, err
	})

	switch {
	case err == nil:
		metrics.RecordCircuitBreakerRequest(g.name, "success")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(g.name, "rejected")
		metrics.RecordWriterDrop(g.name, "open")
	default:
		metrics.RecordCircuitBreakerRequest(g.name, "failure")
		metrics.RecordWriterDrop(g.name, "error")
	}
	return len(p), nil
}

// State returns the breaker state: "closed", "half-open" or "open".
func (g *GuardedWriter) State() string {
	return g.cb.State().String()
}
