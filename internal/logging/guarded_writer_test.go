// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package logging

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/logroute/internal/metrics"
)

// flakyWriter fails while failing is set.
type flakyWriter struct {
	mu      sync.Mutex
	failing bool
	short   bool
	calls   int
	buf     bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.failing {
		return 0, errors.New("disk full")
	}
	if w.short {
		return len(p) / 2, nil
	}
	return w.buf.Write(p)
}

func (w *flakyWriter) set(failing bool) {
	w.mu.Lock()
	w.failing = failing
	w.mu.Unlock()
}

func (w *flakyWriter) callCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

func TestGuardedWriter_PassThrough(t *testing.T) {
	w := &flakyWriter{}
	g := NewGuardedWriter(w, BreakerConfig{Name: "test-pass"})

	n, err := g.Write([]byte("hello\n"))
	if err != nil || n != 6 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if w.buf.String() != "hello\n" {
		t.Errorf("underlying writer got %q", w.buf.String())
	}
	if g.State() != "closed" {
		t.Errorf("State() = %s, want closed", g.State())
	}
}

func TestGuardedWriter_OpensAndDrops(t *testing.T) {
	w := &flakyWriter{failing: true}
	g := NewGuardedWriter(w, BreakerConfig{
		Name:             "test-open",
		FailureThreshold: 3,
		Timeout:          50 * time.Millisecond,
	})

	for i := 0; i < 3; i++ {
		if n, err := g.Write([]byte("x")); err != nil || n != 1 {
			t.Fatalf("Write() must swallow errors, got %d, %v", n, err)
		}
	}
	if g.State() != "open" {
		t.Fatalf("State() = %s, want open after 3 failures", g.State())
	}

	calls := w.callCount()
	_, _ = g.Write([]byte("dropped"))
	if w.callCount() != calls {
		t.Error("open breaker must not call the underlying writer")
	}
	if got := testutil.ToFloat64(metrics.WriterDropped.WithLabelValues("test-open", "open")); got != 1 {
		t.Errorf("open drops = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.WriterDropped.WithLabelValues("test-open", "error")); got != 3 {
		t.Errorf("error drops = %v, want 3", got)
	}

	// After the timeout a successful probe closes the breaker again.
	w.set(false)
	time.Sleep(80 * time.Millisecond)
	_, _ = g.Write([]byte("probe"))
	if g.State() != "closed" {
		t.Errorf("State() = %s, want closed after successful probe", g.State())
	}
}

func TestGuardedWriter_ShortWriteCountsAsFailure(t *testing.T) {
	w := &flakyWriter{short: true}
	g := NewGuardedWriter(w, BreakerConfig{Name: "test-short", FailureThreshold: 1})

	_, _ = g.Write([]byte("abcd"))
	if g.State() != "open" {
		t.Errorf("State() = %s, want open after short write", g.State())
	}
}

func TestDefaultBreakerConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultBreakerConfig("external")
	if cfg.Name != "external" || cfg.FailureThreshold != 5 || cfg.Timeout != 30*time.Second || cfg.MaxRequests != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
