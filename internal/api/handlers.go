// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/logroute/internal/config"
	"github.com/tomtom215/logroute/internal/provider"
)

// Categories used by the server's own loggers.
const (
	CategoryAccessLog = "Logroute.Http.Access"
	CategoryValues    = "Logroute.Samples.ValuesController"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: liveness and readiness probes
//   - handlers_loggers.go: registered loggers and recent memory entries
//   - handlers_values.go: sample values resource that logs through a category
type Handler struct {
	factory   *provider.Factory
	memory    *provider.Provider
	api       config.APIConfig
	values    provider.Logger
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a handler over factory.
//
// The memory provider, when the factory has one, backs the recent-entries
// endpoint; without it that endpoint answers 503. The values logger is created
// here and held for the handler's lifetime, which keeps its registration live.
func NewHandler(factory *provider.Factory, api config.APIConfig) *Handler {
	h := &Handler{
		factory:   factory,
		api:       api,
		values:    factory.CreateLogger(CategoryValues),
		startTime: time.Now(),
	}
	if p, ok := factory.Provider(provider.SinkMemory); ok {
		h.memory = p
	}
	return h
}

// SetReady flips the readiness probe. The server marks itself ready once the
// listener is up and not ready again when shutdown begins.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Ready reports the readiness flag.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}
