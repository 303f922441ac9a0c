// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of the health probes.
type HealthStatus struct {
	Status    string   `json:"status"`
	Uptime    float64  `json:"uptime_seconds"`
	Providers []string `json:"providers,omitempty"`
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 while the process is serving, regardless of readiness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until the server has marked itself ready, or when no provider
// is configured.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	providers := h.factory.Providers()
	if !h.Ready() || len(providers) == 0 {
		rw.ServiceUnavailable("Service is not ready")
		return
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	rw.Success(HealthStatus{
		Status:    "ready",
		Uptime:    time.Since(h.startTime).Seconds(),
		Providers: names,
	})
}
