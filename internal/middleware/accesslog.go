// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/logroute/internal/logging"
	"github.com/tomtom215/logroute/internal/models"
	"github.com/tomtom215/logroute/internal/provider"
)

// Access log event IDs.
var (
	EventRequestFinished = models.EventID{ID: 1000, Name: "RequestFinished"}
	EventSlowRequest     = models.EventID{ID: 1001, Name: "SlowRequest"}
)

// DefaultSlowRequestThreshold marks requests worth a warning.
const DefaultSlowRequestThreshold = time.Second

// AccessLog writes one entry per request through a category logger, so the
// server's own traffic is routed like any other category. Server errors are
// logged at Error, requests slower than slow at Warning, the rest at
// Information. A slow threshold <= 0 selects DefaultSlowRequestThreshold.
func AccessLog(logger provider.Logger, slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			elapsed := time.Since(start)
			level, event := models.LevelInfo, EventRequestFinished
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				level = models.LevelError
			case elapsed > slow:
				level, event = models.LevelWarning, EventSlowRequest
			}
			if !logger.IsEnabled(level) {
				return
			}

			msg := provider.Message{
				Format: "%s %s responded %d in %.3f ms",
				Args:   []any{r.Method, r.URL.Path, wrapper.statusCode, float64(elapsed.Microseconds()) / 1000},
			}
			if err := logger.Log(r.Context(), level, event, msg, nil, provider.SprintfFormatter); err != nil {
				logging.CtxErr(r.Context(), err).Msg("Access log write failed")
			}
		})
	}
}
