// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/logroute/internal/config"
	"github.com/tomtom215/logroute/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFromAPI(t *testing.T) {
	api := config.APIConfig{
		RateLimitReqs:     7,
		RateLimitWindow:   2 * time.Minute,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://example.com"},
	}

	cfg := ChiMiddlewareConfigFromAPI(api)
	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != 2*time.Minute || !cfg.RateLimitDisabled {
		t.Errorf("rate limit config = %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}

	api.CORSOrigins[0] = "changed"
	if cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Error("CORS origins should be copied")
	}
}

func TestChiMiddleware_CORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{"wildcard", []string{"*"}, "https://example.com", "*"},
		{"specific allowed", []string{"https://allowed.com"}, "https://allowed.com", "https://allowed.com"},
		{"specific denied", []string{"https://allowed.com"}, "https://not-allowed.com", ""},
		{"no origin", []string{"https://allowed.com"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultChiMiddlewareConfig()
			cfg.CORSAllowedOrigins = tt.allowed
			handler := NewChiMiddleware(cfg).CORS()(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestChiMiddleware_CORS_PreflightRequest(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}

	handlerCalled := false
	handler := NewChiMiddleware(cfg).CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/values", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK && w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 200 or 204", w.Code)
	}
	if handlerCalled {
		t.Error("Handler should not be called for OPTIONS preflight")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Access-Control-Allow-Methods should be set")
	}
}

func TestChiMiddleware_RateLimit_Disabled(t *testing.T) {
	cfg := &ChiMiddlewareConfig{
		RateLimitDisabled: true,
		RateLimitRequests: 3,
		RateLimitWindow:   time.Second,
	}
	handler := NewChiMiddleware(cfg).RateLimit()(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}
}

func TestChiMiddleware_RateLimit_Enabled(t *testing.T) {
	cfg := &ChiMiddlewareConfig{
		RateLimitRequests: 3,
		RateLimitWindow:   time.Minute,
	}
	handler := NewChiMiddleware(cfg).RateLimit()(okHandler())
	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("api"))

	successCount := 0
	limitedCount := 0
	var lastBody string
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			successCount++
		case http.StatusTooManyRequests:
			limitedCount++
			lastBody = w.Body.String()
		}
	}

	if successCount != 3 {
		t.Errorf("successCount = %d, want 3", successCount)
	}
	if limitedCount != 2 {
		t.Errorf("limitedCount = %d, want 2", limitedCount)
	}
	if !strings.Contains(lastBody, ErrCodeTooManyRequests) {
		t.Errorf("limited body = %q, want %s envelope", lastBody, ErrCodeTooManyRequests)
	}
	after := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("api"))
	if after-before != 2 {
		t.Errorf("rate limit hits delta = %v, want 2", after-before)
	}
}

func TestChiMiddleware_RateLimit_DifferentIPs(t *testing.T) {
	cfg := &ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	}
	handler := NewChiMiddleware(cfg).RateLimit()(okHandler())

	for _, ip := range []string{"192.168.1.1:12345", "192.168.1.2:12345", "192.168.1.3:12345"} {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = ip
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("IP %s request %d: status = %d, want %d", ip, i, w.Code, http.StatusOK)
			}
		}
	}
}

func TestChiMiddleware_RateLimitHealth(t *testing.T) {
	handler := NewChiMiddleware(nil).RateLimitHealth()(okHandler())

	// Well below the probe limit
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
		req.RemoteAddr = "10.0.0.1:1"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	handler := APISecurityHeaders()(okHandler())

	tests := []struct {
		name     string
		proto    string
		wantHSTS bool
	}{
		{"plain http", "", false},
		{"behind tls proxy", "https", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			want := map[string]string{
				"X-Content-Type-Options": "nosniff",
				"X-Frame-Options":        "DENY",
				"Cache-Control":          "no-store",
				"Referrer-Policy":        "strict-origin-when-cross-origin",
			}
			for k, v := range want {
				if got := w.Header().Get(k); got != v {
					t.Errorf("%s = %q, want %q", k, got, v)
				}
			}
			if got := w.Header().Get("Strict-Transport-Security") != ""; got != tt.wantHSTS {
				t.Errorf("HSTS set = %v, want %v", got, tt.wantHSTS)
			}
		})
	}
}
