// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/logroute/internal/middleware"
	"github.com/tomtom215/logroute/internal/provider"
)

// Router wires the handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	accessLog     provider.Logger
}

// NewRouter creates a router. accessLog receives one entry per request; pass
// the logger returned by factory.CreateLogger(CategoryAccessLog) so the
// server's traffic is routed like any other category.
func NewRouter(handler *Handler, mw *ChiMiddleware, accessLog provider.Logger) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	if accessLog == nil {
		accessLog = provider.Nop
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		accessLog:     accessLog,
	}
}

// globalMiddleware returns the middleware applied to every route, outermost
// first. Recoverer sits inside the metrics and access log so a recovered
// panic is still recorded as a 500.
func (router *Router) globalMiddleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		chimiddleware.RealIP,
		middleware.RequestID,
		middleware.PrometheusMetrics,
		middleware.AccessLog(router.accessLog, middleware.DefaultSlowRequestThreshold),
		chimiddleware.Recoverer,
		router.chiMiddleware.CORS(), // global so OPTIONS preflight is answered
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(router.globalMiddleware()...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, r, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed()
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/loggers", router.handler.Loggers)
		r.Get("/logs/{category}", router.handler.Logs)
		r.Get("/resolve/{category}", router.handler.Resolve)

		r.Route("/values", func(r chi.Router) {
			r.Get("/", router.handler.ListValues)
			r.Post("/", router.handler.CreateValue)
			r.Get("/{id}", router.handler.GetValue)
			r.Put("/{id}", router.handler.UpdateValue)
			r.Delete("/{id}", router.handler.DeleteValue)
		})
	})

	r.With(router.chiMiddleware.RateLimitHealth()).Handle("/metrics", promhttp.Handler())

	return r
}
