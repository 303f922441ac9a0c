// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package middleware provides HTTP middleware for the diagnostic server.

All middleware has the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: X-Request-ID propagation, logging context IDs and a
    "RequestId:<id>" category logger scope
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - AccessLog: one entry per request written through a category logger

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(factory.CreateLogger("Logroute.Http.Access"), time.Second))

RequestID must run before AccessLog so the access entries carry the request
scope.

See Also:

  - internal/api: router and handlers
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
