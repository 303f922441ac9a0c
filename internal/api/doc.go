// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package api provides the diagnostic HTTP API of the Logroute server.

The API exposes what the category providers hold at runtime and a small
sample resource whose handlers log through a category logger, so routing,
aliasing and memory retention can be observed end to end.

Key Components:

  - Router: chi route tree and middleware stack
  - Handler: request handlers over a provider.Factory
  - ResponseWriter: JSON envelope {success, data, error, meta}
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Endpoints:

	GET    /api/v1/health/live
	GET    /api/v1/health/ready
	GET    /api/v1/loggers[?pattern=p]        live loggers of every provider
	GET    /api/v1/logs/{category}[?count=K]  newest memory entries, oldest first
	GET    /api/v1/resolve/{category}         per-provider resolution, no side effects
	GET    /api/v1/values
	POST   /api/v1/values
	GET    /api/v1/values/{id}
	PUT    /api/v1/values/{id}
	DELETE /api/v1/values/{id}
	GET    /metrics                           Prometheus

/logs answers 404 for a category with no live memory logger, 400 for a count
that is not a non-negative integer, and 503 when the memory sink is disabled.
Counts above the configured maximum are clamped.

Usage Example:

	factory := provider.NewFactory(memory, external)
	handler := api.NewHandler(factory, cfg.API)
	router := api.NewRouter(handler,
	    api.NewChiMiddleware(api.ChiMiddlewareConfigFromAPI(cfg.API)),
	    factory.CreateLogger(api.CategoryAccessLog))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}

See Also:

  - internal/provider: category loggers and providers
  - internal/middleware: request ID, metrics and access log middleware
*/
package api
