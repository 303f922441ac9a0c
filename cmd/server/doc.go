// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package main is the entry point for the Logroute diagnostic server.

Logroute routes log entries by category name. Each provider decides per
category whether to accept it (exact, prefix, suffix, contains or "*"
patterns), which name to record it under (aliases), and at which minimum
level. The memory provider keeps the newest entries of every accepted
category in a bounded buffer; the external provider writes them through
zerolog. The server exposes the buffers over HTTP.

# Application Architecture

	RootSupervisor ("logroute")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Uptime service (app_uptime_seconds)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 (defaults, YAML file, environment, then flags)
 2. Process logging: zerolog, JSON or console
 3. Providers: memory and external, each with its own category rules
 4. Factory: one logger per category fanned out to every provider
 5. HTTP: chi router with request IDs, Prometheus metrics, access log,
    CORS and rate limiting
 6. Supervisor tree: Suture v4, restarts failed services with backoff

# Usage

	logroute                        # serve with discovered configuration
	logroute --config ./logroute.yaml --port 8080
	logroute check-config           # print effective sink settings
	logroute --version

# Endpoints

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/loggers[?pattern=...]
	GET  /api/v1/logs/{category}[?count=N]
	GET  /api/v1/resolve/{category}
	GET|POST|PUT|DELETE /api/v1/values[/{id}]
	GET  /metrics

# Graceful Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP service marks the
server not ready and drains connections within HTTP_SHUTDOWN_TIMEOUT;
services that miss the supervisor timeout are reported before exit.

See Also:

  - internal/config: configuration sources and variables
  - internal/provider: providers, factory and category loggers
  - internal/api: HTTP handlers
  - internal/supervisor: service tree
*/
package main
