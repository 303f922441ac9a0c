// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package config provides centralized configuration management for Logroute.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated before it is
returned.

# Configuration Sources

  - Defaults from defaultConfig()
  - YAML file: $CONFIG_PATH, logroute.yaml, config.yaml, config.yml,
    /etc/logroute/config.yaml (first found wins)
  - Environment variables (highest priority)

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown limit (default: 10s)
  - ENVIRONMENT: development, staging or production

Process Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Memory Sink (MemorySinkConfig):
  - MEMORY_SINK_ENABLED, MEMORY_SINK_CAPACITY, MEMORY_SINK_MIN_LEVEL
  - MEMORY_SINK_INCLUDE_SCOPES
  - MEMORY_SINK_CATEGORIES: e.g. "Api*,*Controller"
  - MEMORY_SINK_ALIASES: e.g. "f*=Remap1,*name=Remap2"

External Sink (ExternalSinkConfig):
  - EXTERNAL_SINK_ENABLED, EXTERNAL_SINK_FORMAT, EXTERNAL_SINK_OUTPUT
  - EXTERNAL_SINK_MIN_LEVEL, EXTERNAL_SINK_INCLUDE_SCOPES
  - EXTERNAL_SINK_CATEGORIES, EXTERNAL_SINK_ALIASES
  - EXTERNAL_SINK_BREAKER_THRESHOLD, EXTERNAL_SINK_BREAKER_TIMEOUT

Diagnostic API (APIConfig):
  - API_DEFAULT_COUNT, API_MAX_COUNT
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS

Supervisor (SupervisorConfig):
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_DECAY
  - SUPERVISOR_FAILURE_BACKOFF, SUPERVISOR_SHUTDOWN_TIMEOUT

# YAML Example

	memory:
	  capacity: 256
	  min_level: information
	  include_scopes: true
	  categories: ["f*", "*name"]
	  aliases:
	    - pattern: "f*"
	      target: Remap1
	    - pattern: "*name"
	      target: Remap2

Alias order is significant: the first matching pattern wins.

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	mem, err := provider.NewMemoryProvider(cfg.Memory.ToSettings())
*/
package config
