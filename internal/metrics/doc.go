// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package metrics provides Prometheus metrics for the logging providers and the
diagnostic API.

All collectors are registered with the default registry through promauto and
exposed by the server at /metrics:

	curl http://localhost:8089/metrics

# Available Metrics

Logger lifecycle:
  - logroute_loggers_created_total: CreateLogger calls (counter)
    Labels: sink, result (created, reused, rejected)
  - logroute_loggers_live: registered loggers not yet collected (gauge)
    Labels: sink

Write path:
  - logroute_entries_written_total: entries delivered (counter)
    Labels: sink, level
  - logroute_entries_skipped_total: calls that produced no entry (counter)
    Labels: sink, reason (disabled, empty, nil_formatter, formatter_panic)

In-memory buffers:
  - logroute_buffer_evictions_total: entries dropped for capacity (counter)
  - logroute_buffer_reads_total: recent-entry reads (counter)
    Labels: sink, result (hit, miss)
  - logroute_buffer_read_entries: entries returned per read (histogram)

External output:
  - logroute_writer_dropped_total: writes dropped by a guarded writer (counter)
    Labels: name, reason (open, error)
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total, circuit_breaker_state_transitions_total

API:
  - api_requests_total, api_request_duration_seconds, api_active_requests,
    api_rate_limit_hits_total

System:
  - app_info, app_uptime_seconds

Category names are never used as label values.

# Thread Safety

All Record* helpers are safe for concurrent use.
*/
package metrics
