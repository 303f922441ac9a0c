// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package services provides suture.Service wrappers for Logroute components.

Each wrapper implements:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, which suture uses to name the service in its events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, converting ListenAndServe to Serve
  - Graceful Shutdown with a configurable timeout
  - Optional readiness callback for the /health/ready probe

Uptime (UptimeService):
  - Refreshes the app_uptime_seconds gauge until canceled
*/
package services
