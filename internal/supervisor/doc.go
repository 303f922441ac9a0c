// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package supervisor provides process supervision for the Logroute server using
suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("logroute")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure threshold, decay and
backoff. Context cancellation stops the tree; services that miss the shutdown
timeout show up in UnstoppedServiceReport.

Supervisor events (starts, failures, backoff) are logged through sutureslog
into the process zerolog logger via logging.NewSlogLogger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(),
	    supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout).
	    WithReadiness(handler.SetReady))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

See Also:

  - internal/supervisor/services: service wrappers
*/
package supervisor
