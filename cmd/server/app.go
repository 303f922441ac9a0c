// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/logroute/internal/api"
	"github.com/tomtom215/logroute/internal/config"
	"github.com/tomtom215/logroute/internal/logging"
	"github.com/tomtom215/logroute/internal/provider"
	"github.com/tomtom215/logroute/internal/supervisor"
	"github.com/tomtom215/logroute/internal/supervisor/services"
)

const uptimeInterval = 15 * time.Second

// app holds the wired components of a running server.
type app struct {
	factory *provider.Factory
	handler *api.Handler
	server  *http.Server
	tree    *supervisor.SupervisorTree

	// accessLog is referenced here so its registration outlives the router setup.
	accessLog provider.Logger
	closers   []io.Closer
}

// newApp wires config into providers, the factory, the chi router and the
// supervisor tree. Nothing is started.
func newApp(cfg *config.Config, start time.Time) (*app, error) {
	a := &app{}

	var providers []*provider.Provider

	if cfg.Memory.Enabled {
		mem, err := provider.NewMemoryProvider(cfg.Memory.ToSettings())
		if err != nil {
			return nil, fmt.Errorf("memory provider: %w", err)
		}
		providers = append(providers, mem)
		logging.Info().
			Int("capacity", cfg.Memory.Capacity).
			Strs("categories", cfg.Memory.Categories).
			Int("aliases", len(cfg.Memory.Aliases)).
			Msg("Memory provider enabled")
	} else {
		logging.Info().Msg("Memory provider disabled (MEMORY_SINK_ENABLED=false)")
	}

	if cfg.External.Enabled {
		ext, err := a.newExternalProvider(cfg.External)
		if err != nil {
			a.Close()
			return nil, err
		}
		providers = append(providers, ext)
		logging.Info().
			Str("output", cfg.External.Output).
			Str("format", cfg.External.Format).
			Strs("categories", cfg.External.Categories).
			Msg("External provider enabled")
	} else {
		logging.Info().Msg("External provider disabled (EXTERNAL_SINK_ENABLED=false)")
	}

	a.factory = provider.NewFactory(providers...)
	a.handler = api.NewHandler(a.factory, cfg.API)
	a.accessLog = a.factory.CreateLogger(api.CategoryAccessLog)

	router := api.NewRouter(a.handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromAPI(cfg.API)), a.accessLog)

	a.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	tree.AddMaintenanceService(services.NewUptimeService(start, uptimeInterval))
	tree.AddAPIService(services.NewHTTPServerService(a.server, cfg.Server.ShutdownTimeout).WithReadiness(a.handler.SetReady))
	a.tree = tree

	return a, nil
}

// newExternalProvider builds the zerolog-backed provider. The output sits
// behind a circuit breaker so a failing file or pipe drops entries instead of
// blocking callers.
func (a *app) newExternalProvider(cfg config.ExternalSinkConfig) (*provider.Provider, error) {
	out, err := a.openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	guarded := logging.NewGuardedWriter(out, logging.BreakerConfig{
		Name:             "external_sink",
		FailureThreshold: cfg.Breaker.FailureThreshold,
		Timeout:          cfg.Breaker.Timeout,
	})

	p, err := provider.NewZerologProvider(cfg.ToSettings(), logging.NewWriterLogger(guarded, cfg.Format))
	if err != nil {
		return nil, fmt.Errorf("external provider: %w", err)
	}
	return p, nil
}

// openOutput resolves stdout, stderr or a file path opened for append.
func (a *app) openOutput(output string) (io.Writer, error) {
	switch output {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open external sink output: %w", err)
	}
	a.closers = append(a.closers, f)
	return f, nil
}

// Close releases files opened for the external sink.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close sink output")
		}
	}
	a.closers = nil
}

// configSummary is the check-config output.
type configSummary struct {
	Addr        string      `json:"addr"`
	Environment string      `json:"environment"`
	Memory      sinkSummary `json:"memory"`
	External    sinkSummary `json:"external"`
}

type sinkSummary struct {
	Enabled       bool     `json:"enabled"`
	Capacity      int      `json:"capacity,omitempty"`
	MinLevel      string   `json:"min_level"`
	IncludeScopes bool     `json:"include_scopes"`
	Categories    []string `json:"categories"`
	Aliases       []string `json:"aliases"`
	Output        string   `json:"output,omitempty"`
}

func summarize(enabled bool, s provider.Settings) sinkSummary {
	out := sinkSummary{
		Enabled:       enabled,
		Capacity:      s.Capacity,
		MinLevel:      "all",
		IncludeScopes: s.IncludeScopes,
		Categories:    s.AcceptedCategoryNames,
		Aliases:       make([]string, 0, len(s.Aliases)),
	}
	if s.MinLevel != nil {
		out.MinLevel = s.MinLevel.String()
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	for _, al := range s.Aliases {
		out.Aliases = append(out.Aliases, al.Pattern+"="+al.Target)
	}
	return out
}

// writeConfigSummary prints the effective sink settings as indented JSON.
func writeConfigSummary(w io.Writer, cfg *config.Config) error {
	ext := summarize(cfg.External.Enabled, cfg.External.ToSettings())
	ext.Output = cfg.External.Output

	data, err := json.MarshalIndent(configSummary{
		Addr:        cfg.Server.Addr(),
		Environment: cfg.Server.Environment,
		Memory:      summarize(cfg.Memory.Enabled, cfg.Memory.ToSettings()),
		External:    ext,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
