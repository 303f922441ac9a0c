// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/logroute/internal/config"
	"github.com/tomtom215/logroute/internal/logging"
	"github.com/tomtom215/logroute/internal/metrics"
)

// version is set by ldflags at build time.
var version = "dev"

// flags holds command-line overrides applied on top of the loaded configuration.
type flags struct {
	configPath string
	logLevel   string
	port       int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:           "logroute",
		Short:         "Category-routed structured logging diagnostic server",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "YAML config file (default: search standard locations)")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "override LOG_LEVEL")
	rootCmd.PersistentFlags().IntVarP(&f.port, "port", "p", 0, "override HTTP_PORT")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "check-config",
		Short: "Load and validate the configuration, then print the effective sink settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return writeConfigSummary(cmd.OutOrStdout(), cfg)
		},
	})

	return rootCmd
}

// loadConfig loads configuration and applies flag overrides. Overridden
// values are validated again.
func loadConfig(f flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if f.logLevel == "" && f.port == 0 {
		return cfg, nil
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.port != 0 {
		cfg.Server.Port = f.port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// serve runs the diagnostic server until ctx is canceled or SIGINT/SIGTERM
// arrives.
func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Logroute with supervisor tree")

	metrics.SetAppInfo(version, runtime.Version())

	a, err := newApp(cfg, time.Now())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting supervisor tree...")
	errCh := a.tree.ServeBackground(ctx)

	// The channel delivers exactly one value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := a.tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}
