// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/logroute/internal/category"
	"github.com/tomtom215/logroute/internal/models"
	"github.com/tomtom215/logroute/internal/provider"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (logroute.yaml / config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Category sinks:
//     - Memory: per-category in-memory buffers readable through the API
//     - External: categories forwarded to a zerolog writer
//
//  2. Infrastructure:
//     - Server: HTTP listener and timeouts
//     - Supervisor: restart policy of the service tree
//
//  3. API & Observability:
//     - API: read limits, rate limiting, CORS
//     - Logging: the process's own log output
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	mem, err := provider.NewMemoryProvider(cfg.Memory.ToSettings())
type Config struct {
	Server     ServerConfig       `koanf:"server"`
	Logging    LoggingConfig      `koanf:"logging"`
	Memory     MemorySinkConfig   `koanf:"memory"`
	External   ExternalSinkConfig `koanf:"external"`
	API        APIConfig          `koanf:"api"`
	Supervisor SupervisorConfig   `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds the process logger configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MemorySinkConfig configures the in-memory category provider.
//
// Environment Variables:
//   - MEMORY_SINK_ENABLED: Enable the provider (default: true)
//   - MEMORY_SINK_CAPACITY: Entries kept per logger (default: 1024)
//   - MEMORY_SINK_MIN_LEVEL: Lowest level written (default: unset, all levels)
//   - MEMORY_SINK_INCLUDE_SCOPES: Record scope trails (default: false)
//   - MEMORY_SINK_CATEGORIES: Comma-separated accepted patterns (default: accept all)
//   - MEMORY_SINK_ALIASES: Comma-separated pattern=target pairs, in order
type MemorySinkConfig struct {
	Enabled       bool              `koanf:"enabled"`
	Capacity      int               `koanf:"capacity"`
	MinLevel      string            `koanf:"min_level"`
	IncludeScopes bool              `koanf:"include_scopes"`
	Categories    []string          `koanf:"categories"`
	Aliases       category.AliasMap `koanf:"aliases"`
}

// ToSettings converts the section to provider settings. The level must
// already have passed validation.
func (m MemorySinkConfig) ToSettings() provider.Settings {
	return provider.Settings{
		Capacity:              m.Capacity,
		MinLevel:              levelPtr(m.MinLevel),
		AcceptedCategoryNames: append([]string(nil), m.Categories...),
		Aliases:               m.Aliases.Clone(),
		IncludeScopes:         m.IncludeScopes,
	}
}

// ExternalSinkConfig configures the zerolog-backed category provider.
//
// Environment Variables:
//   - EXTERNAL_SINK_ENABLED: Enable the provider (default: true)
//   - EXTERNAL_SINK_FORMAT: json or console (default: json)
//   - EXTERNAL_SINK_OUTPUT: stdout, stderr or a file path (default: stdout)
//   - EXTERNAL_SINK_MIN_LEVEL, EXTERNAL_SINK_INCLUDE_SCOPES,
//     EXTERNAL_SINK_CATEGORIES, EXTERNAL_SINK_ALIASES: as for the memory sink
//   - EXTERNAL_SINK_BREAKER_THRESHOLD: Consecutive write failures before the
//     output circuit opens (default: 5)
//   - EXTERNAL_SINK_BREAKER_TIMEOUT: Open-state duration (default: 30s)
type ExternalSinkConfig struct {
	Enabled       bool              `koanf:"enabled"`
	Format        string            `koanf:"format"`
	Output        string            `koanf:"output"`
	MinLevel      string            `koanf:"min_level"`
	IncludeScopes bool              `koanf:"include_scopes"`
	Categories    []string          `koanf:"categories"`
	Aliases       category.AliasMap `koanf:"aliases"`
	Breaker       BreakerConfig     `koanf:"breaker"`
}

// ToSettings converts the section to provider settings.
func (e ExternalSinkConfig) ToSettings() provider.Settings {
	return provider.Settings{
		MinLevel:              levelPtr(e.MinLevel),
		AcceptedCategoryNames: append([]string(nil), e.Categories...),
		Aliases:               e.Aliases.Clone(),
		IncludeScopes:         e.IncludeScopes,
	}
}

// BreakerConfig holds the circuit breaker guarding the external sink output.
type BreakerConfig struct {
	FailureThreshold uint32        `koanf:"failure_threshold"`
	Timeout          time.Duration `koanf:"timeout"`
}

// APIConfig holds diagnostic API settings
type APIConfig struct {
	DefaultCount      int           `koanf:"default_count"`
	MaxCount          int           `koanf:"max_count"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// SupervisorConfig holds the restart policy of the service tree.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func levelPtr(s string) *models.Level {
	if s == "" {
		return nil
	}
	lvl, err := models.ParseLevel(s)
	if err != nil {
		return nil
	}
	return &lvl
}

// Load reads configuration using Koanf v2 with layered sources.
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
