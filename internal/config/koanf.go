// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/logroute/internal/category"
	"github.com/tomtom215/logroute/internal/memlog"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"logroute.yaml",
	"config.yaml",
	"config.yml",
	"/etc/logroute/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Memory: MemorySinkConfig{
			Enabled:  true,
			Capacity: memlog.DefaultCapacity,
		},
		External: ExternalSinkConfig{
			Enabled: true,
			Format:  "json",
			Output:  "stdout",
			Breaker: BreakerConfig{
				FailureThreshold: 5,
				Timeout:          30 * time.Second,
			},
		},
		API: APIConfig{
			DefaultCount:    100,
			MaxCount:        memlog.DefaultCapacity,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5.0,
			FailureDecay:     30.0,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile loads configuration like LoadWithKoanf but reads the YAML file at
// path instead of searching the default locations.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// LOG_LEVEL -> logging.level, MEMORY_SINK_CAPACITY -> memory.capacity
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processAliasFields(k); err != nil {
		return nil, fmt.Errorf("failed to process alias fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"memory.categories",
	"external.categories",
	"api.cors_origins",
}

// aliasConfigPaths hold ordered alias lists; from the environment they arrive
// as "pattern=target,pattern=target".
var aliasConfigPaths = []string{
	"memory.aliases",
	"external.aliases",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// processAliasFields parses string alias values into ordered pattern/target lists.
func processAliasFields(k *koanf.Koanf) error {
	for _, path := range aliasConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		aliases, err := category.ParseAliases(strVal)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		list := make([]map[string]interface{}, len(aliases))
		for i, a := range aliases {
			list[i] = map[string]interface{}{"pattern": a.Pattern, "target": a.Target}
		}
		if err := k.Set(path, list); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables are skipped so unrelated environment does not leak into
// the configuration.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_port":             "server.port",
		"http_host":             "server.host",
		"http_read_timeout":     "server.read_timeout",
		"http_write_timeout":    "server.write_timeout",
		"http_idle_timeout":     "server.idle_timeout",
		"http_shutdown_timeout": "server.shutdown_timeout",
		"environment":           "server.environment",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Memory sink mappings
		"memory_sink_enabled":        "memory.enabled",
		"memory_sink_capacity":       "memory.capacity",
		"memory_sink_min_level":      "memory.min_level",
		"memory_sink_include_scopes": "memory.include_scopes",
		"memory_sink_categories":     "memory.categories",
		"memory_sink_aliases":        "memory.aliases",

		// External sink mappings
		"external_sink_enabled":           "external.enabled",
		"external_sink_format":            "external.format",
		"external_sink_output":            "external.output",
		"external_sink_min_level":         "external.min_level",
		"external_sink_include_scopes":    "external.include_scopes",
		"external_sink_categories":        "external.categories",
		"external_sink_aliases":           "external.aliases",
		"external_sink_breaker_threshold": "external.breaker.failure_threshold",
		"external_sink_breaker_timeout":   "external.breaker.timeout",

		// API mappings
		"api_default_count":   "api.default_count",
		"api_max_count":       "api.max_count",
		"rate_limit_requests": "api.rate_limit_reqs",
		"rate_limit_window":   "api.rate_limit_window",
		"disable_rate_limit":  "api.rate_limit_disabled",
		"cors_origins":        "api.cors_origins",

		// Supervisor mappings
		"supervisor_failure_threshold": "supervisor.failure_threshold",
		"supervisor_failure_decay":     "supervisor.failure_decay",
		"supervisor_failure_backoff":   "supervisor.failure_backoff",
		"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
