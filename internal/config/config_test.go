// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/logroute/internal/category"
	"github.com/tomtom215/logroute/internal/models"
	"github.com/tomtom215/logroute/internal/provider"
)

// assertNoError checks that error is nil
func assertNoError(t *testing.T, err error, testName string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", testName, err)
	}
}

// assertError checks that error occurred and optionally matches message
func assertError(t *testing.T, err error, expectedMsg, testName string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error containing %q, got nil", testName, expectedMsg)
	}
	if expectedMsg != "" && !strings.Contains(err.Error(), expectedMsg) {
		t.Errorf("%s: error = %q, want it to contain %q", testName, err.Error(), expectedMsg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"production", func(c *Config) { c.Server.Environment = "production" }, ""},
		{"bad environment", func(c *Config) { c.Server.Environment = "prod" }, "ENVIRONMENT"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
		{"memory capacity", func(c *Config) { c.Memory.Capacity = 0 }, "MEMORY_SINK_CAPACITY"},
		{"memory capacity too large", func(c *Config) { c.Memory.Capacity = 1 << 30 }, "memory sink"},
		{"memory min level", func(c *Config) { c.Memory.MinLevel = "loud" }, "MEMORY_SINK_MIN_LEVEL"},
		{"memory level alias", func(c *Config) { c.Memory.MinLevel = "Information" }, ""},
		{"memory blank pattern", func(c *Config) { c.Memory.Categories = []string{"a*", "  "} }, "memory sink"},
		{"memory alias without target", func(c *Config) {
			c.Memory.Aliases = category.AliasMap{{Pattern: "a*"}}
		}, "memory sink"},
		{"memory disabled skips checks", func(c *Config) {
			c.Memory.Enabled = false
			c.Memory.Capacity = 0
		}, ""},
		{"external format", func(c *Config) { c.External.Format = "text" }, "EXTERNAL_SINK_FORMAT"},
		{"external output", func(c *Config) { c.External.Output = "" }, "EXTERNAL_SINK_OUTPUT"},
		{"external min level", func(c *Config) { c.External.MinLevel = "x" }, "EXTERNAL_SINK_MIN_LEVEL"},
		{"external breaker threshold", func(c *Config) { c.External.Breaker.FailureThreshold = 0 }, "EXTERNAL_SINK_BREAKER_THRESHOLD"},
		{"external breaker timeout", func(c *Config) { c.External.Breaker.Timeout = 0 }, "EXTERNAL_SINK_BREAKER_TIMEOUT"},
		{"external blank pattern", func(c *Config) { c.External.Categories = []string{""} }, "external sink"},
		{"external disabled skips checks", func(c *Config) {
			c.External.Enabled = false
			c.External.Output = ""
		}, ""},
		{"max count", func(c *Config) { c.API.MaxCount = 0 }, "API_MAX_COUNT"},
		{"default count", func(c *Config) { c.API.DefaultCount = 0 }, "API_DEFAULT_COUNT"},
		{"rate limit requests", func(c *Config) { c.API.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window", func(c *Config) { c.API.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled", func(c *Config) {
			c.API.RateLimitDisabled = true
			c.API.RateLimitReqs = 0
		}, ""},
		{"supervisor threshold", func(c *Config) { c.Supervisor.FailureThreshold = -1 }, "SUPERVISOR_FAILURE_THRESHOLD"},
		{"supervisor backoff", func(c *Config) { c.Supervisor.FailureBackoff = -time.Second }, "SUPERVISOR_FAILURE_BACKOFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assertNoError(t, err, tt.name)
				return
			}
			assertError(t, err, tt.wantErr, tt.name)
		})
	}
}

func TestValidateWrapsProviderErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Memory.Categories = []string{" "}

	err := cfg.Validate()
	if !errors.Is(err, provider.ErrInvalidSettings) {
		t.Errorf("Validate() = %v, want wrapped provider.ErrInvalidSettings", err)
	}
}

func TestMemoryToSettings(t *testing.T) {
	m := MemorySinkConfig{
		Enabled:       true,
		Capacity:      32,
		MinLevel:      "warning",
		IncludeScopes: true,
		Categories:    []string{"f*", "*name"},
		Aliases:       category.AliasMap{{Pattern: "f*", Target: "Remap1"}},
	}

	s := m.ToSettings()
	if s.Capacity != 32 || !s.IncludeScopes {
		t.Errorf("ToSettings() = %+v", s)
	}
	if s.MinLevel == nil || *s.MinLevel != models.LevelWarning {
		t.Errorf("MinLevel = %v, want warning", s.MinLevel)
	}

	// The settings own their slices.
	m.Categories[0] = "changed"
	m.Aliases[0].Target = "changed"
	if s.AcceptedCategoryNames[0] != "f*" || s.Aliases[0].Target != "Remap1" {
		t.Error("ToSettings() should copy categories and aliases")
	}
}

func TestExternalToSettings(t *testing.T) {
	e := defaultConfig().External
	s := e.ToSettings()
	if s.MinLevel != nil {
		t.Errorf("MinLevel = %v, want nil (all levels)", s.MinLevel)
	}
	if s.Capacity != 0 || len(s.AcceptedCategoryNames) != 0 || len(s.Aliases) != 0 {
		t.Errorf("ToSettings() = %+v, want accept-all defaults", s)
	}

	e.MinLevel = "critical"
	if lvl := e.ToSettings().MinLevel; lvl == nil || *lvl != models.LevelCritical {
		t.Errorf("MinLevel = %v, want critical", lvl)
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 5080}
	if got := s.Addr(); got != "127.0.0.1:5080" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestIsProduction(t *testing.T) {
	cfg := defaultConfig()
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
	cfg.Server.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}
