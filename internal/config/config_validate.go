// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/logroute/internal/models"
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateMemorySink(); err != nil {
		return err
	}

	if err := c.validateExternalSink(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	return c.validateSupervisor()
}

// validEnvironments defines the allowed server environments
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must not be negative")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateMinLevel checks an optional category level name.
func validateMinLevel(value, envName string) error {
	if value == "" {
		return nil
	}
	if _, err := models.ParseLevel(value); err != nil {
		return fmt.Errorf("%s is invalid: %w", envName, err)
	}
	return nil
}

// validateMemorySink validates the memory provider section (only if enabled)
func (c *Config) validateMemorySink() error {
	if !c.Memory.Enabled {
		return nil
	}
	if c.Memory.Capacity < 1 {
		return fmt.Errorf("MEMORY_SINK_CAPACITY must be at least 1")
	}
	if err := validateMinLevel(c.Memory.MinLevel, "MEMORY_SINK_MIN_LEVEL"); err != nil {
		return err
	}
	settings := c.Memory.ToSettings()
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("memory sink: %w", err)
	}
	return nil
}

// validateExternalSink validates the external provider section (only if enabled)
func (c *Config) validateExternalSink() error {
	if !c.External.Enabled {
		return nil
	}
	if c.External.Format != "" && !validLogFormats[c.External.Format] {
		return fmt.Errorf("EXTERNAL_SINK_FORMAT must be one of: json, console")
	}
	if c.External.Output == "" {
		return fmt.Errorf("EXTERNAL_SINK_OUTPUT is required when EXTERNAL_SINK_ENABLED=true")
	}
	if err := validateMinLevel(c.External.MinLevel, "EXTERNAL_SINK_MIN_LEVEL"); err != nil {
		return err
	}
	if c.External.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("EXTERNAL_SINK_BREAKER_THRESHOLD must be at least 1")
	}
	if c.External.Breaker.Timeout <= 0 {
		return fmt.Errorf("EXTERNAL_SINK_BREAKER_TIMEOUT must be positive")
	}
	settings := c.External.ToSettings()
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("external sink: %w", err)
	}
	return nil
}

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateAPI validates API read limits and rate limiting bounds.
func (c *Config) validateAPI() error {
	if c.API.MaxCount < 1 {
		return fmt.Errorf("API_MAX_COUNT must be at least 1")
	}
	if c.API.DefaultCount < 1 || c.API.DefaultCount > c.API.MaxCount {
		return fmt.Errorf("API_DEFAULT_COUNT must be between 1 and API_MAX_COUNT (%d)", c.API.MaxCount)
	}
	if c.API.RateLimitDisabled {
		return nil
	}
	if c.API.RateLimitReqs < minRateLimitRequests || c.API.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.API.RateLimitWindow < minRateLimitWindow || c.API.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateSupervisor validates supervisor restart policy
func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold < 0 || c.Supervisor.FailureDecay < 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_THRESHOLD and SUPERVISOR_FAILURE_DECAY must not be negative")
	}
	if c.Supervisor.FailureBackoff < 0 || c.Supervisor.ShutdownTimeout < 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_BACKOFF and SUPERVISOR_SHUTDOWN_TIMEOUT must not be negative")
	}
	return nil
}
