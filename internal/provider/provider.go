// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/logroute/internal/category"
	"github.com/tomtom215/logroute/internal/metrics"
	"github.com/tomtom215/logroute/internal/models"
)

// Sink names used for metrics and the diagnostic API.
const (
	SinkMemory   = "memory"
	SinkExternal = "external"
)

// Provider creates category loggers bound to one kind of sink.
//
// Settings are frozen at construction. Independent providers share nothing,
// so tests and multiple configurations can coexist in one process.
type Provider struct {
	name     string
	settings Settings
	resolver *category.Resolver
	registry *Registry
	newSink  SinkFactory
	now      func() time.Time
}

// Option customizes a Provider.
type Option func(*Provider)

// WithClock replaces time.Now as the entry timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProvider validates settings and creates a provider whose loggers write to
// sinks made by newSink. name labels metrics and API output.
func NewProvider(name string, settings Settings, newSink SinkFactory, opts ...Option) (*Provider, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: provider name is required", ErrInvalidSettings)
	}
	if newSink == nil {
		return nil, errors.New("provider: nil sink factory")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	frozen := settings.clone()
	p := &Provider{
		name:     name,
		settings: frozen,
		resolver: category.NewResolver(frozen.AcceptedCategoryNames, frozen.Aliases),
		newSink:  newSink,
		now:      time.Now,
	}
	p.registry = NewRegistry(func(string) { metrics.RecordLoggerCollected(name) })
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewMemoryProvider creates a provider whose loggers each retain their newest
// entries in memory.
func NewMemoryProvider(settings Settings, opts ...Option) (*Provider, error) {
	return NewProvider(SinkMemory, settings, NewMemorySinkFactory(SinkMemory, settings.Capacity), opts...)
}

// NewZerologProvider creates a provider whose loggers write through base.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewZerologProvider(settings Settings, base zerolog.Logger, opts ...Option) (*Provider, error) {
	return NewProvider(SinkExternal, settings, NewZerologSinkFactory(base), opts...)
}

// Name returns the provider name.
func (p *Provider) Name() string { return p.name }

// Resolve reports how category would be resolved, without creating a logger.
func (p *Provider) Resolve(name string) category.Resolution {
	return p.resolver.Resolve(name)
}

// CreateLogger returns the logger for category.
//
// A rejected category yields Nop and registers nothing. An accepted category
// reuses a live logger requested earlier under the same name (compared
// case-insensitively); otherwise a new logger is bound to the effective name.
func (p *Provider) CreateLogger(name string) Logger {
	res := p.resolver.Resolve(name)
	if !res.Accepted {
		metrics.RecordLoggerCreated(p.name, metrics.ResultRejected)
		return Nop
	}

	l, created := p.registry.getOrCreate(name, func() *CategoryLogger {
		return &CategoryLogger{
			category: name,
			name:     res.Name,
			aliased:  res.Aliased,
			sinkName: p.name,
			settings: &p.settings,
			sink:     p.newSink(res.Name),
			now:      p.now,
		}
	})
	if created {
		metrics.RecordLoggerCreated(p.name, metrics.ResultCreated)
	} else {
		metrics.RecordLoggerCreated(p.name, metrics.ResultReused)
	}
	return l
}

// Lookup returns the live logger registered for category.
func (p *Provider) Lookup(category string) (*CategoryLogger, bool) {
	return p.registry.Lookup(category)
}

// ReadRecent returns up to count of the newest entries of the live logger
// registered for category, most recent last. It reports false when no such
// logger exists or its sink does not retain entries.
func (p *Provider) ReadRecent(category string, count int) ([]models.LogEntry, bool) {
	l, ok := p.registry.Lookup(category)
	if !ok {
		metrics.RecordBufferRead(p.name, false, 0)
		return nil, false
	}
	reader, ok := l.sink.(RecentReader)
	if !ok {
		metrics.RecordBufferRead(p.name, false, 0)
		return nil, false
	}
	entries := reader.Recent(count)
	metrics.RecordBufferRead(p.name, true, len(entries))
	return entries, true
}

// LoggerInfo describes one registered logger.
type LoggerInfo struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Sink     string `json:"sink"`
	Aliased  bool   `json:"aliased"`
	Buffered *int   `json:"buffered,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
}

// Loggers lists the live loggers, sorted by category.
func (p *Provider) Loggers() []LoggerInfo {
	var out []LoggerInfo
	p.registry.Range(func(l *CategoryLogger) bool {
		info := LoggerInfo{
			Category: l.category,
			Name:     l.name,
			Sink:     p.name,
			Aliased:  l.aliased,
		}
		if reader, ok := l.sink.(RecentReader); ok {
			n, c := reader.Len(), reader.Cap()
			info.Buffered, info.Capacity = &n, &c
		}
		out = append(out, info)
		return true
	})
	return out
}

// Registry exposes the provider's logger registry.
func (p *Provider) Registry() *Registry { return p.registry }
