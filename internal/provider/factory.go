// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"context"
	"errors"

	"github.com/tomtom215/logroute/internal/models"
)

// Factory fans a category out to several providers, the way a host wires
// more than one logging backend.
type Factory struct {
	providers []*Provider
}

// NewFactory creates a factory over providers. Nil providers are ignored.
func NewFactory(providers ...*Provider) *Factory {
	f := &Factory{}
	for _, p := range providers {
		if p != nil {
			f.providers = append(f.providers, p)
		}
	}
	return f
}

// Providers returns the providers in registration order.
func (f *Factory) Providers() []*Provider {
	return append([]*Provider(nil), f.providers...)
}

// Provider returns the provider with the given name.
func (f *Factory) Provider(name string) (*Provider, bool) {
	for _, p := range f.providers {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// CreateLogger asks every provider for category. Providers that reject it are
// left out; when all reject, Nop is returned.
func (f *Factory) CreateLogger(category string) Logger {
	var loggers []Logger
	for _, p := range f.providers {
		if l := p.CreateLogger(category); l != Nop {
			loggers = append(loggers, l)
		}
	}

	switch len(loggers) {
	case 0:
		return Nop
	case 1:
		return loggers[0]
	default:
		return &multiLogger{category: category, loggers: loggers}
	}
}

type multiLogger struct {
	category string
	loggers  []Logger
}

// Name returns the requested category; the parts may record under different names.
func (m *multiLogger) Name() string { return m.category }

func (m *multiLogger) IsEnabled(level models.Level) bool {
	for _, l := range m.loggers {
		if l.IsEnabled(level) {
			return true
		}
	}
	return false
}

func (m *multiLogger) BeginScope(ctx context.Context, state any) context.Context {
	return BeginScope(ctx, state)
}

func (m *multiLogger) Log(ctx context.Context, level models.Level, eventID models.EventID, state any, err error, format Formatter) error {
	var errs []error
	for _, l := range m.loggers {
		if lerr := l.Log(ctx, level, eventID, state, err, format); lerr != nil {
			errs = append(errs, lerr)
		}
	}
	return errors.Join(errs...)
}
