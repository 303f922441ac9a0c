// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

/*
Package provider creates category loggers and routes their entries to sinks.

A Provider owns frozen Settings, a category.Resolver and a Registry. Asking it
for a logger resolves the category first:

	p, err := provider.NewMemoryProvider(provider.Settings{
	    Capacity:              256,
	    MinLevel:              provider.LevelPtr(models.LevelInfo),
	    AcceptedCategoryNames: []string{"Api.*"},
	    Aliases:               category.AliasMap{{Pattern: "*Controller", Target: "Web"}},
	    IncludeScopes:         true,
	})

	log := p.CreateLogger("Api.Orders")   // *CategoryLogger named "Api.Orders"
	web := p.CreateLogger("HomeController") // *CategoryLogger named "Web"
	nop := p.CreateLogger("Other")        // provider.Nop

Rejected categories get the shared Nop logger, which is never enabled.

# Writing

Loggers take a context for scopes, a level, an event ID, a state value, an
optional error and a Formatter. The helpers cover the common cases:

	ctx = log.BeginScope(ctx, "request 42")
	_ = provider.Infof(ctx, log, "order %d accepted", id)
	_ = provider.LogErr(ctx, log, models.LevelError, err, "charge failed")

Errors passed to Log are captured as models.ExceptionInfo data. Log itself
only fails for a nil formatter (ErrNilFormatter) or a panic while composing
the entry (ErrFormatterPanic), whether it comes from the formatter, the
error's Error method or a scope value's String method.

# Sinks

MemorySink keeps the newest entries of each logger in a memlog.Buffer; the
entries are read back with Provider.ReadRecent. ZerologSink hands entries to a
zerolog.Logger, prepending the scope trail to the message.

# Registry

The registry holds weak references keyed by the lower-cased requested
category. Loggers the application drops are garbage collected and their
entries removed; ReadRecent only sees live loggers. Keep the logger (and with
it the buffer) referenced for as long as its entries should stay readable.
*/
package provider
