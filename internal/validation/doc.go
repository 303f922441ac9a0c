// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// metadata, so repeated validation of the same types is cheap. Two custom rules
// are registered on top of the built-in ones:
//
//	category_pattern   non-blank category pattern ("*", "Api.*", "*Handler", ...)
//	log_level          a defined models.Level, or a string ParseLevel accepts
//
// # Usage
//
//	type Settings struct {
//	    Capacity int      `validate:"gte=0"`
//	    Accepted []string `validate:"dive,category_pattern"`
//	}
//
//	if verr := validation.ValidateStruct(&s); verr != nil {
//	    return fmt.Errorf("%w: %v", ErrInvalidSettings, verr)
//	}
//
// HTTP handlers turn a *RequestValidationError into the VALIDATION_ERROR
// response body via ToAPIError.
//
// Field names in messages are the struct namespace (e.g. "Config.Memory.Capacity"),
// which keeps nested configuration errors unambiguous.
package validation
