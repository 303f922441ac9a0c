// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/logroute/internal/validation"
)

// LoggersRequest holds the query of GET /loggers.
type LoggersRequest struct {
	Pattern string `validate:"omitempty,category_pattern"`
}

// LogsRequest holds the path and query of GET /logs/{category}.
type LogsRequest struct {
	Category string `validate:"required,category_pattern"`
	Count    int    `validate:"min=0"`
}

// ResolveRequest holds the path of GET /resolve/{category}.
type ResolveRequest struct {
	Category string `validate:"required,category_pattern"`
}

// ValueRequest is the body of POST and PUT /values.
type ValueRequest struct {
	Value string `json:"value" validate:"required,max=1024"`
}

// ValueIDRequest holds the {id} path parameter of the values resource.
type ValueIDRequest struct {
	ID int `validate:"min=0"`
}

// validateRequest validates v and writes the 400 response on failure.
// It reports whether the request may proceed.
func validateRequest(rw *ResponseWriter, v interface{}) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// parseIntParam parses an optional integer query parameter. A missing value
// yields def; anything that is not an integer is an error.
func parseIntParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
