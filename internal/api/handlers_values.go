// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/logroute/internal/logging"
	"github.com/tomtom215/logroute/internal/models"
	"github.com/tomtom215/logroute/internal/provider"
)

// Values resource event IDs.
var (
	EventListValues   = models.EventID{ID: 2000, Name: "ListValues"}
	EventGetValue     = models.EventID{ID: 2001, Name: "GetValue"}
	EventInsertValue  = models.EventID{ID: 2002, Name: "InsertValue"}
	EventUpdateValue  = models.EventID{ID: 2003, Name: "UpdateValue"}
	EventDeleteValue  = models.EventID{ID: 2004, Name: "DeleteValue"}
	EventInvalidValue = models.EventID{ID: 2100, Name: "InvalidValue"}
	EventInsertFailed = models.EventID{ID: 2101, Name: "InsertFailed"}
)

// ErrValueRejected is attached to the critical entry written by every insert.
var ErrValueRejected = errors.New("value store is read-only")

// maxValueBody bounds the request body of POST and PUT.
const maxValueBody = 64 << 10

// ValueResponse is the payload of the single-value endpoints.
type ValueResponse struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

func (h *Handler) logValues(r *http.Request, level models.Level, event models.EventID, err error, format string, args ...any) {
	if !h.values.IsEnabled(level) {
		return
	}
	msg := provider.Message{Format: format, Args: args}
	if lerr := h.values.Log(r.Context(), level, event, msg, err, provider.SprintfFormatter); lerr != nil {
		logging.CtxErr(r.Context(), lerr).Str("category", CategoryValues).Msg("Category log write failed")
	}
}

// valueID parses and validates the {id} path parameter.
func valueID(rw *ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		rw.BadRequest("id must be an integer")
		return 0, false
	}
	req := ValueIDRequest{ID: id}
	if !validateRequest(rw, &req) {
		return 0, false
	}
	return id, true
}

// decodeValue reads a ValueRequest body. A missing or empty body yields the
// zero request so validation reports the missing value.
func decodeValue(r *http.Request) (ValueRequest, error) {
	var req ValueRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxValueBody)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// ListValues returns the sample values.
//
// GET /api/v1/values
func (h *Handler) ListValues(w http.ResponseWriter, r *http.Request) {
	h.logValues(r, models.LevelInfo, EventListValues, nil, "Listing values")
	values := []string{"value1", "value2"}
	NewResponseWriter(w, r).List(values, len(values))
}

// GetValue returns one sample value. Asking for id 0 is logged as an error.
//
// GET /api/v1/values/{id}
func (h *Handler) GetValue(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := valueID(rw, r)
	if !ok {
		return
	}

	h.logValues(r, models.LevelInfo, EventGetValue, nil, "Getting value %d", id)
	if id == 0 {
		h.logValues(r, models.LevelError, EventInvalidValue, nil, "Value %d requested, ids start at 1", id)
	}
	rw.Success(ValueResponse{ID: id, Value: "value"})
}

// CreateValue accepts a value and logs a critical entry with
// ErrValueRejected attached, exercising exception capture end to end.
//
// POST /api/v1/values
func (h *Handler) CreateValue(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := decodeValue(r)
	if err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if !validateRequest(rw, &req) {
		h.logValues(r, models.LevelError, EventInvalidValue, nil, "Insert without a value")
		return
	}

	h.logValues(r, models.LevelInfo, EventInsertValue, nil, "Inserting value %q", req.Value)
	h.logValues(r, models.LevelCritical, EventInsertFailed,
		fmt.Errorf("insert %q: %w", req.Value, ErrValueRejected),
		"Insert of value %q failed", req.Value)

	rw.Created(ValueResponse{Value: req.Value})
}

// UpdateValue replaces a value. A missing value is logged as an error and
// rejected.
//
// PUT /api/v1/values/{id}
func (h *Handler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := valueID(rw, r)
	if !ok {
		return
	}

	h.logValues(r, models.LevelInfo, EventUpdateValue, nil, "Updating value %d", id)

	req, err := decodeValue(r)
	if err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if !validateRequest(rw, &req) {
		h.logValues(r, models.LevelError, EventInvalidValue, nil, "Update of value %d without a value", id)
		return
	}
	rw.Success(ValueResponse{ID: id, Value: req.Value})
}

// DeleteValue removes a value.
//
// DELETE /api/v1/values/{id}
func (h *Handler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := valueID(rw, r)
	if !ok {
		return
	}

	h.logValues(r, models.LevelInfo, EventDeleteValue, nil, "Deleting value %d", id)
	rw.NoContent()
}
