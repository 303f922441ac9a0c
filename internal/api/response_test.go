// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/logroute/internal/logging"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return response
}

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	r = r.WithContext(logging.ContextWithRequestID(r.Context(), "req-1"))

	NewResponseWriter(w, r).Success(map[string]string{"message": "hello"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	response := decodeResponse(t, w)
	if !response.Success {
		t.Error("Expected Success to be true")
	}
	if response.Error != nil {
		t.Error("Expected Error to be nil")
	}
	if response.Meta == nil || response.Meta.Timestamp.IsZero() {
		t.Fatal("Expected Meta with a timestamp")
	}
	if response.Meta.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", response.Meta.RequestID)
	}
	if response.Meta.Count != nil {
		t.Errorf("Count = %v, want nil for a single object", *response.Meta.Count)
	}
}

func TestResponseWriter_List(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	NewResponseWriter(w, r).List([]string{"a", "b"}, 2)

	response := decodeResponse(t, w)
	if response.Meta == nil || response.Meta.Count == nil || *response.Meta.Count != 2 {
		t.Fatalf("Meta = %+v, want count 2", response.Meta)
	}
	items, ok := response.Data.([]interface{})
	if !ok || len(items) != 2 {
		t.Errorf("Data = %#v, want two items", response.Data)
	}
}

func TestResponseWriter_Created(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)

	NewResponseWriter(w, r).Created(map[string]int{"id": 123})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if !decodeResponse(t, w).Success {
		t.Error("Expected Success to be true")
	}
}

func TestResponseWriter_NoContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/test", nil)

	NewResponseWriter(w, r).NoContent()

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(*ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("missing") }, http.StatusNotFound, ErrCodeNotFound},
		{"method not allowed", func(rw *ResponseWriter) { rw.MethodNotAllowed() }, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"too many requests", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal error", func(rw *ResponseWriter) { rw.InternalError("boom") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"service unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("down") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("invalid", map[string]string{"f": "x"}) }, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			r = r.WithContext(logging.ContextWithRequestID(r.Context(), "req-err"))

			tt.write(NewResponseWriter(w, r))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			response := decodeResponse(t, w)
			if response.Success {
				t.Error("Expected Success to be false")
			}
			if response.Error == nil {
				t.Fatal("Expected Error to be set")
			}
			if response.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", response.Error.Code, tt.wantCode)
			}
			if response.Error.RequestID != "req-err" {
				t.Errorf("error request_id = %q, want req-err", response.Error.RequestID)
			}
			if response.Data != nil {
				t.Errorf("Data = %v, want nil", response.Data)
			}
		})
	}
}

func TestResponseWriter_ErrorWithDetails(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	NewResponseWriter(w, r).ErrorWithDetails(http.StatusConflict, "CONFLICT", "conflict", map[string]string{"field": "value"})

	response := decodeResponse(t, w)
	details, ok := response.Error.Details.(map[string]interface{})
	if !ok || details["field"] != "value" {
		t.Errorf("Details = %#v", response.Error.Details)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	WriteBadRequest(w, httptest.NewRequest(http.MethodGet, "/", nil), "bad")
	if w.Code != http.StatusBadRequest {
		t.Errorf("WriteBadRequest status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	WriteNotFound(w, httptest.NewRequest(http.MethodGet, "/", nil), "missing")
	if w.Code != http.StatusNotFound {
		t.Errorf("WriteNotFound status = %d", w.Code)
	}
}

func TestResponseWriter_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NewResponseWriter(w, httptest.NewRequest(http.MethodGet, "/", nil)).Success(nil)

	if got := w.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
}
