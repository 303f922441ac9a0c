// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package models

import (
	"errors"
	"fmt"
	"time"
)

// maxExceptionDepth bounds how many wrapped errors are captured in an ExceptionInfo chain.
const maxExceptionDepth = 8

// EventID identifies a log event. Name is optional.
type EventID struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// String returns the name when present, otherwise the numeric ID.
func (e EventID) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%d", e.ID)
}

// ExceptionInfo is the captured, immutable form of an error attached to a log entry.
// It is data: once captured it no longer refers to the original error value.
type ExceptionInfo struct {
	// Type is the Go type of the error, e.g. "*fs.PathError".
	Type string `json:"type"`

	// Message is err.Error().
	Message string `json:"message"`

	// Stack is the verbose (%+v) rendering when it adds detail beyond Message.
	Stack string `json:"stack,omitempty"`

	// Inner is the error returned by errors.Unwrap, if any.
	Inner *ExceptionInfo `json:"inner,omitempty"`
}

// NewExceptionInfo captures err. A nil error yields nil.
func NewExceptionInfo(err error) *ExceptionInfo {
	return newExceptionInfo(err, 0)
}

func newExceptionInfo(err error, depth int) *ExceptionInfo {
	if err == nil || depth >= maxExceptionDepth {
		return nil
	}

	info := &ExceptionInfo{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}
	if verbose := fmt.Sprintf("%+v", err); verbose != info.Message {
		info.Stack = verbose
	}
	info.Inner = newExceptionInfo(errors.Unwrap(err), depth+1)
	return info
}

// Error lets an ExceptionInfo be logged or compared like an error.
func (e *ExceptionInfo) Error() string {
	return e.Message
}

// LogEntry is a single log event as retained by the in-memory sink.
// Entries are never modified after they are written.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Category  string         `json:"category"`
	EventID   EventID        `json:"event_id"`
	Message   string         `json:"message,omitempty"`
	Scope     string         `json:"scope,omitempty"`
	Exception *ExceptionInfo `json:"exception,omitempty"`
}
