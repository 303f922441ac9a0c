// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package models

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical, LevelNone}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Information", LevelInfo},
		{"warn", LevelWarning},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"fatal", LevelCritical},
		{" none ", LevelNone},
		{"off", LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(LevelWarning)
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(data))

	var l Level
	require.NoError(t, json.Unmarshal([]byte(`"critical"`), &l))
	assert.Equal(t, LevelCritical, l)

	assert.Error(t, json.Unmarshal([]byte(`"loud"`), &l))
	assert.Equal(t, "level(42)", Level(42).String())
}

func TestNewExceptionInfo(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewExceptionInfo(nil))

	base := &fs.PathError{Op: "open", Path: "/tmp/x", Err: fs.ErrNotExist}
	wrapped := fmt.Errorf("loading settings: %w", base)

	info := NewExceptionInfo(wrapped)
	require.NotNil(t, info)
	assert.Equal(t, "*fmt.wrapError", info.Type)
	assert.Equal(t, wrapped.Error(), info.Message)
	require.NotNil(t, info.Inner)
	assert.Equal(t, "*fs.PathError", info.Inner.Type)
	require.NotNil(t, info.Inner.Inner)
	assert.Equal(t, fs.ErrNotExist.Error(), info.Inner.Inner.Message)

	var asErr error = info
	assert.EqualError(t, asErr, wrapped.Error())
	assert.False(t, errors.Is(asErr, fs.ErrNotExist), "captured info must not keep the original chain alive")
}

type loopErr struct{}

func (loopErr) Error() string   { return "loop" }
func (e loopErr) Unwrap() error { return e }

func TestNewExceptionInfoDepthCap(t *testing.T) {
	t.Parallel()

	info := NewExceptionInfo(loopErr{})
	depth := 0
	for cur := info; cur != nil; cur = cur.Inner {
		depth++
	}
	assert.Equal(t, maxExceptionDepth, depth)
}

func TestEventIDString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", EventID{ID: 42}.String())
	assert.Equal(t, "Startup", EventID{ID: 1, Name: "Startup"}.String())
}
