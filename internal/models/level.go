// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package models

import (
	"fmt"
	"strings"
)

// Level is the severity of a log entry. Levels are ordered:
// Trace < Debug < Info < Warning < Error < Critical < None.
//
// None is a sentinel meaning "disabled"; nothing is ever written at None.
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
	LevelNone
)

var levelNames = [...]string{
	LevelTrace:    "trace",
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarning:  "warning",
	LevelError:    "error",
	LevelCritical: "critical",
	LevelNone:     "none",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelNone
}

// String returns the lower-case level name.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("level(%d)", int8(l))
	}
	return levelNames[l]
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive and
// accepts the common aliases used by other logging stacks.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "information":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	case "none", "off", "disabled":
		return LevelNone, nil
	default:
		return LevelNone, fmt.Errorf("unknown log level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid log level %d", int8(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
