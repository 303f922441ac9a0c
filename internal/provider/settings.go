// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tomtom215/logroute/internal/category"
	"github.com/tomtom215/logroute/internal/models"
	"github.com/tomtom215/logroute/internal/validation"
)

var (
	// ErrInvalidSettings wraps every settings validation failure.
	ErrInvalidSettings = errors.New("invalid logger settings")

	// ErrNilFormatter is returned by Log when an enabled call has no formatter.
	ErrNilFormatter = errors.New("nil log formatter")

	// ErrFormatterPanic wraps a panic recovered while composing an entry: in the
	// formatter, the caller's error or a scope value.
	ErrFormatterPanic = errors.New("log formatter panicked")
)

// FilterFunc decides whether a category (its effective name) logs at a level.
type FilterFunc func(category string, level models.Level) bool

// Settings configures one provider. NewProvider takes a deep copy; later
// changes to the caller's value have no effect.
type Settings struct {
	// Capacity is the number of entries each in-memory logger retains.
	// Zero selects memlog.DefaultCapacity. Ignored by non-buffering sinks.
	Capacity int `validate:"gte=0,lte=1048576"`

	// MinLevel drops everything below it. Nil enables every level except None.
	MinLevel *models.Level `validate:"omitempty,log_level"`

	// AcceptedCategoryNames are category patterns. Together with Aliases
	// empty, every category is accepted.
	AcceptedCategoryNames []string `validate:"dive,category_pattern"`

	// Aliases rename matching categories and also admit them.
	Aliases category.AliasMap `validate:"dive"`

	// IncludeScopes attaches the active scope trail to each entry.
	IncludeScopes bool

	// Filter is consulted after MinLevel when set.
	Filter FilterFunc
}

// Validate checks s and returns an error wrapping ErrInvalidSettings.
func (s *Settings) Validate() error {
	if verr := validation.ValidateStruct(s); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, verr.Error())
	}
	return nil
}

func (s *Settings) clone() Settings {
	out := *s
	if s.MinLevel != nil {
		lvl := *s.MinLevel
		out.MinLevel = &lvl
	}
	out.AcceptedCategoryNames = slices.Clone(s.AcceptedCategoryNames)
	out.Aliases = s.Aliases.Clone()
	return out
}

// enabled applies the level rules for a logger named name.
func (s *Settings) enabled(name string, level models.Level) bool {
	if level >= models.LevelNone || !level.Valid() {
		return false
	}
	if s.MinLevel != nil && level < *s.MinLevel {
		return false
	}
	if s.Filter != nil {
		return s.Filter(name, level)
	}
	return true
}

// LevelPtr is a convenience for filling Settings.MinLevel.
func LevelPtr(l models.Level) *models.Level {
	return &l
}
