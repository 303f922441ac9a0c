// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"runtime"
	"sort"
	"strings"
	"sync"
	"weak"
)

// Registry indexes live loggers by the lower-cased category they were
// requested with. It holds weak references only: a logger nobody else refers
// to is collected, and its entry is removed by a cleanup callback.
type Registry struct {
	mu        sync.Mutex
	entries   map[string]weak.Pointer[CategoryLogger]
	onCollect func(category string)
}

// NewRegistry creates an empty registry. onCollect, if non-nil, is called
// (from the runtime's cleanup goroutine) after an entry is evicted.
func NewRegistry(onCollect func(category string)) *Registry {
	return &Registry{
		entries:   make(map[string]weak.Pointer[CategoryLogger]),
		onCollect: onCollect,
	}
}

func registryKey(category string) string {
	return strings.ToLower(category)
}

type cleanupArg struct {
	key string
	wp  weak.Pointer[CategoryLogger]
}

// getOrCreate returns the live logger for category, or registers the one
// returned by create. The boolean is true when create was called.
func (r *Registry) getOrCreate(category string, create func() *CategoryLogger) (*CategoryLogger, bool) {
	key := registryKey(category)

	r.mu.Lock()
	defer r.mu.Unlock()

	if wp, ok := r.entries[key]; ok {
		if l := wp.Value(); l != nil {
			return l, false
		}
	}

	l := create()
	wp := weak.Make(l)
	r.entries[key] = wp
	runtime.AddCleanup(l, r.evict, cleanupArg{key: key, wp: wp})
	return l, true
}

// evict removes the entry unless it was already replaced by a newer logger.
func (r *Registry) evict(arg cleanupArg) {
	r.mu.Lock()
	current, ok := r.entries[arg.key]
	removed := ok && current == arg.wp
	if removed {
		delete(r.entries, arg.key)
	}
	r.mu.Unlock()

	if removed && r.onCollect != nil {
		r.onCollect(arg.key)
	}
}

// Lookup returns the live logger registered for category (case-insensitive).
func (r *Registry) Lookup(category string) (*CategoryLogger, bool) {
	r.mu.Lock()
	wp, ok := r.entries[registryKey(category)]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	l := wp.Value()
	return l, l != nil
}

// Len returns the number of entries, including any whose logger was
// collected but not yet evicted.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Range calls fn for each live logger in category order until fn returns false.
func (r *Registry) Range(fn func(l *CategoryLogger) bool) {
	for _, l := range r.live() {
		if !fn(l) {
			return
		}
	}
}

// Names returns the requested category names of all live loggers, sorted.
func (r *Registry) Names() []string {
	live := r.live()
	names := make([]string, len(live))
	for i, l := range live {
		names[i] = l.Category()
	}
	return names
}

// live takes strong references to every live logger, sorted by key.
func (r *Registry) live() []*CategoryLogger {
	r.mu.Lock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*CategoryLogger, 0, len(keys))
	for _, k := range keys {
		if l := r.entries[k].Value(); l != nil {
			out = append(out, l)
		}
	}
	r.mu.Unlock()
	return out
}
