// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package provider

import (
	"context"
	"fmt"
	"reflect"

	"github.com/valyala/bytebufferpool"
)

type scopeKey struct{}

// scopeNode is an immutable link in the scope chain; children point at parents.
type scopeNode struct {
	parent *scopeNode
	value  any
	depth  int
}

// BeginScope returns a child of ctx with state pushed as the innermost scope.
// The scope ends when the returned context is no longer used.
func BeginScope(ctx context.Context, state any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	parent, _ := ctx.Value(scopeKey{}).(*scopeNode)
	depth := 1
	if parent != nil {
		depth = parent.depth + 1
	}
	return context.WithValue(ctx, scopeKey{}, &scopeNode{parent: parent, value: state, depth: depth})
}

// ScopeValues returns the active scope values, outermost first.
func ScopeValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	node, _ := ctx.Value(scopeKey{}).(*scopeNode)
	if node == nil {
		return nil
	}
	values := make([]any, node.depth)
	for i := node.depth - 1; node != nil; i, node = i-1, node.parent {
		values[i] = node.value
	}
	return values
}

// RenderScopes renders the active scopes as "=> a => b |". Without scopes it
// returns "". Values are printed as fmt prints them, so a panicking String
// method shows up as fmt's %!v(PANIC=...) text.
func RenderScopes(ctx context.Context) string {
	return renderScopes(ctx, func(buf *bytebufferpool.ByteBuffer, v any) {
		_, _ = fmt.Fprint(buf, v)
	})
}

// renderScopesStrict is RenderScopes for the write path: a panic in a value's
// Error or String method reaches the caller.
func renderScopesStrict(ctx context.Context) string {
	return renderScopes(ctx, writeScopeValue)
}

func renderScopes(ctx context.Context, write func(*bytebufferpool.ByteBuffer, any)) string {
	values := ScopeValues(ctx)
	if len(values) == 0 {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, v := range values {
		if i == 0 {
			_, _ = buf.WriteString("=> ")
		} else {
			_, _ = buf.WriteString(" => ")
		}
		write(buf, v)
	}
	_, _ = buf.WriteString(" |")
	return buf.String()
}

// writeScopeValue prints v like fmt's %v but calls Error and String directly.
// Nil pointers print as <nil>, as fmt does.
func writeScopeValue(buf *bytebufferpool.ByteBuffer, v any) {
	switch s := v.(type) {
	case error:
		if isNilPointer(v) {
			_, _ = buf.WriteString("<nil>")
			return
		}
		_, _ = buf.WriteString(s.Error())
	case fmt.Stringer:
		if isNilPointer(v) {
			_, _ = buf.WriteString("<nil>")
			return
		}
		_, _ = buf.WriteString(s.String())
	default:
		_, _ = fmt.Fprint(buf, v)
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
