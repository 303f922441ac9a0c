// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remapAliases() AliasMap {
	return AliasMap{
		{Pattern: "f*", Target: "Remap1"},
		{Pattern: "*name", Target: "Remap2"},
	}
}

func TestResolveRemap(t *testing.T) {
	t.Parallel()

	accepted := []string{"f*", "*name"}
	aliases := remapAliases()

	tests := []struct {
		name     string
		category string
		accepted bool
		want     string
	}{
		{"prefix alias", "fAbracadabra", true, "Remap1"},
		{"suffix alias", "RoundNAmE", true, "Remap2"},
		{"rejected", "Abracadabra", false, ""},
		{"first alias wins", "fname", true, "Remap1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, name := Resolve(tt.category, accepted, aliases)
			assert.Equal(t, tt.accepted, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestResolveEmptySettingsAcceptsEverything(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "Anything", "Microsoft.Hosting.Lifetime"} {
		ok, name := Resolve(s, nil, nil)
		assert.True(t, ok)
		assert.Equal(t, s, name)
	}
}

func TestResolveAliasAloneAdmits(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"Orders"}, AliasMap{{Pattern: "Billing.*", Target: "Money"}})

	res := r.Resolve("Billing.Invoices")
	assert.True(t, res.Accepted)
	assert.Equal(t, "Money", res.Name)
	assert.True(t, res.Aliased)
	assert.Equal(t, None, res.Kind)
	assert.Equal(t, StartsWith, res.AliasKind)
	assert.Equal(t, "Billing.*", res.AliasPattern)
}

func TestResolveAcceptedWithoutAlias(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"Shipping", "*Service*"}, remapAliases())

	res := r.Resolve("OrderServiceHost")
	require.True(t, res.Accepted)
	assert.Equal(t, "OrderServiceHost", res.Name)
	assert.False(t, res.Aliased)
	assert.Equal(t, Contains, res.Kind)
	assert.Equal(t, "*Service*", res.Pattern)
}

func TestResolveOnlyAcceptedListAcceptsWildcard(t *testing.T) {
	t.Parallel()

	ok, name := Resolve("Whatever", []string{"*"}, nil)
	assert.True(t, ok)
	assert.Equal(t, "Whatever", name)
}

func TestResolveFirstMatchInListOrder(t *testing.T) {
	t.Parallel()

	// An exact alias later in the list does not beat an earlier wildcard.
	aliases := AliasMap{
		{Pattern: "*", Target: "Everything"},
		{Pattern: "Orders", Target: "OrdersExact"},
	}
	ok, name := Resolve("Orders", nil, aliases)
	assert.True(t, ok)
	assert.Equal(t, "Everything", name)
}

func TestResolveTrimsPatterns(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"  Orders  "}, AliasMap{{Pattern: " f* ", Target: "F"}})
	assert.True(t, r.Resolve("orders").Accepted)
	assert.Equal(t, "F", r.Resolve("foo").Name)
}

func TestResolverIsACopy(t *testing.T) {
	t.Parallel()

	accepted := []string{"Orders"}
	aliases := AliasMap{{Pattern: "Orders", Target: "A"}}
	r := NewResolver(accepted, aliases)

	accepted[0] = "Nothing"
	aliases[0].Target = "B"

	res := r.Resolve("Orders")
	assert.True(t, res.Accepted)
	assert.Equal(t, "A", res.Name)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := NewResolver([]string{"API.ORDERS"}, nil)
	res := r.Resolve("api.orders")
	assert.True(t, res.Accepted)
	assert.Equal(t, "api.orders", res.Name)
	assert.Equal(t, Exact, res.Kind)
}

func TestAliasMapSet(t *testing.T) {
	t.Parallel()

	var m AliasMap
	m.Set("f*", "One")
	m.Set("*name", "Two")
	m.Set("F*", "Three")

	require.Len(t, m, 2)
	assert.Equal(t, Alias{Pattern: "f*", Target: "Three"}, m[0])

	target, ok := m.Get("*NAME")
	assert.True(t, ok)
	assert.Equal(t, "Two", target)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	c := m.Clone()
	c[0].Target = "changed"
	assert.Equal(t, "Three", m[0].Target)
	assert.Nil(t, AliasMap(nil).Clone())
}

func TestParseAliases(t *testing.T) {
	t.Parallel()

	m, err := ParseAliases(" f*=Remap1 , *name = Remap2,, ")
	require.NoError(t, err)
	assert.Equal(t, remapAliases(), m)
	assert.Equal(t, "f*=Remap1,*name=Remap2", m.String())

	m, err = ParseAliases("")
	require.NoError(t, err)
	assert.Empty(t, m)

	for _, bad := range []string{"noequals", "=target", "pattern="} {
		_, err := ParseAliases(bad)
		assert.Error(t, err, bad)
	}
}
