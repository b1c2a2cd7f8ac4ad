package collection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name  string
	count int
}

func byName(i item) string { return i.name }

func TestCollection_order(t *testing.T) {
	t.Parallel()

	c := New(byName)
	for _, n := range []string{"c", "a", "b"} {
		assert.Equal(t, n, c.Add(item{name: n}))
	}
	assert.Equal(t, []string{"c", "a", "b"}, c.Keys())

	// Replacing keeps the position.
	c.Add(item{name: "a", count: 2})
	assert.Equal(t, []string{"c", "a", "b"}, c.Keys())
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got.count)

	removed, ok := c.Remove("c")
	require.True(t, ok)
	assert.Equal(t, "c", removed.name)
	assert.False(t, c.Has("c"))
	assert.Equal(t, 2, c.Len())

	_, ok = c.Remove("missing")
	assert.False(t, ok)
}

func TestCollection_setAndIterate(t *testing.T) {
	t.Parallel()

	c := New(byName)
	c.Set("custom", item{name: "x", count: 1})
	c.Add(item{name: "y", count: 2})

	var keys []string
	total := 0
	for k, v := range c.All() {
		keys = append(keys, k)
		total += v.count
	}
	assert.Equal(t, []string{"custom", "y"}, keys)
	assert.Equal(t, 3, total)

	for k := range c.All() {
		assert.Equal(t, "custom", k)
		break
	}

	names := make([]string, 0, c.Len())
	for _, v := range c.Values() {
		names = append(names, v.name)
	}
	assert.Equal(t, "x,y", strings.Join(names, ","))

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Values())
}
