// Package collection provides an ordered, keyed container of entities.
package collection

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Collection keeps values in insertion order, addressable by key.
// The key of a value added with Add is computed by the collection's key function.
type Collection[K comparable, V any] struct {
	items *orderedmap.OrderedMap[K, V]
	key   func(V) K
}

// New returns an empty collection that keys values with key.
func New[K comparable, V any](key func(V) K) *Collection[K, V] {
	return &Collection[K, V]{
		items: orderedmap.New[K, V](),
		key:   key,
	}
}

// Add stores v under its computed key and returns that key.
// A value with the same key is replaced in place.
func (c *Collection[K, V]) Add(v V) K {
	k := c.key(v)
	c.items.Set(k, v)
	return k
}

// Set stores v under k. An existing key keeps its position.
func (c *Collection[K, V]) Set(k K, v V) {
	c.items.Set(k, v)
}

func (c *Collection[K, V]) Get(k K) (V, bool) {
	return c.items.Get(k)
}

func (c *Collection[K, V]) Has(k K) bool {
	_, ok := c.items.Get(k)
	return ok
}

// Remove deletes k and returns the value it held.
func (c *Collection[K, V]) Remove(k K) (V, bool) {
	return c.items.Delete(k)
}

func (c *Collection[K, V]) Len() int {
	return c.items.Len()
}

func (c *Collection[K, V]) Keys() []K {
	out := make([]K, 0, c.items.Len())
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func (c *Collection[K, V]) Values() []V {
	out := make([]V, 0, c.items.Len())
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// All iterates over the collection in insertion order.
func (c *Collection[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clear removes every value.
func (c *Collection[K, V]) Clear() {
	c.items = orderedmap.New[K, V]()
}
