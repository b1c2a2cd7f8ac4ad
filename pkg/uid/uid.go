// Package uid generates identifiers that are unique within one process.
//
// Identifiers are a prefix followed by a counter that starts at zero when the
// process starts, so they are not unique across restarts.
package uid

import (
	"strconv"
	"sync"

	"go.uber.org/atomic"
)

// DefaultPrefix is used when no prefix is given.
const DefaultPrefix = "id"

// Generator hands out increasing sequence numbers. It is safe for concurrent
// use. The zero value is ready to use and must not be copied.
type Generator struct {
	counter atomic.Uint64
}

// NewGenerator returns a generator whose first sequence number is 1.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next increments the counter and returns the new value.
func (g *Generator) Next() uint64 {
	return g.counter.Inc()
}

// Generate returns prefix followed by the next sequence number.
func (g *Generator) Generate(prefix string) string {
	return Format(prefix, g.Next())
}

// Format renders a sequence number the way Generate does.
func Format(prefix string, seq uint64) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + strconv.FormatUint(seq, 10)
}

var defaultGenerator = sync.OnceValue(NewGenerator)

// Default returns the process-wide generator, creating it on first use.
func Default() *Generator {
	return defaultGenerator()
}

// UniqueID returns the next identifier from the process-wide generator.
// Only the first prefix is used; none means DefaultPrefix.
func UniqueID(prefix ...string) string {
	p := ""
	if len(prefix) > 0 {
		p = prefix[0]
	}
	return Default().Generate(p)
}
