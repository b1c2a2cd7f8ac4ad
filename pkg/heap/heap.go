// Package heap implements a binary heap on top of [tree.Tree].
//
// The ordering policy is a SwapFunc supplied at construction, so one
// implementation of insertion and removal serves both directions.
package heap

import (
	"cmp"
	"fmt"
	"math/bits"

	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/tree"
)

// Side keys the two children of a heap node.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// OrderedContainer is a container that keeps its values in a policy-defined order.
type OrderedContainer[T any] interface {
	Add(v T) error
	Remove(v T) error
	Peek() (T, bool)
	Len() int
}

// SwapFunc reports whether candidate must move above current.
// It must be pure.
type SwapFunc[T any] func(current, candidate T) bool

// EqualFunc reports whether a and b are the same value.
type EqualFunc[T any] func(a, b T) bool

// Heap is a complete binary tree in which no child should swap with its parent.
//
// Remove of a value that is not present returns an error wrapping
// constants.ErrNotFound and leaves the heap unchanged.
type Heap[T any] struct {
	shouldSwap SwapFunc[T]
	equal      EqualFunc[T]
	tree       *tree.Tree[Side, T]
}

var _ OrderedContainer[int] = (*Heap[int])(nil)

// New returns an empty heap ordered by shouldSwap. Remove matches values with ==.
func New[T comparable](shouldSwap SwapFunc[T]) *Heap[T] {
	return NewFunc(shouldSwap, func(a, b T) bool { return a == b })
}

// NewFunc returns an empty heap ordered by shouldSwap whose Remove matches
// values with equal.
func NewFunc[T any](shouldSwap SwapFunc[T], equal EqualFunc[T]) *Heap[T] {
	return &Heap[T]{shouldSwap: shouldSwap, equal: equal}
}

// NewMin returns an empty heap with the smallest value at the root.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return NewFunc(func(current, candidate T) bool {
		return cmp.Less(candidate, current)
	}, orderedEqual[T])
}

// NewMax returns an empty heap with the largest value at the root.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return NewFunc(func(current, candidate T) bool {
		return cmp.Less(current, candidate)
	}, orderedEqual[T])
}

// orderedEqual is == except that NaN equals NaN, so a NaN can be removed.
func orderedEqual[T cmp.Ordered](a, b T) bool {
	return cmp.Compare(a, b) == 0
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int {
	if h.tree == nil {
		return 0
	}
	return h.tree.Len()
}

// Peek returns the root value.
func (h *Heap[T]) Peek() (T, bool) {
	if h.tree == nil {
		var zero T
		return zero, false
	}
	return h.tree.Value(h.tree.Root()), true
}

// Add inserts v at the next free slot and sifts it up.
func (h *Heap[T]) Add(v T) error {
	if h.tree == nil {
		t, err := tree.New[Side](v)
		if err != nil {
			return err
		}
		h.tree = t
		return nil
	}

	pos := h.tree.Len() + 1
	side := Side(pos & 1)
	id, err := h.tree.Attach(h.node(pos/2), side, v)
	if err != nil {
		return err
	}

	h.siftUp(id)
	return nil
}

// Remove deletes the first value equal to v, in level order.
func (h *Heap[T]) Remove(v T) error {
	id, ok := h.find(v)
	if !ok {
		return fmt.Errorf("heap remove %v: %w", v, constants.ErrNotFound)
	}
	h.removeNode(id)
	return nil
}

// Pop removes and returns the root value.
func (h *Heap[T]) Pop() (T, error) {
	v, ok := h.Peek()
	if !ok {
		return v, constants.ErrEmpty
	}
	h.removeNode(h.tree.Root())
	return v, nil
}

// Values returns the heap's values in level order.
func (h *Heap[T]) Values() []T {
	if h.tree == nil {
		return nil
	}

	out := make([]T, 0, h.tree.Len())
	queue := []tree.NodeID{h.tree.Root()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		out = append(out, h.tree.Value(id))
		queue = append(queue, h.tree.Children(id)...)
	}
	return out
}

// Depth returns the depth of the underlying tree, 0 when empty.
func (h *Heap[T]) Depth() int {
	if h.tree == nil {
		return 0
	}
	return h.tree.Depth(h.tree.Root())
}

// Tree exposes the underlying tree for reading. It is nil when the heap is empty.
func (h *Heap[T]) Tree() *tree.Tree[Side, T] {
	return h.tree
}

func (h *Heap[T]) String() string {
	if h.tree == nil {
		return ""
	}
	return h.tree.String()
}

// node returns the node at 1-based level-order position pos.
// The bits of pos after the leading one spell the path from the root.
func (h *Heap[T]) node(pos int) tree.NodeID {
	id := h.tree.Root()
	for shift := bits.Len(uint(pos)) - 2; shift >= 0; shift-- {
		next, ok := h.tree.Child(id, Side((pos>>shift)&1))
		if !ok {
			panic(fmt.Sprintf("heap: no node at position %d", pos))
		}
		id = next
	}
	return id
}

func (h *Heap[T]) find(v T) (tree.NodeID, bool) {
	if h.tree == nil {
		return tree.NoNode, false
	}

	queue := []tree.NodeID{h.tree.Root()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if h.equal(h.tree.Value(id), v) {
			return id, true
		}
		queue = append(queue, h.tree.Children(id)...)
	}
	return tree.NoNode, false
}

func (h *Heap[T]) removeNode(id tree.NodeID) {
	if h.tree.Len() == 1 {
		h.tree = nil
		return
	}

	last := h.node(h.tree.Len())
	if last == id {
		_ = h.tree.Detach(last)
		return
	}

	h.tree.Swap(id, last)
	_ = h.tree.Detach(last)

	if p, ok := h.tree.Parent(id); ok && h.shouldSwap(h.tree.Value(p), h.tree.Value(id)) {
		h.siftUp(id)
		return
	}
	h.siftDown(id)
}

func (h *Heap[T]) siftUp(id tree.NodeID) {
	for {
		p, ok := h.tree.Parent(id)
		if !ok || !h.shouldSwap(h.tree.Value(p), h.tree.Value(id)) {
			return
		}
		h.tree.Swap(p, id)
		id = p
	}
}

func (h *Heap[T]) siftDown(id tree.NodeID) {
	for {
		best := id
		for _, c := range h.tree.Children(id) {
			if h.shouldSwap(h.tree.Value(best), h.tree.Value(c)) {
				best = c
			}
		}
		if best == id {
			return
		}
		h.tree.Swap(id, best)
		id = best
	}
}
