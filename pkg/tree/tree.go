// Package tree implements a generic tree whose nodes live in an arena owned by
// the Tree value.
//
// Each node holds a value and an ordered mapping from keys to child nodes.
// Nodes refer to their parent through a NodeID handle into the arena, never
// through a pointer, so a parent owns its children and the upward link is
// lookup only.
package tree

import (
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/timelinekit/timelinekit/pkg/constants"
)

// NodeID is a handle to a node in a Tree. It is only meaningful for the tree
// that issued it and becomes invalid once the node is detached.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

type node[K comparable, T any] struct {
	data     T
	parent   NodeID
	key      K
	children *orderedmap.OrderedMap[K, NodeID]
	used     bool
}

// Tree is a rooted tree of T values with K-keyed children.
// A Tree is not safe for concurrent mutation.
type Tree[K comparable, T any] struct {
	nodes []node[K, T]
	free  []NodeID
	root  NodeID
	size  int
}

// New creates a single-node tree holding data.
func New[K comparable, T any](data T) (*Tree[K, T], error) {
	if isNil(data) {
		return nil, fmt.Errorf("tree root: %w", constants.ErrNilValue)
	}

	t := &Tree[K, T]{root: NoNode}
	t.root = t.alloc(data, NoNode)
	return t, nil
}

// Root returns the handle of the root node.
func (t *Tree[K, T]) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, T]) Len() int {
	return t.size
}

// Value returns the value held at id.
func (t *Tree[K, T]) Value(id NodeID) T {
	return t.mustNode(id).data
}

// SetValue replaces the value held at id.
func (t *Tree[K, T]) SetValue(id NodeID, data T) error {
	n := t.mustNode(id)
	if isNil(data) {
		return constants.ErrNilValue
	}
	n.data = data
	return nil
}

// Swap exchanges the values held at a and b. The shape of the tree is unchanged.
func (t *Tree[K, T]) Swap(a, b NodeID) {
	na, nb := t.mustNode(a), t.mustNode(b)
	na.data, nb.data = nb.data, na.data
}

// Parent returns the parent of id, or false for the root.
func (t *Tree[K, T]) Parent(id NodeID) (NodeID, bool) {
	p := t.mustNode(id).parent
	return p, p != NoNode
}

// Key returns the key id is stored under in its parent, or false for the root.
func (t *Tree[K, T]) Key(id NodeID) (K, bool) {
	n := t.mustNode(id)
	if n.parent == NoNode {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Child returns the child of id stored under k.
func (t *Tree[K, T]) Child(id NodeID, k K) (NodeID, bool) {
	return t.mustNode(id).children.Get(k)
}

// Children returns the children of id in insertion order.
func (t *Tree[K, T]) Children(id NodeID) []NodeID {
	n := t.mustNode(id)
	out := make([]NodeID, 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Attach adds a child holding data under key k of parent.
func (t *Tree[K, T]) Attach(parent NodeID, k K, data T) (NodeID, error) {
	p := t.mustNode(parent)
	if isNil(data) {
		return NoNode, constants.ErrNilValue
	}
	if _, ok := p.children.Get(k); ok {
		return NoNode, fmt.Errorf("attach %v: %w", k, constants.ErrKeyInUse)
	}

	id := t.alloc(data, parent)
	// alloc may grow the arena, so p is stale from here on.
	t.nodes[id].key = k
	t.nodes[parent].children.Set(k, id)
	return id, nil
}

// Detach removes id and its whole subtree. The root cannot be detached.
func (t *Tree[K, T]) Detach(id NodeID) error {
	n := t.mustNode(id)
	if n.parent == NoNode {
		return constants.ErrDetachRoot
	}

	t.nodes[n.parent].children.Delete(n.key)
	t.release(id)
	return nil
}

// IsLeaf reports whether id has no children.
func (t *Tree[K, T]) IsLeaf(id NodeID) bool {
	return t.mustNode(id).children.Len() == 0
}

// Depth returns 1 for a leaf, otherwise one more than the deepest child.
func (t *Tree[K, T]) Depth(id NodeID) int {
	deepest := 0
	for _, c := range t.Children(id) {
		if d := t.Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits id and its descendants in pre-order until fn returns false.
func (t *Tree[K, T]) Walk(id NodeID, fn func(NodeID) bool) bool {
	if !fn(id) {
		return false
	}
	for _, c := range t.Children(id) {
		if !t.Walk(c, fn) {
			return false
		}
	}
	return true
}

// Format renders the subtree at id as value->(child1,child2,...).
// Leaves render as their value alone.
func (t *Tree[K, T]) Format(id NodeID) string {
	var sb strings.Builder
	t.format(&sb, id)
	return sb.String()
}

func (t *Tree[K, T]) String() string {
	return t.Format(t.root)
}

func (t *Tree[K, T]) format(sb *strings.Builder, id NodeID) {
	n := t.mustNode(id)
	fmt.Fprint(sb, n.data)
	if n.children.Len() == 0 {
		return
	}

	sb.WriteString("->(")
	first := true
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		t.format(sb, pair.Value)
	}
	sb.WriteByte(')')
}

func (t *Tree[K, T]) alloc(data T, parent NodeID) NodeID {
	n := node[K, T]{
		data:     data,
		parent:   parent,
		children: orderedmap.New[K, NodeID](),
		used:     true,
	}
	t.size++

	if l := len(t.free); l > 0 {
		id := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[id] = n
		return id
	}

	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree[K, T]) release(id NodeID) {
	for _, c := range t.Children(id) {
		t.release(c)
	}
	t.nodes[id] = node[K, T]{parent: NoNode}
	t.free = append(t.free, id)
	t.size--
}

func (t *Tree[K, T]) mustNode(id NodeID) *node[K, T] {
	if id < 0 || int(id) >= len(t.nodes) || !t.nodes[id].used {
		panic(fmt.Sprintf("tree: invalid node %d", id))
	}
	return &t.nodes[id]
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
