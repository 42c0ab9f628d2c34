package node

import "github.com/mlev-art/radixart/pkg/arena"

// Leaf is the capacity-0 variant: it has no children and exists only to
// carry a value at the end of a key, together with whatever trailing key
// bytes remain uncompressed into an ancestor's prefix.
//
// A Leaf ordinarily carries a non-zero Value. The one exception is a root
// that is itself a Leaf: deleting its only key clears its value, and the
// root survives as that dead Leaf rather than being collapsed, since the
// root is never freed (see package tree). A non-root Leaf with a cleared value is instead collapsed
// out of the tree immediately by the delete cascade.
type Leaf struct {
	base
	value Value
}

var _ Node = (*Leaf)(nil)

// NewLeaf allocates a Leaf carrying the given value, with prefix as its
// trailing key segment.
func NewLeaf(a arena.Allocator, prefix []byte, v Value) *Leaf {
	l := arena.New[Leaf](a)
	l.SetPrefix(prefix)
	l.value = v
	return l
}

func (l *Leaf) Type() Type { return TypeLeaf }

func (l *Leaf) Value() Value     { return l.value }
func (l *Leaf) SetValue(v Value) { l.value = v }

func (l *Leaf) FindChild(b byte) Node { return nil }

// AddChild converts the Leaf into a Single carrying the same prefix and
// value, then adds child to it. This is how a key that is a strict prefix
// of another key acquires a descendant: the shorter key's value stays put,
// and the node gains the capacity to hold a first child.
func (l *Leaf) AddChild(a arena.Allocator, b byte, child Node) Node {
	s := NewSingle(a, l.Prefix())
	s.value = l.value
	l.Release(a)
	return s.AddChild(a, b, child)
}

func (l *Leaf) ReplaceChild(b byte, child Node) {
	panic("node: ReplaceChild called on a Leaf")
}

func (l *Leaf) RemoveChild(a arena.Allocator, b byte) Node {
	panic("node: RemoveChild called on a Leaf")
}

func (l *Leaf) Release(a arena.Allocator) {
	arena.Free(a, l)
}

// Each is a no-op: a Leaf has no children.
func (l *Leaf) Each(fn func(byte, Node)) {}
