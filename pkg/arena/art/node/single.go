package node

import "github.com/mlev-art/radixart/pkg/arena"

// Single is the capacity-1 variant: at most one (key byte, child) edge. It
// is empty only as a freshly allocated node or as a tree root that has lost
// its last child.
type Single struct {
	base
	value   Value
	has     bool
	key     byte
	child   Node
}

var _ Node = (*Single)(nil)

// NewSingle allocates an empty Single with the given prefix.
func NewSingle(a arena.Allocator, prefix []byte) *Single {
	s := arena.New[Single](a)
	s.SetPrefix(prefix)
	return s
}

func (n *Single) Type() Type { return TypeSingle }

func (n *Single) Value() Value     { return n.value }
func (n *Single) SetValue(v Value) { n.value = v }

func (n *Single) FindChild(b byte) Node {
	if n.has && n.key == b {
		return n.child
	}
	return nil
}

func (n *Single) AddChild(a arena.Allocator, b byte, child Node) Node {
	if !n.has {
		n.has = true
		n.key = b
		n.child = child
		n.rcnt++
		return n
	}
	grown := n.grow(a)
	return grown.AddChild(a, b, child)
}

func (n *Single) ReplaceChild(b byte, child Node) {
	if n.has && n.key == b {
		n.child = child
		return
	}
	panic("node: ReplaceChild on Single with mismatched key")
}

// RemoveChild clears the sole child if it matches b. Losing its only child
// is Single's terminal shrink: it becomes a Leaf carrying the same value.
func (n *Single) RemoveChild(a arena.Allocator, b byte) Node {
	if !n.has || n.key != b {
		return n
	}
	l := NewLeaf(a, n.Prefix(), n.value)
	n.Release(a)
	return l
}

// ClearChild drops the sole child if it matches b, in place, without the
// Single→Leaf terminal shrink that RemoveChild performs. Used only by the
// delete cascade's root exemption: a Single root that loses its last child
// stays an empty Single rather than collapsing into a Leaf.
func (n *Single) ClearChild(b byte) {
	if !n.has || n.key != b {
		return
	}
	n.has = false
	n.key = 0
	n.child = nil
	n.rcnt = 0
}

func (n *Single) Release(a arena.Allocator) {
	arena.Free(a, n)
}

// Each calls fn once, for this node's sole child, if it has one.
func (n *Single) Each(fn func(byte, Node)) {
	if n.has {
		fn(n.key, n.child)
	}
}

// SoleChild returns the only child this node holds, or nil if it holds none.
// Used by the delete cascade's merge-with-sole-child rewrite.
func (n *Single) SoleChild() (byte, Node, bool) {
	if !n.has {
		return 0, nil, false
	}
	return n.key, n.child, true
}

func (n *Single) grow(a arena.Allocator) Node {
	g := NewLinear(a, n.Prefix())
	g.value = n.value
	if n.has {
		g.keys[0] = n.key
		g.children[0] = n.child
		g.rcnt = 1
	}
	n.Release(a)
	return g
}
