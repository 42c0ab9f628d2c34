package node

import "github.com/mlev-art/radixart/pkg/arena"

// Linear is the capacity-4 variant: key bytes and children kept in two
// parallel, sorted arrays and scanned linearly. Its sibling [Linear16] is
// the identical representation at 4x the capacity; it exists as a distinct
// step on the grow/shrink ladder because a linear scan over 16 entries is
// still cheaper than maintaining a sorted 256-entry map.
type Linear struct {
	base
	value    Value
	keys     [4]byte
	children [4]Node
}

var _ Node = (*Linear)(nil)

// NewLinear allocates an empty Linear with the given prefix.
func NewLinear(a arena.Allocator, prefix []byte) *Linear {
	n := arena.New[Linear](a)
	n.SetPrefix(prefix)
	return n
}

func (n *Linear) Type() Type { return TypeLinear }

func (n *Linear) Value() Value     { return n.value }
func (n *Linear) SetValue(v Value) { n.value = v }

func (n *Linear) FindChild(b byte) Node {
	for i := 0; i < n.rcnt; i++ {
		if n.keys[i] == b {
			return n.children[i]
		}
	}
	return nil
}

func (n *Linear) AddChild(a arena.Allocator, b byte, child Node) Node {
	if n.rcnt >= len(n.keys) {
		grown := n.grow(a)
		return grown.AddChild(a, b, child)
	}
	i := 0
	for i < n.rcnt && n.keys[i] < b {
		i++
	}
	copy(n.keys[i+1:n.rcnt+1], n.keys[i:n.rcnt])
	copy(n.children[i+1:n.rcnt+1], n.children[i:n.rcnt])
	n.keys[i] = b
	n.children[i] = child
	n.rcnt++
	return n
}

func (n *Linear) ReplaceChild(b byte, child Node) {
	for i := 0; i < n.rcnt; i++ {
		if n.keys[i] == b {
			n.children[i] = child
			return
		}
	}
	panic("node: ReplaceChild on Linear with missing key")
}

func (n *Linear) RemoveChild(a arena.Allocator, b byte) Node {
	for i := 0; i < n.rcnt; i++ {
		if n.keys[i] == b {
			copy(n.keys[i:], n.keys[i+1:n.rcnt])
			copy(n.children[i:], n.children[i+1:n.rcnt])
			n.rcnt--
			n.children[n.rcnt] = nil
			break
		}
	}
	if n.rcnt == 1 {
		return n.shrink(a)
	}
	return n
}

func (n *Linear) Release(a arena.Allocator) {
	arena.Free(a, n)
}

// Each calls fn for every live (key, child) pair in ascending key order.
func (n *Linear) Each(fn func(byte, Node)) {
	for i := 0; i < n.rcnt; i++ {
		fn(n.keys[i], n.children[i])
	}
}

func (n *Linear) grow(a arena.Allocator) Node {
	g := NewLinear16(a, n.Prefix())
	g.value = n.value
	copy(g.keys[:n.rcnt], n.keys[:n.rcnt])
	copy(g.children[:n.rcnt], n.children[:n.rcnt])
	g.rcnt = n.rcnt
	n.Release(a)
	return g
}

func (n *Linear) shrink(a arena.Allocator) Node {
	s := NewSingle(a, n.Prefix())
	s.value = n.value
	if n.rcnt == 1 {
		s.has = true
		s.key = n.keys[0]
		s.child = n.children[0]
		s.rcnt = 1
	}
	n.Release(a)
	return s
}
