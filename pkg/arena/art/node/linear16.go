package node

import "github.com/mlev-art/radixart/pkg/arena"

// Linear16 is the capacity-16 variant: the same sorted parallel-array layout
// as [Linear], at 4x the capacity.
type Linear16 struct {
	base
	value    Value
	keys     [16]byte
	children [16]Node
}

var _ Node = (*Linear16)(nil)

// NewLinear16 allocates an empty Linear16 with the given prefix.
func NewLinear16(a arena.Allocator, prefix []byte) *Linear16 {
	n := arena.New[Linear16](a)
	n.SetPrefix(prefix)
	return n
}

func (n *Linear16) Type() Type { return TypeLinear16 }

func (n *Linear16) Value() Value     { return n.value }
func (n *Linear16) SetValue(v Value) { n.value = v }

func (n *Linear16) FindChild(b byte) Node {
	for i := 0; i < n.rcnt; i++ {
		if n.keys[i] == b {
			return n.children[i]
		}
	}
	return nil
}

func (n *Linear16) AddChild(a arena.Allocator, b byte, child Node) Node {
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

func (n *Linear16) ReplaceChild(b byte, child Node) {
	for i := 0; i < n.rcnt; i++ {
		if n.keys[i] == b {
			n.children[i] = child
			return
		}
	}
	panic("node: ReplaceChild on Linear16 with missing key")
}

func (n *Linear16) RemoveChild(a arena.Allocator, b byte) Node {
	for i := 0; i < n.rcnt; i++ {
		if n.keys[i] == b {
			copy(n.keys[i:], n.keys[i+1:n.rcnt])
			copy(n.children[i:], n.children[i+1:n.rcnt])
			n.rcnt--
			n.children[n.rcnt] = nil
			break
		}
	}
	if n.rcnt == 4 {
		return n.shrink(a)
	}
	return n
}

func (n *Linear16) Release(a arena.Allocator) {
	arena.Free(a, n)
}

// Each calls fn for every live (key, child) pair in ascending key order.
func (n *Linear16) Each(fn func(byte, Node)) {
	for i := 0; i < n.rcnt; i++ {
		fn(n.keys[i], n.children[i])
	}
}

func (n *Linear16) grow(a arena.Allocator) Node {
	g := NewSpan(a, n.Prefix())
	g.value = n.value
	for i := 0; i < n.rcnt; i++ {
		g.set(n.keys[i], n.children[i])
		g.rcnt++
	}
	n.Release(a)
	return g
}

func (n *Linear16) shrink(a arena.Allocator) Node {
	s := NewLinear(a, n.Prefix())
	s.value = n.value
	copy(s.keys[:n.rcnt], n.keys[:n.rcnt])
	copy(s.children[:n.rcnt], n.children[:n.rcnt])
	s.rcnt = n.rcnt
	n.Release(a)
	return s
}
