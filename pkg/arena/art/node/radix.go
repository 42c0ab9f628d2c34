package node

import "github.com/mlev-art/radixart/pkg/arena"

// Radix is the capacity-256 variant: one direct child slot per possible key
// byte. It is the top of the grow ladder; it never grows further.
type Radix struct {
	base
	value    Value
	children [256]Node
}

var _ Node = (*Radix)(nil)

// NewRadix allocates an empty Radix with the given prefix.
func NewRadix(a arena.Allocator, prefix []byte) *Radix {
	n := arena.New[Radix](a)
	n.SetPrefix(prefix)
	return n
}

func (n *Radix) Type() Type { return TypeRadix }

func (n *Radix) Value() Value     { return n.value }
func (n *Radix) SetValue(v Value) { n.value = v }

func (n *Radix) FindChild(b byte) Node { return n.children[b] }

func (n *Radix) AddChild(a arena.Allocator, b byte, child Node) Node {
	if n.children[b] == nil {
		n.rcnt++
	}
	n.children[b] = child
	return n
}

func (n *Radix) ReplaceChild(b byte, child Node) {
	n.children[b] = child
}

func (n *Radix) RemoveChild(a arena.Allocator, b byte) Node {
	if n.children[b] != nil {
		n.children[b] = nil
		n.rcnt--
	}
	if n.rcnt == 48 {
		return n.shrink(a)
	}
	return n
}

func (n *Radix) Release(a arena.Allocator) {
	arena.Free(a, n)
}

// Each calls fn for every live (key, child) pair in ascending key order.
func (n *Radix) Each(fn func(byte, Node)) {
	for b := 0; b < 256; b++ {
		if c := n.children[byte(b)]; c != nil {
			fn(byte(b), c)
		}
	}
}

func (n *Radix) shrink(a arena.Allocator) Node {
	s := NewSpan(a, n.Prefix())
	s.value = n.value
	n.Each(func(b byte, c Node) {
		s.set(b, c)
		s.rcnt++
	})
	n.Release(a)
	return s
}
