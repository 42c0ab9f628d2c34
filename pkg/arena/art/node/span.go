package node

import "github.com/mlev-art/radixart/pkg/arena"

// spanEmpty marks a byte as having no child in a Span's index map. 48 is
// one past the last valid slot index, so it can never collide with one.
const spanEmpty = 48

// Span is the capacity-48 variant: a 256-entry byte-to-slot index map
// pointing into 48 densely packed child slots. It trades the 256*pointer
// footprint of [Radix] for a byte-sized index at the cost of one extra
// indirection per lookup.
type Span struct {
	base
	value    Value
	idx      [256]byte
	children [48]Node
	keys     [48]byte
}

var _ Node = (*Span)(nil)

// NewSpan allocates an empty Span with the given prefix.
func NewSpan(a arena.Allocator, prefix []byte) *Span {
	n := arena.New[Span](a)
	for i := range n.idx {
		n.idx[i] = spanEmpty
	}
	n.SetPrefix(prefix)
	return n
}

func (n *Span) Type() Type { return TypeSpan }

func (n *Span) Value() Value     { return n.value }
func (n *Span) SetValue(v Value) { n.value = v }

func (n *Span) FindChild(b byte) Node {
	i := n.idx[b]
	if i == spanEmpty {
		return nil
	}
	return n.children[i]
}

// set installs child at slot rcnt for key byte b, without growing. Used both
// by AddChild and by callers (e.g. Linear16.grow) copying in known-fresh
// entries during a structural rewrite.
func (n *Span) set(b byte, child Node) {
	slot := byte(n.rcnt)
	n.idx[b] = slot
	n.keys[slot] = b
	n.children[slot] = child
}

func (n *Span) AddChild(a arena.Allocator, b byte, child Node) Node {
	if n.rcnt >= len(n.children) {
		grown := n.grow(a)
		return grown.AddChild(a, b, child)
	}
	n.set(b, child)
	n.rcnt++
	return n
}

func (n *Span) ReplaceChild(b byte, child Node) {
	i := n.idx[b]
	if i == spanEmpty {
		panic("node: ReplaceChild on Span with missing key")
	}
	n.children[i] = child
}

func (n *Span) RemoveChild(a arena.Allocator, b byte) Node {
	i := n.idx[b]
	if i != spanEmpty {
		last := byte(n.rcnt - 1)
		if i != last {
			lastKey := n.keys[last]
			n.keys[i] = lastKey
			n.children[i] = n.children[last]
			n.idx[lastKey] = i
		}
		n.children[last] = nil
		n.idx[b] = spanEmpty
		n.rcnt--
	}
	if n.rcnt == 16 {
		return n.shrink(a)
	}
	return n
}

func (n *Span) Release(a arena.Allocator) {
	arena.Free(a, n)
}

// Each calls fn for every live (key, child) pair in ascending key order.
func (n *Span) Each(fn func(byte, Node)) {
	order := make([]byte, 0, n.rcnt)
	for b := 0; b < 256; b++ {
		if n.idx[byte(b)] != spanEmpty {
			order = append(order, byte(b))
		}
	}
	for _, b := range order {
		fn(b, n.children[n.idx[b]])
	}
}

func (n *Span) grow(a arena.Allocator) Node {
	g := NewRadix(a, n.Prefix())
	g.value = n.value
	n.Each(func(b byte, c Node) {
		g.children[b] = c
	})
	g.rcnt = n.rcnt
	n.Release(a)
	return g
}

func (n *Span) shrink(a arena.Allocator) Node {
	s := NewLinear16(a, n.Prefix())
	s.value = n.value
	i := 0
	n.Each(func(b byte, c Node) {
		s.keys[i] = b
		s.children[i] = c
		i++
	})
	s.rcnt = n.rcnt
	n.Release(a)
	return s
}
