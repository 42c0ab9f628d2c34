package tree

import "github.com/mlev-art/radixart/pkg/arena/art/node"

// Visit walks every (key, value) pair in the subtree rooted at root, in
// ascending lexicographic key order, calling yield for each. It stops early
// if yield returns false.
func Visit(root node.Node, yield func(key []byte, v node.Value) bool) {
	if root == nil {
		return
	}
	visit(root, nil, yield)
}

func visit(n node.Node, acc []byte, yield func([]byte, node.Value) bool) bool {
	acc = append(acc, n.Prefix()...)
	if v := n.Value(); v != 0 {
		if !yield(append([]byte(nil), acc...), v) {
			return false
		}
	}
	ok := true
	n.Each(func(b byte, c node.Node) {
		if !ok {
			return
		}
		next := append(append([]byte(nil), acc...), b)
		if !visit(c, next, yield) {
			ok = false
		}
	})
	return ok
}

// VisitPrefix walks every (key, value) pair whose key starts with prefix,
// in ascending lexicographic order. Keys are yielded in full, not truncated
// to the part following prefix.
func VisitPrefix(root node.Node, prefix []byte, yield func(key []byte, v node.Value) bool) {
	if root == nil {
		return
	}
	n := root
	depth := 0
	acc := make([]byte, 0, len(prefix))
	for {
		np := n.Prefix()
		matched := n.CheckPrefix(prefix, depth)

		if depth+matched >= len(prefix) {
			// n's own prefix carries us at or past the search prefix: the
			// whole subtree at n qualifies (n's prefix is compatible with
			// prefix by construction once we reach this branch). visit
			// appends n's prefix itself, so acc must not include it yet.
			visit(n, acc, yield)
			return
		}
		if matched < len(np) {
			// n's prefix diverges from the search prefix before either
			// runs out: no key under n can start with prefix.
			return
		}

		acc = append(acc, np...)
		depth += matched
		b := prefix[depth]
		child := n.FindChild(b)
		if child == nil {
			return
		}
		acc = append(acc, b)
		depth++
		n = child
	}
}
