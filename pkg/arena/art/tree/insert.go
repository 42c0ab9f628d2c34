// Package tree implements the recursive put/get/remove algorithms over the
// node variants in package node, plus the structural rewrites (prefix
// splitting on insert, merge-with-sole-child on delete) that keep the tree
// minimal as keys are added and removed.
package tree

import (
	"github.com/mlev-art/radixart/internal/debug"
	"github.com/mlev-art/radixart/pkg/arena"
	"github.com/mlev-art/radixart/pkg/arena/art/node"
)

// Insert stores v under key in the subtree rooted at root, returning the
// (possibly different) node to install in root's place and whether an
// existing value for key was overwritten.
//
// A nil root represents an empty subtree; Insert allocates root's first
// node in that case.
func Insert(a arena.Allocator, root node.Node, key []byte, v node.Value) (node.Node, bool) {
	if root == nil {
		return node.NewLeaf(a, key, v), false
	}
	return insert(a, root, key, 0, v)
}

func insert(a arena.Allocator, n node.Node, key []byte, depth int, v node.Value) (node.Node, bool) {
	prefix := n.Prefix()
	matched := n.CheckPrefix(key, depth)

	if matched < len(prefix) {
		return splitPrefix(a, n, prefix, matched, key, depth, v), false
	}

	depth += matched
	if depth == len(key) {
		replaced := n.Value() != 0
		n.SetValue(v)
		return n, replaced
	}

	b := key[depth]
	child := n.FindChild(b)
	if child == nil {
		leaf := node.NewLeaf(a, key[depth+1:], v)
		return n.AddChild(a, b, leaf), false
	}

	newChild, replaced := insert(a, child, key, depth+1, v)
	n.ReplaceChild(b, newChild)
	return n, replaced
}

// splitPrefix handles the case where key diverges from n's prefix partway
// through it. It allocates a new parent holding the shared prefix bytes,
// re-prefixes n to its remaining tail and hangs it off the new parent at
// the byte where the two diverge, then adds the new key's own branch (or,
// if the new key ends exactly at the divergence point, stores v directly
// on the new parent instead).
func splitPrefix(a arena.Allocator, n node.Node, prefix []byte, matched int, key []byte, depth int, v node.Value) node.Node {
	debug.Log(nil, "splitPrefix", "%v", debug.Dict(nil, "matched", matched, "prefix", len(prefix), "type", n.Type()))

	var parent node.Node = node.NewSingle(a, prefix[:matched])

	// prefix aliases n's own storage, so read the branch byte before
	// SetPrefix overwrites it.
	branch := prefix[matched]
	n.SetPrefix(prefix[matched+1:])
	parent = parent.AddChild(a, branch, n)

	splitAt := depth + matched
	if splitAt == len(key) {
		parent.SetValue(v)
		return parent
	}

	leaf := node.NewLeaf(a, key[splitAt+1:], v)
	return parent.AddChild(a, key[splitAt], leaf)
}
