package art

import (
	"github.com/mlev-art/radixart/pkg/arena"
	"github.com/mlev-art/radixart/pkg/arena/art/node"
	"github.com/mlev-art/radixart/pkg/arena/art/tree"
)

// Tree is an Adaptive Radix Tree mapping byte-string keys to [node.Value]s.
//
// The zero Tree is an empty tree, ready to use: its root is allocated lazily,
// as a zero-prefix Single with no children and no value, on first use.
type Tree struct {
	root node.Node
	a    arena.Arena
}

// New returns an empty Tree, with its root already allocated.
func New() *Tree {
	t := &Tree{}
	t.ensureRoot()
	return t
}

// ensureRoot allocates the root node on first use and returns it. The root
// is never freed for the lifetime of the Tree, even if every key is
// eventually removed from it.
func (t *Tree) ensureRoot() node.Node {
	if t.root == nil {
		t.root = node.NewSingle(&t.a, nil)
	}
	return t.root
}

// Bytes returns the number of bytes currently live in the tree's node
// allocations, mirroring libart's running allocation counter.
func (t *Tree) Bytes() int {
	return t.a.Bytes()
}

// validKey reports whether key is in the length range the tree accepts.
// Out-of-range keys are silently rejected throughout the public API, rather
// than returned as an error, matching the convention the core's source used.
func validKey(key []byte) bool {
	return len(key) >= 1 && len(key) <= 255
}

// Search returns the value stored under key, and whether one was found.
func (t *Tree) Search(key []byte) (node.Value, bool) {
	if t.root == nil || !validKey(key) {
		return 0, false
	}
	return tree.Search(t.root, key)
}

// Insert stores v under key, returning the value key previously held (or
// zero) and whether it was present. Keys shorter than 1 byte or longer than
// 255 bytes are silently ignored.
func (t *Tree) Insert(key []byte, v node.Value) (node.Value, bool) {
	if !validKey(key) {
		return 0, false
	}
	root := t.ensureRoot()
	old, _ := tree.Search(root, key)
	newRoot, replaced := tree.Insert(&t.a, root, key, v)
	t.root = newRoot
	return old, replaced
}

// Delete removes key from the tree, returning the value it held (or zero)
// and whether it was present. The root itself is never freed, matching the
// invariant that it survives for the lifetime of the Tree.
func (t *Tree) Delete(key []byte) (node.Value, bool) {
	if t.root == nil || !validKey(key) {
		return 0, false
	}
	old, found := tree.Search(t.root, key)
	if !found {
		return 0, false
	}
	newRoot, _ := tree.Delete(&t.a, t.root, key)
	t.root = newRoot
	return old, true
}

// Visit calls yield for every (key, value) pair in the tree, in ascending
// lexicographic key order. It stops early if yield returns false.
func (t *Tree) Visit(yield func(key []byte, v node.Value) bool) {
	tree.Visit(t.root, yield)
}

// VisitPrefix calls yield for every (key, value) pair whose key starts with
// prefix, in ascending lexicographic order. It stops early if yield returns
// false.
func (t *Tree) VisitPrefix(prefix []byte, yield func(key []byte, v node.Value) bool) {
	tree.VisitPrefix(t.root, prefix, yield)
}
