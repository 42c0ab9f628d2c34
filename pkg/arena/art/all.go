//go:build go1.23

package art

import (
	"iter"

	"github.com/mlev-art/radixart/pkg/arena/art/node"
)

// All returns an iterator over every (key, value) pair in the tree, in
// ascending lexicographic key order.
func (t *Tree) All() iter.Seq2[[]byte, node.Value] {
	return func(yield func([]byte, node.Value) bool) {
		t.Visit(yield)
	}
}

// AllPrefix returns an iterator over every (key, value) pair whose key
// starts with prefix, in ascending lexicographic order.
func (t *Tree) AllPrefix(prefix []byte) iter.Seq2[[]byte, node.Value] {
	return func(yield func([]byte, node.Value) bool) {
		t.VisitPrefix(prefix, yield)
	}
}
