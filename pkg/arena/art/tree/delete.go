package tree

import (
	"github.com/mlev-art/radixart/internal/debug"
	"github.com/mlev-art/radixart/pkg/arena"
	"github.com/mlev-art/radixart/pkg/arena/art/node"
)

// Delete removes key from the subtree rooted at root, returning the
// (possibly different) node to install in root's place and whether key was
// present.
//
// Delete never collapses root out of the tree, even when the removal leaves
// it childless and valueless, or leaves it a valueless node with a single
// remaining child that would otherwise qualify for a merge-with-child
// rewrite: root is never reported dead and never merged into its child.
// Root can still be replaced by the next-smaller variant through the
// ordinary shrink ladder when it loses a child.
//
// Root is also exempt from Single's ordinary terminal shrink: a Single root
// losing its last child stays an empty Single rather than becoming a Leaf,
// so the tree's byte count never dips below what New allocated.
func Delete(a arena.Allocator, root node.Node, key []byte) (node.Node, bool) {
	if root == nil {
		return nil, false
	}
	newRoot, _, found := remove(a, root, key, 0, true)
	return newRoot, found
}

// remove returns the node to install in n's place, whether n is now dead
// (childless and valueless, eligible for its parent to free it), and
// whether key was found. isRoot suppresses the dead signal, the
// merge-with-child rewrite, and (for a Single) the Single→Leaf terminal
// shrink for n itself, since root has no parent to act on any of them and
// must stay allocated for the tree's lifetime.
func remove(a arena.Allocator, n node.Node, key []byte, depth int, isRoot bool) (node.Node, bool, bool) {
	prefix := n.Prefix()
	matched := n.CheckPrefix(key, depth)
	debug.Assert(matched <= len(prefix), "CheckPrefix returned %d, longer than the prefix itself (%d)", matched, len(prefix))
	if matched < len(prefix) {
		return n, false, false
	}
	depth += matched

	if depth == len(key) {
		if n.Value() == 0 {
			return n, false, false
		}
		n.SetValue(0)
		return n, !isRoot && n.ChildCount() == 0, true
	}

	b := key[depth]
	child := n.FindChild(b)
	if child == nil {
		return n, false, false
	}

	newChild, childDead, found := remove(a, child, key, depth+1, false)
	if !found {
		return n, false, false
	}

	if childDead {
		newChild.Release(a)
		if isRoot {
			if single, ok := n.(*node.Single); ok {
				single.ClearChild(b)
			} else {
				n = n.RemoveChild(a, b)
			}
		} else {
			n = n.RemoveChild(a, b)
		}
	} else {
		n.ReplaceChild(b, newChild)
		return n, false, true
	}

	if !isRoot && n.ChildCount() == 0 && n.Value() == 0 {
		return n, true, true
	}
	if !isRoot && n.Value() == 0 {
		if single, ok := n.(*node.Single); ok {
			if sb, schild, has := single.SoleChild(); has {
				return mergeWithChild(a, single, sb, schild), false, true
			}
		}
	}
	return n, false, true
}

// mergeWithChild collapses a valueless Single holding exactly one child into
// that child: the child absorbs parent's prefix, the diverging key byte
// between them, and its own prefix into a single combined prefix, and
// replaces parent in the grandparent's slot.
func mergeWithChild(a arena.Allocator, parent *node.Single, b byte, child node.Node) node.Node {
	debug.Log(nil, "mergeWithChild", "%v", debug.Dict(nil, "branch", b, "childType", child.Type()))

	combined := make([]byte, 0, len(parent.Prefix())+1+len(child.Prefix()))
	combined = append(combined, parent.Prefix()...)
	combined = append(combined, b)
	combined = append(combined, child.Prefix()...)
	debug.Assert(len(combined) <= 255, "merged prefix length %d exceeds the maximum key length", len(combined))
	child.SetPrefix(combined)
	parent.Release(a)
	return child
}
