package tree

import "github.com/mlev-art/radixart/pkg/arena/art/node"

// Search looks up key in the subtree rooted at root, returning its value
// and true if key was found with a non-zero value, or the zero Value and
// false otherwise.
func Search(root node.Node, key []byte) (node.Value, bool) {
	n := root
	depth := 0
	for n != nil {
		matched := n.CheckPrefix(key, depth)
		prefix := n.Prefix()
		if matched < len(prefix) {
			return 0, false
		}
		depth += matched
		if depth == len(key) {
			if v := n.Value(); v != 0 {
				return v, true
			}
			return 0, false
		}
		n = n.FindChild(key[depth])
		depth++
	}
	return 0, false
}
