// Package art provides an in-memory Adaptive Radix Tree (ART) keyed by
// arbitrary byte strings.
//
// # Overview
//
// An ART is a space-efficient trie variant that adapts each internal node's
// child-indexing representation to its current fan-out, and compresses runs
// of single-child nodes into a shared path prefix. Both properties keep the
// tree's height close to the key length rather than the alphabet size, and
// its memory footprint close to the data actually stored.
//
// Unlike the classic ART formulation, which only ever stores a value at a
// leaf (a node that terminates a full key with no children of its own),
// this implementation allows a value to be stored at any node along a key's
// path, including internal nodes with children. A key that is itself a
// strict prefix of another stored key is simply a value attached to the
// internal node where the two diverge, rather than forcing it down into a
// synthetic leaf with a zero-length remaining suffix.
//
// # Node Types
//
//   - Leaf: terminal, no children.
//   - Single: up to 1 child.
//   - Linear: up to 4 children, linear scan.
//   - Linear16: up to 16 children, linear scan.
//   - Span: up to 48 children, behind a 256-entry byte index.
//   - Radix: up to 256 children, direct indexing.
//
// Insertion grows a node to the next variant once it is full; deletion
// shrinks it back down once its count drops to the smaller variant's
// capacity, and collapses a now-childless node, and merges a valueless node
// left with exactly one child back into that child. See package tree for
// the algorithms and package node for the variants themselves.
//
// # Usage
//
//	t := art.New()
//
//	t.Insert([]byte("key"), 1)
//	if v, ok := t.Search([]byte("key")); ok {
//		fmt.Println(v)
//	}
//
//	t.Visit(func(key []byte, v node.Value) bool {
//		fmt.Printf("%s -> %d\n", key, v)
//		return true // continue
//	})
//
//	for key, v := range t.All() {
//		fmt.Printf("%s -> %d\n", key, v)
//	}
//
// # Values
//
// A [node.Value] is a single machine word (uintptr); zero means "absent".
// Callers that need to store arbitrary Go values can keep them in a side
// table (e.g. a slice or map) and store the index or pointer bits as the
// Value, matching the convention of the original C implementation this
// package's algorithms are grounded on.
//
// # Thread Safety
//
// Tree is not safe for concurrent use. A caller that shares a Tree across
// goroutines must provide its own synchronization.
package art
