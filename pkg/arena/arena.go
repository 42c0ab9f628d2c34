// Package arena provides a minimal, type-safe allocation-accounting
// abstraction for the ART engine's node lifecycle.
//
// Unlike a true bump-pointer arena, memory here is still handed out by the Go
// runtime's garbage collector: nodes are ordinary heap values, and the
// garbage collector remains free to scan and move as it sees fit. What this
// package provides instead is a ledger, one per Arena value, of the bytes
// live in node allocations, mirroring the libart convention of a running
// "bytes" counter that is incremented on every node allocation and
// decremented on every node free.
//
// This is a deliberate simplification of the address-packed, hand-rolled
// arena that a systems-language implementation of an ART would use. Nothing
// in the data structure's invariants requires raw pointer arithmetic or
// manual memory management; a typed, GC-backed node with an accounted
// lifetime satisfies them just as well, and is the idiomatic choice in Go.
package arena

import "unsafe"

// Allocator tracks the lifetime of node allocations without owning their
// storage. Implementations back New and Free, the only two places a node's
// size ever needs to be known.
type Allocator interface {
	// track records size bytes as newly live.
	track(size int)

	// untrack records size bytes as no longer live.
	untrack(size int)

	// Bytes returns the sum of sizes of all values currently tracked as live.
	Bytes() int
}

// Arena is the default Allocator. Its zero value is ready to use.
type Arena struct {
	bytes int
}

var _ Allocator = (*Arena)(nil)

func (a *Arena) track(size int)   { a.bytes += size }
func (a *Arena) untrack(size int) { a.bytes -= size }

// Bytes returns the number of bytes currently accounted as live.
func (a *Arena) Bytes() int { return a.bytes }

// New allocates a zero-valued T and records its size with a.
//
// The returned pointer is an ordinary Go pointer; its memory is owned and
// collected by the garbage collector exactly like any other allocation. Free
// must be called exactly once, when the node is structurally removed from
// the tree, to keep a.Bytes() an accurate reflection of live node size.
func New[T any](a Allocator) *T {
	p := new(T)
	a.track(int(unsafe.Sizeof(*p)))
	return p
}

// Free records that p's backing allocation is no longer part of the tree.
//
// It does not free Go memory directly -- the garbage collector reclaims p
// once nothing else references it -- but it keeps a's byte ledger in sync
// with the tree's actual structure, which is what callers observe via
// Bytes().
func Free[T any](a Allocator, p *T) {
	a.untrack(int(unsafe.Sizeof(*p)))
}
