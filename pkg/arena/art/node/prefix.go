package node

// inlineCap is the number of prefix bytes stored directly inside a node's
// header, matching libart's word_t-sized `path` field. Prefixes longer than
// inlineCap spill onto a heap-allocated slice instead; that slice is not
// tracked by the Allocator, matching libart's convention that the `bytes`
// accounting only ever covers the artNodeAlloc/artNodeFree header, never a
// prefix buffer's own malloc.
const inlineCap = 8

// prefix is an inline-or-heap store for a node's compressed path segment.
//
// plen is the logical length. When plen <= inlineCap the bytes live in path;
// otherwise they live in heap, and path is unused. This mirrors the small-
// string optimization libart gets for free from its union path/malloc'd
// pointer header field.
type prefix struct {
	plen int
	path [inlineCap]byte
	heap []byte
}

// bytes returns the prefix's content as a slice. The slice must not be
// retained past the next call to set, which may invalidate it.
func (p *prefix) bytes() []byte {
	if p.plen <= inlineCap {
		return p.path[:p.plen]
	}
	return p.heap
}

// set replaces the prefix's content with a copy of src.
func (p *prefix) set(src []byte) {
	p.plen = len(src)
	if p.plen <= inlineCap {
		copy(p.path[:], src)
		p.heap = nil
		return
	}
	p.heap = append([]byte(nil), src...)
}

// check returns the number of leading bytes the prefix shares with
// key[depth:], bounded by both the prefix length and the remaining key.
func (p *prefix) check(key []byte, depth int) int {
	rem := key[depth:]
	pre := p.bytes()
	n := len(pre)
	if len(rem) < n {
		n = len(rem)
	}
	i := 0
	for i < n && pre[i] == rem[i] {
		i++
	}
	return i
}

// moveFrom replaces the prefix with the sub-slice of src starting at skip,
// i.e. it drops the leading skip bytes src[:skip] that a parent node is
// about to absorb into its own prefix during a structural rewrite.
func (p *prefix) moveFrom(src []byte, skip int) {
	p.set(src[skip:])
}
