// Package arena provides the per-conversion memory of the converter.
//
// An Arena hands out tree nodes, node slices and strings that all share one
// lifetime: they stay valid for as long as the Arena is reachable and are
// released together when it is dropped. Nothing is ever freed individually.
// Storage is carved out of fixed-capacity slabs that are never reallocated,
// so a pointer returned by Push stays valid while later pushes append new
// slabs.
//
// There is no recoverable error path. If a slab cannot be allocated the Go
// runtime stops the process with a fatal out-of-memory error, which cannot
// be intercepted by recover. A half-built tree has no sensible recovery, so
// this is the intended policy rather than an omission.
//
// An Arena is not safe for concurrent use. Create one per conversion.
package arena

import "unsafe"

const (
	nodeSlab  = 64
	refSlab   = 256
	bytesSlab = 4096
	maxSlab   = 1 << 16
)

// Arena owns the nodes of type T built during one conversion.
type Arena[T any] struct {
	nodes [][]T
	refs  [][]*T
	bytes [][]byte
	count int
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Push moves node into the arena and returns a reference to it.
func (a *Arena[T]) Push(node T) *T {
	n := len(a.nodes)
	if n == 0 || len(a.nodes[n-1]) == cap(a.nodes[n-1]) {
		a.nodes = append(a.nodes, make([]T, 0, slabSize(nodeSlab, n)))
		n++
	}
	slab := &a.nodes[n-1]
	*slab = append(*slab, node)
	a.count++
	return &(*slab)[len(*slab)-1]
}

// PushSlice copies refs into arena storage, preserving order. The result has
// no spare capacity, so appending to it never writes into a neighbour.
func (a *Arena[T]) PushSlice(refs []*T) []*T {
	if len(refs) == 0 {
		return nil
	}
	n := len(a.refs)
	if n == 0 || cap(a.refs[n-1])-len(a.refs[n-1]) < len(refs) {
		a.refs = append(a.refs, make([]*T, 0, max(slabSize(refSlab, n), len(refs))))
		n++
	}
	slab := &a.refs[n-1]
	start := len(*slab)
	*slab = append(*slab, refs...)
	end := len(*slab)
	return (*slab)[start:end:end]
}

// AllocStr copies s into the arena and returns the copy.
func (a *Arena[T]) AllocStr(s string) string {
	if len(s) == 0 {
		return ""
	}
	n := len(a.bytes)
	if n == 0 || cap(a.bytes[n-1])-len(a.bytes[n-1]) < len(s) {
		a.bytes = append(a.bytes, make([]byte, 0, max(slabSize(bytesSlab, n), len(s))))
		n++
	}
	slab := &a.bytes[n-1]
	start := len(*slab)
	*slab = append(*slab, s...)
	// The slab never moves and the bytes are never written again.
	return unsafe.String(&(*slab)[start], len(s))
}

// Len returns the number of nodes pushed so far.
func (a *Arena[T]) Len() int { return a.count }

// slabSize doubles the slab size with every new slab, up to maxSlab.
func slabSize(base, slabs int) int {
	size := base << min(slabs, 10)
	return min(size, max(maxSlab, base))
}
