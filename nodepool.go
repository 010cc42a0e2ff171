// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist

import "sync"

// NodePool recycles nodes for the pre-allocated publication flavor,
// [List.PushHeadNode] and [List.PushTailNode]. It exists for producers that
// publish and reclaim at a rate where per-node allocation churn matters;
// for everything else the allocating [List.PushHead]/[List.PushTail] are
// the simpler choice.
//
// The zero value is ready to use. Pools may be shared across lists.
type NodePool[T any] struct {
	inner sync.Pool
}

// Get returns a node ready for publication: links clear, removed flag
// unset, reference count zero, zero-valued payload.
func (p *NodePool[T]) Get() *Node[T] {
	n, _ := p.inner.Get().(*Node[T])
	if n == nil {
		n = &Node[T]{}
	}
	return n
}

// Put returns a node to the pool for reuse, resetting all list state and
// the payload. The node must be unlinked (popped, deleted, cleared, or
// handed to a sweep cleanup callback) and must have no outstanding
// references; Put panics if the reference count is non-zero, since a
// holder could otherwise observe the node mid-reuse.
func (p *NodePool[T]) Put(n *Node[T]) {
	if n == nil {
		panic(ErrNilNode)
	}
	if n.refs.Load() != 0 {
		panic(ErrNodeReferenced)
	}
	if n.next.Load() != nil || n.prev.Load() != nil {
		panic(ErrNodeLinked)
	}
	n.removed.Store(false)
	var zero T
	n.Value = zero
	p.inner.Put(n)
}
