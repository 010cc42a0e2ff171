// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist

import "sync/atomic"

// List is a concurrent doubly-linked list of [Node] values. The zero value
// is an empty list ready to use; [New] is provided for symmetry with the
// rest of the API. A List may be declared standalone or embedded in a
// larger structure.
//
// Invariants, up to the brief convergence windows inherent in the
// publication protocol:
//
//   - head is nil exactly when tail is nil
//   - if non-empty, head has no predecessor and tail has no successor
//   - whenever a node's next points to m, m's prev eventually points back
//
// There are no sentinel nodes and no length counter; counting is O(n) by
// design (see [List.CountLive]).
type List[T any] struct {
	head atomic.Pointer[Node[T]]
	tail atomic.Pointer[Node[T]]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Head returns the first node of l, or nil if l is empty. The load is a raw
// atomic read for manual walks; pair it with [Node.Next].
func (l *List[T]) Head() *Node[T] {
	return l.head.Load()
}

// Tail returns the last node of l, or nil if l is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail.Load()
}
