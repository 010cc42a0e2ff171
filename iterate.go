// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist

// Iterator is a forward walker over the live (non-removed) nodes of a list.
// Iterators are value types; take a fresh one per traversal with
// [List.Live]. The zero value is an exhausted iterator.
//
// Before an iterator inspects a node it stashes that node's successor, so
// the loop body may call [Node.MarkRemoved] or [List.Delete] on the current
// node without losing the traversal position. The walk starts from the head
// observed when the iterator was created: nodes inserted at the head
// afterwards are never seen.
type Iterator[T any] struct {
	curr *Node[T]
	next *Node[T]
}

// Live returns an iterator positioned before the first live node of l.
func (l *List[T]) Live() Iterator[T] {
	return Iterator[T]{next: l.head.Load()}
}

// Next advances to the next live node, skipping any node whose removed flag
// is set. It returns false when the walk is exhausted.
func (it *Iterator[T]) Next() bool {
	for {
		n := it.next
		if n == nil {
			it.curr = nil
			return false
		}
		// Stash the successor before the caller gets a chance to unlink n.
		it.next = n.next.Load()
		if !n.removed.Load() {
			it.curr = n
			return true
		}
	}
}

// Node returns the node the iterator is positioned on, or nil if [Iterator.Next]
// has not been called or returned false.
func (it *Iterator[T]) Node() *Node[T] {
	return it.curr
}

// EachLive calls fn for each live node of l in list order, stopping early if
// fn returns false. It is shorthand for draining [List.Live], with the same
// tolerance for in-loop marking and deletion.
func (l *List[T]) EachLive(fn func(*Node[T]) bool) {
	it := l.Live()
	for it.Next() {
		if !fn(it.Node()) {
			return
		}
	}
}
