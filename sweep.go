// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist

// Sweep walks l from the head and unlinks every node that is marked removed
// and has a zero reference count, calling cleanup (if non-nil) once per
// reclaimed node. The node handed to cleanup is already detached with its
// links severed, so it may go straight back to a [NodePool]. Sweep returns
// the number of nodes reclaimed.
//
// Sweep is the only reclamation path that is safe while other goroutines
// may still hold borrowed references: a node whose count is non-zero is
// left in place for a later pass. The authorizing loads of the removed flag
// and the count happen before the unlink, so a holder's last access to a
// node ordered before its final [Node.Unref] is ordered before reclamation.
//
// Each unlink is a compare-and-swap of the predecessor's next link (or of
// the head anchor). If the swap fails the structure changed underneath and
// the walk restarts from the head; restarts are bounded in practice by the
// number of concurrent structural changes, and progress is guaranteed in
// isolation. The successor's prev link and the tail anchor are repaired
// with the same best-effort swaps used by [List.Delete].
//
// Sweep may reclaim a node a concurrent live iterator has already passed or
// skipped; an iterator that dereferences nodes across goroutine hand-offs
// must hold a reference, per the package contract.
//
// Unlinking the node at the instantaneous tail cannot be distinguished from
// a tail publication that is linking a successor behind it, so the
// reclaimer and tail publishers must not chase the same node: either
// producers keep a reference on a node until it has a successor (the usual
// work-queue discipline, where work is handed over pre-referenced), or
// tail publication is quiescent while Sweep runs.
func (l *List[T]) Sweep(cleanup func(*Node[T])) int {
	reclaimed := 0
walk:
	for {
		var prev *Node[T]
		curr := l.head.Load()
		for curr != nil {
			next := curr.next.Load()
			if curr.removed.Load() && curr.refs.Load() == 0 {
				var unlinked bool
				if prev == nil {
					unlinked = l.head.CompareAndSwap(curr, next)
				} else {
					unlinked = prev.next.CompareAndSwap(curr, next)
				}
				if !unlinked {
					continue walk
				}
				if next != nil {
					next.prev.CompareAndSwap(curr, prev)
				} else {
					l.tail.CompareAndSwap(curr, prev)
				}
				curr.next.Store(nil)
				curr.prev.Store(nil)
				if cleanup != nil {
					cleanup(curr)
				}
				reclaimed++
				curr = next
				continue
			}
			prev = curr
			curr = next
		}
		return reclaimed
	}
}
