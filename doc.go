// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package rclist provides a concurrent, intrusive doubly-linked list with
// non-blocking publication, logical removal, and reference-count-gated
// reclamation. It is intended as an embeddable primitive for work queues in
// which producers, in-place iterators, and a reclaimer all operate on the
// same list without a shared mutex.
//
// A [List] is a pair of atomic head/tail anchors; a [Node] carries its own
// atomic links, a monotonic removed flag, a reference count, and a
// caller-defined payload. All coordination is performed with atomic loads
// and compare-and-swap operations on those fields. No operation blocks,
// sleeps, or yields.
//
// # Two-Phase Removal
//
// Taking an element out of service is split into two independent steps:
//
//  1. [Node.MarkRemoved] sets the removed flag. This is a single atomic
//     store with no structural effect. It is idempotent, never reverts, and
//     is safe to call from any goroutine that holds a reference to the
//     node, including from inside a live iteration.
//
//  2. [List.Sweep] walks the list and physically unlinks every node that is
//     both marked removed and has a zero reference count, invoking an
//     optional cleanup callback for each.
//
// The split exists so that removal stays cheap and callable while other
// goroutines still hold the node, while Sweep remains the single place
// where "safe to reclaim" is decided.
//
// # Reference Counts
//
// The count maintained through [Node.Ref] and [Node.Unref] belongs to the
// application, not to the list: a goroutine that intends to use a node it
// did not just insert or pop must increment before dereferencing and
// decrement when done. The list's only obligation is that Sweep will not
// reclaim a node whose count is non-zero. [List.Delete], [List.PopHead],
// [List.PopTail], and [List.Clear] bypass the count by contract; their
// callers must know that no other holder exists.
//
// # Live Iteration
//
// [List.Live] returns an [Iterator] that visits only nodes whose removed
// flag is unset. At each step the iterator loads the successor link before
// it inspects the current node, so the loop body may mark or even delete
// the node it is visiting without losing its position. Nodes inserted at
// the head after iteration began are not observed; nodes inserted at the
// tail are observed only if iteration has not yet passed that point.
//
// # What This List Is Not
//
// The list is not a linearizable MPMC queue (tail publication is a
// two-step compare-and-swap sequence, see [List.PushTailNode]) and none of
// its operations are wait-free. There is no hazard-pointer or epoch scheme;
// the reference-count discipline above is the reclamation protocol.
// [List.MoveBefore], [List.MoveAfter], [SortAsc], and [SortDesc] are
// utility operations that assume quiescence on the affected region.
package rclist
