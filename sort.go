// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist

import (
	"cmp"

	"github.com/addrummond/heap"
)

// sortEntry orders nodes by key, falling back to the position each node
// held before the sort. The fallback makes the sort stable even though the
// heap itself is not.
type sortEntry[T any, K cmp.Ordered] struct {
	key  K
	seq  int
	node *Node[T]
	desc bool
}

func (a *sortEntry[T, K]) Cmp(b *sortEntry[T, K]) int {
	c := cmp.Compare(a.key, b.key)
	if a.desc {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// SortAsc rebuilds l in ascending order of the field accessor, keeping the
// prior relative order of equal keys. Removed nodes are kept and sorted
// like any other. Sorting assumes quiescence: no concurrent mutation of l
// is allowed while it runs. A free function because the key type is chosen
// at the call site.
func SortAsc[T any, K cmp.Ordered](l *List[T], field func(*T) K) {
	sortByField(l, field, false)
}

// SortDesc is [SortAsc] with the key order reversed; ties keep their prior
// relative order.
func SortDesc[T any, K cmp.Ordered](l *List[T], field func(*T) K) {
	sortByField(l, field, true)
}

func sortByField[T any, K cmp.Ordered](l *List[T], field func(*T) K, desc bool) {
	var h heap.Heap[sortEntry[T, K], heap.Min]
	seq := 0
	for n := l.head.Load(); n != nil; n = n.next.Load() {
		heap.PushOrderable(&h, sortEntry[T, K]{
			key:  field(&n.Value),
			seq:  seq,
			node: n,
			desc: desc,
		})
		seq++
	}

	var head, tail *Node[T]
	for {
		e, ok := heap.PopOrderable(&h)
		if !ok {
			break
		}
		n := e.node
		n.prev.Store(tail)
		n.next.Store(nil)
		if tail != nil {
			tail.next.Store(n)
		} else {
			head = n
		}
		tail = n
	}
	l.head.Store(head)
	l.tail.Store(tail)
}
