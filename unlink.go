// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist

// Delete immediately unlinks n from l and severs its links, regardless of
// the removed flag or the reference count. The caller must hold n
// exclusively: it was just popped or inserted by this goroutine, or the
// application synchronizes around it. Concretely, no other goroutine may be
// concurrently mutating either neighbor of n.
//
// Each link update is a single compare-and-swap; a failed swap means a
// concurrent structural operation already repaired that link and is
// accepted rather than retried.
func (l *List[T]) Delete(n *Node[T]) {
	l.detach(n)
	n.next.Store(nil)
	n.prev.Store(nil)
}

// detach splices n out of the chain without clearing n's own links.
func (l *List[T]) detach(n *Node[T]) {
	p := n.prev.Load()
	nx := n.next.Load()
	if p != nil {
		p.next.CompareAndSwap(n, nx)
	} else {
		l.head.CompareAndSwap(n, nx)
	}
	if nx != nil {
		nx.prev.CompareAndSwap(n, p)
	} else {
		l.tail.CompareAndSwap(n, p)
	}
}

// PopHead unlinks and returns the first node of l, or nil if l is empty.
// The returned node is not reclaimed; it belongs to the caller.
//
// Concurrent PopHead calls serialize on the head anchor. Popping the last
// remaining node while a publisher is linking a successor behind it is not
// safe (the successor can be orphaned); drain only after publication has
// quiesced, or keep at least one node resident while producers are active.
func (l *List[T]) PopHead() *Node[T] {
	for {
		h := l.head.Load()
		if h == nil {
			return nil
		}
		next := h.next.Load()
		if !l.head.CompareAndSwap(h, next) {
			continue
		}
		if next != nil {
			next.prev.CompareAndSwap(h, nil)
		} else {
			l.tail.CompareAndSwap(h, nil)
		}
		h.next.Store(nil)
		h.prev.Store(nil)
		return h
	}
}

// PopTail unlinks and returns the last node of l, or nil if l is empty.
//
// PopTail locates the predecessor of the tail by walking next links from
// the head, because prev links carry no publication guarantee while
// insertions are in flight. The walk makes PopTail O(n); this list is not
// built for high-throughput tail consumption. Under contention the walk
// restarts.
func (l *List[T]) PopTail() *Node[T] {
	for {
		t := l.tail.Load()
		if t == nil {
			return nil
		}
		h := l.head.Load()
		if h == t {
			if !l.head.CompareAndSwap(h, nil) {
				continue
			}
			l.tail.CompareAndSwap(t, nil)
			t.next.Store(nil)
			t.prev.Store(nil)
			return t
		}
		pred := h
		for {
			next := pred.next.Load()
			if next == t {
				break
			}
			if next == nil {
				// The chain changed under the walk; start over.
				pred = nil
				break
			}
			pred = next
		}
		if pred == nil {
			continue
		}
		if !l.tail.CompareAndSwap(t, pred) {
			continue
		}
		pred.next.CompareAndSwap(t, nil)
		t.next.Store(nil)
		t.prev.Store(nil)
		return t
	}
}

// Clear detaches the entire chain with a single swap of the head anchor and
// severs the links of every node that was on it. The removed flag and
// reference counts are ignored; the caller must know that no other
// goroutine holds any of the nodes.
func (l *List[T]) Clear() {
	for {
		h := l.head.Load()
		if h == nil {
			return
		}
		if !l.head.CompareAndSwap(h, nil) {
			continue
		}
		l.tail.Store(nil)
		for n := h; n != nil; {
			next := n.next.Load()
			n.next.Store(nil)
			n.prev.Store(nil)
			n = next
		}
		return
	}
}
