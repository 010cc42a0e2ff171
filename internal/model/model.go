// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package model provides a sequential reference model of the list surface
// for use by property-based test suites. The model is deliberately naive: a
// deque of plain records, mutated under no concurrency, against which the
// real structure is diffed after every step.
package model

import (
	"cmp"
	"slices"

	"github.com/gammazero/deque"
)

// modelError is a string error type so the package's errors can be declared
// as constants.
type modelError string

func (e modelError) Error() string {
	return string(e)
}

const ErrUnknownNode = modelError("model: unknown node id")
const ErrEmpty = modelError("model: list is empty")

// Node is the model's record of one list element.
type Node struct {
	ID      int64
	Removed bool
	Refs    int64
}

// List is the sequential reference model. The zero value is empty and ready
// to use.
type List struct {
	nodes deque.Deque[*Node]
}

func (l *List) Len() int {
	return l.nodes.Len()
}

func (l *List) PushHead(id int64) {
	l.nodes.PushFront(&Node{ID: id})
}

func (l *List) PushTail(id int64) {
	l.nodes.PushBack(&Node{ID: id})
}

func (l *List) index(id int64) int {
	return l.nodes.Index(func(n *Node) bool { return n.ID == id })
}

func (l *List) get(id int64) (*Node, error) {
	i := l.index(id)
	if i < 0 {
		return nil, ErrUnknownNode
	}
	return l.nodes.At(i), nil
}

func (l *List) MarkRemoved(id int64) error {
	n, err := l.get(id)
	if err != nil {
		return err
	}
	n.Removed = true
	return nil
}

func (l *List) SetRefs(id int64, refs int64) error {
	n, err := l.get(id)
	if err != nil {
		return err
	}
	n.Refs = refs
	return nil
}

func (l *List) Delete(id int64) error {
	i := l.index(id)
	if i < 0 {
		return ErrUnknownNode
	}
	l.nodes.Remove(i)
	return nil
}

func (l *List) PopHead() (*Node, error) {
	if l.nodes.Len() == 0 {
		return nil, ErrEmpty
	}
	return l.nodes.PopFront(), nil
}

func (l *List) PopTail() (*Node, error) {
	if l.nodes.Len() == 0 {
		return nil, ErrEmpty
	}
	return l.nodes.PopBack(), nil
}

// Sweep removes every node that is marked removed with zero refs and
// returns the removed records in walk order.
func (l *List) Sweep() []*Node {
	var reclaimed []*Node
	kept := make([]*Node, 0, l.nodes.Len())
	for l.nodes.Len() > 0 {
		n := l.nodes.PopFront()
		if n.Removed && n.Refs == 0 {
			reclaimed = append(reclaimed, n)
		} else {
			kept = append(kept, n)
		}
	}
	for _, n := range kept {
		l.nodes.PushBack(n)
	}
	return reclaimed
}

func (l *List) Clear() {
	l.nodes.Clear()
}

func (l *List) CountLive() int {
	count := 0
	for i := 0; i < l.nodes.Len(); i++ {
		if !l.nodes.At(i).Removed {
			count++
		}
	}
	return count
}

func (l *List) CountPending() int {
	count := 0
	for i := 0; i < l.nodes.Len(); i++ {
		n := l.nodes.At(i)
		if n.Removed && n.Refs > 0 {
			count++
		}
	}
	return count
}

// Find returns the first live node with the given id, or nil.
func (l *List) Find(id int64) *Node {
	for i := 0; i < l.nodes.Len(); i++ {
		n := l.nodes.At(i)
		if !n.Removed && n.ID == id {
			return n
		}
	}
	return nil
}

func (l *List) MoveBefore(anchorID, id int64) error {
	if anchorID == id {
		return nil
	}
	i := l.index(id)
	if i < 0 {
		return ErrUnknownNode
	}
	n := l.nodes.Remove(i)
	j := l.index(anchorID)
	if j < 0 {
		l.nodes.Insert(i, n)
		return ErrUnknownNode
	}
	l.nodes.Insert(j, n)
	return nil
}

func (l *List) MoveAfter(anchorID, id int64) error {
	if anchorID == id {
		return nil
	}
	i := l.index(id)
	if i < 0 {
		return ErrUnknownNode
	}
	n := l.nodes.Remove(i)
	j := l.index(anchorID)
	if j < 0 {
		l.nodes.Insert(i, n)
		return ErrUnknownNode
	}
	l.nodes.Insert(j+1, n)
	return nil
}

func (l *List) SortAsc() {
	l.sortByID(false)
}

func (l *List) SortDesc() {
	l.sortByID(true)
}

func (l *List) sortByID(desc bool) {
	nodes := make([]*Node, 0, l.nodes.Len())
	for l.nodes.Len() > 0 {
		nodes = append(nodes, l.nodes.PopFront())
	}
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		c := cmp.Compare(a.ID, b.ID)
		if desc {
			c = -c
		}
		return c
	})
	for _, n := range nodes {
		l.nodes.PushBack(n)
	}
}

// All returns the ids of every node, in list order.
func (l *List) All() []int64 {
	ids := make([]int64, 0, l.nodes.Len())
	for i := 0; i < l.nodes.Len(); i++ {
		ids = append(ids, l.nodes.At(i).ID)
	}
	return ids
}

// Live returns the ids of the non-removed nodes, in list order.
func (l *List) Live() []int64 {
	var ids []int64
	for i := 0; i < l.nodes.Len(); i++ {
		n := l.nodes.At(i)
		if !n.Removed {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
