// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rclist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	rclist "github.com/petenewcomb/rclist-go"
)

// Sweeping reclaims a removed zero-ref node exactly once, through the
// cleanup callback.
func TestSweepReclaims(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2, 3)
	nodes[1].MarkRemoved()

	var cleaned []int64
	reclaimed := l.Sweep(func(n *rclist.Node[item]) {
		cleaned = append(cleaned, n.Value.id)
	})
	chk.Equal(1, reclaimed)
	chk.Equal([]int64{2}, cleaned)
	chk.Equal([]int64{1, 3}, ids(l))
	chk.Equal([]int64{3, 1}, reverseIDs(l))
}

func TestSweepNilCleanup(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2)
	nodes[0].MarkRemoved()
	chk.Equal(1, l.Sweep(nil))
	chk.Equal([]int64{2}, ids(l))
}

// A removed node with outstanding references is pending, not reclaimable;
// dropping the count makes the next sweep take it.
func TestSweepHonorsRefcount(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2, 3)

	nodes[1].MarkRemoved()
	nodes[1].Ref()
	chk.Equal(1, l.CountPending())

	chk.Zero(l.Sweep(nil))
	chk.Equal([]int64{1, 2, 3}, ids(l))

	nodes[1].Unref()
	chk.Equal(1, l.Sweep(nil))
	chk.Equal([]int64{1, 3}, ids(l))
	chk.Zero(l.CountPending())
}

// Sweep never reclaims a node that is live or still referenced.
func TestSweepEligibilityOnly(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2, 3, 4)

	nodes[1].MarkRemoved() // eligible
	nodes[2].Ref()         // live and referenced
	nodes[3].MarkRemoved()
	nodes[3].Ref() // removed but referenced

	chk.Equal(1, l.Sweep(func(n *rclist.Node[item]) {
		chk.True(n.Removed())
		chk.Zero(n.Refs())
	}))
	chk.Equal([]int64{1, 3, 4}, ids(l))
}

// A sweep that reclaims every node leaves the anchors empty.
func TestSweepAll(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2, 3)
	for _, n := range nodes {
		n.MarkRemoved()
	}
	chk.Equal(3, l.Sweep(nil))
	chk.Nil(l.Head())
	chk.Nil(l.Tail())
	chk.Zero(l.Sweep(nil))
}

// Cleanup runs in walk order, head to tail.
func TestSweepCleanupOrder(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2, 3, 4, 5)
	nodes[0].MarkRemoved()
	nodes[2].MarkRemoved()
	nodes[4].MarkRemoved()

	var cleaned []int64
	chk.Equal(3, l.Sweep(func(n *rclist.Node[item]) {
		cleaned = append(cleaned, n.Value.id)
	}))
	chk.Equal([]int64{1, 3, 5}, cleaned)
	chk.Equal([]int64{2, 4}, ids(l))
}

// Round-trip: insert, mark, sweep restores the pre-insert structure.
func TestInsertMarkSweepRoundTrip(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	pushTailAll(l, 1, 2)
	before := ids(l)

	n := l.PushTail(item{id: 99})
	n.MarkRemoved()
	chk.Equal(1, l.Sweep(nil))
	chk.Equal(before, ids(l))
	chk.Equal([]int64{2, 1}, reverseIDs(l))
}

// count_live + removed (pending or reclaimable) accounts for every node.
func TestCountAccounting(t *testing.T) {
	chk := require.New(t)
	l := rclist.New[item]()
	nodes := pushTailAll(l, 1, 2, 3, 4, 5)

	nodes[1].MarkRemoved()
	nodes[3].MarkRemoved()
	nodes[3].Ref()

	total := len(ids(l))
	removedTotal := 0
	for n := l.Head(); n != nil; n = n.Next() {
		if n.Removed() {
			removedTotal++
		}
	}
	chk.Equal(total, l.CountLive()+removedTotal)
	chk.Equal(1, l.CountPending())
}
