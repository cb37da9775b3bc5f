// SPDX-License-Identifier: MIT

package search

import "container/heap"

// frontierItem is one queued candidate. g carries the accumulated cost the
// candidate was pushed with; seq is the global insertion counter.
type frontierItem struct {
	node     string
	priority float64
	g        float64
	seq      uint64
}

// itemHeap is a min-heap keyed by (priority, seq).
// Equal priorities pop in insertion order, which keeps every informed
// search deterministic.
type itemHeap []*frontierItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*frontierItem)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// frontier wraps itemHeap with the sequence counter.
// Lazy decrease-key: a node may be queued many times; stale entries are
// skipped by the caller on pop.
type frontier struct {
	items itemHeap
	seq   uint64
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.items)

	return f
}

func (f *frontier) push(node string, priority, g float64) {
	heap.Push(&f.items, &frontierItem{node: node, priority: priority, g: g, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() *frontierItem {
	return heap.Pop(&f.items).(*frontierItem)
}

func (f *frontier) Len() int { return f.items.Len() }
