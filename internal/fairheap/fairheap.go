// Package fairheap provides a score-ordered collection with a soft size
// limit that never splits ties. Keeping the "top N" of a ranking is
// unfair when the Nth and N+1th entries scored the same, so eviction
// drops the whole lowest-scoring group or nothing at all.
package fairheap

import (
	"cmp"
	"container/heap"
	"sort"
)

// Entry pairs an item with its score.
type Entry[T cmp.Ordered] struct {
	Score float64
	Item  T
}

type entryHeap[T cmp.Ordered] []Entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Item < h[j].Item
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) {
	*h = append(*h, x.(Entry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Collection is a min-heap of scored items bounded by a soft limit.
// After each push, the entire group of entries tied at the minimum
// score is evicted, but only if at least softLimit entries remain
// afterwards. The collection can therefore exceed its limit when the
// tail is one big tie.
type Collection[T cmp.Ordered] struct {
	softLimit int
	entries   entryHeap[T]
}

// New returns an empty collection holding about softLimit entries.
// Limits below one are treated as one.
func New[T cmp.Ordered](softLimit int) *Collection[T] {
	if softLimit < 1 {
		softLimit = 1
	}
	return &Collection[T]{softLimit: softLimit}
}

// Push adds item with score and then applies the eviction rule.
func (c *Collection[T]) Push(item T, score float64) {
	heap.Push(&c.entries, Entry[T]{Score: score, Item: item})
	if len(c.entries) <= c.softLimit {
		return
	}
	lowest := c.entries[0].Score
	ties := 0
	for _, e := range c.entries {
		if e.Score == lowest {
			ties++
		}
	}
	if len(c.entries)-ties >= c.softLimit {
		for i := 0; i < ties; i++ {
			heap.Pop(&c.entries)
		}
	}
}

// Pop removes and returns the lowest-scored entry. It panics when the
// collection is empty; check Len first.
func (c *Collection[T]) Pop() Entry[T] {
	return heap.Pop(&c.entries).(Entry[T])
}

func (c *Collection[T]) Len() int {
	return len(c.entries)
}

// SortedList returns the entries in ascending score order, ties broken
// by item. The collection is left untouched.
func (c *Collection[T]) SortedList() []Entry[T] {
	out := make([]Entry[T], len(c.entries))
	copy(out, c.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Item < out[j].Item
	})
	return out
}
