// Package searcher implements the bounded candidate queue used by k-nearest
// queries.
package searcher

import (
	"github.com/nh2/kdt/distance"
)

// Item represents a candidate in the queue.
// Value-based (no pointers) for cache locality and zero allocations.
type Item[A distance.Number, T any] struct {
	Value    T // Value is the payload of the candidate.
	Distance A // Distance is the priority of the candidate in the queue.
}

// Queue is a binary max-heap of Items keyed by Distance: the worst retained
// candidate sits on top. It does NOT implement container/heap to avoid
// interface overhead.
type Queue[A distance.Number, T any] struct {
	items []Item[A, T]
}

// New creates a queue with capacity preallocated.
func New[A distance.Number, T any](capacity int) *Queue[A, T] {
	return &Queue[A, T]{
		items: make([]Item[A, T], 0, capacity),
	}
}

// Reset clears the queue for reuse.
func (q *Queue[A, T]) Reset() {
	q.items = q.items[:0]
}

// Len returns the number of candidates in the queue.
func (q *Queue[A, T]) Len() int {
	return len(q.items)
}

// Top returns the worst retained candidate without removing it.
func (q *Queue[A, T]) Top() (Item[A, T], bool) {
	if len(q.items) == 0 {
		return Item[A, T]{}, false
	}
	return q.items[0], true
}

// Push inserts a candidate while maintaining the heap invariant.
func (q *Queue[A, T]) Push(item Item[A, T]) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// PushBounded inserts a candidate into a heap bounded at capacity.
// If the heap is full and the candidate is no better than the current worst,
// it is skipped; otherwise it replaces the worst.
func (q *Queue[A, T]) PushBounded(item Item[A, T], capacity int) {
	if len(q.items) < capacity {
		q.Push(item)
		return
	}
	if item.Distance < q.items[0].Distance {
		q.items[0] = item
		q.siftDown(0)
	}
}

// Pop removes and returns the worst retained candidate.
func (q *Queue[A, T]) Pop() (Item[A, T], bool) {
	n := len(q.items)
	if n == 0 {
		return Item[A, T]{}, false
	}

	item := q.items[0]
	q.items[0] = q.items[n-1]
	q.items = q.items[:n-1]

	if len(q.items) > 0 {
		q.siftDown(0)
	}

	return item, true
}

func (q *Queue[A, T]) less(i, j int) bool {
	return q.items[i].Distance > q.items[j].Distance // max-heap
}

func (q *Queue[A, T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// siftUp moves the element at index i up the heap until the heap invariant
// is restored.
func (q *Queue[A, T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves the element at index i down the heap until the heap
// invariant is restored.
func (q *Queue[A, T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && q.less(right, left) {
			child = right
		}
		if !q.less(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}
