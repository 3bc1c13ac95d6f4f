package seq

import (
	"fmt"

	"github.com/katalvlaran/gonx/alloc"
)

// Queue is a FIFO queue over a circular buffer. head indexes the oldest
// element; the tail position is derived as (head+size) mod capacity.
// The zero value is not usable; construct with NewQueue.
type Queue[T any] struct {
	alloc alloc.Allocator
	cell  []T
	head  int
	size  int
}

// NewQueue returns an empty queue. The default capacity is 128 cells;
// WithCapacity overrides it (rounded up to a power of two).
func NewQueue[T any](opts ...Option) (*Queue[T], error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	capacity := defaultQueueCapacity
	if o.capacity > 0 {
		capacity = ceilPow2(o.capacity)
	}
	if err := o.alloc.Reserve(capacity); err != nil {
		return nil, fmt.Errorf("seq: queue cells: %w", err)
	}
	return &Queue[T]{
		alloc: o.alloc,
		cell:  make([]T, capacity),
	}, nil
}

// Append inserts v at the tail, wrapping around the buffer as needed.
// When the buffer is full it first doubles the capacity; a failed
// growth leaves the queue unchanged.
func (q *Queue[T]) Append(v T) error {
	if q.size == len(q.cell) {
		if err := q.grow(); err != nil {
			return err
		}
	}
	q.cell[(q.head+q.size)%len(q.cell)] = v
	q.size++
	return nil
}

// grow doubles the buffer and re-linearizes it so the head element
// moves to index 0.
func (q *Queue[T]) grow() error {
	newCap := 2 * len(q.cell)
	if err := q.alloc.Reserve(newCap); err != nil {
		return fmt.Errorf("seq: grow queue: %w", err)
	}
	cell := make([]T, newCap)
	n := copy(cell, q.cell[q.head:])
	copy(cell[n:], q.cell[:q.head])
	q.cell = cell
	q.head = 0
	return nil
}

// Pop removes and returns the head element; ok is false on an empty
// queue.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.size == 0 {
		return v, false
	}
	v = q.cell[q.head]
	var zero T
	q.cell[q.head] = zero
	q.head = (q.head + 1) % len(q.cell)
	q.size--
	return v, true
}

// Peek returns the head element without removing it; ok is false on an
// empty queue.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.size == 0 {
		return v, false
	}
	return q.cell[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the current cell count of the backing buffer.
func (q *Queue[T]) Cap() int { return len(q.cell) }
