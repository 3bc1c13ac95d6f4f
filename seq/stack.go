package seq

import (
	"fmt"

	"github.com/katalvlaran/gonx/alloc"
)

// Stack is a LIFO stack over a growable array. The zero value is not
// usable; construct with NewStack.
type Stack[T any] struct {
	alloc alloc.Allocator
	cell  []T
}

// NewStack returns an empty stack. The minimum (and default) capacity
// is 2 elements.
func NewStack[T any](opts ...Option) (*Stack[T], error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	capacity := o.capacity
	if capacity < minStackCapacity {
		capacity = minStackCapacity
	}
	if err := o.alloc.Reserve(capacity); err != nil {
		return nil, fmt.Errorf("seq: stack cells: %w", err)
	}
	return &Stack[T]{
		alloc: o.alloc,
		cell:  make([]T, 0, capacity),
	}, nil
}

// Push places v on top of the stack, doubling the backing array when
// full; a failed growth leaves the stack unchanged.
func (s *Stack[T]) Push(v T) error {
	if len(s.cell) == cap(s.cell) {
		newCap := 2 * cap(s.cell)
		if err := s.alloc.Reserve(newCap); err != nil {
			return fmt.Errorf("seq: grow stack: %w", err)
		}
		cell := make([]T, len(s.cell), newCap)
		copy(cell, s.cell)
		s.cell = cell
	}
	s.cell = append(s.cell, v)
	return nil
}

// Pop removes and returns the top element; ok is false on an empty
// stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.cell) == 0 {
		return v, false
	}
	v = s.cell[len(s.cell)-1]
	s.cell = s.cell[:len(s.cell)-1]
	return v, true
}

// Peek returns the top element without removing it; ok is false on an
// empty stack.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.cell) == 0 {
		return v, false
	}
	return s.cell[len(s.cell)-1], true
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return len(s.cell) }
