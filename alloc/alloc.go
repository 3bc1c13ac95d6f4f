package alloc

import (
	"errors"
	"fmt"
)

// ErrNoMemory signals that an allocation budget has been exhausted.
// Operations that fail with ErrNoMemory guarantee that the structure
// they were mutating is unchanged.
var ErrNoMemory = errors.New("alloc: out of memory")

// Allocator meters allocation-like growth. Reserve is called with the
// number of units (buckets, cells, records) about to be allocated; a nil
// return permits the growth, ErrNoMemory forbids it.
type Allocator interface {
	Reserve(n int) error
}

// unlimited never fails a reservation.
type unlimited struct{}

func (unlimited) Reserve(int) error { return nil }

// Unlimited returns the default Allocator, which permits every reservation.
func Unlimited() Allocator { return unlimited{} }

// Budget is an Allocator with a finite number of permitted reservations.
// Each successful Reserve call consumes one unit of the budget regardless
// of n; when the budget reaches zero, every subsequent Reserve fails with
// ErrNoMemory. A negative limit means no limit.
//
// Counting calls rather than bytes mirrors how the allocation-failure
// tests probe each allocation site in turn: SetLimit(k) makes exactly the
// (k+1)-th reservation fail.
type Budget struct {
	remaining int
}

// NewBudget returns a Budget that permits limit reservations.
// A negative limit disables the budget.
func NewBudget(limit int) *Budget {
	return &Budget{remaining: limit}
}

// Reserve consumes one unit of the budget.
func (b *Budget) Reserve(n int) error {
	if n <= 0 {
		return fmt.Errorf("alloc: reserve of %d units", n)
	}
	if b.remaining < 0 {
		return nil
	}
	if b.remaining == 0 {
		return ErrNoMemory
	}
	b.remaining--
	return nil
}

// SetLimit resets the budget to permit limit further reservations.
func (b *Budget) SetLimit(limit int) { b.remaining = limit }

// Reset removes the limit entirely.
func (b *Budget) Reset() { b.remaining = -1 }

// Remaining reports how many reservations are left; negative means unlimited.
func (b *Budget) Remaining() int { return b.remaining }
