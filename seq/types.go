package seq

import "github.com/katalvlaran/gonx/alloc"

const (
	// defaultQueueCapacity is the initial cell count of a Queue.
	defaultQueueCapacity = 128

	// minStackCapacity is the smallest backing array of a Stack.
	minStackCapacity = 2
)

// Option configures a Queue or Stack at construction time.
type Option func(*options)

type options struct {
	alloc    alloc.Allocator
	capacity int
}

func defaultOptions() options {
	return options{
		alloc:    alloc.Unlimited(),
		capacity: 0,
	}
}

// WithAllocator meters the container's growth through a.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithCapacity sets the initial capacity. Values below the container's
// minimum are raised to it; the Queue rounds up to a power of two.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// ceilPow2 returns the least power of two >= n, with a floor of 1.
func ceilPow2(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}
