package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gonx/alloc"
	"github.com/katalvlaran/gonx/core"
)

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrNoNeighbors is returned when the start node has no forward
	// edge to follow: it is isolated or carries only a self-loop.
	ErrNoNeighbors = errors.New("bfs: start node has no neighbors")
)

// Option configures a traversal via functional arguments.
type Option func(*options)

type options struct {
	ctx     context.Context
	alloc   alloc.Allocator
	onVisit func(id core.NodeID, depth int) error
}

func defaultOptions() options {
	return options{
		ctx:   context.Background(),
		alloc: alloc.Unlimited(),
	}
}

// WithContext sets a context checked once per dequeued node, allowing
// cancellation of long traversals.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithAllocator meters the traversal's scratch state (queue, seen-set)
// and the result tree through a. Defaults to alloc.Unlimited().
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithOnVisit registers a callback invoked when a node is dequeued,
// with its depth in edges from the start. Returning an error aborts
// the traversal and propagates that error.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}
