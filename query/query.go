package query

import (
	"errors"

	"github.com/katalvlaran/gonx/alloc"
	"github.com/katalvlaran/gonx/bfs"
	"github.com/katalvlaran/gonx/core"
)

// Sentinel errors for structural queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("query: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; connectivity
	// here means the undirected kind.
	ErrDirectedGraph = errors.New("query: operation requires an undirected graph")
)

// Option configures a query via functional arguments.
type Option func(*options)

type options struct {
	alloc alloc.Allocator
}

// WithAllocator meters the scratch state of the underlying traversal.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// IsConnected reports whether every node of g reaches every other one.
// The empty graph is not connected; a single node is.
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	o := options{alloc: alloc.Unlimited()}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, ErrDirectedGraph
	}
	n := g.NodeCount()
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	start, err := g.AnyNode()
	if err != nil {
		return false, err
	}
	tree, err := bfs.Tree(g, start, bfs.WithAllocator(o.alloc))
	if errors.Is(err, bfs.ErrNoNeighbors) {
		// More than one node and the probe cannot leave its corner.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return tree.NodeCount() == n, nil
}

// IsTree reports whether g is a tree: non-empty, connected, and with
// exactly one edge fewer than it has nodes. A self-loop breaks the
// edge-count condition, so no graph with one is a tree.
func IsTree(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, ErrDirectedGraph
	}
	n := g.NodeCount()
	if n == 0 || g.EdgeCount() != n-1 {
		return false, nil
	}
	return IsConnected(g, opts...)
}
