package order

import (
	"errors"

	"github.com/katalvlaran/gonx/alloc"
	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/query"
)

// Mode selects how PreOrder and PostOrder walk the children of a node.
type Mode int

const (
	// DefaultOrder visits neighbors in iteration order. Cheapest, but
	// the resulting sequence is not reproducible.
	DefaultOrder Mode = iota

	// SortedOrder visits children in ascending node ID, making the
	// ordering deterministic for a given tree and root.
	SortedOrder
)

// Sentinel errors for tree orderings.
var (
	// ErrGraphNil is returned if a nil tree pointer is passed.
	ErrGraphNil = errors.New("order: tree is nil")

	// ErrNotTree is returned when the graph is not an undirected tree.
	ErrNotTree = errors.New("order: graph is not a tree")

	// ErrRootNotFound is returned when the root ID is absent.
	ErrRootNotFound = errors.New("order: root node not found")

	// ErrBadMode is returned for a Mode outside the defined values.
	ErrBadMode = errors.New("order: unknown neighbor ordering mode")
)

// Option configures an ordering via functional arguments.
type Option func(*options)

type options struct {
	alloc alloc.Allocator
}

func defaultOptions() options {
	return options{alloc: alloc.Unlimited()}
}

// WithAllocator meters the ordering's scratch state and result storage.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// validateTree rejects anything that is not an undirected tree holding
// the root. Directed graphs count as non-trees here.
func validateTree(tree *core.Graph, root core.NodeID, o *options) error {
	if tree == nil {
		return ErrGraphNil
	}
	ok, err := query.IsTree(tree, query.WithAllocator(o.alloc))
	if errors.Is(err, query.ErrDirectedGraph) {
		return ErrNotTree
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotTree
	}
	if !tree.HasNode(root) {
		return ErrRootNotFound
	}
	return nil
}
