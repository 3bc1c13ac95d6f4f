package dfs

import (
	"fmt"

	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/seq"
	"github.com/katalvlaran/gonx/uhash"
)

// Tree runs a depth-first traversal of g from start and returns the
// traversal tree. See the package documentation for tree shape and the
// error surface.
func Tree(g *core.Graph, start core.NodeID, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}
	if !hasForwardEdge(g, start) {
		return nil, fmt.Errorf("%w: %d", ErrNoNeighbors, start)
	}

	treeOpts := []core.GraphOption{core.WithAllocator(o.alloc)}
	if g.Directed() {
		treeOpts = append(treeOpts, core.WithDirected())
	}
	tree, err := core.New(treeOpts...)
	if err != nil {
		return nil, err
	}
	seen, err := uhash.NewSet[core.NodeID](uhash.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	// parent holds the provisional parent of every stacked node. A node
	// pushed through several branches keeps the parent from the most
	// recent push, which is the branch that actually expands it.
	parent, err := uhash.NewDict[core.NodeID, core.NodeID](uhash.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	stack, err := seq.NewStack[core.NodeID](seq.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}

	if err = stack.Push(start); err != nil {
		return nil, err
	}
	for stack.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		u, _ := stack.Pop()
		if seen.Has(u) {
			continue
		}
		if _, err = seen.Add(u); err != nil {
			return nil, err
		}
		if o.onVisit != nil {
			if err = o.onVisit(u); err != nil {
				return nil, err
			}
		}
		if p, ok := parent.Get(u); ok {
			if _, err = tree.AddEdge(p, u); err != nil {
				return nil, err
			}
		}
		it, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for {
			w, _, ok := it.Next()
			if !ok {
				break
			}
			if w == u || seen.Has(w) {
				continue
			}
			if err = parent.Put(w, u); err != nil {
				return nil, err
			}
			if err = stack.Push(w); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

func hasForwardEdge(g *core.Graph, start core.NodeID) bool {
	it, err := g.Neighbors(start)
	if err != nil {
		return false
	}
	for {
		w, _, ok := it.Next()
		if !ok {
			return false
		}
		if w != start {
			return true
		}
	}
}
