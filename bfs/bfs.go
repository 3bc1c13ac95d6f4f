package bfs

import (
	"fmt"

	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/seq"
	"github.com/katalvlaran/gonx/uhash"
)

// visit pairs a queued node with its distance from the start.
type visit struct {
	id    core.NodeID
	depth int
}

// Tree runs a breadth-first traversal of g from start and returns the
// traversal tree: a graph with the same directedness as g, unweighted
// and loop-free, holding one (parent, child) edge per node discovered.
//
// Tree fails with ErrStartNodeNotFound when start is absent and with
// ErrNoNeighbors when start has no forward edge besides a possible
// self-loop. Allocation failures from the configured allocator abort
// the traversal with alloc.ErrNoMemory.
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
	queue, err := seq.NewQueue[visit](seq.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}

	if _, err = seen.Add(start); err != nil {
		return nil, err
	}
	if err = queue.Append(visit{id: start}); err != nil {
		return nil, err
	}

	for queue.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		u, _ := queue.Pop()
		if o.onVisit != nil {
			if err = o.onVisit(u.id, u.depth); err != nil {
				return nil, err
			}
		}
		it, err := g.Neighbors(u.id)
		if err != nil {
			return nil, err
		}
		for {
			w, _, ok := it.Next()
			if !ok {
				break
			}
			if w == u.id || seen.Has(w) {
				continue
			}
			if _, err = seen.Add(w); err != nil {
				return nil, err
			}
			if _, err = tree.AddEdge(u.id, w); err != nil {
				return nil, err
			}
			if err = queue.Append(visit{id: w, depth: u.depth + 1}); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

// hasForwardEdge reports whether start has at least one neighbor other
// than itself.
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
