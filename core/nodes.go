package core

import "github.com/katalvlaran/gonx/uhash"

// AddNode inserts v as an isolated node. It reports true when the node
// was inserted and false when it already existed. IDs at or above
// MaxNodeID are rejected with ErrNodeRange.
func (g *Graph) AddNode(v NodeID) (bool, error) {
	if v >= MaxNodeID {
		return false, ErrNodeRange
	}
	if g.nodes.Has(v) {
		return false, nil
	}
	rec, err := g.newRecord()
	if err != nil {
		return false, err
	}
	added, err := g.nodes.Add(v, rec)
	if err != nil {
		return false, err
	}
	return added, nil
}

// HasNode reports whether v is in the graph.
func (g *Graph) HasNode(v NodeID) bool { return g.nodes.Has(v) }

// DeleteNode removes v together with every edge incident to it,
// reporting whether the node existed. Deletion never allocates and
// therefore never fails.
func (g *Graph) DeleteNode(v NodeID) bool {
	rec, ok := g.nodes.Get(v)
	if !ok {
		return false
	}
	if g.directed {
		// Scrub v from the in-sets of its successors first; when v has a
		// self-loop this also drops v from its own in-set, so the pass
		// over predecessors below sees the loop exactly once.
		removed := rec.out.len()
		for it := rec.out.iter(); ; {
			w, _, ok := it.next()
			if !ok {
				break
			}
			if other, ok := g.nodes.Get(w); ok {
				other.in.Delete(v)
			}
		}
		removed += rec.in.Len()
		for it := rec.in.Iter(); ; {
			w, ok := it.Next()
			if !ok {
				break
			}
			if other, ok := g.nodes.Get(w); ok {
				other.out.delete(v)
			}
		}
		g.edges -= removed
	} else {
		removed := rec.out.len()
		for it := rec.out.iter(); ; {
			w, _, ok := it.next()
			if !ok {
				break
			}
			if w == v {
				continue
			}
			if other, ok := g.nodes.Get(w); ok {
				other.out.delete(v)
			}
		}
		g.edges -= removed
	}
	g.nodes.Delete(v)
	return true
}

// AnyNode returns an arbitrary node. Which node is unspecified but
// deterministic for a given graph state.
func (g *Graph) AnyNode() (NodeID, error) {
	if g.nodes.Len() == 0 {
		return 0, ErrEmptyGraph
	}
	return g.nodes.Any(), nil
}

// RandomNode returns a node chosen uniformly at random among the live
// nodes, driven by the graph RNG.
func (g *Graph) RandomNode() (NodeID, error) {
	if g.nodes.Len() == 0 {
		return 0, ErrEmptyGraph
	}
	return g.nodes.Random(), nil
}

// NodeIter walks the node set in table order. Mutating the graph while
// iterating is undefined.
type NodeIter struct {
	it uhash.DictIter[NodeID, *record]
}

// Nodes returns a one-shot iterator over every node.
func (g *Graph) Nodes() NodeIter {
	return NodeIter{it: g.nodes.Iter()}
}

// Next yields the next node, or ok=false when the walk is done.
func (i *NodeIter) Next() (NodeID, bool) {
	v, _, ok := i.it.Next()
	return v, ok
}
