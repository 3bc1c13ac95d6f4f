package core

// AddEdge inserts the unweighted edge (u, v), creating either endpoint
// that does not yet exist. It reports true when the edge was inserted,
// false when it already existed or is a self-loop on a graph that
// forbids them. On a weighted graph it fails with ErrWeightedGraph.
//
// When insertion fails partway through, any nodes created for this call
// are removed again before the error is returned.
func (g *Graph) AddEdge(u, v NodeID) (bool, error) {
	if g.weighted {
		return false, ErrWeightedGraph
	}
	return g.addEdge(u, v, 0)
}

// AddEdgeWeight inserts the edge (u, v) with weight w, creating missing
// endpoints like AddEdge. On an unweighted graph it fails with
// ErrUnweightedGraph. Inserting an edge that already exists reports
// false and leaves the stored weight untouched.
func (g *Graph) AddEdgeWeight(u, v NodeID, w float64) (bool, error) {
	if !g.weighted {
		return false, ErrUnweightedGraph
	}
	return g.addEdge(u, v, w)
}

func (g *Graph) addEdge(u, v NodeID, w float64) (bool, error) {
	if u >= MaxNodeID || v >= MaxNodeID {
		return false, ErrNodeRange
	}
	if u == v && !g.selfLoops {
		return false, nil
	}
	if g.hasEdge(u, v) {
		return false, nil
	}

	createdU, err := g.AddNode(u)
	if err != nil {
		return false, err
	}
	createdV := false
	if v != u {
		createdV, err = g.AddNode(v)
		if err != nil {
			g.rollbackNodes(createdU, u, false, 0)
			return false, err
		}
	}

	ru, _ := g.nodes.Get(u)
	if _, err := ru.out.add(v, w); err != nil {
		g.rollbackNodes(createdU, u, createdV, v)
		return false, err
	}
	if g.directed {
		rv, _ := g.nodes.Get(v)
		if _, err := rv.in.Add(u); err != nil {
			ru.out.delete(v)
			g.rollbackNodes(createdU, u, createdV, v)
			return false, err
		}
	} else if v != u {
		rv, _ := g.nodes.Get(v)
		if _, err := rv.out.add(u, w); err != nil {
			ru.out.delete(v)
			g.rollbackNodes(createdU, u, createdV, v)
			return false, err
		}
	}
	g.edges++
	return true, nil
}

// rollbackNodes undoes node auto-creation after a failed edge insert.
// The records are still edge-free at every call site, so DeleteNode
// reduces to dropping the table entry.
func (g *Graph) rollbackNodes(createdU bool, u NodeID, createdV bool, v NodeID) {
	if createdU {
		g.nodes.Delete(u)
	}
	if createdV {
		g.nodes.Delete(v)
	}
}

// DeleteEdge removes the edge (u, v), reporting whether it existed.
// The endpoints stay in the graph even when the edge was their last.
func (g *Graph) DeleteEdge(u, v NodeID) bool {
	if !g.hasEdge(u, v) {
		return false
	}
	ru, _ := g.nodes.Get(u)
	ru.out.delete(v)
	if g.directed {
		rv, _ := g.nodes.Get(v)
		rv.in.Delete(u)
	} else if v != u {
		rv, _ := g.nodes.Get(v)
		rv.out.delete(u)
	}
	g.edges--
	return true
}

// HasEdge reports whether the edge (u, v) exists. On undirected graphs
// the order of u and v does not matter.
func (g *Graph) HasEdge(u, v NodeID) bool { return g.hasEdge(u, v) }

func (g *Graph) hasEdge(u, v NodeID) bool {
	if u == v && !g.selfLoops {
		return false
	}
	ru, ok := g.nodes.Get(u)
	if !ok || !g.nodes.Has(v) {
		return false
	}
	return ru.out.has(v)
}

// EdgeWeight returns the weight stored on the edge (u, v). It fails
// with ErrUnweightedGraph on unweighted graphs and ErrEdgeNotFound when
// the edge is absent.
func (g *Graph) EdgeWeight(u, v NodeID) (float64, error) {
	if !g.weighted {
		return 0, ErrUnweightedGraph
	}
	ru, ok := g.nodes.Get(u)
	if !ok || !g.nodes.Has(v) {
		return 0, ErrEdgeNotFound
	}
	w, ok := ru.out.weight(v)
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return w, nil
}

// Degree returns the number of edges incident to v on an undirected
// graph. A self-loop contributes exactly 1.
func (g *Graph) Degree(v NodeID) (int, error) {
	if g.directed {
		return 0, ErrDirectedGraph
	}
	rec, ok := g.nodes.Get(v)
	if !ok {
		return 0, ErrNodeNotFound
	}
	return rec.out.len(), nil
}

// OutDegree returns the number of edges leaving v on a directed graph.
func (g *Graph) OutDegree(v NodeID) (int, error) {
	if !g.directed {
		return 0, ErrUndirectedGraph
	}
	rec, ok := g.nodes.Get(v)
	if !ok {
		return 0, ErrNodeNotFound
	}
	return rec.out.len(), nil
}

// InDegree returns the number of edges entering v on a directed graph.
func (g *Graph) InDegree(v NodeID) (int, error) {
	if !g.directed {
		return 0, ErrUndirectedGraph
	}
	rec, ok := g.nodes.Get(v)
	if !ok {
		return 0, ErrNodeNotFound
	}
	return rec.in.Len(), nil
}

// NeighborIter walks the forward neighborhood of one node: the full
// neighborhood on undirected graphs, the out-neighbors on directed
// ones. Weight is 0 for every edge of an unweighted graph.
type NeighborIter struct {
	cur neighborCursor
}

// Neighbors returns a one-shot iterator over the neighbors of v.
func (g *Graph) Neighbors(v NodeID) (NeighborIter, error) {
	rec, ok := g.nodes.Get(v)
	if !ok {
		return NeighborIter{}, ErrNodeNotFound
	}
	return NeighborIter{cur: rec.out.iter()}, nil
}

// Next yields the next neighbor and its edge weight, or ok=false when
// the walk is done.
func (i *NeighborIter) Next() (v NodeID, w float64, ok bool) {
	return i.cur.next()
}
