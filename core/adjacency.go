package core

import "github.com/katalvlaran/gonx/uhash"

// neighbors abstracts the per-node adjacency collection so that the rest
// of the package is agnostic to the weighted axis. Unweighted graphs back
// it with a Set, weighted graphs with a Dict keyed on the neighbor.
type neighbors interface {
	add(v NodeID, w float64) (bool, error)
	delete(v NodeID) bool
	has(v NodeID) bool
	weight(v NodeID) (float64, bool)
	len() int
	iter() neighborCursor
}

type neighborCursor interface {
	next() (NodeID, float64, bool)
}

// record is the adjacency state of one node. For undirected graphs only
// out is populated and holds the full neighborhood. For directed graphs
// out holds forward edges and in mirrors the reverse direction so that
// DeleteNode can clean up incoming edges without a full scan.
type record struct {
	out neighbors
	in  *uhash.Set[NodeID]
}

func (g *Graph) newRecord() (*record, error) {
	var (
		out neighbors
		err error
	)
	if g.weighted {
		out, err = newDictNeighbors(g)
	} else {
		out, err = newSetNeighbors(g)
	}
	if err != nil {
		return nil, err
	}
	rec := &record{out: out}
	if g.directed {
		rec.in, err = uhash.NewSet[NodeID](
			uhash.WithAllocator(g.alloc),
			uhash.WithSeed(g.rng.Int63()),
		)
		if err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// setNeighbors backs unweighted adjacency. Weights are accepted and
// discarded so that the interface stays uniform.
type setNeighbors struct {
	s *uhash.Set[NodeID]
}

func newSetNeighbors(g *Graph) (*setNeighbors, error) {
	s, err := uhash.NewSet[NodeID](
		uhash.WithAllocator(g.alloc),
		uhash.WithSeed(g.rng.Int63()),
	)
	if err != nil {
		return nil, err
	}
	return &setNeighbors{s: s}, nil
}

func (n *setNeighbors) add(v NodeID, _ float64) (bool, error) { return n.s.Add(v) }
func (n *setNeighbors) delete(v NodeID) bool                  { return n.s.Delete(v) }
func (n *setNeighbors) has(v NodeID) bool                     { return n.s.Has(v) }
func (n *setNeighbors) len() int                              { return n.s.Len() }

func (n *setNeighbors) weight(v NodeID) (float64, bool) {
	if !n.s.Has(v) {
		return 0, false
	}
	return 0, true
}

func (n *setNeighbors) iter() neighborCursor {
	it := n.s.Iter()
	return &setCursor{it: it}
}

type setCursor struct {
	it uhash.SetIter[NodeID]
}

func (c *setCursor) next() (NodeID, float64, bool) {
	v, ok := c.it.Next()
	return v, 0, ok
}

// dictNeighbors backs weighted adjacency, mapping neighbor to weight.
type dictNeighbors struct {
	d *uhash.Dict[NodeID, float64]
}

func newDictNeighbors(g *Graph) (*dictNeighbors, error) {
	d, err := uhash.NewDict[NodeID, float64](
		uhash.WithAllocator(g.alloc),
		uhash.WithSeed(g.rng.Int63()),
	)
	if err != nil {
		return nil, err
	}
	return &dictNeighbors{d: d}, nil
}

func (n *dictNeighbors) add(v NodeID, w float64) (bool, error) { return n.d.Add(v, w) }
func (n *dictNeighbors) delete(v NodeID) bool                  { return n.d.Delete(v) }
func (n *dictNeighbors) has(v NodeID) bool                     { return n.d.Has(v) }
func (n *dictNeighbors) len() int                              { return n.d.Len() }
func (n *dictNeighbors) weight(v NodeID) (float64, bool)       { return n.d.Get(v) }

func (n *dictNeighbors) iter() neighborCursor {
	it := n.d.Iter()
	return &dictCursor{it: it}
}

type dictCursor struct {
	it uhash.DictIter[NodeID, float64]
}

func (c *dictCursor) next() (NodeID, float64, bool) {
	return c.it.Next()
}
