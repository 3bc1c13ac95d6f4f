package core

// Equal reports whether g and h are structurally identical: same
// variant on all axes, same node set, same edge set, and on weighted
// graphs the same weight on every edge. Allocators and RNG seeds do not
// participate in the comparison.
func Equal(g, h *Graph) bool {
	if g == h {
		return true
	}
	if g == nil || h == nil {
		return false
	}
	if g.directed != h.directed || g.weighted != h.weighted || g.selfLoops != h.selfLoops {
		return false
	}
	if g.NodeCount() != h.NodeCount() || g.EdgeCount() != h.EdgeCount() {
		return false
	}
	nodes := g.Nodes()
	for {
		v, ok := nodes.Next()
		if !ok {
			break
		}
		hrec, ok := h.nodes.Get(v)
		if !ok {
			return false
		}
		grec, _ := g.nodes.Get(v)
		if grec.out.len() != hrec.out.len() {
			return false
		}
		for it := grec.out.iter(); ; {
			w, gw, ok := it.next()
			if !ok {
				break
			}
			hw, ok := hrec.out.weight(w)
			if !ok {
				return false
			}
			if g.weighted && gw != hw {
				return false
			}
		}
	}
	return true
}
