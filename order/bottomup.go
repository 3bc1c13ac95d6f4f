package order

import (
	"container/heap"

	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/seq"
	"github.com/katalvlaran/gonx/uhash"
)

// keyStep separates the heap keys of successive elimination rounds so
// that nodes promoted later sort after the current leaves.
const keyStep = 0.01

// BottomUp returns the nodes of tree in leaf-elimination order from
// root: first the leaves of the tree, then the leaves of the subtree
// left after deleting them, inward round by round. The root is the
// last element and the slice length equals the node count.
func BottomUp(tree *core.Graph, root core.NodeID, opts ...Option) ([]core.NodeID, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateTree(tree, root, &o); err != nil {
		return nil, err
	}
	if err := o.alloc.Reserve(tree.NodeCount()); err != nil {
		return nil, err
	}
	list := make([]core.NodeID, 0, tree.NodeCount())

	// parent[v] is v's parent toward the root; the root is its own.
	// pending[v] counts the children of v not yet eliminated.
	parent, err := uhash.NewDict[core.NodeID, core.NodeID](uhash.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	pending, err := uhash.NewDict[core.NodeID, int](uhash.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	pq := newNodeHeap()

	if err = seedLeaves(tree, root, parent, pending, pq, &o); err != nil {
		return nil, err
	}

	key := 0.0
	for pq.Len() > 0 {
		key += keyStep
		v := pq.popMin()
		n, _ := pending.Get(v)
		if n > 0 {
			// Not all of v's children are eliminated yet; defer it.
			pq.pushOrRaise(v, key)
			continue
		}
		list = append(list, v)
		p, _ := parent.Get(v)
		if p == root {
			continue
		}
		pq.pushOrRaise(p, key)
		n, _ = pending.Get(p)
		if err = pending.Put(p, n-1); err != nil {
			return nil, err
		}
	}

	list = append(list, root)
	return list, nil
}

// seedLeaves walks the tree breadth-first from root, filling the parent
// and pending-children maps and loading the initial leaves into the
// heap with key 0.
func seedLeaves(tree *core.Graph, root core.NodeID, parent *uhash.Dict[core.NodeID, core.NodeID], pending *uhash.Dict[core.NodeID, int], pq *nodeHeap, o *options) error {
	queue, err := seq.NewQueue[core.NodeID](seq.WithAllocator(o.alloc))
	if err != nil {
		return err
	}
	if _, err = parent.Add(root, root); err != nil {
		return err
	}
	if err = queue.Append(root); err != nil {
		return err
	}
	for queue.Len() > 0 {
		v, _ := queue.Pop()
		it, err := tree.Neighbors(v)
		if err != nil {
			return err
		}
		for {
			w, _, ok := it.Next()
			if !ok {
				break
			}
			if parent.Has(w) {
				continue
			}
			if _, err = parent.Add(w, v); err != nil {
				return err
			}
			deg, err := tree.Degree(w)
			if err != nil {
				return err
			}
			if deg == 1 {
				pq.pushOrRaise(w, 0)
				continue
			}
			if _, err = pending.Add(w, deg-1); err != nil {
				return err
			}
			if err = queue.Append(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// nodeHeap is a min-heap of nodes keyed by float64, with the increase-
// key operation BottomUp needs when a node resurfaces in a later round.
type nodeHeap struct {
	ids  []core.NodeID
	keys []float64
	pos  map[core.NodeID]int

	// next carries the key for the upcoming heap.Push call, since
	// container/heap's Push takes no second argument.
	next float64
}

func newNodeHeap() *nodeHeap {
	return &nodeHeap{pos: make(map[core.NodeID]int)}
}

func (h *nodeHeap) Len() int { return len(h.ids) }

func (h *nodeHeap) Less(i, j int) bool { return h.keys[i] < h.keys[j] }

func (h *nodeHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

func (h *nodeHeap) Push(x any) {
	v := x.(core.NodeID)
	h.pos[v] = len(h.ids)
	h.ids = append(h.ids, v)
	h.keys = append(h.keys, h.next)
}

func (h *nodeHeap) Pop() any {
	n := len(h.ids) - 1
	v := h.ids[n]
	h.ids = h.ids[:n]
	h.keys = h.keys[:n]
	delete(h.pos, v)
	return v
}

func (h *nodeHeap) popMin() core.NodeID {
	return heap.Pop(h).(core.NodeID)
}

// pushOrRaise inserts v with the given key, or lifts its key when v is
// already queued.
func (h *nodeHeap) pushOrRaise(v core.NodeID, key float64) {
	if i, ok := h.pos[v]; ok {
		h.keys[i] = key
		heap.Fix(h, i)
		return
	}
	h.next = key
	heap.Push(h, v)
}
