package order

import (
	"slices"

	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/seq"
	"github.com/katalvlaran/gonx/uhash"
)

// PreOrder returns the nodes of tree in pre-order from root: every node
// precedes all nodes of its subtrees. The root is the first element and
// the slice length equals the node count.
func PreOrder(tree *core.Graph, root core.NodeID, mode Mode, opts ...Option) ([]core.NodeID, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if mode != DefaultOrder && mode != SortedOrder {
		return nil, ErrBadMode
	}
	if err := validateTree(tree, root, &o); err != nil {
		return nil, err
	}
	if err := o.alloc.Reserve(tree.NodeCount()); err != nil {
		return nil, err
	}
	list := make([]core.NodeID, 0, tree.NodeCount())

	seen, err := uhash.NewSet[core.NodeID](uhash.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	stack, err := seq.NewStack[core.NodeID](seq.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	if err = stack.Push(root); err != nil {
		return nil, err
	}

	for stack.Len() > 0 {
		v, _ := stack.Pop()
		if seen.Has(v) {
			continue
		}
		list = append(list, v)
		if _, err = seen.Add(v); err != nil {
			return nil, err
		}
		if err = pushChildren(tree, v, mode, stack, nil); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// PostOrder returns the nodes of tree in post-order from root: every
// node follows all nodes of its subtrees. The root is the last element.
func PostOrder(tree *core.Graph, root core.NodeID, mode Mode, opts ...Option) ([]core.NodeID, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if mode != DefaultOrder && mode != SortedOrder {
		return nil, ErrBadMode
	}
	if err := validateTree(tree, root, &o); err != nil {
		return nil, err
	}
	if err := o.alloc.Reserve(tree.NodeCount()); err != nil {
		return nil, err
	}
	list := make([]core.NodeID, 0, tree.NodeCount())

	seen, err := uhash.NewSet[core.NodeID](uhash.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	stack, err := seq.NewStack[core.NodeID](seq.WithAllocator(o.alloc))
	if err != nil {
		return nil, err
	}
	if err = stack.Push(root); err != nil {
		return nil, err
	}

	// Two-phase walk: an unseen node stays on the stack below its
	// children and is emitted when it surfaces for the second time.
	for stack.Len() > 0 {
		v, _ := stack.Peek()
		if seen.Has(v) {
			stack.Pop()
			list = append(list, v)
			continue
		}
		if _, err = seen.Add(v); err != nil {
			return nil, err
		}
		if err = pushChildren(tree, v, mode, stack, seen); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// pushChildren pushes the neighbors of v onto the stack. With
// SortedOrder they are pushed largest-first so they pop in ascending
// ID. A non-nil skip set filters nodes already handled.
func pushChildren(tree *core.Graph, v core.NodeID, mode Mode, stack *seq.Stack[core.NodeID], skip *uhash.Set[core.NodeID]) error {
	it, err := tree.Neighbors(v)
	if err != nil {
		return err
	}
	if mode == DefaultOrder {
		for {
			w, _, ok := it.Next()
			if !ok {
				return nil
			}
			if skip != nil && skip.Has(w) {
				continue
			}
			if err = stack.Push(w); err != nil {
				return err
			}
		}
	}

	var ns []core.NodeID
	for {
		w, _, ok := it.Next()
		if !ok {
			break
		}
		ns = append(ns, w)
	}
	slices.Sort(ns)
	for i := len(ns) - 1; i >= 0; i-- {
		if skip != nil && skip.Has(ns[i]) {
			continue
		}
		if err = stack.Push(ns[i]); err != nil {
			return err
		}
	}
	return nil
}
