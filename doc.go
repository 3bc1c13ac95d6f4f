// Package gonx is an in-memory library for building, storing and
// analyzing graphs over integer node IDs.
//
// The packages layer bottom-up:
//
//	alloc/   — allocation budgets for exercising out-of-memory paths
//	uhash/   — Set and Dict over uint32 keys with universal hashing
//	seq/     — Queue and Stack with metered growth
//	core/    — the Graph type: directed/undirected, weighted/unweighted,
//	           self-loops allowed or rejected
//	bfs/     — breadth-first traversal trees
//	dfs/     — depth-first traversal trees
//	query/   — connectivity and tree tests
//	order/   — pre-order, post-order and bottom-up tree orderings
//	graphio/ — edge-list files, plain or gzip/zstd compressed
//
// A command-line harness lives in cmd/gonx.
//
// Quick example:
//
//	g, err := core.New()
//	if err != nil {
//		// handle
//	}
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	tree, err := bfs.Tree(g, 0) // spans 0,1,2
//
// Every mutating operation can be driven through an alloc.Allocator so
// that out-of-memory behavior is testable: a failed insert leaves its
// container exactly as it was.
package gonx
