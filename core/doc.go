// Package core defines the central Graph type shared by every other
// package in the module.
//
// A Graph stores a set of uint32 node IDs together with an adjacency
// structure per node. Four independent axes select the variant at
// construction time:
//
//   - directed vs. undirected (WithDirected),
//   - weighted vs. unweighted (WithWeighted),
//   - self-loops allowed or rejected (WithSelfLoops),
//   - the allocator that meters internal growth (WithAllocator).
//
// The axes are fixed for the lifetime of the graph. Operations that only
// make sense on one side of an axis (Degree on undirected graphs,
// EdgeWeight on weighted graphs, and so on) return a sentinel error when
// called on the wrong variant.
//
// # Mutation safety
//
// Every mutating operation is atomic with respect to allocation failure:
// if the configured allocator reports exhaustion partway through AddNode
// or AddEdge, the operation rolls back whatever it had already inserted
// and returns alloc.ErrNoMemory with the graph unchanged. In particular
// AddEdge never leaves a one-sided edge and never leaves behind a node
// it auto-created for an edge that failed.
//
// # Concurrency
//
// Graph is not safe for concurrent mutation. Callers that share a graph
// across goroutines must synchronize externally.
package core
