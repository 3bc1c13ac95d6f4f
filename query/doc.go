// Package query answers structural questions about undirected graphs.
//
// IsConnected reports whether every node can reach every other node;
// IsTree additionally demands the exact edge count of a tree. Both are
// defined for undirected graphs only and reject directed ones with
// ErrDirectedGraph.
//
// An empty graph is neither connected nor a tree. A single node is
// connected, and it is a tree when it has no edges (a self-loop on it
// disqualifies the graph).
package query
