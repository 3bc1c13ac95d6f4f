// Package dfs builds depth-first traversal trees over a core.Graph.
//
// Tree explores the graph with an explicit stack, diving along one
// branch before backtracking, and records each first discovery as a
// (parent, child) edge in a fresh graph. The result mirrors the bfs
// package: same directedness as the source, unweighted, loop-free,
// spanning exactly the nodes reachable from the start. The shape of
// the tree differs from bfs and depends on neighbor iteration order,
// which is unspecified.
//
// The error surface matches bfs: an absent start yields
// ErrStartNodeNotFound, a start with no forward edge beyond a
// self-loop yields ErrNoNeighbors.
package dfs
