// Package bfs builds breadth-first traversal trees over a core.Graph.
//
// Tree explores the graph level by level from a start node and records
// each first discovery as a (parent, child) edge in a fresh graph. The
// result has the same directedness as the source, is always unweighted,
// and never contains a self-loop. Nodes unreachable from the start do
// not appear in it.
//
// A start node with nothing to explore forward of it (no neighbors, or
// only a self-loop) yields ErrNoNeighbors rather than a trivial
// one-node tree, so callers can distinguish "isolated start" from a
// real traversal without inspecting the result.
//
// Typical use:
//
//	tree, err := bfs.Tree(g, 0)
//	if err != nil { ... }
//	// tree spans every node reachable from 0.
package bfs
