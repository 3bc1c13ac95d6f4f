// Package order produces node orderings of rooted trees.
//
// All three orderings operate on an undirected tree, typically one
// produced by the bfs or dfs packages from an undirected source, and
// treat a caller-chosen node as the root:
//
//   - PreOrder lists each node before any node of its subtrees.
//   - PostOrder lists each node after every node of its subtrees.
//   - BottomUp lists nodes by repeated leaf removal: the leaves of the
//     tree first, then the leaves of the remaining subtree, inward
//     until only the root is left. The root is always last.
//
// PreOrder and PostOrder take a Mode. DefaultOrder walks the neighbors
// of a node in iteration order, which is fast but not reproducible
// across runs. SortedOrder visits children in ascending node ID and is
// fully deterministic.
package order
