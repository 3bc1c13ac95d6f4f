package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/dfs"
)

// A chain has only one traversal shape, so the tree is predictable.
func ExampleTree() {
	g, _ := core.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	tree, _ := dfs.Tree(g, 1)
	fmt.Println("nodes:", tree.NodeCount())
	fmt.Println("edges:", tree.EdgeCount())
	fmt.Println("1-2 in tree:", tree.HasEdge(1, 2))
	fmt.Println("2-3 in tree:", tree.HasEdge(2, 3))
	// Output:
	// nodes: 3
	// edges: 2
	// 1-2 in tree: true
	// 2-3 in tree: true
}
