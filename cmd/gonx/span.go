package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gonx/bfs"
	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/dfs"
	"github.com/katalvlaran/gonx/graphio"
)

func newSpanCmd() *cobra.Command {
	var (
		algo  string
		start uint32
		out   string
	)
	cmd := &cobra.Command{
		Use:   "span <file>",
		Short: "Build a spanning tree of a graph file",
		Long: "Read the graph and build the traversal tree from the start node.\n" +
			"With --out the tree is written as an edge-list file, otherwise its\n" +
			"size is reported.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Read(args[0], readOptions()...)
			if err != nil {
				return err
			}

			var tree *core.Graph
			switch algo {
			case "bfs":
				tree, err = bfs.Tree(g, core.NodeID(start), bfs.WithContext(cmd.Context()))
			case "dfs":
				tree, err = dfs.Tree(g, core.NodeID(start), dfs.WithContext(cmd.Context()))
			default:
				return fmt.Errorf("unknown algorithm %q (want bfs or dfs)", algo)
			}
			if err != nil {
				return err
			}

			if out != "" {
				if err := graphio.Write(tree, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s tree from %d: %d nodes, %d edges\n",
				algo, start, tree.NodeCount(), tree.EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "bfs", "traversal algorithm: bfs or dfs")
	cmd.Flags().Uint32Var(&start, "start", 0, "node to start the traversal from")
	cmd.Flags().StringVar(&out, "out", "", "write the tree to this edge-list file")
	return cmd
}

// readOptions maps the persistent variant flags onto graph options.
func readOptions() []core.GraphOption {
	var opts []core.GraphOption
	if flagDirected {
		opts = append(opts, core.WithDirected())
	}
	if flagWeighted {
		opts = append(opts, core.WithWeighted())
	}
	if flagSelfLoops {
		opts = append(opts, core.WithSelfLoops())
	}
	return opts
}
