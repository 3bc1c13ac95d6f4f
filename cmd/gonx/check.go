package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gonx/graphio"
	"github.com/katalvlaran/gonx/query"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report whether a graph file is connected and whether it is a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Read(args[0], readOptions()...)
			if err != nil {
				return err
			}
			connected, err := query.IsConnected(g)
			if err != nil {
				return err
			}
			tree, err := query.IsTree(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes, %d edges, connected=%t, tree=%t\n",
				args[0], g.NodeCount(), g.EdgeCount(), connected, tree)
			return nil
		},
	}
	return cmd
}
