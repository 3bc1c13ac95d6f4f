// Command gonx inspects and transforms graphs stored as edge-list
// files. See the graphio package for the file format.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDirected  bool
	flagWeighted  bool
	flagSelfLoops bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gonx",
		Short:         "Inspect and transform edge-list graph files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flagDirected, "directed", false, "read graphs as directed")
	root.PersistentFlags().BoolVar(&flagWeighted, "weighted", false, "read graphs as weighted (u,v,w lines)")
	root.PersistentFlags().BoolVar(&flagSelfLoops, "self-loops", false, "allow self-loops when reading")

	root.AddCommand(newStatsCmd())
	root.AddCommand(newSpanCmd())
	root.AddCommand(newCheckCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("gonx: " + err.Error() + "\n")
		os.Exit(1)
	}
}
