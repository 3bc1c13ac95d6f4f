package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gonx/graphio"
)

// statsLine pairs a scanned file with its summary for ordered output.
type statsLine struct {
	path string
	sum  graphio.Summary
}

func newStatsCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Summarize one or more graph files",
		Long: "Scan each file and report its distinct node count, edge line count\n" +
			"and whether any edge carries a weight. Files are scanned concurrently.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				workers = 1
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)

			var mu sync.Mutex
			lines := make([]statsLine, 0, len(args))
			for _, path := range args {
				path := path
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					sum, err := graphio.Scan(path)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					mu.Lock()
					lines = append(lines, statsLine{path: path, sum: sum})
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			sort.Slice(lines, func(i, j int) bool { return lines[i].path < lines[j].path })
			for _, l := range lines {
				kind := "unweighted"
				if l.sum.Weighted {
					kind = "weighted"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes, %d edges, %s\n",
					l.path, l.sum.Nodes, l.sum.Edges, kind)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "maximum concurrent file scans")
	return cmd
}
