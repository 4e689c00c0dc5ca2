package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	var source, target int
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search one source/target pair in the random hypergraph",
		Long: "Builds the configured random hypergraph and prints the minimum-weight path.\n" +
			"A negative --source or --target is drawn at random from the graph seed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.buildGraph()
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(a.cfg.Graph.Seed + 1))
			if source < 0 {
				source = rng.Intn(g.NodeCount())
			}
			if target < 0 {
				target = rng.Intn(g.NodeCount())
			}

			out := cmd.OutOrStdout()
			var results []result
			for _, algorithm := range algorithms(a.cfg.Search.Algorithm) {
				r, err := a.search(algorithm, g, source, target)
				if err != nil {
					return err
				}
				results = append(results, r)
				fmt.Fprintf(out, "%s: %v\n", r.algorithm, r.path)
				fmt.Fprintf(out, "%s: duration %v\n", r.algorithm, r.elapsed)
			}
			if err := a.compare(source, target, results); err != nil {
				return err
			}

			return a.flushMetrics()
		},
	}

	cmd.Flags().IntVar(&source, "source", -1, "Source node id")
	cmd.Flags().IntVar(&target, "target", -1, "Target node id")
	return cmd
}
