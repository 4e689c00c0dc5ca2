package main

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBenchCmd(a *app) *cobra.Command {
	var queries, workers int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run many random queries in parallel and cross-check the algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("queries") {
				a.cfg.Bench.Queries = queries
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Bench.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.buildGraph()
			if err != nil {
				return err
			}

			// Pairs are drawn up front so the run is reproducible regardless of scheduling.
			rng := rand.New(rand.NewSource(a.cfg.Graph.Seed + 1))
			pairs := make([][2]int, a.cfg.Bench.Queries)
			for i := range pairs {
				pairs[i] = [2]int{rng.Intn(g.NodeCount()), rng.Intn(g.NodeCount())}
			}

			var reached atomic.Int64
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(a.cfg.Bench.Workers)
			start := time.Now()
			for _, pair := range pairs {
				pair := pair // per-iteration copy (go directive < 1.22)
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					var results []result
					for _, algorithm := range algorithms(a.cfg.Search.Algorithm) {
						r, err := a.search(algorithm, g, pair[0], pair[1])
						if err != nil {
							return err
						}
						results = append(results, r)
					}
					if err := a.checkReachability(ctx, g, pair[0], pair[1], results[0]); err != nil {
						return err
					}
					if !results[0].path.IsEmpty() {
						reached.Add(1)
					}
					return a.compare(pair[0], pair[1], results)
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			elapsed := time.Since(start)
			a.log.WithFields(logrus.Fields{
				"queries":   len(pairs),
				"reachable": reached.Load(),
				"workers":   a.cfg.Bench.Workers,
				"duration":  elapsed,
			}).Info("bench finished")
			fmt.Fprintf(cmd.OutOrStdout(), "%d queries, %d reachable, %v\n", len(pairs), reached.Load(), elapsed)

			return a.flushMetrics()
		},
	}

	cmd.Flags().IntVar(&queries, "queries", 0, "Number of random queries (env: HYPERPATH_BENCH_QUERIES)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel searches (env: HYPERPATH_BENCH_WORKERS)")
	return cmd
}
