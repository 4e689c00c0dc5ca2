package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hyperpath/bfs"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/internal/metrics"
	"github.com/katalvlaran/hyperpath/pathfinder"
)

var (
	// errDisagreement is returned when Find and BiFind report different weights.
	errDisagreement = errors.New("find and bifind disagree")

	// errReachability is returned when a weighted search and BFS disagree on reachability.
	errReachability = errors.New("search and bfs disagree on reachability")

	// errFound stops a BFS early once the target is visited.
	errFound = errors.New("target visited")
)

const (
	algoFind   = "find"
	algoBiFind = "bifind"
	algoBoth   = "both"
)

type searchFunc = func(
	g *hypergraph.Graph[int, int32],
	source, target int,
	alg hypergraph.WeightAlgebra[int32],
	opts ...pathfinder.Option[int, int32],
) (*hypergraph.Path[int, int32], error)

// algorithms expands the configured algorithm name.
func algorithms(name string) []string {
	if name == algoBoth {
		return []string{algoFind, algoBiFind}
	}
	return []string{name}
}

// result is one finished search.
type result struct {
	algorithm string
	path      *hypergraph.Path[int, int32]
	elapsed   time.Duration
}

// search runs one algorithm with metric hooks attached and records its outcome.
func (a *app) search(algorithm string, g *hypergraph.Graph[int, int32], source, target int) (result, error) {
	fn := searchFunc(pathfinder.Find[int, int32])
	if algorithm == algoBiFind {
		fn = pathfinder.BiFind[int, int32]
	}

	opts := metrics.Hooks[int, int32](a.rec, algorithm)
	if n := a.cfg.Search.MaxExpansions; n > 0 {
		opts = append(opts, pathfinder.WithMaxExpansions[int, int32](n))
	}

	start := time.Now()
	p, err := fn(g, source, target, hypergraph.Int32Algebra(), opts...)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeFound
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case p.IsEmpty():
		outcome = metrics.OutcomeUnreachable
	}
	a.rec.ObserveSearch(algorithm, outcome, elapsed)

	if err != nil {
		return result{}, fmt.Errorf("%s %d→%d: %w", algorithm, source, target, err)
	}

	a.log.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"source":    source,
		"target":    target,
		"weight":    p.TotalWeight(),
		"hops":      p.Len(),
		"duration":  elapsed,
	}).Debug("search finished")

	return result{algorithm: algorithm, path: p, elapsed: elapsed}, nil
}

// compare checks that every result agrees with the first on weight and reachability.
func (a *app) compare(source, target int, results []result) error {
	for _, r := range results[1:] {
		first := results[0].path
		if r.path.IsEmpty() == first.IsEmpty() && r.path.TotalWeight() == first.TotalWeight() {
			continue
		}
		a.rec.DisagreementTotal.Inc()
		return fmt.Errorf("%w: %d→%d: %s %v, %s %v", errDisagreement,
			source, target, results[0].algorithm, first, r.algorithm, r.path)
	}

	return nil
}

// reachable reports whether target is reachable from source by hop-count BFS,
// stopping as soon as the target is visited.
func reachable(ctx context.Context, g *hypergraph.Graph[int, int32], source, target int) (bool, error) {
	_, err := bfs.BFS(g, source,
		bfs.WithContext[int](ctx),
		bfs.WithOnVisit(func(id int, _ int) error {
			if id == target {
				return errFound
			}
			return nil
		}),
	)
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// checkReachability cross-checks a weighted result against BFS.
func (a *app) checkReachability(ctx context.Context, g *hypergraph.Graph[int, int32], source, target int, r result) error {
	ok, err := reachable(ctx, g, source, target)
	if err != nil {
		return err
	}
	if ok == r.path.IsEmpty() {
		a.rec.DisagreementTotal.Inc()
		return fmt.Errorf("%w: %d→%d: bfs reached=%t, %s %v", errReachability, source, target, ok, r.algorithm, r.path)
	}

	return nil
}
