package config

import (
	"fmt"
	"math"
)

// Validate rejects values no command can run with.
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}

	if err := c.validateGraph(); err != nil {
		return err
	}

	if err := c.validateRun(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateLog() error {
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

func (c *Config) validateGraph() error {
	g := c.Graph
	if g.Nodes < 1 {
		return fmt.Errorf("%w: graph.nodes must be at least 1, got %d", ErrInvalid, g.Nodes)
	}

	if g.Edges < 0 {
		return fmt.Errorf("%w: graph.edges cannot be negative, got %d", ErrInvalid, g.Edges)
	}

	if g.MinArity < 1 || g.MaxArity < g.MinArity {
		return fmt.Errorf("%w: graph arity range [%d,%d]", ErrInvalid, g.MinArity, g.MaxArity)
	}

	if g.MinNodeWeight < 0 || g.MaxNodeWeight < g.MinNodeWeight {
		return fmt.Errorf("%w: graph node weight range [%d,%d]", ErrInvalid, g.MinNodeWeight, g.MaxNodeWeight)
	}

	if g.MinEdgeWeight < 0 || g.MaxEdgeWeight < g.MinEdgeWeight {
		return fmt.Errorf("%w: graph edge weight range [%d,%d]", ErrInvalid, g.MinEdgeWeight, g.MaxEdgeWeight)
	}

	// A path visits each node at most once, so its weight is bounded by
	// nodes·(maxNode + maxEdge); keep that below the int32 sentinel.
	bound := float64(g.Nodes) * (float64(g.MaxNodeWeight) + float64(g.MaxEdgeWeight))
	if bound >= math.MaxInt32 {
		return fmt.Errorf("%w: graph weights may overflow int32 (bound %.0f)", ErrInvalid, bound)
	}

	return nil
}

func (c *Config) validateRun() error {
	switch c.Search.Algorithm {
	case "find", "bifind", "both":
	default:
		return fmt.Errorf("%w: search.algorithm %q", ErrInvalid, c.Search.Algorithm)
	}

	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions cannot be negative", ErrInvalid)
	}

	if c.Bench.Queries < 1 {
		return fmt.Errorf("%w: bench.queries must be at least 1", ErrInvalid)
	}

	if c.Bench.Workers < 1 || c.Bench.Workers > 64 {
		return fmt.Errorf("%w: bench.workers must be between 1 and 64", ErrInvalid)
	}

	return nil
}
