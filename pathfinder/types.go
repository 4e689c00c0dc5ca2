// Package pathfinder defines configuration options, hooks and sentinel errors
// for point-to-point shortest-path search over a hypergraph.Graph.
package pathfinder

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors returned by Find and BiFind.
var (
	// ErrNilGraph indicates that a nil *hypergraph.Graph was passed.
	ErrNilGraph = errors.New("pathfinder: graph is nil")

	// ErrNilAlgebra indicates that a nil WeightAlgebra was passed.
	ErrNilAlgebra = errors.New("pathfinder: weight algebra is nil")

	// ErrSourceNotFound indicates the source node does not exist in the graph.
	ErrSourceNotFound = errors.New("pathfinder: source node not found")

	// ErrTargetNotFound indicates the target node does not exist in the graph.
	ErrTargetNotFound = errors.New("pathfinder: target node not found")

	// ErrDecreasingWeight indicates the algebra produced an accumulated weight smaller
	// than its predecessor, i.e. a negative node or edge weight was encountered.
	ErrDecreasingWeight = errors.New("pathfinder: accumulated weight decreased")

	// ErrNoConnectingEdge indicates edge inference found no hyperedge joining two
	// consecutive path nodes. It signals broken search bookkeeping, never bad input.
	ErrNoConnectingEdge = errors.New("pathfinder: no edge connects consecutive path nodes")

	// ErrBudgetExceeded indicates the search expanded more nodes than MaxExpansions allows.
	ErrBudgetExceeded = errors.New("pathfinder: expansion budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// Side names the search direction that produced a hook event.
type Side int

const (
	// Forward is the search rooted at the source. Find only ever reports Forward.
	Forward Side = iota

	// Backward is the BiFind search rooted at the target.
	Backward
)

// String returns "forward" or "backward".
func (s Side) String() string {
	if s == Backward {
		return "backward"
	}

	return "forward"
}

// Options holds hooks and limits for a single search.
type Options[ID cmp.Ordered, W any] struct {
	// OnExpand is called when a node is closed, with its final accumulated weight.
	OnExpand func(side Side, id ID, g W)

	// OnRelax is called whenever a node's tentative weight improves.
	OnRelax func(side Side, from, to ID, g W)

	// OnMeet is called when BiFind improves its meeting bound mu.
	// a is closed on the forward side, b on the backward side.
	OnMeet func(a, b ID, mu W)

	// MaxExpansions, if > 0, caps the number of closed nodes (both sides together).
	// 0 disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the search runs.
type Option[ID cmp.Ordered, W any] func(*Options[ID, W])

// DefaultOptions returns Options with no-op hooks and no expansion cap.
func DefaultOptions[ID cmp.Ordered, W any]() Options[ID, W] {
	return Options[ID, W]{
		OnExpand:      func(Side, ID, W) {},
		OnRelax:       func(Side, ID, ID, W) {},
		OnMeet:        func(ID, ID, W) {},
		MaxExpansions: 0,
	}
}

// WithOnExpand registers a callback run each time a node is closed.
func WithOnExpand[ID cmp.Ordered, W any](fn func(side Side, id ID, g W)) Option[ID, W] {
	return func(o *Options[ID, W]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax[ID cmp.Ordered, W any](fn func(side Side, from, to ID, g W)) Option[ID, W] {
	return func(o *Options[ID, W]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnMeet registers a callback run whenever BiFind tightens its meeting bound.
func WithOnMeet[ID cmp.Ordered, W any](fn func(a, b ID, mu W)) Option[ID, W] {
	return func(o *Options[ID, W]) {
		if fn != nil {
			o.OnMeet = fn
		}
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  stop with ErrBudgetExceeded once n nodes are closed without an answer
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions[ID cmp.Ordered, W any](n int) Option[ID, W] {
	return func(o *Options[ID, W]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

func resolveOptions[ID cmp.Ordered, W any](opts []Option[ID, W]) (Options[ID, W], error) {
	cfg := DefaultOptions[ID, W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
