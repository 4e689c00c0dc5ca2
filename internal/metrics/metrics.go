// Package metrics defines Prometheus metrics for hyperpath searches.
package metrics

import (
	"cmp"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hyperpath/pathfinder"
)

// Outcome labels for SearchesTotal.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Recorder owns a private registry so that several runs (and tests) never
// collide on the default one.
type Recorder struct {
	reg *prometheus.Registry

	SearchDuration    *prometheus.HistogramVec
	SearchesTotal     *prometheus.CounterVec
	ExpansionsTotal   *prometheus.CounterVec
	RelaxationsTotal  *prometheus.CounterVec
	MeetingsTotal     prometheus.Counter
	DisagreementTotal prometheus.Counter
	GraphNodes        prometheus.Gauge
	GraphEdges        prometheus.Gauge
}

// NewRecorder creates and registers every metric.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hyperpath_search_duration_seconds",
				Help:    "Search duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperpath_searches_total",
				Help: "Total searches by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		ExpansionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperpath_expansions_total",
				Help: "Total nodes closed by algorithm and search side",
			},
			[]string{"algorithm", "side"},
		),
		RelaxationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperpath_relaxations_total",
				Help: "Total successful relaxations by algorithm and search side",
			},
			[]string{"algorithm", "side"},
		),
		MeetingsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hyperpath_meetings_total",
				Help: "Total improvements of the bidirectional meeting bound",
			},
		),
		DisagreementTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hyperpath_disagreements_total",
				Help: "Queries where Find and BiFind returned different weights",
			},
		),
		GraphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hyperpath_graph_nodes",
				Help: "Node count of the searched hypergraph",
			},
		),
		GraphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hyperpath_graph_edges",
				Help: "Hyperedge count of the searched hypergraph",
			},
		),
	}

	r.reg.MustRegister(
		r.SearchDuration, r.SearchesTotal,
		r.ExpansionsTotal, r.RelaxationsTotal, r.MeetingsTotal,
		r.DisagreementTotal, r.GraphNodes, r.GraphEdges,
	)

	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(algorithm, outcome string, elapsed time.Duration) {
	r.SearchDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	r.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
}

// WriteTextfile writes all metrics in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Hooks returns search options that count expansions, relaxations and meetings
// under the given algorithm label.
func Hooks[ID cmp.Ordered, W any](r *Recorder, algorithm string) []pathfinder.Option[ID, W] {
	expanded := map[pathfinder.Side]prometheus.Counter{
		pathfinder.Forward:  r.ExpansionsTotal.WithLabelValues(algorithm, pathfinder.Forward.String()),
		pathfinder.Backward: r.ExpansionsTotal.WithLabelValues(algorithm, pathfinder.Backward.String()),
	}
	relaxed := map[pathfinder.Side]prometheus.Counter{
		pathfinder.Forward:  r.RelaxationsTotal.WithLabelValues(algorithm, pathfinder.Forward.String()),
		pathfinder.Backward: r.RelaxationsTotal.WithLabelValues(algorithm, pathfinder.Backward.String()),
	}

	return []pathfinder.Option[ID, W]{
		pathfinder.WithOnExpand(func(side pathfinder.Side, _ ID, _ W) { expanded[side].Inc() }),
		pathfinder.WithOnRelax(func(side pathfinder.Side, _, _ ID, _ W) { relaxed[side].Inc() }),
		pathfinder.WithOnMeet(func(_, _ ID, _ W) { r.MeetingsTotal.Inc() }),
	}
}
