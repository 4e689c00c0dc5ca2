// Command hyperpath generates a random weighted hypergraph and searches it.
//
//	hyperpath find  --source 0 --target 42
//	hyperpath bench --queries 500 --workers 8 --metrics-file hyperpath.prom
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hyperpath/builder"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/internal/config"
	"github.com/katalvlaran/hyperpath/internal/logging"
	"github.com/katalvlaran/hyperpath/internal/metrics"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("hyperpath version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("hyperpath version %s-dev", version)
}

// app is the state shared by every subcommand once the root pre-run has resolved it.
type app struct {
	cfg   *config.Config
	log   *logrus.Entry
	rec   *metrics.Recorder
	runID string
}

// rootFlags are the persistent overrides applied on top of file and env config.
type rootFlags struct {
	config      string
	logLevel    string
	logFormat   string
	metricsFile string
	seed        int64
	nodes       int
	edges       int
	minArity    int
	maxArity    int
	algorithm   string
	maxExpand   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	f := &rootFlags{}

	root := &cobra.Command{
		Use:     "hyperpath",
		Short:   "Shortest paths in weighted hypergraphs",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, f)
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error (env: HYPERPATH_LOG_LEVEL)")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text|json (env: HYPERPATH_LOG_FORMAT)")
	pf.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile (env: HYPERPATH_METRICS_FILE)")
	pf.Int64Var(&f.seed, "seed", 0, "Random graph seed (env: HYPERPATH_GRAPH_SEED)")
	pf.IntVar(&f.nodes, "nodes", 0, "Random graph node count (env: HYPERPATH_GRAPH_NODES)")
	pf.IntVar(&f.edges, "edges", 0, "Random graph hyperedge count (env: HYPERPATH_GRAPH_EDGES)")
	pf.IntVar(&f.minArity, "min-arity", 0, "Smallest hyperedge arity (env: HYPERPATH_GRAPH_MIN_ARITY)")
	pf.IntVar(&f.maxArity, "max-arity", 0, "Largest hyperedge arity (env: HYPERPATH_GRAPH_MAX_ARITY)")
	pf.StringVar(&f.algorithm, "algorithm", "", "find|bifind|both (env: HYPERPATH_SEARCH_ALGORITHM)")
	pf.IntVar(&f.maxExpand, "max-expansions", 0, "Expansion cap per search, 0 = none")

	root.AddCommand(newFindCmd(a))
	root.AddCommand(newBenchCmd(a))

	return root
}

// setup resolves config (defaults → file → env → flags), then builds the logger
// and the metrics recorder.
func (a *app) setup(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override(flags, "log-level", &cfg.Log.Level, f.logLevel)
	override(flags, "log-format", &cfg.Log.Format, f.logFormat)
	override(flags, "metrics-file", &cfg.Metrics.File, f.metricsFile)
	override(flags, "seed", &cfg.Graph.Seed, f.seed)
	override(flags, "nodes", &cfg.Graph.Nodes, f.nodes)
	override(flags, "edges", &cfg.Graph.Edges, f.edges)
	override(flags, "min-arity", &cfg.Graph.MinArity, f.minArity)
	override(flags, "max-arity", &cfg.Graph.MaxArity, f.maxArity)
	override(flags, "algorithm", &cfg.Search.Algorithm, f.algorithm)
	override(flags, "max-expansions", &cfg.Search.MaxExpansions, f.maxExpand)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.New().String()
	a.log = log.WithField("run_id", a.runID)
	a.rec = metrics.NewRecorder()

	return nil
}

// override copies v into dst when the named flag was set on the command line.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}

// buildGraph generates the configured random hypergraph.
func (a *app) buildGraph() (*hypergraph.Graph[int, int32], error) {
	gc := a.cfg.Graph
	start := time.Now()

	g, err := builder.Build(
		[]builder.Option[int32]{
			builder.WithSeed[int32](gc.Seed),
			builder.WithNodeWeightFn(builder.UniformInt(gc.MinNodeWeight, gc.MaxNodeWeight)),
			builder.WithEdgeWeightFn(builder.UniformInt(gc.MinEdgeWeight, gc.MaxEdgeWeight)),
		},
		builder.RandomHypergraph[int32](gc.Nodes, gc.Edges, gc.MinArity, gc.MaxArity),
	)
	if err != nil {
		return nil, err
	}

	a.rec.GraphNodes.Set(float64(g.NodeCount()))
	a.rec.GraphEdges.Set(float64(g.EdgeCount()))
	a.log.WithFields(logrus.Fields{
		"nodes":    g.NodeCount(),
		"edges":    g.EdgeCount(),
		"seed":     gc.Seed,
		"duration": time.Since(start),
	}).Info("constructed hypergraph")

	return g, nil
}

// flushMetrics writes the textfile when one is configured.
func (a *app) flushMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := a.rec.WriteTextfile(a.cfg.Metrics.File); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.WithField("file", a.cfg.Metrics.File).Debug("metrics written")

	return nil
}
