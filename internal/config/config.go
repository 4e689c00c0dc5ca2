// Package config provides layered configuration for the hyperpath CLI:
// built-in defaults, then an optional YAML file, then HYPERPATH_* environment
// variables. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HYPERPATH_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all CLI configuration values.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Graph   GraphConfig   `yaml:"graph"`
	Search  SearchConfig  `yaml:"search"`
	Bench   BenchConfig   `yaml:"bench"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace|debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// GraphConfig parameterizes the random demo hypergraph.
type GraphConfig struct {
	Seed          int64 `yaml:"seed"`
	Nodes         int   `yaml:"nodes"`
	Edges         int   `yaml:"edges"`
	MinArity      int   `yaml:"min_arity"`
	MaxArity      int   `yaml:"max_arity"`
	MinNodeWeight int32 `yaml:"min_node_weight"`
	MaxNodeWeight int32 `yaml:"max_node_weight"`
	MinEdgeWeight int32 `yaml:"min_edge_weight"`
	MaxEdgeWeight int32 `yaml:"max_edge_weight"`
}

// SearchConfig holds per-search limits.
type SearchConfig struct {
	// Algorithm is "find", "bifind" or "both".
	Algorithm     string `yaml:"algorithm"`
	MaxExpansions int    `yaml:"max_expansions"`
}

// BenchConfig controls the parallel agreement run.
type BenchConfig struct {
	Queries int `yaml:"queries"`
	Workers int `yaml:"workers"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// File is the textfile-collector output path; empty disables export.
	File string `yaml:"file"`
}

// Default returns the built-in configuration, sized like the classic demo:
// a million nodes, 400k hyperedges of arity 2..8.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Graph: GraphConfig{
			Seed:          13,
			Nodes:         1_000_000,
			Edges:         400_000,
			MinArity:      2,
			MaxArity:      8,
			MinNodeWeight: 0,
			MaxNodeWeight: 5,
			MinEdgeWeight: 1,
			MaxEdgeWeight: 10,
		},
		Search: SearchConfig{Algorithm: "both"},
		Bench:  BenchConfig{Queries: 100, Workers: 4},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment overrides. The result is not validated;
// call Validate after applying flags.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
		"SEARCH_ALGORITHM": &c.Search.Algorithm,
		"METRICS_FILE":     &c.Metrics.File,
	}
	for key, dst := range strs {
		if v, ok := lookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GRAPH_NODES":           &c.Graph.Nodes,
		"GRAPH_EDGES":           &c.Graph.Edges,
		"GRAPH_MIN_ARITY":       &c.Graph.MinArity,
		"GRAPH_MAX_ARITY":       &c.Graph.MaxArity,
		"SEARCH_MAX_EXPANSIONS": &c.Search.MaxExpansions,
		"BENCH_QUERIES":         &c.Bench.Queries,
		"BENCH_WORKERS":         &c.Bench.Workers,
	}
	for key, dst := range ints {
		v, ok := lookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s must be an integer: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	weights := map[string]*int32{
		"GRAPH_MIN_NODE_WEIGHT": &c.Graph.MinNodeWeight,
		"GRAPH_MAX_NODE_WEIGHT": &c.Graph.MaxNodeWeight,
		"GRAPH_MIN_EDGE_WEIGHT": &c.Graph.MinEdgeWeight,
		"GRAPH_MAX_EDGE_WEIGHT": &c.Graph.MaxEdgeWeight,
	}
	for key, dst := range weights {
		v, ok := lookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: %s%s must be a 32-bit integer: %w", EnvPrefix, key, err)
		}
		*dst = int32(n)
	}

	if v, ok := lookupEnv("GRAPH_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sGRAPH_SEED must be an integer: %w", EnvPrefix, err)
		}
		c.Graph.Seed = n
	}

	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(v), true
}
