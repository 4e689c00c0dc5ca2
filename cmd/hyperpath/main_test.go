package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

var smallGraph = []string{"--nodes", "60", "--edges", "40", "--seed", "5", "--log-level", "warn"}

func TestFind_BothAlgorithmsAgree(t *testing.T) {
	out, _, err := execute(t, append([]string{"find", "--source", "0", "--target", "7"}, smallGraph...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "find: "))
	assert.True(t, strings.HasPrefix(lines[2], "bifind: "))

	// Both path lines end with the same "(weight=N)" suffix.
	weight := func(line string) string { return line[strings.LastIndex(line, "(weight="):] }
	assert.Equal(t, weight(lines[0]), weight(lines[2]))
}

func TestFind_SameEndpoint(t *testing.T) {
	out, _, err := execute(t, append([]string{"find", "--source", "3", "--target", "3", "--algorithm", "bifind"}, smallGraph...)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bifind: 3 (weight="), out)
}

func TestFind_UnknownNode(t *testing.T) {
	_, _, err := execute(t, append([]string{"find", "--source", "1000", "--target", "1"}, smallGraph...)...)
	assert.ErrorContains(t, err, "source node not found")
}

func TestBench_WritesMetrics(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "bench.prom")
	args := append([]string{"bench", "--queries", "30", "--workers", "4", "--metrics-file", metricsFile}, smallGraph...)

	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "30 queries")

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "hyperpath_search_duration_seconds_count{algorithm=\"find\"} 30")
	assert.Contains(t, text, "hyperpath_search_duration_seconds_count{algorithm=\"bifind\"} 30")
	assert.Contains(t, text, "hyperpath_disagreements_total 0")
	assert.Contains(t, text, "hyperpath_graph_nodes 60")
}

func TestBench_JSONLogsCarryRunID(t *testing.T) {
	args := append([]string{"bench", "--queries", "3"}, smallGraph...)
	args = append(args, "--log-level", "info", "--log-format", "json")

	_, stderr, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"run_id":"`)
	assert.Contains(t, stderr, `"msg":"bench finished"`)
}

func TestConfigFileAndValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  nodes: 20\n  edges: 10\nsearch:\n  algorithm: find\n"), 0o600))

	out, _, err := execute(t, "find", "--config", path, "--source", "0", "--target", "0", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "find: 0 (weight="), out)

	_, _, err = execute(t, "find", "--config", path, "--min-arity", "0")
	assert.Error(t, err)

	_, _, err = execute(t, append([]string{"bench", "--workers", "100"}, smallGraph...)...)
	assert.Error(t, err)
}
