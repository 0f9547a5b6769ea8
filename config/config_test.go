package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdisjoint/djmatch/matching"
)

const sampleYAML = `
graph_file: testdata/sample.konect
b: 3
sanity_check: true
count_coloring_ops: true
seed: 42
algorithms:
  - name: greedy
    local_swap: true
  - name: dyn_greedy
    recursion_depth: 2
    post_process: true
    filter_threshold: 1.5
  - name: node_centered
    aggregate: max
    threshold: 0.8
`

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesAlgorithmsAndBs(t *testing.T) {
	path := writeTempConfig(t, sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{3}, cfg.Bs())
	require.Len(t, cfg.Algorithms, 3)
}

func TestBuildAlgorithmsAppliesSpecOverrides(t *testing.T) {
	path := writeTempConfig(t, sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	algos, err := cfg.BuildAlgorithms(3)
	require.NoError(t, err)
	require.Len(t, algos, 3)
	require.Equal(t, "iterative-greedy", algos[0].Name())
	require.Equal(t, "dynamic-greedy", algos[1].Name())
	require.Equal(t, "node-centered", algos[2].Name())

	dg, ok := algos[1].(*matching.DynamicGreedy)
	require.True(t, ok)
	require.Equal(t, 2, dg.RecursionDepth)
}

func TestBuildAlgorithmsRejectsUnknownAlgorithm(t *testing.T) {
	path := writeTempConfig(t, "b: 1\nalgorithms:\n  - name: not-a-real-algo\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.BuildAlgorithms(1)
	require.Error(t, err)
}

func TestLoadRejectsMissingB(t *testing.T) {
	path := writeTempConfig(t, "algorithms:\n  - name: greedy\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestBuildAlgorithmsAppliesCommonColorAndRotateLong(t *testing.T) {
	path := writeTempConfig(t, `
b: 2
algorithms:
  - name: k_edge_coloring
    mode: dynamic
    common_color: true
    rotate_long: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	algos, err := cfg.BuildAlgorithms(2)
	require.NoError(t, err)
	require.Len(t, algos, 1)

	dkec, ok := algos[0].(*matching.DynamicKEdgeColoring)
	require.True(t, ok)
	require.True(t, dkec.CommonColor)
	require.True(t, dkec.RotateLong)
}
