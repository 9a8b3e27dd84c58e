package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Xhst/dssa-multiagent-scheduling/config"
)

func TestDefault_MatchesOriginalHeuristicParams(t *testing.T) {
	h := config.Default()
	require.Equal(t, 1000, h.MaxIterations)
	require.Equal(t, 100, h.MaxMoves)
	require.Equal(t, 1.0, h.Temperature)
	require.Equal(t, 0.99, h.CoolingRate)
	require.NoError(t, h.Validate())
}

func TestLoad_OverlaysPartialYAMLOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heuristic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxIterations: 5000\ncoolingRate: 0.95\n"), 0o600))

	h, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5000, h.MaxIterations)
	require.Equal(t, 0.95, h.CoolingRate)
	require.Equal(t, 100, h.MaxMoves) // untouched default
}

func TestFromOverrides_WeaklyTypedCLIFlags(t *testing.T) {
	var seed int64 = 42
	h, err := config.FromOverrides(map[string]interface{}{
		"maxIterations": "2500",
		"temperature":   "2.5",
		"seed":          seed,
	})
	require.NoError(t, err)
	require.Equal(t, 2500, h.MaxIterations)
	require.Equal(t, 2.5, h.Temperature)
	require.NotNil(t, h.Seed)
	require.Equal(t, int64(42), *h.Seed)
}

func TestValidate_RejectsOutOfRangeParameters(t *testing.T) {
	h := config.Heuristic{MaxIterations: 0, MaxMoves: 0, Temperature: -1, CoolingRate: 1.5}
	require.Error(t, h.Validate())
}
