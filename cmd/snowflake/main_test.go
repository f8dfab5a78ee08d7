package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowflake/internal/sims/reiter"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParamsPrintsDefaults(t *testing.T) {
	out, err := execute(t, "params")
	require.NoError(t, err)

	cfg, err := reiter.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, reiter.DefaultConfig(), cfg)
}

func TestParamsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("beta: 0.35\ngamma: 0.002\niterations: 200\n"), 0o644))

	out, err := execute(t, "params", "--config", path, "--gamma", "0.005")
	require.NoError(t, err)

	cfg, err := reiter.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 0.35, cfg.Beta)
	assert.Equal(t, 0.005, cfg.Gamma)
	assert.Equal(t, 200, cfg.Iterations)
	assert.Equal(t, 1.0, cfg.Alpha)
}

func TestParamsSetPairs(t *testing.T) {
	out, err := execute(t, "params", "--set", "rounds=12,strict=false", "--rounds", "20")
	require.NoError(t, err)

	cfg, err := reiter.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.ExpandRounds, "named flags win over --set")
	assert.False(t, cfg.Strict)

	_, err = execute(t, "params", "--set", "delta=1")
	assert.ErrorIs(t, err, reiter.ErrInvalidParams)
}

func TestParamsRejectsInvalidValues(t *testing.T) {
	_, err := execute(t, "params", "--beta", "-1")
	assert.ErrorIs(t, err, reiter.ErrInvalidParams)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "params", "--log", "loud")
	assert.Error(t, err)
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	scatter := filepath.Join(dir, "plot.png")
	raster := filepath.Join(dir, "raster.png")
	video := filepath.Join(dir, "growth.avi")

	out, err := execute(t, "run",
		"--rounds", "8", "--iterations", "30",
		"--out", scatter, "--raster", raster,
		"--video", video, "--video-every", "10", "--scale", "2",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "iteration:     30")

	for _, path := range []string{scatter, raster, video} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
}

func TestRunSimulationStats(t *testing.T) {
	cfg := reiter.DefaultConfig()
	cfg.ExpandRounds = 5
	cfg.Iterations = 25

	stats, err := runSimulation(context.Background(), cfg, outputs{scale: 1})
	require.NoError(t, err)
	assert.Equal(t, 25, stats.Iteration)
	assert.Equal(t, 91, stats.Points)
	assert.Equal(t, 13, stats.Frozen)
}

func TestRunSimulationCancelled(t *testing.T) {
	cfg := reiter.DefaultConfig()
	cfg.ExpandRounds = 2
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runSimulation(ctx, cfg, outputs{scale: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweepPrintsRankedTable(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "sweep",
		"--rounds", "8", "--iterations", "40",
		"--betas", "0.3,0.5", "--gammas", "0.001",
		"--workers", "2", "--out-dir", dir,
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Top 2 results:", lines[0])
	assert.Contains(t, lines[1], "beta=0.5")
	assert.Contains(t, lines[2], "beta=0.3")

	plots, err := filepath.Glob(filepath.Join(dir, "case_*.png"))
	require.NoError(t, err)
	assert.Len(t, plots, 2)
}

func TestRankResults(t *testing.T) {
	results := []reiter.SweepResult{
		{Case: reiter.SweepCase{Beta: 0.1}, Stats: reiter.Stats{Frozen: 3}, FirstGrowth: 9},
		{Case: reiter.SweepCase{Beta: 0.2}, Stats: reiter.Stats{Frozen: 7}, FirstGrowth: 4},
		{Case: reiter.SweepCase{Beta: 0.3}, Stats: reiter.Stats{Frozen: 3}, FirstGrowth: 2},
	}
	rankResults(results)
	assert.Equal(t, 0.2, results[0].Case.Beta)
	assert.Equal(t, 0.3, results[1].Case.Beta)
	assert.Equal(t, 0.1, results[2].Case.Beta)
}
