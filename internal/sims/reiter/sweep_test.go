package reiter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCases(t *testing.T) {
	base := DefaultConfig().Params
	cases := Cases(base, nil, []float64{0.3, 0.4}, []float64{0.001, 0.002})
	require.Len(t, cases, 4)
	assert.Equal(t, SweepCase{Alpha: 1, Beta: 0.3, Gamma: 0.001}, cases[0])
	assert.Equal(t, SweepCase{Alpha: 1, Beta: 0.4, Gamma: 0.002}, cases[3])

	assert.Equal(t, []SweepCase{{Alpha: 1, Beta: 0.4, Gamma: 0.001}}, Cases(base, nil, nil, nil))
}

func TestSweepMatchesSequentialRuns(t *testing.T) {
	base := DefaultConfig()
	base.ExpandRounds = 8
	base.Iterations = 40
	cases := Cases(base.Params, nil, []float64{0.3, 0.5}, []float64{0.001, 0.01})

	var mu sync.Mutex
	finished := map[int]int{}
	results, err := Sweep(context.Background(), base, cases, 2, func(i int, g *Grid) error {
		mu.Lock()
		defer mu.Unlock()
		finished[i] = g.Iteration()
		return nil
	})
	require.NoError(t, err)
	require.Len(t, results, len(cases))
	assert.Equal(t, map[int]int{0: 40, 1: 40, 2: 40, 3: 40}, finished)

	for i, c := range cases {
		cfg := base
		cfg.Beta, cfg.Gamma = c.Beta, c.Gamma
		g := New(cfg)
		require.NoError(t, g.Run(context.Background(), cfg.Iterations, nil))

		assert.Equal(t, c, results[i].Case)
		assert.Equal(t, g.Stats(), results[i].Stats)
		assert.Positive(t, results[i].FirstGrowth, "case %s never grew", c)
	}
}

func TestSweepRejectsInvalidCase(t *testing.T) {
	base := DefaultConfig()
	base.ExpandRounds = 2
	_, err := Sweep(context.Background(), base, []SweepCase{{Alpha: 1, Beta: -1, Gamma: 0.001}}, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestSweepCancelled(t *testing.T) {
	base := DefaultConfig()
	base.ExpandRounds = 2
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, base, Cases(base.Params, nil, nil, nil), 1, nil)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSweepStopsOnCallbackError(t *testing.T) {
	base := DefaultConfig()
	base.ExpandRounds = 2
	base.Iterations = 3
	boom := errors.New("boom")
	_, err := Sweep(context.Background(), base, Cases(base.Params, nil, nil, nil), 1, func(int, *Grid) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
