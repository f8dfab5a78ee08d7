package reiter

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SweepCase is one parameter combination of a sweep.
type SweepCase struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

func (c SweepCase) String() string {
	return fmt.Sprintf("alpha=%g beta=%g gamma=%g", c.Alpha, c.Beta, c.Gamma)
}

// SweepResult holds the final summary of one case.
type SweepResult struct {
	Case  SweepCase
	Stats Stats
	// FirstGrowth is the iteration at which the first point beyond the seed
	// froze, 0 if none did.
	FirstGrowth int
}

// Cases builds the cartesian product of the given values. Empty slices fall
// back to the value in base.
func Cases(base Params, alphas, betas, gammas []float64) []SweepCase {
	if len(alphas) == 0 {
		alphas = []float64{base.Alpha}
	}
	if len(betas) == 0 {
		betas = []float64{base.Beta}
	}
	if len(gammas) == 0 {
		gammas = []float64{base.Gamma}
	}
	var out []SweepCase
	for _, a := range alphas {
		for _, b := range betas {
			for _, g := range gammas {
				out = append(out, SweepCase{Alpha: a, Beta: b, Gamma: g})
			}
		}
	}
	return out
}

// Sweep runs every case on its own grid for base.Iterations steps, at most
// workers grids at a time. Each grid is owned by a single goroutine. done, when
// non-nil, receives the case index and the final grid on that goroutine.
// Results are returned in case order.
func Sweep(ctx context.Context, base Config, cases []SweepCase, workers int, done func(int, *Grid) error) ([]SweepResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	for _, c := range cases {
		cfg := base
		cfg.Alpha, cfg.Beta, cfg.Gamma = c.Alpha, c.Beta, c.Gamma
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("case %s: %w", c, err)
		}
	}

	results := make([]SweepResult, len(cases))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range cases {
		eg.Go(func() error {
			g, res, err := runCase(ctx, base, c)
			if err == nil && done != nil {
				err = done(i, g)
			}
			if err != nil {
				return fmt.Errorf("case %s: %w", c, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCase(ctx context.Context, base Config, c SweepCase) (*Grid, SweepResult, error) {
	cfg := base
	cfg.Alpha, cfg.Beta, cfg.Gamma = c.Alpha, c.Beta, c.Gamma
	g := New(cfg)
	res := SweepResult{Case: c}
	err := g.Run(ctx, cfg.Iterations, func(g *Grid) error {
		if res.FirstGrowth == 0 && g.Stats().Frozen > 1 {
			res.FirstGrowth = g.Iteration()
		}
		return nil
	})
	if err != nil {
		return nil, SweepResult{}, err
	}
	res.Stats = g.Stats()
	return g, res, nil
}
