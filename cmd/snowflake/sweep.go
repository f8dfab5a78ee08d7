package main

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"snowflake/internal/render"
	"snowflake/internal/sims/reiter"
)

type sweepFlags struct {
	alphas  []float64
	betas   []float64
	gammas  []float64
	workers int
	top     int
	outDir  string
}

func newSweepCmd() *cobra.Command {
	model := newModelFlags()
	sf := sweepFlags{workers: runtime.NumCPU(), top: 10}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Grow one snowflake per parameter combination and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := model.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			cases := reiter.Cases(base.Params, sf.alphas, sf.betas, sf.gammas)
			logrus.Infof("Sweeping %d parameter sets (%d workers, %d iterations)", len(cases), sf.workers, base.Iterations)

			var done func(int, *reiter.Grid) error
			if sf.outDir != "" {
				done = func(i int, g *reiter.Grid) error {
					return writeCasePlot(g, sf.outDir, i)
				}
			}

			start := time.Now()
			results, err := reiter.Sweep(cmd.Context(), base, cases, sf.workers, done)
			if err != nil {
				return err
			}
			logrus.Infof("Sweep completed in %s", time.Since(start).Round(time.Millisecond))
			rankResults(results)
			printResults(cmd.OutOrStdout(), results, sf.top)
			return nil
		},
	}
	model.bind(cmd.Flags())
	fs := cmd.Flags()
	fs.Float64SliceVar(&sf.alphas, "alphas", nil, "Comma-separated alpha values (default: --alpha)")
	fs.Float64SliceVar(&sf.betas, "betas", nil, "Comma-separated beta values (default: --beta)")
	fs.Float64SliceVar(&sf.gammas, "gammas", nil, "Comma-separated gamma values (default: --gamma)")
	fs.IntVar(&sf.workers, "workers", sf.workers, "Number of grids simulated concurrently")
	fs.IntVar(&sf.top, "top", sf.top, "Number of results to print, 0 prints all")
	fs.StringVar(&sf.outDir, "out-dir", "", "Directory for one scatter plot per case, empty to skip")
	return cmd
}

// rankResults orders results by frozen count, then by earliest growth.
func rankResults(results []reiter.SweepResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Stats.Frozen != b.Stats.Frozen {
			return a.Stats.Frozen > b.Stats.Frozen
		}
		return a.FirstGrowth < b.FirstGrowth
	})
}

func printResults(w io.Writer, results []reiter.SweepResult, top int) {
	if top <= 0 || top > len(results) {
		top = len(results)
	}
	fmt.Fprintf(w, "Top %d results:\n", top)
	for i, res := range results[:top] {
		fmt.Fprintf(w, "%2d. frozen=%-5d extent=%-3d first-growth=%-4d %s\n",
			i+1, res.Stats.Frozen, res.Stats.Extent, res.FirstGrowth, res.Case)
	}
}

// writeCasePlot saves the final classification of case i to dir.
func writeCasePlot(g *reiter.Grid, dir string, i int) error {
	cfg := g.Config()
	opts := render.DefaultScatterOptions()
	opts.Title = fmt.Sprintf("alpha=%g beta=%g gamma=%g", cfg.Alpha, cfg.Beta, cfg.Gamma)
	path := filepath.Join(dir, fmt.Sprintf("case_%03d.png", i))
	if err := render.SaveScatter(g.Classify(), path, opts); err != nil {
		return err
	}
	logrus.Debugf("Wrote %s", path)
	return nil
}
