package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"snowflake/internal/render"
	"snowflake/internal/sims/reiter"
)

// outputs selects what a run writes once it completes.
type outputs struct {
	scatter    string
	raster     string
	scale      int
	video      string
	videoEvery int
	fps        int
	progress   int
}

func newRunCmd() *cobra.Command {
	model := newModelFlags()
	out := outputs{scatter: "snowflake.png", scale: 4, videoEvery: 5, fps: 25, progress: 50}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Grow a snowflake and render the final classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			stats, err := runSimulation(cmd.Context(), cfg, out)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
	model.bind(cmd.Flags())
	fs := cmd.Flags()
	fs.StringVar(&out.scatter, "out", out.scatter, "Scatter plot output (.png, .svg or .pdf), empty to skip")
	fs.StringVar(&out.raster, "raster", "", "Raster PNG output, empty to skip")
	fs.IntVar(&out.scale, "scale", out.scale, "Pixels per lattice cell in raster and video output")
	fs.StringVar(&out.video, "video", "", "MJPEG (.avi) growth video output, empty to skip")
	fs.IntVar(&out.videoEvery, "video-every", out.videoEvery, "Record a video frame every N iterations")
	fs.IntVar(&out.fps, "fps", out.fps, "Video frames per second")
	fs.IntVar(&out.progress, "progress", out.progress, "Log progress every N iterations, 0 disables")
	return cmd
}

// runSimulation builds the grid, runs cfg.Iterations steps and writes the
// requested outputs.
func runSimulation(ctx context.Context, cfg reiter.Config, out outputs) (stats reiter.Stats, err error) {
	start := time.Now()
	g := reiter.New(cfg)
	logrus.Infof("Starting run: %d points, alpha=%g beta=%g gamma=%g, %d iterations",
		g.Len(), cfg.Alpha, cfg.Beta, cfg.Gamma, cfg.Iterations)

	var observers []func(*reiter.Grid) error
	if out.progress > 0 {
		observers = append(observers, func(g *reiter.Grid) error {
			if g.Iteration()%out.progress == 0 {
				s := g.Stats()
				logrus.Debugf("iteration %d: frozen=%d boundary=%d extent=%d", s.Iteration, s.Frozen, s.Boundary, s.Extent)
			}
			return nil
		})
	}

	layout := render.LayoutFor(g, out.scale)
	if out.video != "" {
		rec, err := render.NewRecorder(out.video, layout, out.fps, out.videoEvery)
		if err != nil {
			return reiter.Stats{}, err
		}
		defer func() {
			err = errors.Join(err, rec.Close())
			if err == nil {
				logrus.Infof("Wrote %d frames to %s", rec.Frames(), out.video)
			}
		}()
		if err := rec.AddFrame(g); err != nil {
			return reiter.Stats{}, err
		}
		observers = append(observers, rec.Observe)
	}

	if err := g.Run(ctx, cfg.Iterations, chain(observers)); err != nil {
		return reiter.Stats{}, fmt.Errorf("run stopped at iteration %d: %w", g.Iteration(), err)
	}
	stats = g.Stats()
	logrus.Infof("Run complete in %s: %d frozen of %d points", time.Since(start).Round(time.Millisecond), stats.Frozen, stats.Points)

	cls := g.Classify()
	if out.scatter != "" {
		opts := render.DefaultScatterOptions()
		opts.Title = fmt.Sprintf("Snowflake after %d iterations", stats.Iteration)
		if err := render.SaveScatter(cls, out.scatter, opts); err != nil {
			return reiter.Stats{}, err
		}
		logrus.Infof("Wrote scatter plot to %s", out.scatter)
	}
	if out.raster != "" {
		img := render.Image(render.Raster(cls, layout), render.Palette())
		if err := render.SavePNG(img, out.raster); err != nil {
			return reiter.Stats{}, err
		}
		logrus.Infof("Wrote raster to %s", out.raster)
	}
	return stats, nil
}

func chain(observers []func(*reiter.Grid) error) func(*reiter.Grid) error {
	if len(observers) == 0 {
		return nil
	}
	return func(g *reiter.Grid) error {
		for _, fn := range observers {
			if err := fn(g); err != nil {
				return err
			}
		}
		return nil
	}
}

func printStats(w io.Writer, s reiter.Stats) {
	fmt.Fprintf(w, "iteration:     %d\n", s.Iteration)
	fmt.Fprintf(w, "points:        %d\n", s.Points)
	fmt.Fprintf(w, "frozen:        %d\n", s.Frozen)
	fmt.Fprintf(w, "boundary:      %d\n", s.Boundary)
	fmt.Fprintf(w, "non-receptive: %d\n", s.NonReceptive)
	fmt.Fprintf(w, "extent:        %d\n", s.Extent)
	fmt.Fprintf(w, "max vapor:     %.4f\n", s.MaxVapor)
}
