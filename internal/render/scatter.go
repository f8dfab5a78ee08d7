package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"snowflake/internal/lattice"
	"snowflake/internal/sims/reiter"
)

// ScatterOptions controls the scatter plot export.
type ScatterOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Radius is the glyph radius of every point.
	Radius vg.Length
	Legend bool
}

// DefaultScatterOptions returns an 8x8 inch plot with small dots.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Title:  "Snowflake",
		Width:  8 * vg.Inch,
		Height: 8 * vg.Inch,
		Radius: vg.Points(1),
		Legend: true,
	}
}

// Scatter plots the classified points, one series per state in the fixed
// state colors. States without points are left out.
func Scatter(cls reiter.Classification, opts ScatterOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, s := range reiter.States {
		coords := cls.Of(s)
		if len(coords) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(toXYs(coords))
		if err != nil {
			return nil, fmt.Errorf("%s series: %w", s, err)
		}
		sc.GlyphStyle.Color = StateColor(s)
		sc.GlyphStyle.Radius = opts.Radius
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		if opts.Legend {
			p.Legend.Add(fmt.Sprintf("%s (%d)", s, len(coords)), sc)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// SaveScatter writes the scatter plot to path. The format follows the file
// extension (png, svg, pdf, ...).
func SaveScatter(cls reiter.Classification, path string, opts ScatterOptions) error {
	p, err := Scatter(cls, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save scatter plot: %w", err)
	}
	return nil
}

func toXYs(coords []lattice.Coord) plotter.XYs {
	pts := make(plotter.XYs, len(coords))
	for i, c := range coords {
		pts[i] = plotter.XY{X: float64(c.X), Y: float64(c.Y)}
	}
	return pts
}
