package render

import (
	"image"
	"image/color"

	"snowflake/internal/core"
	"snowflake/internal/lattice"
	"snowflake/internal/sims/reiter"
)

// Layout maps lattice coordinates onto a pixel raster. Lattice columns are two
// units apart and points within a column are two units apart, so both axes
// are halved. Larger y is drawn higher up.
type Layout struct {
	Bounds lattice.Rect
	Scale  int
	Cols   int
	Rows   int
}

// NewLayout covers bounds with scale*scale pixels per lattice point.
func NewLayout(bounds lattice.Rect, scale int) Layout {
	if scale <= 0 {
		scale = 1
	}
	l := Layout{Bounds: bounds, Scale: scale, Cols: 1, Rows: 1}
	if !bounds.Empty() {
		l.Cols = (bounds.Max.X-bounds.Min.X)/2 + 1
		l.Rows = (bounds.Max.Y-bounds.Min.Y)/2 + 1
	}
	return l
}

// LayoutFor covers every point of the grid.
func LayoutFor(g *reiter.Grid, scale int) Layout {
	return NewLayout(g.Classify().Bounds(), scale)
}

// Size reports the raster dimensions in pixels.
func (l Layout) Size() core.Size {
	return core.Size{W: l.Cols * l.Scale, H: l.Rows * l.Scale}
}

// Pixel returns the top-left pixel of the block drawn for c.
func (l Layout) Pixel(c lattice.Coord) (int, int) {
	col := floorDiv(c.X-l.Bounds.Min.X, 2)
	row := l.Rows - 1 - floorDiv(c.Y-l.Bounds.Min.Y, 2)
	return col * l.Scale, row * l.Scale
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Raster draws the classified points as state codes.
func Raster(cls reiter.Classification, l Layout) *core.ByteGrid {
	size := l.Size()
	grid := core.NewByteGrid(size.W, size.H)
	for _, s := range reiter.States {
		code := Code(s)
		for _, c := range cls.Of(s) {
			x, y := l.Pixel(c)
			grid.FillRect(x, y, l.Scale, l.Scale, code)
		}
	}
	return grid
}

// Image converts a raster of codes into pixels.
func Image(raster *core.ByteGrid, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, raster.W, raster.H))
	fillPaletteRGBA(img.Pix, raster.Cells(), palette)
	return img
}

// Frame renders the current classification of g with the default palette.
func Frame(g *reiter.Grid, l Layout) *image.RGBA {
	return Image(Raster(g.Classify(), l), Palette())
}

// VaporImage draws the diffusing vapor of every unfrozen point as tint with
// alpha proportional to u, clamped to [0, 1]. Pixels are premultiplied.
func VaporImage(samples []reiter.Sample, l Layout, tint color.RGBA) *image.RGBA {
	size := l.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for _, s := range samples {
		if s.Cell.State == reiter.Frozen {
			continue
		}
		a := min(max(s.Cell.U, 0), 1)
		if a == 0 {
			continue
		}
		px := color.RGBA{
			R: uint8(float64(tint.R)*a + 0.5),
			G: uint8(float64(tint.G)*a + 0.5),
			B: uint8(float64(tint.B)*a + 0.5),
			A: uint8(255*a + 0.5),
		}
		x, y := l.Pixel(s.Coord)
		for yy := y; yy < y+l.Scale; yy++ {
			for xx := x; xx < x+l.Scale; xx++ {
				img.SetRGBA(xx, yy, px)
			}
		}
	}
	return img
}
