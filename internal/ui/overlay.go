//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snowflake/internal/render"
	"snowflake/internal/sims/reiter"
)

// Overlay draws the diffusing vapor field on top of the crystal. It is toggled
// with V.
type Overlay struct {
	grid   *reiter.Grid
	layout render.Layout
	scale  int
	show   bool

	img *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(grid *reiter.Grid, layout render.Layout, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	size := layout.Size()
	return &Overlay{grid: grid, layout: layout, scale: scale, img: ebiten.NewImage(size.W, size.H)}
}

// SetLayout switches to a new raster layout, reallocating the image when the
// size changed.
func (o *Overlay) SetLayout(layout render.Layout) {
	if layout.Size() != o.layout.Size() {
		size := layout.Size()
		o.img = ebiten.NewImage(size.W, size.H)
	}
	o.layout = layout
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	vapor := render.VaporImage(o.grid.Snapshot(), o.layout, color.RGBA{R: 210, G: 235, B: 255, A: 255})
	o.img.WritePixels(vapor.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
