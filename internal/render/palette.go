package render

import (
	"image/color"

	"snowflake/internal/sims/reiter"
)

// Raster codes. Zero is empty space between lattice points.
const (
	CodeEmpty uint8 = iota
	CodeFrozen
	CodeBoundary
	CodeNonReceptive
)

// Code returns the raster value used for a cell state.
func Code(s reiter.State) uint8 {
	switch s {
	case reiter.Frozen:
		return CodeFrozen
	case reiter.Boundary:
		return CodeBoundary
	default:
		return CodeNonReceptive
	}
}

// StateColor is the fixed color of each state: frozen blue, boundary red,
// non-receptive green.
func StateColor(s reiter.State) color.RGBA {
	switch s {
	case reiter.Frozen:
		return color.RGBA{R: 30, G: 90, B: 230, A: 255}
	case reiter.Boundary:
		return color.RGBA{R: 220, G: 40, B: 40, A: 255}
	default:
		return color.RGBA{R: 40, G: 170, B: 60, A: 255}
	}
}

// Palette maps raster codes to colors. The index is the code.
func Palette() []color.RGBA {
	return []color.RGBA{
		CodeEmpty:        {A: 255},
		CodeFrozen:       StateColor(reiter.Frozen),
		CodeBoundary:     StateColor(reiter.Boundary),
		CodeNonReceptive: StateColor(reiter.NonReceptive),
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
