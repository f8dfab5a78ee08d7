package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowflake/internal/lattice"
	"snowflake/internal/sims/reiter"
)

func smallGrid(t *testing.T, rounds int) *reiter.Grid {
	t.Helper()
	cfg := reiter.DefaultConfig()
	cfg.ExpandRounds = rounds
	return reiter.New(cfg)
}

func TestPaletteColors(t *testing.T) {
	p := Palette()
	require.Len(t, p, 4)
	assert.Equal(t, StateColor(reiter.Frozen), p[Code(reiter.Frozen)])
	assert.Equal(t, StateColor(reiter.Boundary), p[Code(reiter.Boundary)])
	assert.Equal(t, StateColor(reiter.NonReceptive), p[Code(reiter.NonReceptive)])

	blue := StateColor(reiter.Frozen)
	red := StateColor(reiter.Boundary)
	green := StateColor(reiter.NonReceptive)
	assert.Greater(t, blue.B, blue.R)
	assert.Greater(t, red.R, red.G)
	assert.Greater(t, green.G, green.R)
}

func TestFillPaletteClampsCodes(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{1, 9}, []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}})
	assert.Equal(t, []byte{2, 0, 0, 255, 2, 0, 0, 255}, buf)

	fillPaletteRGBA(buf, []uint8{1, 1}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestLayoutGivesEveryPointItsOwnPixel(t *testing.T) {
	g := smallGrid(t, 6)
	l := LayoutFor(g, 1)
	seen := map[[2]int]lattice.Coord{}
	g.Each(func(c lattice.Coord, _ reiter.Cell) {
		x, y := l.Pixel(c)
		size := l.Size()
		require.True(t, x >= 0 && x < size.W && y >= 0 && y < size.H, "pixel (%d,%d) outside %+v", x, y, size)
		if prev, ok := seen[[2]int{x, y}]; ok {
			t.Fatalf("%v and %v map to the same pixel (%d,%d)", prev, c, x, y)
		}
		seen[[2]int{x, y}] = c
	})
	assert.Len(t, seen, g.Len())
}

func TestLayoutFlipsY(t *testing.T) {
	l := NewLayout(lattice.Rect{Min: lattice.Coord{X: -2, Y: -2}, Max: lattice.Coord{X: 2, Y: 2}}, 3)
	assert.Equal(t, 3, l.Cols)
	assert.Equal(t, 3, l.Rows)
	_, top := l.Pixel(lattice.Coord{X: 0, Y: 2})
	_, bottom := l.Pixel(lattice.Coord{X: 0, Y: -2})
	assert.Equal(t, 0, top)
	assert.Equal(t, 6, bottom)
}

func TestRasterCountsStates(t *testing.T) {
	g := reiter.NewSeed(reiter.DefaultConfig())
	g.Expand()
	g.MarkBoundaries()
	cls := g.Classify()
	l := NewLayout(cls.Bounds(), 2)
	raster := Raster(cls, l)

	counts := map[uint8]int{}
	for _, v := range raster.Cells() {
		counts[v]++
	}
	assert.Equal(t, 4, counts[CodeFrozen])
	assert.Equal(t, 6*4, counts[CodeBoundary])
	assert.Zero(t, counts[CodeNonReceptive])

	img := Image(raster, Palette())
	x, y := l.Pixel(lattice.Origin)
	assert.Equal(t, StateColor(reiter.Frozen), img.RGBAAt(x, y))
}

func TestVaporImageSkipsFrozen(t *testing.T) {
	g := reiter.NewSeed(reiter.DefaultConfig())
	g.Expand()
	l := LayoutFor(g, 1)
	img := VaporImage(g.Snapshot(), l, color.RGBA{B: 255, A: 255})

	x, y := l.Pixel(lattice.Origin)
	assert.Zero(t, img.RGBAAt(x, y).A)
	x, y = l.Pixel(lattice.Coord{X: 0, Y: 2})
	assert.Equal(t, uint8(102), img.RGBAAt(x, y).A)
}

func TestSaveScatter(t *testing.T) {
	g := smallGrid(t, 5)
	for i := 0; i < 10; i++ {
		g.Step()
	}
	g.MarkBoundaries()
	path := filepath.Join(t.TempDir(), "out", "flake.png")

	opts := DefaultScatterOptions()
	opts.Width, opts.Height = opts.Width/4, opts.Height/4
	require.NoError(t, SaveScatter(g.Classify(), path, opts))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestScatterSkipsEmptySeries(t *testing.T) {
	g := reiter.NewSeed(reiter.DefaultConfig())
	p, err := Scatter(g.Classify(), DefaultScatterOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 0.0, p.X.Max)

	_, err = Scatter(reiter.Classification{}, DefaultScatterOptions())
	assert.NoError(t, err)
}

func TestSavePNG(t *testing.T) {
	g := smallGrid(t, 4)
	l := LayoutFor(g, 3)
	path := filepath.Join(t.TempDir(), "raster.png")
	require.NoError(t, SavePNG(Frame(g, l), path))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	size := l.Size()
	assert.Equal(t, size.W, img.Bounds().Dx())
	assert.Equal(t, size.H, img.Bounds().Dy())
}

func TestRecorderWritesEveryNthIteration(t *testing.T) {
	g := smallGrid(t, 4)
	path := filepath.Join(t.TempDir(), "growth.avi")
	rec, err := NewRecorder(path, LayoutFor(g, 4), 10, 3)
	require.NoError(t, err)

	require.NoError(t, g.Run(t.Context(), 9, rec.Observe))
	require.NoError(t, rec.Close())
	assert.Equal(t, 3, rec.Frames())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
