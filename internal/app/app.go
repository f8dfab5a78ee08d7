//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"snowflake/internal/core"
	"snowflake/internal/render"
	"snowflake/internal/sims/reiter"
	"snowflake/internal/ui"
)

// Game adapts a crystal grid to the ebiten.Game interface.
type Game struct {
	grid    *reiter.Grid
	layout  render.Layout
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided grid.
func New(grid *reiter.Grid, cfg *Config) *Game {
	layout := render.LayoutFor(grid, 1)
	size := layout.Size()
	return &Game{
		grid:     grid,
		layout:   layout,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(grid, layout, cfg.Scale),
		hud:      ui.NewHUD(grid, cfg.HUDWidth, size.H*cfg.Scale),
		ticker:   core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
}

// Reset rebuilds the grid from its current parameters. The expansion round
// count may have changed, so the raster layout is rebuilt too.
func (g *Game) Reset() {
	g.grid.Reset()
	g.tickOnce = false
	g.layout = render.LayoutFor(g.grid, 1)
	size := g.layout.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.overlay.SetLayout(g.layout)
	logrus.Infof("reset grid: %d points, %d expansion rounds", g.grid.Len(), g.grid.Config().ExpandRounds)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	g.overlay.Update()
	g.hud.Update(g.layout.Size().W * g.scale)

	steps := g.ticker.Due()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = max(steps, 1)
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.grid.Step()
	}
	if steps > 0 && g.grid.Iteration()%100 == 0 {
		s := g.grid.Stats()
		logrus.Debugf("iteration %d: frozen=%d boundary=%d extent=%d", s.Iteration, s.Frozen, s.Boundary, s.Extent)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, render.Frame(g.grid, g.layout), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.layout.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.layout.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
