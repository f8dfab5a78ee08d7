package reiter

import "context"

// MarkBoundaries turns every non-frozen neighbor of a frozen cell into a
// boundary cell. Neighbors outside the grid are skipped. Marking never clears
// a boundary, so repeated calls are idempotent.
func (g *Grid) MarkBoundaries() {
	links := g.neighborLinks()
	for i := range g.cells {
		if g.cells[i].State != Frozen {
			continue
		}
		for _, j := range links[i] {
			if j < 0 {
				continue
			}
			if g.cells[j].State != Frozen {
				g.cells[j].State = Boundary
			}
		}
	}
	g.verify("mark boundaries")
}

// AddConstant deposits Gamma onto the frozen part of every receptive cell.
// Non-receptive cells are unaffected.
func (g *Grid) AddConstant() {
	gamma := g.cfg.Gamma
	for i := range g.cells {
		if g.cells[i].State == NonReceptive {
			continue
		}
		g.cells[i].V += gamma
	}
	g.verify("add constant")
}

// DiffuseStep relaxes the diffusing vapor of every unfrozen cell toward the
// average of its neighborhood and applies the freezing rule. All reads see the
// state from before the call; the new state replaces it once the pass is done.
//
// A cell with any neighbor outside the grid averages with itself only. The sum
// includes the u of frozen neighbors while the divisor counts unfrozen ones;
// frozen cells hold no u so the sum is unaffected.
func (g *Grid) DiffuseStep() {
	links := g.neighborLinks()
	if cap(g.next) < len(g.cells) {
		g.next = make([]Cell, len(g.cells))
	}
	next := g.next[:len(g.cells)]
	halfAlpha := g.cfg.Alpha / 2

	for i, c := range g.cells {
		if c.State == Frozen {
			next[i] = c
			continue
		}

		totalU := 0.0
		unfrozen := 0
		for _, j := range links[i] {
			if j < 0 {
				totalU = c.U
				unfrozen = 1
				break
			}
			nb := g.cells[j]
			if nb.State != Frozen {
				unfrozen++
			}
			totalU += nb.U
		}

		averageU := totalU / float64(max(unfrozen, 1))
		u := c.U + halfAlpha*(averageU-c.U)

		switch {
		case c.VaporLevel() > 1:
			next[i] = Cell{U: 0, V: u + c.V, State: Frozen}
		case c.State == Boundary:
			next[i] = Cell{U: 0, V: u + c.V, State: NonReceptive}
		default:
			next[i] = Cell{U: u, V: c.V, State: NonReceptive}
		}
	}

	g.cells, g.next = next, g.cells
	g.verify("diffuse")
}

// Step runs one iteration of the model: mark boundaries, add the background
// constant, then diffuse and freeze.
func (g *Grid) Step() {
	g.MarkBoundaries()
	g.AddConstant()
	g.DiffuseStep()
	g.iteration++
}

// Run advances the grid by n iterations. observe, when non-nil, is called
// after every iteration; a non-nil error from it stops the run. Cancelling
// ctx stops the run between iterations.
func (g *Grid) Run(ctx context.Context, n int, observe func(*Grid) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Step()
		if observe == nil {
			continue
		}
		if err := observe(g); err != nil {
			return err
		}
	}
	return nil
}
