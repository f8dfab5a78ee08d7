package reiter

import (
	"snowflake/internal/lattice"
)

// Grid owns every lattice point of a simulation and the cell stored at it.
// Points are kept in an arena indexed by insertion order and are never removed.
type Grid struct {
	cfg Config

	coords []lattice.Coord
	cells  []Cell
	next   []Cell
	index  map[lattice.Coord]int

	// links[i] holds the arena indices of the neighbors of point i, -1 when
	// the neighbor is not part of the grid. Rebuilt lazily after expansion.
	links [][lattice.Degree]int32
	stale bool

	iteration int
}

// New returns a grid seeded at the origin and expanded cfg.ExpandRounds times.
func New(cfg Config) *Grid {
	g := NewSeed(cfg)
	for i := 0; i < cfg.ExpandRounds; i++ {
		g.Expand()
	}
	return g
}

// NewSeed returns a grid holding only the frozen seed at the origin.
func NewSeed(cfg Config) *Grid {
	g := &Grid{cfg: cfg}
	g.seed()
	return g
}

func (g *Grid) seed() {
	g.coords = g.coords[:0]
	g.cells = g.cells[:0]
	g.index = make(map[lattice.Coord]int)
	g.links = g.links[:0]
	g.iteration = 0
	g.insert(lattice.Origin, Cell{U: 0, V: 1, State: Frozen})
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "reiter" }

// Config returns the configuration the grid currently runs with.
func (g *Grid) Config() Config { return g.cfg }

// Reset discards all growth and rebuilds the expanded seed grid.
func (g *Grid) Reset() {
	g.seed()
	for i := 0; i < g.cfg.ExpandRounds; i++ {
		g.Expand()
	}
}

// Len reports the number of lattice points.
func (g *Grid) Len() int { return len(g.cells) }

// Iteration reports how many full steps have run since construction or Reset.
func (g *Grid) Iteration() int { return g.iteration }

// Has reports whether c is part of the grid.
func (g *Grid) Has(c lattice.Coord) bool {
	_, ok := g.index[c]
	return ok
}

// Cell returns a copy of the cell at c.
func (g *Grid) Cell(c lattice.Coord) (Cell, bool) {
	i, ok := g.index[c]
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Set overwrites the cell at c, adding the point when it is new. It exists for
// building fixtures; the simulation itself only changes cells via its rules.
func (g *Grid) Set(c lattice.Coord, cell Cell) {
	if i, ok := g.index[c]; ok {
		g.cells[i] = cell
		return
	}
	g.insert(c, cell)
}

// Each calls fn for every point in insertion order with a copy of its cell.
func (g *Grid) Each(fn func(lattice.Coord, Cell)) {
	for i, c := range g.coords {
		fn(c, g.cells[i])
	}
}

// Expand grows the grid by one shell: every neighbor of an existing point that
// is not yet present is added as a non-receptive cell holding Beta vapor.
// Existing cells are left untouched. It returns the number of points added.
func (g *Grid) Expand() int {
	n := len(g.coords)
	added := 0
	for i := 0; i < n; i++ {
		for _, nb := range lattice.Neighbors(g.coords[i]) {
			if _, ok := g.index[nb]; ok {
				continue
			}
			g.insert(nb, Cell{U: g.cfg.Beta, V: 0, State: NonReceptive})
			added++
		}
	}
	g.verify("expand")
	return added
}

func (g *Grid) insert(c lattice.Coord, cell Cell) {
	g.index[c] = len(g.cells)
	g.coords = append(g.coords, c)
	g.cells = append(g.cells, cell)
	g.stale = true
}

// neighborLinks returns the cached neighbor table, rebuilding it when points
// were added since the last call.
func (g *Grid) neighborLinks() [][lattice.Degree]int32 {
	if !g.stale && len(g.links) == len(g.cells) {
		return g.links
	}
	if cap(g.links) < len(g.cells) {
		g.links = make([][lattice.Degree]int32, len(g.cells))
	} else {
		g.links = g.links[:len(g.cells)]
	}
	for i, c := range g.coords {
		for k, nb := range lattice.Neighbors(c) {
			j, ok := g.index[nb]
			if !ok {
				g.links[i][k] = -1
				continue
			}
			g.links[i][k] = int32(j)
		}
	}
	g.stale = false
	return g.links
}
