package reiter

import (
	"slices"

	"snowflake/internal/lattice"
)

// Classification partitions the lattice points by cell state. Each slice is
// sorted with lattice.Compare and owned by the caller.
type Classification struct {
	Frozen       []lattice.Coord
	Boundary     []lattice.Coord
	NonReceptive []lattice.Coord
}

// Of returns the points classified under s.
func (c Classification) Of(s State) []lattice.Coord {
	switch s {
	case Frozen:
		return c.Frozen
	case Boundary:
		return c.Boundary
	default:
		return c.NonReceptive
	}
}

// Len reports the total number of classified points.
func (c Classification) Len() int {
	return len(c.Frozen) + len(c.Boundary) + len(c.NonReceptive)
}

// Bounds covers every classified point.
func (c Classification) Bounds() lattice.Rect {
	return lattice.Bounds(c.Frozen).
		Union(lattice.Bounds(c.Boundary)).
		Union(lattice.Bounds(c.NonReceptive))
}

// Classify returns the current points partitioned by state.
func (g *Grid) Classify() Classification {
	var out Classification
	for i, c := range g.coords {
		switch g.cells[i].State {
		case Frozen:
			out.Frozen = append(out.Frozen, c)
		case Boundary:
			out.Boundary = append(out.Boundary, c)
		default:
			out.NonReceptive = append(out.NonReceptive, c)
		}
	}
	slices.SortFunc(out.Frozen, lattice.Compare)
	slices.SortFunc(out.Boundary, lattice.Compare)
	slices.SortFunc(out.NonReceptive, lattice.Compare)
	return out
}

// Sample pairs a point with a copy of its cell.
type Sample struct {
	Coord lattice.Coord
	Cell  Cell
}

// Snapshot copies every point and cell, sorted by coordinate.
func (g *Grid) Snapshot() []Sample {
	out := make([]Sample, len(g.coords))
	for i, c := range g.coords {
		out[i] = Sample{Coord: c, Cell: g.cells[i]}
	}
	slices.SortFunc(out, func(a, b Sample) int { return lattice.Compare(a.Coord, b.Coord) })
	return out
}

// Stats summarizes the grid for logging and the viewer HUD.
type Stats struct {
	Iteration    int
	Points       int
	Frozen       int
	Boundary     int
	NonReceptive int

	TotalU   float64
	TotalV   float64
	MaxVapor float64

	// Extent is the largest |x| or |y| over the frozen points.
	Extent int
}

// Stats computes the current summary.
func (g *Grid) Stats() Stats {
	s := Stats{Iteration: g.iteration, Points: len(g.cells)}
	for i, cell := range g.cells {
		switch cell.State {
		case Frozen:
			s.Frozen++
			c := g.coords[i]
			s.Extent = max(s.Extent, abs(c.X), abs(c.Y))
		case Boundary:
			s.Boundary++
		default:
			s.NonReceptive++
		}
		s.TotalU += cell.U
		s.TotalV += cell.V
		s.MaxVapor = max(s.MaxVapor, cell.VaporLevel())
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
