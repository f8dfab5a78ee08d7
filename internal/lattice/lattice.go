// Package lattice describes the six-way connected lattice the crystal grows on.
//
// Sites sit at even horizontal spacing. A horizontal step of 2 is paired with a
// vertical offset of 1, and a vertical step moves 2, so every site touches six
// others in a hexagonal arrangement:
//
//	      (x, y+2)
//	(x-2, y+1)   (x+2, y+1)
//	       (x, y)
//	(x-2, y-1)   (x+2, y-1)
//	      (x, y-2)
package lattice

// Coord addresses a single lattice site. It is comparable and used directly as
// a map key.
type Coord struct {
	X, Y int
}

// Origin is the site every crystal is seeded from.
var Origin = Coord{}

// Degree is the number of neighbors of every site.
const Degree = 6

// Neighbors returns the six sites adjacent to c: up, down, then the four
// diagonals right-up, right-down, left-up, left-down.
func Neighbors(c Coord) [Degree]Coord {
	x, y := c.X, c.Y
	return [Degree]Coord{
		{x, y + 2},
		{x, y - 2},
		{x + 2, y + 1},
		{x + 2, y - 1},
		{x - 2, y + 1},
		{x - 2, y - 1},
	}
}

// Less orders coordinates by X, then Y.
func Less(a, b Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Coord) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// Rect is an inclusive bounding box over lattice coordinates.
type Rect struct {
	Min, Max Coord
}

// Empty reports whether the rectangle covers no sites.
func (r Rect) Empty() bool { return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y }

// Union grows r so it also covers o. Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if o.Empty() {
		return r
	}
	if r.Empty() {
		return o
	}
	return Rect{
		Min: Coord{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Coord{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// Bounds returns the smallest rectangle covering coords. An empty input yields
// an empty rectangle.
func Bounds(coords []Coord) Rect {
	if len(coords) == 0 {
		return Rect{Min: Coord{0, 0}, Max: Coord{-1, -1}}
	}
	r := Rect{Min: coords[0], Max: coords[0]}
	for _, c := range coords[1:] {
		r.Min.X = min(r.Min.X, c.X)
		r.Min.Y = min(r.Min.Y, c.Y)
		r.Max.X = max(r.Max.X, c.X)
		r.Max.Y = max(r.Max.Y, c.Y)
	}
	return r
}
