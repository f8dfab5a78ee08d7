package lattice

import (
	"slices"
	"testing"
)

func TestNeighborsOfOrigin(t *testing.T) {
	got := Neighbors(Origin)
	want := map[Coord]bool{
		{0, 2}:   true,
		{0, -2}:  true,
		{2, 1}:   true,
		{2, -1}:  true,
		{-2, 1}:  true,
		{-2, -1}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %d", len(want), len(got))
	}
	seen := map[Coord]bool{}
	for _, c := range got {
		if !want[c] {
			t.Fatalf("unexpected neighbor %v", c)
		}
		if seen[c] {
			t.Fatalf("duplicate neighbor %v", c)
		}
		seen[c] = true
	}
}

func TestNeighborsOrderAndTranslation(t *testing.T) {
	c := Coord{X: -7, Y: 4}
	got := Neighbors(c)
	want := [Degree]Coord{{-7, 6}, {-7, 2}, {-5, 5}, {-5, 3}, {-9, 5}, {-9, 3}}
	if got != want {
		t.Fatalf("neighbors of %v = %v, expected %v", c, got, want)
	}
}

func TestNeighborsAreSymmetric(t *testing.T) {
	for x := -4; x <= 4; x++ {
		for y := -4; y <= 4; y++ {
			c := Coord{x, y}
			for _, n := range Neighbors(c) {
				back := Neighbors(n)
				if !slices.Contains(back[:], c) {
					t.Fatalf("%v lists %v as neighbor but not vice versa", c, n)
				}
			}
		}
	}
}

func TestCompareSortsByXThenY(t *testing.T) {
	coords := []Coord{{2, 1}, {0, -2}, {0, 2}, {-2, 1}, {2, -1}, {-2, -1}}
	slices.SortFunc(coords, Compare)
	want := []Coord{{-2, -1}, {-2, 1}, {0, -2}, {0, 2}, {2, -1}, {2, 1}}
	if !slices.Equal(coords, want) {
		t.Fatalf("sorted %v, expected %v", coords, want)
	}
	if Compare(Origin, Origin) != 0 {
		t.Fatal("expected equal coordinates to compare as 0")
	}
}

func TestBounds(t *testing.T) {
	if !Bounds(nil).Empty() {
		t.Fatal("bounds of nothing must be empty")
	}
	nb := Neighbors(Origin)
	r := Bounds(nb[:])
	if r.Min != (Coord{-2, -2}) || r.Max != (Coord{2, 2}) {
		t.Fatalf("unexpected bounds %+v", r)
	}
	u := r.Union(Rect{Min: Coord{4, 0}, Max: Coord{4, 0}})
	if u.Max.X != 4 || u.Min.X != -2 {
		t.Fatalf("unexpected union %+v", u)
	}
	if got := Bounds(nil).Union(r); got != r {
		t.Fatalf("union with empty should return other, got %+v", got)
	}
}
