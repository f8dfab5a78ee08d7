package reiter

import (
	"errors"
	"math"
	"strings"
	"testing"

	"snowflake/internal/lattice"
)

func TestCheckInvariantsFrozenVapor(t *testing.T) {
	cfg := seedConfig()
	cfg.Strict = false
	g := NewSeed(cfg)
	g.Set(lattice.Origin, Cell{U: 0.2, V: 1, State: Frozen})

	err := g.CheckInvariants()
	if !errors.Is(err, ErrFrozenVapor) {
		t.Fatalf("expected ErrFrozenVapor, got %v", err)
	}
	if !strings.Contains(err.Error(), "{0 0}") {
		t.Fatalf("error should name the coordinate, got %q", err)
	}
}

func TestCheckInvariantsNaN(t *testing.T) {
	cfg := seedConfig()
	cfg.Strict = false
	g := NewSeed(cfg)
	g.Set(lattice.Coord{X: 2, Y: 1}, Cell{U: math.NaN(), State: NonReceptive})

	if err := g.CheckInvariants(); !errors.Is(err, ErrVaporMismatch) {
		t.Fatalf("expected ErrVaporMismatch, got %v", err)
	}
}

func TestStrictModePanics(t *testing.T) {
	g := NewSeed(DefaultConfig())
	g.Set(lattice.Origin, Cell{U: 0.5, V: 1, State: Frozen})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected strict grid to panic on invariant violation")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "add constant") {
			t.Fatalf("unexpected panic value %v", r)
		}
	}()
	g.AddConstant()
}

func TestLenientModeDoesNotPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strict = false
	g := NewSeed(cfg)
	g.Set(lattice.Origin, Cell{U: 0.5, V: 1, State: Frozen})
	g.AddConstant()
	if cell, _ := g.Cell(lattice.Origin); !near(cell.V, 1.001) {
		t.Fatalf("unexpected seed %+v", cell)
	}
}
