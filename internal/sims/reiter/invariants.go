package reiter

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrFrozenVapor reports a frozen cell that still holds diffusing vapor.
	ErrFrozenVapor = errors.New("frozen cell holds diffusing vapor")
	// ErrVaporMismatch reports a cell whose vapor level is not u + v.
	ErrVaporMismatch = errors.New("vapor level does not match u + v")
)

const vaporTolerance = 1e-12

// CheckInvariants verifies every cell. It returns the first violation found.
func (g *Grid) CheckInvariants() error {
	for i, cell := range g.cells {
		if cell.State == Frozen && cell.U != 0 {
			return fmt.Errorf("%w: %v has u=%g", ErrFrozenVapor, g.coords[i], cell.U)
		}
		level := cell.VaporLevel()
		if math.IsNaN(level) || math.Abs(level-(cell.U+cell.V)) > vaporTolerance {
			return fmt.Errorf("%w: %v has u=%g v=%g level=%g", ErrVaporMismatch, g.coords[i], cell.U, cell.V, level)
		}
	}
	return nil
}

// verify panics on invariant violations when the grid runs in strict mode.
func (g *Grid) verify(op string) {
	if !g.cfg.Strict {
		return
	}
	if err := g.CheckInvariants(); err != nil {
		panic(fmt.Sprintf("reiter: %s: %v", op, err))
	}
}
