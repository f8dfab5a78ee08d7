package reiter

// State enumerates the cell states of the model.
type State uint8

const (
	// NonReceptive cells only take part in diffusion.
	NonReceptive State = iota
	// Boundary cells touch the crystal and receive background deposition.
	Boundary
	// Frozen cells belong to the crystal. The state is terminal.
	Frozen
)

// States lists every state in classification order.
var States = [...]State{Frozen, Boundary, NonReceptive}

func (s State) String() string {
	switch s {
	case Frozen:
		return "frozen"
	case Boundary:
		return "boundary"
	case NonReceptive:
		return "non-receptive"
	default:
		return "unknown"
	}
}

// Cell is the physical state of one lattice site. Cells are plain values;
// only Grid operations change the state of a site.
type Cell struct {
	// U is the diffusing vapor.
	U float64
	// V is the vapor that no longer diffuses.
	V     float64
	State State
}

// VaporLevel is the total water at the site.
func (c Cell) VaporLevel() float64 { return c.U + c.V }
