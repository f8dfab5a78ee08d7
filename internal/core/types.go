package core

// Size describes the dimensions of a raster in pixels.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer drives. Implementations own their state and
// advance it one iteration per Step.
type Sim interface {
	Name() string
	Reset()
	Step()
	Iteration() int
}
