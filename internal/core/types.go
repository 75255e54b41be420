package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewers use to drive a simulation. Step
// reports a terminal error once the simulation can no longer advance.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step() error
	Cells() []uint8
}
