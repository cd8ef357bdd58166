package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewers, painters and exporters consume. The
// vitality buffer is row-major, one float64 per cell in [0, 1]; boolean
// variants hold exactly 0 or 1.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Vitality() []float64
	Generation() int
}
