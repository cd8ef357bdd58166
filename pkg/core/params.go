package core

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParameterProvider exposes a snapshot of the sim's tunables for display.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// FloatParameterSetter allows interactive viewers to update floating point
// parameters while a run is in progress.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
