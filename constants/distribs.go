package constants

// Distribution visualizer
const (
	UniformMin  = 0.0
	UniformMax  = 1.0
	UniformBins = 60

	TangentMin  = -5.0
	TangentMax  = 5.0
	TangentBins = 60

	// SampleEvery is the number of ticks per drawn sample
	SampleEvery = 2

	// BarSpringFrequency and BarSpringDamping tune bar easing
	BarSpringFrequency = 8.0
	BarSpringDamping   = 0.9
)
