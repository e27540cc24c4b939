package distribs

import (
	"math"
	"math/rand/v2"
)

// Draw is one sample: a uniform value, the angle it maps to, and the
// tangent of that angle
type Draw struct {
	Uniform float64
	Index   float64
	Tangent float64
}

// Sampler produces draws from a seeded source
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a deterministic sampler
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next draws u in [0,1), index = (u-0.5)*pi and tangent = tan(index)
func (s *Sampler) Next() Draw {
	return Transform(s.rng.Float64())
}

// Transform maps a uniform value to its draw
func Transform(u float64) Draw {
	index := (u - 0.5) * math.Pi
	return Draw{Uniform: u, Index: index, Tangent: math.Tan(index)}
}
