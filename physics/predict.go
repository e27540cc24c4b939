package physics

import (
	"iter"
	"time"

	"github.com/lixenwraith/astrobits/vmath"
)

// Predictor lazily yields the forward-Euler path of a prospective body
// under the primary's gravity alone. It never touches scene state and is
// consumed as it is read.
type Predictor struct {
	pos     vmath.Vec2
	vel     vmath.Vec2
	primary vmath.Vec2
	mass    float64
	radius  float64
	g       float64
	ms      float64

	remaining int
	started   bool
	done      bool
}

// NewPredictor prepares up to steps predicted points after start
func NewPredictor(start, vel vmath.Vec2, primary Body, g float64, dt time.Duration, steps int) *Predictor {
	return &Predictor{
		pos:       start,
		vel:       vel,
		primary:   vmath.Vec2{X: primary.X, Y: primary.Y},
		mass:      primary.Mass,
		radius:    primary.Radius,
		g:         g,
		ms:        Millis(dt),
		remaining: steps,
	}
}

// Next returns the next predicted position; false once exhausted
func (p *Predictor) Next() (vmath.Vec2, bool) {
	if p.done {
		return vmath.Vec2{}, false
	}
	if !p.started {
		p.started = true
		return p.pos, true
	}
	if p.remaining <= 0 {
		p.done = true
		return vmath.Vec2{}, false
	}
	p.remaining--

	if p.mass != 0 {
		p.vel.X, p.vel.Y = pull(p.pos.X, p.pos.Y, p.vel.X, p.vel.Y, p.primary.X, p.primary.Y, p.mass, p.g)
	}
	p.pos.X += p.vel.X * p.ms
	p.pos.Y += p.vel.Y * p.ms

	// Path ends where the body would be absorbed
	if p.pos.Dist(p.primary) < p.radius || !p.pos.IsFinite() {
		p.done = true
	}
	return p.pos, true
}

// All drains the predictor as a sequence
func (p *Predictor) All() iter.Seq[vmath.Vec2] {
	return func(yield func(vmath.Vec2) bool) {
		for {
			pt, ok := p.Next()
			if !ok || !yield(pt) {
				return
			}
		}
	}
}
