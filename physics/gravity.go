package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/astrobits/vmath"
)

// Params holds the constants of one simulation step
type Params struct {
	G         float64
	PrimaryID int
}

// Absorption records the primary eating a body during a step
type Absorption struct {
	BodyID    int
	PrimaryID int
	Mass      float64
}

// Millis converts a frame duration into the millisecond units velocities use
func Millis(dt time.Duration) float64 {
	return float64(dt) / float64(time.Millisecond)
}

// Step advances every dynamic body in collection order: gravity from all
// other bodies, forward-Euler integration over dt, then absorption by the
// primary. Non-dynamic bodies only act as sources. Updates are in place and
// later bodies see earlier bodies' new state.
func Step(bodies []Body, dt time.Duration, p Params) []Absorption {
	ms := Millis(dt)
	var absorbed []Absorption

	for i := range bodies {
		b := &bodies[i]

		if b.Dynamic {
			Accelerate(b, bodies, p.G)

			b.X += b.VelX * ms
			b.Y += b.VelY * ms

			// No body-body collision; only the primary absorbs
			if b.ID != p.PrimaryID && p.PrimaryID >= 0 && p.PrimaryID < len(bodies) {
				primary := &bodies[p.PrimaryID]
				if vmath.Distance(b.X, b.Y, primary.X, primary.Y) < primary.Radius {
					absorbed = append(absorbed, Absorption{BodyID: b.ID, PrimaryID: primary.ID, Mass: b.Mass})
					primary.Eat(b.Mass)
					b.Destroy()
				}
			}
		}

		if b.Trail != nil {
			b.Trail.Tick(b.X, b.Y)
		}
	}

	return absorbed
}

// Accelerate applies one frame of attraction from every other body to b's
// velocity: a = G*m/d^2 along the line between them. No softening, so
// coincident bodies yield unbounded values.
func Accelerate(b *Body, bodies []Body, g float64) {
	for i := range bodies {
		o := &bodies[i]
		if o.ID == b.ID || o.Mass == 0 {
			continue
		}
		b.VelX, b.VelY = pull(b.X, b.Y, b.VelX, b.VelY, o.X, o.Y, o.Mass, g)
	}
}

// pull returns the velocity of a point at (x,y) after one frame of
// attraction toward a mass m at (ox,oy)
func pull(x, y, vx, vy, ox, oy, m, g float64) (float64, float64) {
	dist := vmath.Distance(x, y, ox, oy)
	accel := g * m / (dist * dist)
	angle := vmath.Angle(x, y, ox, oy)
	return vx - accel*math.Cos(angle), vy - accel*math.Sin(angle)
}
