package physics

import "math"

// Kind selects the body variant
type Kind uint8

const (
	KindPlain Kind = iota
	KindTrailed
)

func (k Kind) String() string {
	switch k {
	case KindTrailed:
		return "trailed"
	default:
		return "plain"
	}
}

// Spec describes a body to be created
type Spec struct {
	Kind    Kind
	X, Y    float64
	VelX    float64
	VelY    float64
	Mass    float64
	Color   string
	Dynamic bool
}

// Body is one member of the scene's body collection
// ID equals the body's index in the collection and never changes
type Body struct {
	ID      int
	Kind    Kind
	X, Y    float64
	VelX    float64
	VelY    float64
	Mass    float64
	Radius  float64
	Dynamic bool
	Color   string

	// Trail is non-nil only for KindTrailed
	Trail *Trail
}

// TrailOptions sizes the trail of a trailed body
type TrailOptions struct {
	Capacity int
	Stride   int
}

// NewBody builds a body with radius derived from mass
func NewBody(id int, spec Spec, trail TrailOptions) Body {
	b := Body{
		ID:      id,
		Kind:    spec.Kind,
		X:       spec.X,
		Y:       spec.Y,
		VelX:    spec.VelX,
		VelY:    spec.VelY,
		Dynamic: spec.Dynamic,
		Color:   spec.Color,
	}
	b.Eat(spec.Mass)

	if spec.Kind == KindTrailed {
		b.Trail = NewTrail(trail.Capacity, trail.Stride, spec.X, spec.Y)
	}
	return b
}

// RadiusForMass is the density relation radius ~ mass^(1/3), plus one so the
// smallest bodies still cover a unit
func RadiusForMass(m float64) float64 {
	return math.Cbrt(m) + 1
}

// Eat adds m to the body's mass and recomputes the radius
func (b *Body) Eat(m float64) {
	b.Mass += m
	b.Radius = RadiusForMass(b.Mass)
}

// Destroy leaves an inert record in place of an absorbed body
func (b *Body) Destroy() {
	b.Mass = 0
	b.Radius = 0
	b.Dynamic = false
}

// Visible reports whether the body is large enough to draw
func (b *Body) Visible() bool {
	return b.Radius >= 1
}
