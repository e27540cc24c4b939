package constants

// Physics
const (
	// G is similar to the gravitational constant, but not equivalent
	G = 0.0006

	// ClickVelocityFactor scales drag length (pixels) into spawn velocity
	ClickVelocityFactor = 1.0 / 1000

	// PrimaryID is the index of the body that absorbs others
	PrimaryID = 0

	// PreviewSteps is the number of predicted points in the spawn preview
	PreviewSteps = 2000
)

// Masses
const (
	SunMass      = 100000
	MeteorMass   = 1
	PlanetMass   = 100
	GasGiantMass = 1000
)

// Meteor start state, relative to the sun
const (
	MeteorStartDistance = 200
	MeteorStartVelX     = -0.07
	MeteorStartVelY     = 0.0
)

// Trail
const (
	// TrailCapacity is the max number of stored trail points
	TrailCapacity = 150

	// TrailStride is the number of ticks between trail samples
	TrailStride = 2
)

// Camera
const (
	MinZoom     = 0.05
	MaxZoom     = 12.0
	InitialZoom = 1.0

	// ZoomWheelIn and ZoomWheelOut are multiplicative wheel steps
	ZoomWheelIn  = 1.1
	ZoomWheelOut = 0.9

	// ZoomDragDivisor converts vertical drag pixels into additive zoom
	ZoomDragDivisor = 400.0

	// PanDragDivisor halves drag distance before applying to the pan offset
	PanDragDivisor = 2.0

	// KeyPanStep is the screen-pixel pan distance of one arrow key press
	KeyPanStep = 24.0
)
