package scene

import "github.com/lixenwraith/astrobits/vmath"

// ButtonRole enumerates the on-screen buttons
type ButtonRole uint8

const (
	RoleDynamicPrimary ButtonRole = iota
	RoleMove
	RoleZoom
	RoleSpawn
	RoleSizeSmall
	RoleSizeMedium
	RoleSizeLarge
)

// Button is the geometry and label of one role; (X,Y) is its center
type Button struct {
	Role  ButtonRole
	X, Y  float64
	W, H  float64
	Label string
}

// Contains reports whether a screen point hits the button
func (b Button) Contains(p vmath.Vec2) bool {
	dx := p.X - b.X
	dy := p.Y - b.Y
	return dx > -b.W/2 && dx < b.W/2 && dy > -b.H/2 && dy < b.H/2
}

// buttonBehavior describes a role without per-instance closures
type buttonBehavior struct {
	apply  func(*Scene)
	active func(*Scene) bool
}

var buttonBehaviors = map[ButtonRole]buttonBehavior{
	RoleDynamicPrimary: {
		apply:  (*Scene).TogglePrimaryDynamic,
		active: (*Scene).PrimaryDynamic,
	},
	RoleMove:       modeBehavior(ModeMove),
	RoleZoom:       modeBehavior(ModeZoom),
	RoleSpawn:      modeBehavior(ModeSpawn),
	RoleSizeSmall:  sizeBehavior(SizeSmall),
	RoleSizeMedium: sizeBehavior(SizeMedium),
	RoleSizeLarge:  sizeBehavior(SizeLarge),
}

func modeBehavior(m ClickMode) buttonBehavior {
	return buttonBehavior{
		apply:  func(s *Scene) { s.Mode = m },
		active: func(s *Scene) bool { return s.Mode == m },
	}
}

func sizeBehavior(z SpawnSize) buttonBehavior {
	return buttonBehavior{
		apply:  func(s *Scene) { s.Size = z },
		active: func(s *Scene) bool { return s.Size == z },
	}
}

// DefaultButtons returns the left-hand control column
func DefaultButtons() []Button {
	return []Button{
		{Role: RoleDynamicPrimary, X: 44, Y: 34, W: 60, H: 40, Label: "Dynamic Sun"},
		{Role: RoleMove, X: 44, Y: 78, W: 60, H: 40, Label: "Move"},
		{Role: RoleZoom, X: 44, Y: 122, W: 60, H: 40, Label: "Zoom"},
		{Role: RoleSpawn, X: 44, Y: 166, W: 60, H: 40, Label: "Spawn"},
		{Role: RoleSizeSmall, X: 23, Y: 210, W: 18, H: 40, Label: "S"},
		{Role: RoleSizeMedium, X: 44, Y: 210, W: 18, H: 40, Label: "M"},
		{Role: RoleSizeLarge, X: 65, Y: 210, W: 18, H: 40, Label: "L"},
	}
}

// Press applies a button role's effect
func (s *Scene) Press(role ButtonRole) {
	if b, ok := buttonBehaviors[role]; ok {
		b.apply(s)
	}
}

// Active reports whether a role's highlight is on
func (s *Scene) Active(role ButtonRole) bool {
	b, ok := buttonBehaviors[role]
	return ok && b.active(s)
}
