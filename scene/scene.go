package scene

import (
	"time"

	"github.com/lixenwraith/astrobits/config"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/physics"
	"github.com/lixenwraith/astrobits/vmath"
)

// ClickMode selects what a mouse drag does
type ClickMode uint8

const (
	ModeMove ClickMode = iota
	ModeZoom
	ModeSpawn
)

func (m ClickMode) String() string {
	switch m {
	case ModeZoom:
		return "zoom"
	case ModeSpawn:
		return "spawn"
	default:
		return "move"
	}
}

// SpawnSize selects the mass and color of spawned bodies
type SpawnSize uint8

const (
	SizeSmall SpawnSize = iota
	SizeMedium
	SizeLarge
)

// Drag tracks the primary mouse button in screen pixels
type Drag struct {
	Active  bool
	Start   vmath.Vec2
	Current vmath.Vec2
}

// Scene is the complete mutable state of astrobits
// Every method must be called from the single loop goroutine
type Scene struct {
	Bodies  []physics.Body
	Params  physics.Params
	Camera  Camera
	Mode    ClickMode
	Size    SpawnSize
	Drag    Drag
	Buttons []Button
	Ticks   uint64

	spawn         config.SpawnConfig
	trail         physics.TrailOptions
	clickVelocity float64
	previewSteps  int
	tickPeriod    time.Duration
	wheelIn       float64
	wheelOut      float64
}

// New builds the scene described by cfg on a width x height pixel screen
// Configured body positions are offsets from the screen center
func New(cfg *config.Config, width, height float64) *Scene {
	center := vmath.Vec2{X: width / 2, Y: height / 2}

	s := &Scene{
		Params: physics.Params{G: cfg.Physics.G, PrimaryID: constants.PrimaryID},
		Camera: Camera{
			Zoom:    cfg.Camera.InitialZoom,
			Center:  center,
			MinZoom: cfg.Camera.MinZoom,
			MaxZoom: cfg.Camera.MaxZoom,
		},
		Mode:    ModeMove,
		Size:    SizeMedium,
		Buttons: DefaultButtons(),

		spawn:         cfg.Spawn,
		trail:         physics.TrailOptions{Capacity: cfg.Trail.Capacity, Stride: cfg.Trail.Stride},
		clickVelocity: cfg.Physics.ClickVelocity,
		previewSteps:  cfg.Physics.PreviewSteps,
		tickPeriod:    cfg.TickPeriod(),
		wheelIn:       cfg.Camera.WheelIn,
		wheelOut:      cfg.Camera.WheelOut,
	}

	for _, b := range cfg.Bodies {
		kind := physics.KindPlain
		if b.Kind == "trailed" {
			kind = physics.KindTrailed
		}
		s.add(physics.Spec{
			Kind:    kind,
			X:       center.X + b.X,
			Y:       center.Y + b.Y,
			VelX:    b.VelX,
			VelY:    b.VelY,
			Mass:    b.Mass,
			Color:   b.Color,
			Dynamic: b.Dynamic,
		})
	}
	return s
}

func (s *Scene) add(spec physics.Spec) physics.Body {
	b := physics.NewBody(len(s.Bodies), spec, s.trail)
	s.Bodies = append(s.Bodies, b)
	return b
}

// Primary returns the absorbing body
func (s *Scene) Primary() *physics.Body {
	return &s.Bodies[s.Params.PrimaryID]
}

// Advance runs one simulation step over dt
func (s *Scene) Advance(dt time.Duration) []physics.Absorption {
	s.Ticks++
	return physics.Step(s.Bodies, dt, s.Params)
}

// Resize keeps the camera centered on the new screen
func (s *Scene) Resize(width, height float64) {
	s.Camera.Center = vmath.Vec2{X: width / 2, Y: height / 2}
}

// TogglePrimaryDynamic flips whether the primary moves under gravity
func (s *Scene) TogglePrimaryDynamic() {
	p := s.Primary()
	p.Dynamic = !p.Dynamic
}

// PrimaryDynamic reports the primary's dynamic flag
func (s *Scene) PrimaryDynamic() bool {
	return s.Primary().Dynamic
}

// SpawnSpec returns the mass and color for the current spawn size
func (s *Scene) SpawnSpec() config.SpawnSize {
	switch s.Size {
	case SizeSmall:
		return s.spawn.Small
	case SizeLarge:
		return s.spawn.Large
	default:
		return s.spawn.Medium
	}
}

// MouseDown starts a drag and presses any button under p
func (s *Scene) MouseDown(p vmath.Vec2) {
	s.Drag = Drag{Active: true, Start: p, Current: p}
	for _, b := range s.Buttons {
		if b.Contains(p) {
			s.Press(b.Role)
		}
	}
}

// MouseMove pans or zooms while dragging, depending on mode
func (s *Scene) MouseMove(p vmath.Vec2) {
	if !s.Drag.Active {
		return
	}
	switch s.Mode {
	case ModeMove:
		s.Camera.Pan(p.Sub(s.Drag.Current), constants.PanDragDivisor)
	case ModeZoom:
		s.Camera.ZoomAdd((p.Y - s.Drag.Current.Y) / constants.ZoomDragDivisor)
	}
	s.Drag.Current = p
}

// MouseUp ends a drag; in spawn mode a release outside the button zone
// spawns a body at the drag start with velocity from the drag vector
func (s *Scene) MouseUp(p vmath.Vec2) (physics.Body, bool) {
	start := s.Drag.Start
	wasActive := s.Drag.Active
	s.Drag = Drag{}

	if !wasActive || InButtonZone(p) || s.Mode != ModeSpawn {
		return physics.Body{}, false
	}
	return s.Spawn(start, p), true
}

// InButtonZone reports whether a screen point is over the control column
func InButtonZone(p vmath.Vec2) bool {
	return p.X < constants.ButtonZoneWidth && p.Y < constants.ButtonZoneHeight
}

// Spawn appends a dynamic body launched from screen point start toward end
func (s *Scene) Spawn(start, end vmath.Vec2) physics.Body {
	size := s.SpawnSpec()
	pos := s.Camera.ToSim(start)
	vel := s.launchVelocity(start, end)
	return s.add(physics.Spec{
		Kind:    physics.KindPlain,
		X:       pos.X,
		Y:       pos.Y,
		VelX:    vel.X,
		VelY:    vel.Y,
		Mass:    size.Mass,
		Color:   size.Color,
		Dynamic: true,
	})
}

func (s *Scene) launchVelocity(start, end vmath.Vec2) vmath.Vec2 {
	return end.Sub(start).Scale(s.clickVelocity / s.Camera.Zoom)
}

// Wheel zooms out for negative deltas, in otherwise
func (s *Scene) Wheel(delta int) {
	if delta < 0 {
		s.Camera.ZoomBy(s.wheelOut)
	} else {
		s.Camera.ZoomBy(s.wheelIn)
	}
}

// Preview predicts the path of the body a spawn drag would release, in
// simulation coordinates; nil when no spawn drag is in progress
func (s *Scene) Preview() *physics.Predictor {
	if !s.Drag.Active || s.Mode != ModeSpawn {
		return nil
	}
	start := s.Camera.ToSim(s.Drag.Start)
	vel := s.launchVelocity(s.Drag.Start, s.Drag.Current)
	return physics.NewPredictor(start, vel, *s.Primary(), s.Params.G, s.tickPeriod, s.previewSteps)
}
