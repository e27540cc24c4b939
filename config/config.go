package config

import (
	"time"

	"github.com/lixenwraith/astrobits/constants"
	"github.com/pkg/errors"
)

// Config is the startup configuration of the astrobits demo
// Scene state itself is never written back
type Config struct {
	Physics PhysicsConfig `toml:"physics" yaml:"physics"`
	Camera  CameraConfig  `toml:"camera" yaml:"camera"`
	Trail   TrailConfig   `toml:"trail" yaml:"trail"`
	Canvas  CanvasConfig  `toml:"canvas" yaml:"canvas"`
	Spawn   SpawnConfig   `toml:"spawn" yaml:"spawn"`

	// Bodies are placed relative to the screen center; the first is the primary
	Bodies []BodyConfig `toml:"bodies" yaml:"bodies"`
}

type PhysicsConfig struct {
	G             float64 `toml:"g" yaml:"g"`
	UpdateRateHz  float64 `toml:"update_rate_hz" yaml:"update_rate_hz"`
	ClampFactor   float64 `toml:"clamp_factor" yaml:"clamp_factor"`
	PreviewSteps  int     `toml:"preview_steps" yaml:"preview_steps"`
	ClickVelocity float64 `toml:"click_velocity" yaml:"click_velocity"`
}

type CameraConfig struct {
	MinZoom     float64 `toml:"min_zoom" yaml:"min_zoom"`
	MaxZoom     float64 `toml:"max_zoom" yaml:"max_zoom"`
	InitialZoom float64 `toml:"initial_zoom" yaml:"initial_zoom"`
	WheelIn     float64 `toml:"wheel_in" yaml:"wheel_in"`
	WheelOut    float64 `toml:"wheel_out" yaml:"wheel_out"`
}

type TrailConfig struct {
	Capacity int `toml:"capacity" yaml:"capacity"`
	Stride   int `toml:"stride" yaml:"stride"`
}

type CanvasConfig struct {
	PixelsPerDot float64 `toml:"pixels_per_dot" yaml:"pixels_per_dot"`
}

// SpawnConfig maps the three spawn sizes to mass and color
type SpawnConfig struct {
	Small  SpawnSize `toml:"small" yaml:"small"`
	Medium SpawnSize `toml:"medium" yaml:"medium"`
	Large  SpawnSize `toml:"large" yaml:"large"`
}

type SpawnSize struct {
	Mass  float64 `toml:"mass" yaml:"mass"`
	Color string  `toml:"color" yaml:"color"`
}

type BodyConfig struct {
	Kind    string  `toml:"kind" yaml:"kind"` // "plain" or "trailed"
	X       float64 `toml:"x" yaml:"x"`
	Y       float64 `toml:"y" yaml:"y"`
	VelX    float64 `toml:"vel_x" yaml:"vel_x"`
	VelY    float64 `toml:"vel_y" yaml:"vel_y"`
	Mass    float64 `toml:"mass" yaml:"mass"`
	Color   string  `toml:"color" yaml:"color"`
	Dynamic bool    `toml:"dynamic" yaml:"dynamic"`
}

// Default returns the built-in scene: the sun and one meteor above it
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			G:             constants.G,
			UpdateRateHz:  float64(time.Second / constants.AstroUpdateRate),
			ClampFactor:   constants.FrameClampFactor,
			PreviewSteps:  constants.PreviewSteps,
			ClickVelocity: constants.ClickVelocityFactor,
		},
		Camera: CameraConfig{
			MinZoom:     constants.MinZoom,
			MaxZoom:     constants.MaxZoom,
			InitialZoom: constants.InitialZoom,
			WheelIn:     constants.ZoomWheelIn,
			WheelOut:    constants.ZoomWheelOut,
		},
		Trail: TrailConfig{
			Capacity: constants.TrailCapacity,
			Stride:   constants.TrailStride,
		},
		Canvas: CanvasConfig{
			PixelsPerDot: constants.PixelsPerDot,
		},
		Spawn: SpawnConfig{
			Small:  SpawnSize{Mass: constants.MeteorMass, Color: constants.MeteorColor},
			Medium: SpawnSize{Mass: constants.PlanetMass, Color: constants.PlanetColor},
			Large:  SpawnSize{Mass: constants.GasGiantMass, Color: constants.GasGiantColor},
		},
		Bodies: []BodyConfig{
			{Kind: "plain", Mass: constants.SunMass, Color: constants.SunColor},
			{
				Kind:    "trailed",
				Y:       -constants.MeteorStartDistance,
				VelX:    constants.MeteorStartVelX,
				VelY:    constants.MeteorStartVelY,
				Mass:    constants.MeteorMass,
				Color:   constants.MeteorColor,
				Dynamic: true,
			},
		},
	}
}

// TickPeriod returns the nominal tick duration
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.Physics.UpdateRateHz)
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Physics.UpdateRateHz <= 0:
		return errors.Errorf("physics.update_rate_hz must be positive, got %v", c.Physics.UpdateRateHz)
	case c.Physics.ClampFactor < 1:
		return errors.Errorf("physics.clamp_factor must be at least 1, got %v", c.Physics.ClampFactor)
	case c.Physics.PreviewSteps < 0:
		return errors.Errorf("physics.preview_steps must not be negative, got %d", c.Physics.PreviewSteps)
	case c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom:
		return errors.Errorf("camera zoom bounds invalid: [%v, %v]", c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.InitialZoom < c.Camera.MinZoom || c.Camera.InitialZoom > c.Camera.MaxZoom:
		return errors.Errorf("camera.initial_zoom %v outside [%v, %v]", c.Camera.InitialZoom, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.WheelIn <= 1 || c.Camera.WheelOut <= 0 || c.Camera.WheelOut >= 1:
		return errors.Errorf("camera wheel steps must zoom in (>1) and out (0..1), got %v/%v", c.Camera.WheelIn, c.Camera.WheelOut)
	case c.Trail.Capacity < 1 || c.Trail.Stride < 1:
		return errors.Errorf("trail capacity and stride must be at least 1, got %d/%d", c.Trail.Capacity, c.Trail.Stride)
	case c.Canvas.PixelsPerDot <= 0:
		return errors.Errorf("canvas.pixels_per_dot must be positive, got %v", c.Canvas.PixelsPerDot)
	case len(c.Bodies) == 0:
		return errors.New("at least one body (the primary) is required")
	}

	for _, s := range []SpawnSize{c.Spawn.Small, c.Spawn.Medium, c.Spawn.Large} {
		if s.Mass < 0 {
			return errors.Errorf("spawn mass must not be negative, got %v", s.Mass)
		}
	}

	for i, b := range c.Bodies {
		if b.Mass < 0 {
			return errors.Errorf("bodies[%d].mass must not be negative, got %v", i, b.Mass)
		}
		if b.Kind != "" && b.Kind != "plain" && b.Kind != "trailed" {
			return errors.Errorf("bodies[%d].kind %q: want plain or trailed", i, b.Kind)
		}
	}
	return nil
}
