// Package astro runs the gravity sandbox on a terminal screen
package astro

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/config"
	"github.com/lixenwraith/astrobits/engine"
	"github.com/lixenwraith/astrobits/input"
	"github.com/lixenwraith/astrobits/physics"
	"github.com/lixenwraith/astrobits/render"
	"github.com/lixenwraith/astrobits/scene"
	"github.com/lixenwraith/astrobits/status"
	"go.uber.org/zap"
)

// Sounds is the audio surface the game drives
type Sounds interface {
	PlaySpawn(mass float64)
	PlayAbsorb()
	PlayToggle()
	SetMuted(muted bool)
	Muted() bool
}

type silent struct{}

func (silent) PlaySpawn(float64) {}
func (silent) PlayAbsorb()       {}
func (silent) PlayToggle()       {}
func (silent) SetMuted(bool)     {}
func (silent) Muted() bool       { return true }

// Options wires a Game to its collaborators; nil fields get no-op defaults
// except Metrics, which is required
type Options struct {
	Config  *config.Config
	Clock   engine.Clock
	Sounds  Sounds
	Metrics *status.Metrics
	Log     *zap.Logger
}

// Game implements engine.Handler for astrobits
type Game struct {
	scene      *scene.Scene
	canvas     *render.Canvas
	screen     tcell.Screen
	clock      *engine.FrameClock
	translator *input.Translator
	sounds     Sounds
	metrics    *status.Metrics
	log        *zap.Logger
	palette    *palette
}

// NewGame builds the scene for the screen's current size
func NewGame(screen tcell.Screen, opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.SystemClock{}
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = silent{}
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	cols, rows := screen.Size()
	canvas := render.NewCanvas(cols, rows, cfg.Canvas.PixelsPerDot)
	w, h := canvas.Size()

	g := &Game{
		scene:      scene.New(cfg, w, h),
		canvas:     canvas,
		screen:     screen,
		clock:      engine.NewFrameClock(clock, cfg.TickPeriod(), cfg.Physics.ClampFactor),
		translator: input.NewTranslator(input.DefaultKeyTable(), canvas.CellCenter),
		sounds:     sounds,
		metrics:    opts.Metrics,
		log:        log,
		palette:    newPalette(),
	}
	g.log.Info("scene ready",
		zap.Int("bodies", len(g.scene.Bodies)),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Duration("period", cfg.TickPeriod()),
	)
	return g
}

// Scene exposes the simulated state
func (g *Game) Scene() *scene.Scene { return g.scene }

// HandleEvent implements engine.Handler
func (g *Game) HandleEvent(ev tcell.Event) bool {
	in, ok := g.translator.Translate(ev)
	if !ok {
		return true
	}

	s := g.scene
	switch in.Type {
	case input.IntentQuit:
		g.log.Info("quit", zap.Uint64("ticks", s.Ticks), zap.Int("bodies", len(s.Bodies)))
		return false

	case input.IntentMode:
		s.Mode = in.Mode
		g.sounds.PlayToggle()

	case input.IntentToggleMute:
		g.sounds.SetMuted(!g.sounds.Muted())
		g.log.Debug("sound", zap.Bool("muted", g.sounds.Muted()))

	case input.IntentToggleDynamic:
		s.TogglePrimaryDynamic()
		g.sounds.PlayToggle()
		g.log.Debug("primary dynamic", zap.Bool("dynamic", s.PrimaryDynamic()))

	case input.IntentSize:
		s.Size = in.Size
		g.sounds.PlayToggle()

	case input.IntentZoomIn:
		s.Wheel(1)

	case input.IntentZoomOut:
		s.Wheel(-1)

	case input.IntentPan:
		s.Camera.Pan(in.Delta, 1)

	case input.IntentWheel:
		s.Wheel(in.Wheel)

	case input.IntentMouseDown:
		for _, b := range s.Buttons {
			if b.Contains(in.Point) {
				g.sounds.PlayToggle()
				break
			}
		}
		s.MouseDown(in.Point)

	case input.IntentMouseMove:
		s.MouseMove(in.Point)

	case input.IntentMouseUp:
		if b, ok := s.MouseUp(in.Point); ok {
			g.spawned(b)
		}

	case input.IntentResize:
		cols, rows := g.screen.Size()
		g.canvas.Resize(cols, rows)
		s.Resize(g.canvas.Size())
		g.screen.Sync()
	}
	return true
}

func (g *Game) spawned(b physics.Body) {
	g.metrics.Spawns.Inc()
	g.sounds.PlaySpawn(b.Mass)
	g.log.Debug("spawn",
		zap.Int("id", b.ID),
		zap.Float64("mass", b.Mass),
		zap.Float64("x", b.X),
		zap.Float64("y", b.Y),
		zap.Float64("vx", b.VelX),
		zap.Float64("vy", b.VelY),
	)
}

// Tick implements engine.Handler: one simulation step, then one frame
func (g *Game) Tick() {
	dt, clamped := g.clock.Next()
	if clamped {
		g.log.Debug("frame clamped", zap.Duration("period", g.clock.Period()))
	}

	absorbed := g.scene.Advance(dt)
	for _, a := range absorbed {
		g.sounds.PlayAbsorb()
		g.log.Debug("absorbed",
			zap.Int("body", a.BodyID),
			zap.Int("primary", a.PrimaryID),
			zap.Float64("mass", a.Mass),
		)
	}

	g.metrics.ObserveFrame(dt, clamped)
	g.metrics.AddAbsorptions(len(absorbed))
	g.publishScene()

	g.canvas.Clear(g.palette.background)
	Draw(g.canvas, g.scene, g.palette)
	g.canvas.Flush(g.screen)
}

func (g *Game) publishScene() {
	dynamic := 0
	for i := range g.scene.Bodies {
		if g.scene.Bodies[i].Dynamic {
			dynamic++
		}
	}
	g.metrics.SetScene(len(g.scene.Bodies), dynamic, g.scene.Primary().Mass)
}
