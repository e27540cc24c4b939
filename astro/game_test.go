package astro

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/config"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/engine"
	"github.com/lixenwraith/astrobits/physics"
	"github.com/lixenwraith/astrobits/scene"
	"github.com/lixenwraith/astrobits/status"
	"github.com/lixenwraith/astrobits/vmath"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSounds struct {
	spawns  []float64
	absorbs int
	toggles int
	muted   bool
}

func (r *recordingSounds) PlaySpawn(m float64) { r.spawns = append(r.spawns, m) }
func (r *recordingSounds) PlayAbsorb()         { r.absorbs++ }
func (r *recordingSounds) PlayToggle()         { r.toggles++ }
func (r *recordingSounds) SetMuted(m bool)     { r.muted = m }
func (r *recordingSounds) Muted() bool         { return r.muted }

type harness struct {
	game    *Game
	screen  tcell.SimulationScreen
	clock   *engine.MockClock
	sounds  *recordingSounds
	metrics *status.Metrics
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	h := &harness{
		screen:  screen,
		clock:   engine.NewMockClock(time.Unix(0, 0)),
		sounds:  &recordingSounds{},
		metrics: status.NewMetrics(prometheus.NewRegistry()),
	}
	h.game = NewGame(screen, Options{
		Config:  cfg,
		Clock:   h.clock,
		Sounds:  h.sounds,
		Metrics: h.metrics,
	})
	return h
}

func (h *harness) tick(dt time.Duration) {
	h.clock.Advance(dt)
	h.game.Tick()
}

func (h *harness) key(r rune) bool {
	return h.game.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) mouse(col, row int, btn tcell.ButtonMask) {
	h.game.HandleEvent(tcell.NewEventMouse(col, row, btn, tcell.ModNone))
}

func (h *harness) row(t *testing.T, row int) string {
	t.Helper()
	w, _ := h.screen.Size()
	var sb strings.Builder
	for col := 0; col < w; col++ {
		r, _, _, _ := h.screen.GetContent(col, row)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestNewGameCentersScene(t *testing.T) {
	h := newHarness(t, nil)
	sc := h.game.Scene()

	assert.Equal(t, vmath.V(360, 240), sc.Camera.Center)
	require.Len(t, sc.Bodies, 2)
	assert.Equal(t, 360.0, sc.Bodies[0].X)
	assert.Equal(t, 40.0, sc.Bodies[1].Y)
}

func TestTickAdvancesAndRecords(t *testing.T) {
	h := newHarness(t, nil)
	sc := h.game.Scene()
	y0 := sc.Bodies[1].Y

	h.tick(33 * time.Millisecond)
	assert.Greater(t, sc.Bodies[1].Y, y0)
	assert.Equal(t, uint64(1), sc.Ticks)

	h.tick(2 * time.Second)
	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.Frames))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.ClampedFrames))
	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.Bodies))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.DynamicBodies))
	assert.Equal(t, float64(constants.SunMass), testutil.ToFloat64(h.metrics.PrimaryMass))
}

func TestRenderBodiesAndButtons(t *testing.T) {
	h := newHarness(t, nil)
	h.tick(time.Millisecond)

	// Sun at pixel (360,240) is cell (60,20)
	r, _, style, _ := h.screen.GetContent(60, 20)
	fg, _, _ := style.Decompose()
	assert.Equal(t, rune(0x28FF), r, "sun interior is fully dotted")
	assert.Equal(t, tcell.GetColor(constants.SunColor), fg)

	// "Dynamic Sun" button label starts at pixel (18,28)
	r, _, style, _ = h.screen.GetContent(3, 2)
	_, bg, _ := style.Decompose()
	assert.Equal(t, 'D', r)
	assert.Equal(t, tcell.GetColor(constants.ButtonInactiveColor), bg)
	assert.Contains(t, h.row(t, 3), "Sun")

	require.True(t, h.key('d'))
	h.tick(time.Millisecond)
	_, _, style, _ = h.screen.GetContent(3, 2)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.GetColor(constants.ButtonActiveColor), bg)
	assert.True(t, h.game.Scene().PrimaryDynamic())

	assert.Contains(t, h.row(t, 39), "move | size M")
	assert.Contains(t, h.row(t, 39), "dynamic sun on")
}

func TestKeyControls(t *testing.T) {
	h := newHarness(t, nil)
	sc := h.game.Scene()

	h.key('z')
	assert.Equal(t, scene.ModeZoom, sc.Mode)
	h.key('j')
	assert.Equal(t, scene.SizeSmall, sc.Size)
	h.key('+')
	assert.InDelta(t, constants.ZoomWheelIn, sc.Camera.Zoom, 1e-12)
	h.key('-')
	assert.InDelta(t, constants.ZoomWheelIn*constants.ZoomWheelOut, sc.Camera.Zoom, 1e-12)

	h.game.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Positive(t, sc.Camera.Offset.X)

	assert.Equal(t, 2, h.sounds.toggles)

	h.key('a')
	assert.True(t, h.sounds.muted)
	h.key('a')
	assert.False(t, h.sounds.muted)

	assert.True(t, h.key('x'), "unbound keys are ignored")
	assert.False(t, h.key('q'))
}

func TestMouseSpawn(t *testing.T) {
	h := newHarness(t, nil)
	sc := h.game.Scene()

	h.key('s')
	h.mouse(100, 10, tcell.Button1)
	h.mouse(104, 10, tcell.Button1)

	// Preview is drawn while dragging
	h.tick(time.Millisecond)
	require.NotNil(t, sc.Preview())

	h.mouse(104, 10, tcell.ButtonNone)

	require.Len(t, sc.Bodies, 3)
	b := sc.Bodies[2]
	assert.Equal(t, constants.PlanetColor, b.Color)
	assert.InDelta(t, 603.0, b.X, 1e-9)
	assert.InDelta(t, 126.0, b.Y, 1e-9)
	assert.InDelta(t, 24*constants.ClickVelocityFactor, b.VelX, 1e-15)
	assert.Zero(t, b.VelY)

	assert.Equal(t, []float64{constants.PlanetMass}, h.sounds.spawns)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Spawns))
}

func TestMouseButtonsAndWheel(t *testing.T) {
	h := newHarness(t, nil)
	sc := h.game.Scene()

	// Zoom button centre (44,122) is cell (7,10)
	h.mouse(7, 10, tcell.Button1)
	h.mouse(7, 10, tcell.ButtonNone)
	assert.Equal(t, scene.ModeZoom, sc.Mode)
	assert.Equal(t, 1, h.sounds.toggles)

	h.mouse(50, 20, tcell.WheelDown)
	assert.InDelta(t, constants.ZoomWheelOut, sc.Camera.Zoom, 1e-12)

	// Releasing over the buttons never spawns
	h.key('s')
	h.mouse(60, 30, tcell.Button1)
	h.mouse(5, 5, tcell.Button1)
	h.mouse(5, 5, tcell.ButtonNone)
	assert.Len(t, sc.Bodies, 2)
}

func TestAbsorptionFeedback(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies = append(cfg.Bodies, config.BodyConfig{
		Kind: "plain", Y: -10, Mass: 5, Color: constants.PlanetColor, Dynamic: true,
	})
	h := newHarness(t, cfg)

	h.tick(33 * time.Millisecond)

	sc := h.game.Scene()
	assert.Zero(t, sc.Bodies[2].Mass)
	assert.False(t, sc.Bodies[2].Dynamic)
	assert.Equal(t, float64(constants.SunMass+5), sc.Primary().Mass)
	assert.Equal(t, 1, h.sounds.absorbs)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Absorptions))
}

func TestResize(t *testing.T) {
	h := newHarness(t, nil)

	h.screen.SetSize(60, 20)
	require.True(t, h.game.HandleEvent(tcell.NewEventResize(60, 20)))
	assert.Equal(t, vmath.V(180, 120), h.game.Scene().Camera.Center)

	assert.NotPanics(t, func() { h.tick(time.Millisecond) })
}

func TestStatusLine(t *testing.T) {
	sc := scene.New(config.Default(), 600, 400)
	sc.Mode = scene.ModeSpawn
	sc.Size = scene.SizeLarge
	line := StatusLine(sc)
	assert.True(t, strings.HasPrefix(line, "spawn | size L | zoom 1.00x | bodies 2"), line)
	assert.Contains(t, line, "dynamic sun off")
}

type countingSurface struct {
	lines, circles int
}

func (c *countingSurface) Size() (float64, float64)                     { return 600, 400 }
func (c *countingSurface) FillCircle(x, y, r float64, col tcell.Color)  { c.circles++ }
func (c *countingSurface) Line(x0, y0, x1, y1 float64, col tcell.Color) { c.lines++ }
func (c *countingSurface) FillRect(x, y, w, h float64, col tcell.Color) {}
func (c *countingSurface) Text(x, y float64, s string, fg tcell.Color)  {}

func TestAbsorbedBodyKeepsTrail(t *testing.T) {
	b := physics.NewBody(1, physics.Spec{
		Kind: physics.KindTrailed, X: 0, Y: 0, Mass: 1, Color: constants.MeteorColor, Dynamic: true,
	}, physics.TrailOptions{Capacity: 10, Stride: 1})
	b.X, b.Y = 5, 0
	b.Trail.Tick(b.X, b.Y)
	b.X, b.Y = 10, 0
	b.Trail.Tick(b.X, b.Y)
	cam := &scene.Camera{Zoom: 1, MinZoom: constants.MinZoom, MaxZoom: constants.MaxZoom}

	live := &countingSurface{}
	drawBody(live, &b, cam, newPalette())
	assert.Equal(t, 1, live.circles)
	assert.Positive(t, live.lines)

	b.Destroy()
	dead := &countingSurface{}
	drawBody(dead, &b, cam, newPalette())
	assert.Zero(t, dead.circles)
	assert.Equal(t, live.lines, dead.lines)
}

func TestGameUnderLoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	clock := engine.NewSteppingClock(time.Unix(0, 0), 33*time.Millisecond)
	metrics := status.NewMetrics(prometheus.NewRegistry())
	game := NewGame(screen, Options{Clock: clock, Metrics: metrics})

	loop := engine.NewLoop(screen, 2*time.Millisecond, game)
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(context.Background()) }()

	time.Sleep(30 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on quit key")
	}

	ticks := game.Scene().Ticks
	require.Positive(t, ticks)
	assert.Equal(t, int(ticks)+1, clock.Reads())
	assert.Equal(t, float64(ticks), testutil.ToFloat64(metrics.Frames))
	assert.Zero(t, testutil.ToFloat64(metrics.ClampedFrames))
}
