package distribs

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHistogramBinning(t *testing.T) {
	h := NewHistogram(0, 1, 10)

	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{0.05, 0},
		{0.15, 1},
		{0.999, 9},
		{1, -1},
		{-0.01, -1},
		{math.NaN(), -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.Add(tt.v), "v=%v", tt.v)
	}

	assert.Equal(t, 4, h.Total())
	assert.Equal(t, 3, h.Dropped())
	assert.Equal(t, 2.0, h.Count(0))
	assert.Equal(t, 2.0, h.MaxCount())

	lo, hi := h.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestHistogramNormalizedAndStats(t *testing.T) {
	h := NewHistogram(-5, 5, 10)
	assert.Equal(t, make([]float64, 10), h.Normalized(), "empty histogram")
	assert.Zero(t, h.Mean())
	assert.Zero(t, h.StdDev())

	// Symmetric samples centered on zero
	for _, v := range []float64{-0.5, 0.5, -0.5, 0.5, -4.5, 4.5} {
		h.Add(v)
	}

	n := h.Normalized()
	assert.Equal(t, 1.0, n[4])
	assert.Equal(t, 1.0, n[5])
	assert.Equal(t, 0.5, n[0])
	assert.InDelta(t, 0, h.Mean(), 1e-12)
	assert.Greater(t, h.StdDev(), 1.0)

	h.Reset()
	assert.Zero(t, h.Total())
	assert.Zero(t, h.MaxCount())
}

func TestHistogramBinsFloor(t *testing.T) {
	h := NewHistogram(0, 1, 0)
	assert.Equal(t, 1, h.Bins())
	assert.Equal(t, 0, h.Add(0.7))
}

func TestTransform(t *testing.T) {
	d := Transform(0.5)
	assert.Equal(t, 0.0, d.Index)
	assert.Equal(t, 0.0, d.Tangent)

	d = Transform(0.75)
	assert.InDelta(t, math.Pi/4, d.Index, 1e-15)
	assert.InDelta(t, 1.0, d.Tangent, 1e-12)

	d = Transform(0)
	assert.InDelta(t, -math.Pi/2, d.Index, 1e-15)
	assert.Less(t, d.Tangent, -1e15)
}

func TestSamplerDeterministic(t *testing.T) {
	a, b := NewSampler(42), NewSampler(42)
	for range 100 {
		da, db := a.Next(), b.Next()
		require.Equal(t, da, db)
		assert.GreaterOrEqual(t, da.Uniform, 0.0)
		assert.Less(t, da.Uniform, 1.0)
	}
	assert.NotEqual(t, NewSampler(1).Next(), NewSampler(2).Next())
}

func TestModelSamplesEverySecondTick(t *testing.T) {
	m := NewModel(DefaultOptions())

	var sampled []bool
	for range 6 {
		sampled = append(sampled, m.Tick())
	}
	assert.Equal(t, []bool{true, false, true, false, true, false}, sampled)
	assert.Equal(t, 3, m.Samples)
	assert.Equal(t, 3, m.Uniform.Total())
}

func TestModelPause(t *testing.T) {
	m := NewModel(DefaultOptions())
	m.Tick()
	last := m.Last

	m.TogglePause()
	for range 10 {
		assert.False(t, m.Tick())
	}
	assert.Equal(t, 1, m.Samples)
	assert.Equal(t, last, m.Last)

	m.TogglePause()
	m.Tick()
	m.Tick()
	assert.Equal(t, 2, m.Samples)
}

func TestModelBarsEaseTowardCounts(t *testing.T) {
	opts := DefaultOptions()
	opts.SampleEvery = 1
	m := NewModel(opts)

	m.Tick()
	first := m.UniformHeights()
	idx := -1
	for i := range m.Uniform.Bins() {
		if m.Uniform.Count(i) > 0 {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Greater(t, first[idx], 0.0)
	assert.Less(t, first[idx], 1.0, "bars ease rather than jump")

	m.TogglePause()
	for range 240 {
		m.Tick()
	}
	assert.InDelta(t, 1.0, m.UniformHeights()[idx], 1e-3)
}

func TestModelDistributions(t *testing.T) {
	opts := DefaultOptions()
	opts.SampleEvery = 1
	opts.Seed = 7
	m := NewModel(opts)

	for range 20000 {
		m.Tick()
	}

	assert.Zero(t, m.Uniform.Dropped())
	assert.InDelta(t, 0.5, m.Uniform.Mean(), 0.01)

	// P(|tan| >= 5) = 1 - 2*atan(5)/pi
	wantOut := 1 - 2*math.Atan(5)/math.Pi
	gotOut := float64(m.Tangent.Dropped()) / float64(m.Samples)
	assert.InDelta(t, wantOut, gotOut, 0.02)
	assert.InDelta(t, 0, m.Tangent.Mean(), 0.1)
}

func TestAppRendersAndQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(120, 40)

	app := NewApp(screen, NewModel(DefaultOptions()), 3, zap.NewNop())
	app.Tick()
	app.Tick()
	app.Tick()

	cells, _, _ := screen.GetContents()
	var text []rune
	for _, c := range cells {
		if len(c.Runes) > 0 {
			text = append(text, c.Runes[0])
		}
	}
	assert.Contains(t, string(text), "Space to pause")
	assert.Equal(t, 2, app.Model().Samples)

	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Zero(t, app.Model().Samples)
	assert.Zero(t, app.Model().Uniform.Total())

	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, app.Model().Paused)

	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.True(t, app.HandleEvent(tcell.NewEventResize(120, 40)))
	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}
