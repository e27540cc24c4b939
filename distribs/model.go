package distribs

import (
	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/astrobits/constants"
)

// Options configures a Model
type Options struct {
	Bins        int
	Seed        uint64
	SampleEvery int
	FPS         int
}

// DefaultOptions returns the visualizer defaults
func DefaultOptions() Options {
	return Options{
		Bins:        constants.UniformBins,
		Seed:        1,
		SampleEvery: constants.SampleEvery,
		FPS:         60,
	}
}

// bar is one eased histogram column
type bar struct {
	pos, vel float64
}

// Model is the visualizer state; all methods run on the loop goroutine
type Model struct {
	Uniform *Histogram
	Tangent *Histogram
	Last    Draw
	Paused  bool
	Samples int

	sampler *Sampler
	every   int
	counter int
	spring  harmonica.Spring

	uniformBars []bar
	tangentBars []bar
}

// NewModel creates an empty model
func NewModel(opts Options) *Model {
	every := max(opts.SampleEvery, 1)
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	bins := max(opts.Bins, 1)

	return &Model{
		Uniform: NewHistogram(constants.UniformMin, constants.UniformMax, bins),
		Tangent: NewHistogram(constants.TangentMin, constants.TangentMax, bins),
		sampler: NewSampler(opts.Seed),
		every:   every,
		// The first tick samples
		counter:     every - 1,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), constants.BarSpringFrequency, constants.BarSpringDamping),
		uniformBars: make([]bar, bins),
		tangentBars: make([]bar, bins),
	}
}

// Tick advances one frame, drawing a sample every SampleEvery ticks unless
// paused; reports whether a sample was taken
func (m *Model) Tick() bool {
	sampled := false
	if m.counter == m.every-1 {
		if !m.Paused {
			m.Last = m.sampler.Next()
			m.Uniform.Add(m.Last.Uniform)
			m.Tangent.Add(m.Last.Tangent)
			m.Samples++
			sampled = true
		}
		m.counter = 0
	} else {
		m.counter++
	}

	m.ease(m.uniformBars, m.Uniform.Normalized())
	m.ease(m.tangentBars, m.Tangent.Normalized())
	return sampled
}

func (m *Model) ease(bars []bar, targets []float64) {
	for i := range bars {
		bars[i].pos, bars[i].vel = m.spring.Update(bars[i].pos, bars[i].vel, targets[i])
	}
}

// TogglePause flips sampling on or off
func (m *Model) TogglePause() {
	m.Paused = !m.Paused
}

// Reset empties both histograms and restarts sampling; bars ease back down
func (m *Model) Reset() {
	m.Uniform.Reset()
	m.Tangent.Reset()
	m.Last = Draw{}
	m.Samples = 0
	m.counter = m.every - 1
}

// UniformHeights returns the eased bar heights in [0,1] nominally; springs
// may overshoot briefly
func (m *Model) UniformHeights() []float64 { return heights(m.uniformBars) }

// TangentHeights returns the eased bar heights of the tangent histogram
func (m *Model) TangentHeights() []float64 { return heights(m.tangentBars) }

func heights(bars []bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.pos
	}
	return out
}
