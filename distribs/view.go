package distribs

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/render"
)

// Palette holds the parsed visualizer colors
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Bar        tcell.Color
	Running    tcell.Color
	Paused     tcell.Color
}

// DefaultPalette returns the built-in colors
func DefaultPalette() Palette {
	return Palette{
		Background: render.Color(constants.DistribsBackground),
		Text:       render.Color(constants.DistribsText),
		Bar:        render.Color(constants.DistribsBar),
		Running:    render.Color(constants.DistribsRunning),
		Paused:     render.Color(constants.DistribsPaused),
	}
}

// glyphWidth is the logical width of one text cell
const glyphWidth = constants.PixelsPerDot * constants.DotsPerCellX

// chart is the placement of one histogram in logical pixels; Base is the
// y of the axis and bars grow upward by at most Height
type chart struct {
	X, Base, Width, Height float64
}

// Layout places the readouts and both charts for a surface size
type Layout struct {
	TextX   float64
	TextTop float64
	Line    float64
	Uniform chart
	Tangent chart
}

// NewLayout splits the surface into a readout column and two stacked charts
func NewLayout(w, h float64) Layout {
	chartX := w * 0.45
	chartW := w * 0.5
	chartH := h * 0.25
	return Layout{
		TextX:   w * 0.04,
		TextTop: h * 0.2,
		Line:    h * 0.06,
		Uniform: chart{X: chartX, Base: h * 0.4, Width: chartW, Height: chartH},
		Tangent: chart{X: chartX, Base: h * 0.85, Width: chartW, Height: chartH},
	}
}

// Render draws the model onto s
func Render(s render.Surface, m *Model, p Palette) {
	w, h := s.Size()
	l := NewLayout(w, h)

	indicator := p.Running
	hint := "Space to pause, r to reset, q to quit"
	if m.Paused {
		indicator = p.Paused
		hint = "Paused, space to resume"
	}
	s.FillRect(10, 10, 24, 24, indicator)
	s.Text(44, 16, hint, p.Text)

	lines := []string{
		"Uniform:",
		fmt.Sprintf("%.6f", m.Last.Uniform),
		"Tangent index:",
		fmt.Sprintf("%.6f", m.Last.Index),
		"Tangent:",
		fmt.Sprintf("%.6f", m.Last.Tangent),
		"",
		"index = (uniform - 0.5) * π",
		"tangent = tan(index)",
		"",
		fmt.Sprintf("samples: %d", m.Samples),
	}
	for i, line := range lines {
		s.Text(l.TextX, l.TextTop+float64(i)*l.Line, line, p.Text)
	}

	drawChart(s, l.Uniform, "Uniform distribution", m.Uniform, m.UniformHeights(), p)
	drawChart(s, l.Tangent, "Cauchy (tangent) distribution", m.Tangent, m.TangentHeights(), p)
}

func drawChart(s render.Surface, c chart, title string, hist *Histogram, heights []float64, p Palette) {
	bins := len(heights)
	binW := c.Width / float64(bins)
	top := c.Base - c.Height
	cellH := c.Height / 8

	s.Text(c.X, top-2*cellH, title, p.Text)

	for i, hgt := range heights {
		x := c.X + float64(i)*binW
		// Axis tick
		s.Line(x, c.Base+1, x, c.Base+3, p.Text)
		if hgt <= 0 {
			continue
		}
		fillBar(s, x, c.Base, binW, c.Height*min(hgt, 1), p.Bar)
	}

	render.DashedLine(s, c.X, top, c.X+c.Width, top, 5, p.Text)

	lo, hi := hist.Range()
	s.Text(c.X-5*glyphWidth, top, fmt.Sprintf("%4.0f", hist.MaxCount()), p.Text)
	s.Text(c.X, c.Base+cellH, fmt.Sprintf("%g", lo), p.Text)
	hiLabel := fmt.Sprintf("%g", hi)
	s.Text(c.X+c.Width-glyphWidth*float64(len(hiLabel)), c.Base+cellH, hiLabel, p.Text)
	s.Text(c.X, c.Base+2*cellH, fmt.Sprintf("mean %.3f  sd %.3f  out %d", hist.Mean(), hist.StdDev(), hist.Dropped()), p.Text)
}

// fillBar draws an upward bar as vertical dot columns so bins narrower
// than a terminal cell still show
func fillBar(s render.Surface, x, base, w, h float64, c tcell.Color) {
	step := constants.PixelsPerDot
	for dx := 0.0; dx < w; dx += step {
		s.Line(x+dx, base, x+dx, base-h, c)
	}
}
