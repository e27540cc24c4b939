package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/vmath"
)

func channel(v float64) int32 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return int32(v + 0.5)
}

// Blend mixes src over c with the given alpha
// If alpha is 1.0 or 0.0, we return early to save math; colors without an
// RGB value (terminal default, palette indexes unresolved) pass through
func Blend(c, src tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	cr, cg, cb := c.RGB()
	sr, sg, sb := src.RGB()
	if cr < 0 || sr < 0 {
		return src
	}

	inv := 1.0 - alpha
	return tcell.NewRGBColor(
		channel(float64(sr)*alpha+float64(cr)*inv),
		channel(float64(sg)*alpha+float64(cg)*inv),
		channel(float64(sb)*alpha+float64(cb)*inv),
	)
}

// FadedPath draws connected segments through pts, blending from bg at the
// first point to c at the last
func FadedPath(s Surface, pts []vmath.Vec2, bg, c tcell.Color) {
	n := len(pts) - 1
	for i := 1; i < len(pts); i++ {
		col := Blend(bg, c, float64(i)/float64(n))
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col)
	}
}
