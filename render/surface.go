package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/vmath"
)

// Surface is the drawing boundary in logical pixel coordinates
type Surface interface {
	Size() (w, h float64)
	FillCircle(x, y, r float64, c tcell.Color)
	Line(x0, y0, x1, y1 float64, c tcell.Color)
	FillRect(x, y, w, h float64, c tcell.Color)
	Text(x, y float64, s string, fg tcell.Color)
}

// Path draws connected segments through pts
func Path(s Surface, pts []vmath.Vec2, c tcell.Color) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, c)
	}
}

// DashedLine draws a horizontal or sloped line as alternating dash/gap runs
func DashedLine(s Surface, x0, y0, x1, y1, dash float64, c tcell.Color) {
	length := vmath.Distance(x0, y0, x1, y1)
	if length == 0 || dash <= 0 {
		return
	}
	ux := (x1 - x0) / length
	uy := (y1 - y0) / length
	for t := 0.0; t < length; t += 2 * dash {
		end := min(t+dash, length)
		s.Line(x0+ux*t, y0+uy*t, x0+ux*end, y0+uy*end, c)
	}
}

// Color parses a "#rrggbb" or named color, falling back to the terminal default
func Color(hex string) tcell.Color {
	return tcell.GetColor(hex)
}
