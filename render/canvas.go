package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/vmath"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const brailleBase = 0x2800

type cell struct {
	dots   uint8
	fg     tcell.Color
	bg     tcell.Color
	text   rune
	textFg tcell.Color
}

// Canvas is a braille-dot raster in logical pixels, one terminal cell per
// 2x4 dots. Each cell keeps a single foreground, the last one drawn.
type Canvas struct {
	cols, rows int
	scale      float64 // logical pixels per dot
	bg         tcell.Color
	cells      []cell
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int, pixelsPerDot float64) *Canvas {
	if pixelsPerDot <= 0 {
		pixelsPerDot = constants.PixelsPerDot
	}
	c := &Canvas{scale: pixelsPerDot, bg: tcell.ColorBlack}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	size := c.cols * c.rows
	if cap(c.cells) < size {
		c.cells = make([]cell, size)
	}
	c.cells = c.cells[:size]
	c.Clear(c.bg)
}

// Clear resets every cell to the given background
func (c *Canvas) Clear(bg tcell.Color) {
	c.bg = bg
	for i := range c.cells {
		c.cells[i] = cell{fg: tcell.ColorDefault, bg: bg}
	}
}

// Size returns the canvas size in logical pixels
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols*constants.DotsPerCellX) * c.scale, float64(c.rows*constants.DotsPerCellY) * c.scale
}

// CellSize returns the logical pixel size of one terminal cell
func (c *Canvas) CellSize() (float64, float64) {
	return constants.DotsPerCellX * c.scale, constants.DotsPerCellY * c.scale
}

// CellCenter maps a terminal cell to the logical pixel at its center
func (c *Canvas) CellCenter(col, row int) vmath.Vec2 {
	cw, ch := c.CellSize()
	return vmath.Vec2{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
}

func (c *Canvas) dotBounds() (int, int) {
	return c.cols * constants.DotsPerCellX, c.rows * constants.DotsPerCellY
}

// setDot lights one dot in dot coordinates; out of range is ignored
func (c *Canvas) setDot(dx, dy int, col tcell.Color) {
	w, h := c.dotBounds()
	if dx < 0 || dy < 0 || dx >= w || dy >= h {
		return
	}
	cl := &c.cells[(dy/constants.DotsPerCellY)*c.cols+dx/constants.DotsPerCellX]
	cl.dots |= 1 << brailleBits[dx%constants.DotsPerCellX][dy%constants.DotsPerCellY]
	cl.fg = col
}

// Plot lights the dot under a logical pixel
func (c *Canvas) Plot(x, y float64, col tcell.Color) {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return
	}
	c.setDot(int(math.Floor(x/c.scale)), int(math.Floor(y/c.scale)), col)
}

// FillCircle fills every dot whose center lies within r of (x,y)
// Circles smaller than a dot still light the center dot
func (c *Canvas) FillCircle(x, y, r float64, col tcell.Color) {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) || !vmath.IsFinite(r) || r < 0 {
		return
	}
	cx, cy, cr := x/c.scale, y/c.scale, r/c.scale
	if cr < 0.5 {
		c.Plot(x, y, col)
		return
	}

	w, h := c.dotBounds()
	x0 := max(int(math.Floor(cx-cr)), 0)
	x1 := min(int(math.Ceil(cx+cr)), w-1)
	y0 := max(int(math.Floor(cy-cr)), 0)
	y1 := min(int(math.Ceil(cy+cr)), h-1)

	r2 := cr * cr
	for dy := y0; dy <= y1; dy++ {
		fy := float64(dy) + 0.5 - cy
		for dx := x0; dx <= x1; dx++ {
			fx := float64(dx) + 0.5 - cx
			if fx*fx+fy*fy <= r2 {
				c.setDot(dx, dy, col)
			}
		}
	}
}

// Line rasterizes a segment after clipping it to the canvas
func (c *Canvas) Line(x0, y0, x1, y1 float64, col tcell.Color) {
	if !vmath.IsFinite(x0) || !vmath.IsFinite(y0) || !vmath.IsFinite(x1) || !vmath.IsFinite(y1) {
		return
	}
	w, h := c.dotBounds()
	ax, ay, bx, by, ok := clipSegment(x0/c.scale, y0/c.scale, x1/c.scale, y1/c.scale, 0, 0, float64(w), float64(h))
	if !ok {
		return
	}

	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		c.setDot(int(ax), int(ay), col)
		return
	}
	sx := (bx - ax) / float64(steps)
	sy := (by - ay) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.setDot(int(math.Floor(ax+sx*float64(i))), int(math.Floor(ay+sy*float64(i))), col)
	}
}

// clipSegment is Liang–Barsky clipping against [minX,maxX)x[minY,maxY)
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	// Keep endpoints strictly inside so floor() lands on a valid dot
	maxX = math.Nextafter(maxX, minX)
	maxY = math.Nextafter(maxY, minY)

	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	ax := min(x0+t0*dx, maxX)
	ay := min(y0+t0*dy, maxY)
	bx := min(x0+t1*dx, maxX)
	by := min(y0+t1*dy, maxY)
	return max(ax, minX), max(ay, minY), max(bx, minX), max(by, minY), true
}

// FillRect sets the background of every cell whose center is inside the rect
// Negative width or height extend left or up
func (c *Canvas) FillRect(x, y, w, h float64, col tcell.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) || !vmath.IsFinite(w) || !vmath.IsFinite(h) {
		return
	}

	cw, ch := c.CellSize()
	col0 := max(int(math.Ceil(x/cw-0.5)), 0)
	col1 := min(int(math.Floor((x+w)/cw-0.5)), c.cols-1)
	row0 := max(int(math.Ceil(y/ch-0.5)), 0)
	row1 := min(int(math.Floor((y+h)/ch-0.5)), c.rows-1)

	for row := row0; row <= row1; row++ {
		for cc := col0; cc <= col1; cc++ {
			c.cells[row*c.cols+cc].bg = col
		}
	}
}

// Text writes s starting at the cell containing (x,y); text hides dots
func (c *Canvas) Text(x, y float64, s string, fg tcell.Color) {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return
	}
	cw, ch := c.CellSize()
	col := int(math.Floor(x / cw))
	row := int(math.Floor(y / ch))
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			cl := &c.cells[row*c.cols+col]
			cl.text = r
			cl.textFg = fg
		}
		col++
	}
}

// Flush copies the canvas to the screen and shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Background(cl.bg)
			switch {
			case cl.text != 0:
				screen.SetContent(col, row, cl.text, nil, style.Foreground(cl.textFg))
			case cl.dots != 0:
				screen.SetContent(col, row, rune(brailleBase+int(cl.dots)), nil, style.Foreground(cl.fg))
			default:
				screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
	screen.Show()
}
