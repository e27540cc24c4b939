package scene

import "github.com/lixenwraith/astrobits/vmath"

// Camera maps simulation coordinates to screen pixels with pan and zoom
//
//	screen = center + (sim + offset - center) * zoom
type Camera struct {
	Offset vmath.Vec2
	Zoom   float64
	Center vmath.Vec2

	MinZoom float64
	MaxZoom float64
}

// ToScreen maps a simulation point to screen pixels
func (c *Camera) ToScreen(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: c.Center.X + (p.X+c.Offset.X-c.Center.X)*c.Zoom,
		Y: c.Center.Y + (p.Y+c.Offset.Y-c.Center.Y)*c.Zoom,
	}
}

// ToSim maps a screen pixel back to simulation coordinates
func (c *Camera) ToSim(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: c.Center.X + (p.X-c.Center.X)/c.Zoom - c.Offset.X,
		Y: c.Center.Y + (p.Y-c.Center.Y)/c.Zoom - c.Offset.Y,
	}
}

// Pan shifts the view by a screen-space delta, scaled so the drag speed
// is independent of zoom
func (c *Camera) Pan(delta vmath.Vec2, divisor float64) {
	c.Offset.X += delta.X / divisor / c.Zoom
	c.Offset.Y += delta.Y / divisor / c.Zoom
}

// ZoomBy multiplies the zoom factor, then clamps
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = vmath.Clamp(c.Zoom*factor, c.MinZoom, c.MaxZoom)
}

// ZoomAdd adds to the zoom factor, then clamps
func (c *Camera) ZoomAdd(delta float64) {
	c.Zoom = vmath.Clamp(c.Zoom+delta, c.MinZoom, c.MaxZoom)
}
