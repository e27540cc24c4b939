package astro

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/physics"
	"github.com/lixenwraith/astrobits/render"
	"github.com/lixenwraith/astrobits/scene"
	"github.com/lixenwraith/astrobits/vmath"
)

const buttonPadX = 4

// palette caches parsed colors; body colors are looked up by hex string
type palette struct {
	background     tcell.Color
	buttonActive   tcell.Color
	buttonInactive tcell.Color
	text           tcell.Color
	vector         tcell.Color
	bodies         map[string]tcell.Color
}

func newPalette() *palette {
	return &palette{
		background:     render.Color(constants.BackgroundColor),
		buttonActive:   render.Color(constants.ButtonActiveColor),
		buttonInactive: render.Color(constants.ButtonInactiveColor),
		text:           render.Color(constants.ButtonTextColor),
		vector:         render.Color(constants.PreviewVectorColor),
		bodies:         make(map[string]tcell.Color),
	}
}

func (p *palette) body(hex string) tcell.Color {
	c, ok := p.bodies[hex]
	if !ok {
		c = render.Color(hex)
		p.bodies[hex] = c
	}
	return c
}

// Draw renders the scene: bodies with trails, buttons, then the spawn
// vector and its predicted path, then the status line
func Draw(s render.Surface, sc *scene.Scene, p *palette) {
	for i := range sc.Bodies {
		drawBody(s, &sc.Bodies[i], &sc.Camera, p)
	}
	for _, b := range sc.Buttons {
		drawButton(s, b, sc.Active(b.Role), p)
	}
	drawSpawnPath(s, sc, p)
	drawStatus(s, sc, p)
}

// The trail of an absorbed body stays on screen while its samples collapse
func drawBody(s render.Surface, b *physics.Body, cam *scene.Camera, p *palette) {
	col := p.body(b.Color)
	pos := cam.ToScreen(vmath.V(b.X, b.Y))

	if b.Trail != nil {
		pts := b.Trail.Points()
		screen := make([]vmath.Vec2, 0, len(pts)+1)
		for _, pt := range pts {
			screen = append(screen, cam.ToScreen(pt))
		}
		screen = append(screen, pos)
		render.FadedPath(s, screen, p.background, col)
	}

	if !b.Visible() {
		return
	}
	s.FillCircle(pos.X, pos.Y, b.Radius*cam.Zoom, col)
}

func drawButton(s render.Surface, b scene.Button, active bool, p *palette) {
	bg := p.buttonInactive
	if active {
		bg = p.buttonActive
	}
	s.FillRect(b.X-b.W/2, b.Y-b.H/2, b.W, b.H, bg)

	x := b.X - b.W/2 + buttonPadX
	words := strings.Fields(b.Label)
	switch len(words) {
	case 1:
		s.Text(x, b.Y, words[0], p.text)
	case 2:
		s.Text(x, b.Y-6, words[0], p.text)
		s.Text(x, b.Y+6, words[1], p.text)
	}
}

func drawSpawnPath(s render.Surface, sc *scene.Scene, p *palette) {
	pred := sc.Preview()
	if pred == nil {
		return
	}

	start, end := sc.Drag.Start, sc.Drag.Current
	s.Line(start.X, start.Y, end.X, end.Y, p.vector)

	var pts []vmath.Vec2
	for pt := range pred.All() {
		pts = append(pts, sc.Camera.ToScreen(pt))
	}
	render.Path(s, pts, p.body(sc.SpawnSpec().Color))
}

var sizeLabels = map[scene.SpawnSize]string{
	scene.SizeSmall:  "S",
	scene.SizeMedium: "M",
	scene.SizeLarge:  "L",
}

// StatusLine summarizes the scene for the bottom row
func StatusLine(sc *scene.Scene) string {
	onOff := "off"
	if sc.PrimaryDynamic() {
		onOff = "on"
	}
	return fmt.Sprintf("%s | size %s | zoom %.2fx | bodies %d | sun mass %.0f | dynamic sun %s | q quit",
		sc.Mode, sizeLabels[sc.Size], sc.Camera.Zoom, len(sc.Bodies), sc.Primary().Mass, onOff)
}

func drawStatus(s render.Surface, sc *scene.Scene, p *palette) {
	_, h := s.Size()
	s.Text(0, h-1, StatusLine(sc), p.text)
}
