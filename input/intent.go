package input

import (
	"github.com/lixenwraith/astrobits/scene"
	"github.com/lixenwraith/astrobits/vmath"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Scene controls
	IntentMode          // m, z, s
	IntentToggleDynamic // d
	IntentSize          // j, k, l
	IntentZoomIn        // +, =
	IntentZoomOut       // -
	IntentPan           // arrows
	IntentToggleMute    // a

	// Mouse
	IntentMouseDown // Button1 pressed
	IntentMouseMove // motion while Button1 held
	IntentMouseUp   // Button1 released
	IntentWheel     // wheel up/down

	// Distribution visualizer
	IntentTogglePause // space
	IntentReset       // r
)

// Intent is a translated terminal event
// Point is in logical pixels, Delta is a pan step in screen pixels
type Intent struct {
	Type  IntentType
	Mode  scene.ClickMode
	Size  scene.SpawnSize
	Delta vmath.Vec2
	Point vmath.Vec2
	Wheel int
}
