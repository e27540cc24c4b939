package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/scene"
	"github.com/lixenwraith/astrobits/vmath"
)

// KeyEntry describes a key's intent without function pointers
type KeyEntry struct {
	Intent IntentType
	Mode   scene.ClickMode
	Size   scene.SpawnSize
	Pan    vmath.Vec2
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings
	Runes map[rune]KeyEntry
}

// Lookup resolves a key event, reporting false for unbound keys
func (t *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := t.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := t.SpecialKeys[ev.Key()]
	return e, ok
}

func quitKeys() map[tcell.Key]KeyEntry {
	return map[tcell.Key]KeyEntry{
		tcell.KeyCtrlC:  {Intent: IntentQuit},
		tcell.KeyEscape: {Intent: IntentQuit},
	}
}

// DefaultKeyTable returns the astrobits key bindings
func DefaultKeyTable() *KeyTable {
	step := float64(constants.KeyPanStep)

	special := quitKeys()
	special[tcell.KeyUp] = KeyEntry{Intent: IntentPan, Pan: vmath.V(0, step)}
	special[tcell.KeyDown] = KeyEntry{Intent: IntentPan, Pan: vmath.V(0, -step)}
	special[tcell.KeyLeft] = KeyEntry{Intent: IntentPan, Pan: vmath.V(step, 0)}
	special[tcell.KeyRight] = KeyEntry{Intent: IntentPan, Pan: vmath.V(-step, 0)}

	return &KeyTable{
		SpecialKeys: special,
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},

			// Click modes
			'm': {Intent: IntentMode, Mode: scene.ModeMove},
			'z': {Intent: IntentMode, Mode: scene.ModeZoom},
			's': {Intent: IntentMode, Mode: scene.ModeSpawn},

			'd': {Intent: IntentToggleDynamic},
			'a': {Intent: IntentToggleMute},

			// Spawn sizes
			'j': {Intent: IntentSize, Size: scene.SizeSmall},
			'k': {Intent: IntentSize, Size: scene.SizeMedium},
			'l': {Intent: IntentSize, Size: scene.SizeLarge},

			'+': {Intent: IntentZoomIn},
			'=': {Intent: IntentZoomIn},
			'-': {Intent: IntentZoomOut},
		},
	}
}

// DistribsKeyTable returns the bindings of the distribution visualizer
func DistribsKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: quitKeys(),
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			' ': {Intent: IntentTogglePause},
			'r': {Intent: IntentReset},
		},
	}
}
