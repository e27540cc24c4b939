package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/vmath"
)

// PointMapper converts a terminal cell to logical pixels
type PointMapper func(col, row int) vmath.Vec2

// Translator turns tcell events into intents
// It tracks the primary button so press, drag and release can be told
// apart from the button mask tcell reports on every mouse event
type Translator struct {
	table  *KeyTable
	mapper PointMapper

	held    bool
	lastCol int
	lastRow int
}

// NewTranslator creates a translator over a key table
func NewTranslator(table *KeyTable, mapper PointMapper) *Translator {
	return &Translator{table: table, mapper: mapper}
}

// Translate converts one event, reporting false when it maps to nothing
func (t *Translator) Translate(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e, ok := t.table.Lookup(ev)
		if !ok {
			return Intent{}, false
		}
		return Intent{Type: e.Intent, Mode: e.Mode, Size: e.Size, Delta: e.Pan}, true
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}, true
	}
	return Intent{}, false
}

func (t *Translator) mouse(ev *tcell.EventMouse) (Intent, bool) {
	col, row := ev.Position()
	btn := ev.Buttons()
	p := t.mapper(col, row)

	switch {
	case btn&tcell.WheelUp != 0:
		return Intent{Type: IntentWheel, Wheel: 1, Point: p}, true
	case btn&tcell.WheelDown != 0:
		return Intent{Type: IntentWheel, Wheel: -1, Point: p}, true
	}

	down := btn&tcell.Button1 != 0
	switch {
	case down && !t.held:
		t.held = true
		t.lastCol, t.lastRow = col, row
		return Intent{Type: IntentMouseDown, Point: p}, true
	case down && t.held:
		if col == t.lastCol && row == t.lastRow {
			return Intent{}, false
		}
		t.lastCol, t.lastRow = col, row
		return Intent{Type: IntentMouseMove, Point: p}, true
	case !down && t.held:
		t.held = false
		return Intent{Type: IntentMouseUp, Point: p}, true
	}
	return Intent{}, false
}
