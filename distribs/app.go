package distribs

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/input"
	"github.com/lixenwraith/astrobits/render"
	"go.uber.org/zap"
)

// App drives a Model from the engine loop
type App struct {
	model      *Model
	canvas     *render.Canvas
	screen     tcell.Screen
	translator *input.Translator
	palette    Palette
	log        *zap.Logger
}

// NewApp binds a model to a screen
func NewApp(screen tcell.Screen, model *Model, pixelsPerDot float64, log *zap.Logger) *App {
	cols, rows := screen.Size()
	canvas := render.NewCanvas(cols, rows, pixelsPerDot)
	return &App{
		model:      model,
		canvas:     canvas,
		screen:     screen,
		translator: input.NewTranslator(input.DistribsKeyTable(), canvas.CellCenter),
		palette:    DefaultPalette(),
		log:        log,
	}
}

// Model returns the driven model
func (a *App) Model() *Model { return a.model }

// HandleEvent implements engine.Handler
func (a *App) HandleEvent(ev tcell.Event) bool {
	in, ok := a.translator.Translate(ev)
	if !ok {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		a.log.Info("quit", zap.Int("samples", a.model.Samples))
		return false
	case input.IntentTogglePause:
		a.model.TogglePause()
		a.log.Debug("pause toggled", zap.Bool("paused", a.model.Paused))
	case input.IntentReset:
		a.model.Reset()
		a.log.Debug("histograms reset")
	case input.IntentResize:
		cols, rows := a.screen.Size()
		a.canvas.Resize(cols, rows)
		a.screen.Sync()
	}
	return true
}

// Tick implements engine.Handler
func (a *App) Tick() {
	a.model.Tick()
	a.canvas.Clear(a.palette.Background)
	Render(a.canvas, a.model, a.palette)
	a.canvas.Flush(a.screen)
}
