package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/constants"
)

// Handler is driven by Loop; all calls happen on the loop goroutine
type Handler interface {
	// HandleEvent applies one terminal event, returns false to quit
	HandleEvent(ev tcell.Event) bool
	// Tick advances the model by one frame and draws it
	Tick()
}

// Loop owns the single logical thread that mutates demo state
// Input polling runs on its own goroutine and only feeds a channel, so
// ticks and event handling never overlap
type Loop struct {
	screen  tcell.Screen
	period  time.Duration
	handler Handler

	crashHandler func(any)
}

// NewLoop creates a loop ticking handler every period
func NewLoop(screen tcell.Screen, period time.Duration, handler Handler) *Loop {
	return &Loop{
		screen:  screen,
		period:  period,
		handler: handler,
	}
}

// SetCrashHandler installs the panic hook for the polling goroutine
// Keeps terminal restoration in the caller's hands
func (l *Loop) SetCrashHandler(fn func(any)) {
	l.crashHandler = fn
}

// Run blocks until the handler asks to quit, the screen closes, or ctx ends
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go l.poll(eventChan, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !l.handler.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			l.handler.Tick()
		}
	}
}

func (l *Loop) poll(out chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil && l.crashHandler != nil {
			l.crashHandler(r)
		}
	}()
	defer close(out)

	for {
		ev := l.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
