package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	ticks  atomic.Int32
	events atomic.Int32
	quitOn rune
}

func (h *countingHandler) HandleEvent(ev tcell.Event) bool {
	h.events.Add(1)
	if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyRune && k.Rune() == h.quitOn {
		return false
	}
	return true
}

func (h *countingHandler) Tick() {
	h.ticks.Add(1)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestLoopQuitsOnHandlerRequest(t *testing.T) {
	screen := newSimScreen(t)
	h := &countingHandler{quitOn: 'q'}
	loop := NewLoop(screen, 5*time.Millisecond, h)

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(context.Background()) }()

	// Let a few ticks pass before quitting
	time.Sleep(30 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on quit key")
	}

	assert.Greater(t, h.ticks.Load(), int32(0))
	assert.Greater(t, h.events.Load(), int32(0))
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	screen := newSimScreen(t)
	h := &countingHandler{}
	loop := NewLoop(screen, 5*time.Millisecond, h)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}
