package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcollapse/internal/sims/wfc"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawShowsGlyphsAndStatus(t *testing.T) {
	screen := newScreen(t)
	grid := wfc.New(3)
	require.True(t, grid.Assign(wfc.Coord{X: 1, Y: 1}, 3))

	v := New(screen, grid, 60)
	v.Draw()

	assert.Equal(t, '4', runeAt(screen, 2, 1))
	assert.Equal(t, '·', runeAt(screen, 0, 0))
	assert.Equal(t, 's', runeAt(screen, 0, 4))
}

func TestHandleEventKeys(t *testing.T) {
	screen := newScreen(t)
	grid := wfc.New(4)
	v := New(screen, grid, 60)

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, v.Paused())

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	v.Advance()
	assert.Equal(t, 1, grid.Stats().Steps, "n steps once while paused")

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Zero(t, grid.Stats().Steps)

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.False(t, v.Paused())

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStepsUntilQuit(t *testing.T) {
	screen := newScreen(t)
	grid := wfc.New(2)
	v := New(screen, grid, 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- v.Run(ctx) }()

	// A 2x2 grid needs at most four steps; a few frames are plenty.
	time.Sleep(300 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, <-errc)
	assert.True(t, grid.Done())
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	v := New(screen, wfc.New(2), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, v.Run(ctx), context.Canceled)
}
