// Package term shows a collapse run live in a terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcollapse/internal/core"
	"gridcollapse/internal/sims/wfc"
)

const frameInterval = 16 * time.Millisecond

// Viewer steps a grid at a fixed rate and redraws it on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	grid   *wfc.Grid
	clock  *core.FixedStep
	styles []tcell.Style

	paused   bool
	tickOnce bool
	seed     int64
}

// New builds a viewer for grid on an initialised screen, stepping tps
// collapses per second.
func New(screen tcell.Screen, grid *wfc.Grid, tps int) *Viewer {
	v := &Viewer{
		screen: screen,
		grid:   grid,
		clock:  core.NewFixedStep(tps),
		seed:   grid.Seed(),
	}
	for _, c := range grid.Palette() {
		fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		v.styles = append(v.styles, tcell.StyleDefault.Foreground(fg))
	}
	return v
}

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run drives the viewer until the user quits or ctx is cancelled. The
// screen is not finalised; the caller owns it.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Advance()
			v.Draw()
		}
	}
}

// Advance performs the collapse steps that are due.
func (v *Viewer) Advance() {
	for v.clock.ShouldStep() {
		if !v.paused {
			v.grid.Step()
		}
	}
	if v.tickOnce {
		v.grid.Step()
		v.tickOnce = false
	}
}

// HandleEvent applies a key or resize event and reports whether the viewer
// should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			v.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.tickOnce = true
			case 'r':
				v.grid.Reset(v.seed)
			case 's':
				v.seed = time.Now().UnixNano()
				v.grid.Reset(v.seed)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw renders the grid two columns per cell with a status line below it.
func (v *Viewer) Draw() {
	v.screen.Clear()
	size := v.grid.Dim()
	cells := v.grid.Cells()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			val := cells[y*size+x]
			v.screen.SetContent(x*2, y, glyphFor(val), nil, v.style(val))
		}
	}

	s := v.grid.Stats()
	status := fmt.Sprintf("step %d  resolved %d/%d  contradictions %d", s.Steps, s.Resolved, size*size, s.Contradictions)
	switch {
	case v.grid.Done():
		status += "  [done]"
	case v.paused:
		status += "  [paused]"
	}
	v.drawText(0, size+1, status)
	v.drawText(0, size+2, "space pause  n step  r restart  s new seed  q quit")
	v.screen.Show()
}

func (v *Viewer) style(val uint8) tcell.Style {
	if int(val) < len(v.styles) {
		return v.styles[val]
	}
	return tcell.StyleDefault
}

func (v *Viewer) drawText(x, y int, text string) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func glyphFor(val uint8) rune {
	switch val {
	case wfc.DisplayUnresolved:
		return '·'
	case wfc.DisplayContradiction:
		return 'X'
	default:
		return rune('0' + val)
	}
}
