//go:build ebiten

package ui

import (
	"image/color"

	"gridcollapse/internal/core"
	"gridcollapse/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type entropyProvider interface {
	UnresolvedEntropy() []uint8
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	scale       int
	entropy     entropyProvider
	painter     *render.GridPainter
	showEntropy bool
}

// NewOverlay constructs a new overlay instance. Sims that do not publish
// entropy get an overlay that never draws.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{scale: scale}
	if p, ok := sim.(entropyProvider); ok {
		o.entropy = p
		size := sim.Size()
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	return o
}

// Update toggles the entropy shading with key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEntropy = !o.showEntropy
	}
}

// Draw tints unresolved cells; more candidates means a stronger tint.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showEntropy || o.entropy == nil {
		return
	}
	o.painter.Shade(screen, o.entropy.UnresolvedEntropy(), 8, color.RGBA{R: 80, G: 200, B: 255, A: 200}, o.scale)
}
