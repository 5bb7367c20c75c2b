package wfc

import (
	"image/color"

	"gridcollapse/internal/core"
)

// Display values published through Cells.
const (
	DisplayUnresolved    uint8 = 0
	DisplayContradiction uint8 = 9
)

var palette = []color.RGBA{
	{R: 24, G: 24, B: 28, A: 255},    // unresolved
	{R: 20, G: 40, B: 110, A: 255},   // 1
	{R: 40, G: 90, B: 170, A: 255},   // 2
	{R: 210, G: 190, B: 120, A: 255}, // 3
	{R: 90, G: 160, B: 70, A: 255},   // 4
	{R: 40, G: 110, B: 50, A: 255},   // 5
	{R: 120, G: 100, B: 80, A: 255},  // 6
	{R: 150, G: 150, B: 160, A: 255}, // 7
	{R: 240, G: 240, B: 250, A: 255}, // 8
	{R: 230, G: 30, B: 200, A: 255},  // contradiction
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "wfc" }

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cfg.Size, H: g.cfg.Size} }

// Step performs one collapse step unless the grid is already done.
func (g *Grid) Step() {
	if g.Done() {
		return
	}
	g.CollapseStep()
}

// Cells returns the display buffer: DisplayUnresolved, the tile type plus
// one, or DisplayContradiction for each cell.
func (g *Grid) Cells() []uint8 {
	for i, cell := range g.cells.Cells() {
		switch {
		case cell.Contradiction():
			g.display[i] = DisplayContradiction
		default:
			if t, ok := cell.Tile(); ok {
				g.display[i] = uint8(t + 1)
			} else {
				g.display[i] = DisplayUnresolved
			}
		}
	}
	return g.display
}

// UnresolvedEntropy returns each cell's candidate count, or zero for
// resolved cells. The slice is reused between calls.
func (g *Grid) UnresolvedEntropy() []uint8 {
	if g.entropy == nil {
		g.entropy = make([]uint8, len(g.display))
	}
	for i, cell := range g.cells.Cells() {
		if cell.Resolved() {
			g.entropy[i] = 0
			continue
		}
		g.entropy[i] = cell.Entropy()
	}
	return g.entropy
}

// Palette maps display values to colours.
func (g *Grid) Palette() []color.RGBA { return palette }

// Parameters reports the configuration and progress of the grid.
func (g *Grid) Parameters() core.ParameterSnapshot {
	s := g.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("size", "Size", int64(g.cfg.Size)),
				core.IntParam("seed", "Seed", g.seed),
				core.StringParam("propagation", "Propagation", string(g.cfg.Propagation)),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", int64(s.Steps)),
				core.IntParam("resolved", "Resolved", int64(s.Resolved)),
				core.IntParam("contradictions", "Contradictions", int64(s.Contradictions)),
			},
		},
	}}
}

func init() {
	core.Register("wfc", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
