// Package wfc fills a square grid with tile types so that 4-adjacent tiles
// differ by at most one, collapsing the least constrained cells first.
package wfc

import (
	"gridcollapse/internal/core"
	"gridcollapse/internal/tile"
	prng "gridcollapse/pkg/core"
)

// NoEntropy is returned by FindLowestEntropy when every cell is resolved.
const NoEntropy uint8 = 255

// Coord addresses a cell; X is the column and Y the row.
type Coord struct {
	X, Y int
}

// Stats summarises the state of a grid.
type Stats struct {
	Steps          int
	Resolved       int
	Contradictions int
}

// Grid owns the cells and drives the collapse.
type Grid struct {
	cfg     Config
	cells   *core.Grid[tile.Cell]
	display []uint8
	entropy []uint8
	rng     *prng.RNG
	seed    int64
	steps   int
}

// New returns a grid of the given edge length using the default config.
func New(size int) *Grid {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns an unconstrained grid configured from cfg.
func NewWithConfig(cfg Config) *Grid {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if !cfg.Propagation.Valid() {
		cfg.Propagation = PropagateRecursive
	}
	g := &Grid{
		cfg:   cfg,
		cells: core.NewGrid[tile.Cell](cfg.Size, cfg.Size),
		rng:   prng.NewRNG(cfg.Seed),
		seed:  cfg.Seed,
	}
	g.display = make([]uint8, len(g.cells.Cells()))
	g.cells.Fill(tile.NewCell())
	return g
}

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// Seed returns the seed of the current run.
func (g *Grid) Seed() int64 { return g.seed }

// Dim returns the edge length of the grid.
func (g *Grid) Dim() int { return g.cfg.Size }

// Cell returns a copy of the cell at c.
func (g *Grid) Cell(c Coord) tile.Cell { return *g.cells.At(c.X, c.Y) }

// InBounds reports whether c addresses a cell.
func (g *Grid) InBounds(c Coord) bool { return g.cells.InBounds(c.X, c.Y) }

// FindHighestEntropy returns the largest candidate count of any cell.
func (g *Grid) FindHighestEntropy() uint8 {
	var highest uint8
	for _, cell := range g.cells.Cells() {
		if e := cell.Entropy(); e > highest {
			highest = e
		}
	}
	return highest
}

// FindLowestEntropy returns the smallest candidate count above one, or
// NoEntropy when no cell is unresolved.
func (g *Grid) FindLowestEntropy() uint8 {
	lowest := NoEntropy
	for _, cell := range g.cells.Cells() {
		if e := cell.Entropy(); e > 1 && e < lowest {
			lowest = e
		}
	}
	return lowest
}

// SelectCellWithEntropy picks uniformly among the cells whose entropy equals
// target. When none match it returns the origin, which may be a cell that is
// already resolved.
func (g *Grid) SelectCellWithEntropy(target uint8) Coord {
	var matches []int
	for i, cell := range g.cells.Cells() {
		if cell.Entropy() == target {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return Coord{}
	}
	x, y := g.cells.Coords(matches[g.rng.IntN(len(matches))])
	return Coord{X: x, Y: y}
}

// CollapseStep collapses one of the least constrained cells and propagates
// the result. It returns the coordinate that was collapsed.
func (g *Grid) CollapseStep() Coord {
	at := g.SelectCellWithEntropy(g.FindLowestEntropy())
	g.cells.At(at.X, at.Y).Collapse(g.rng)
	g.propagate(at)
	g.steps++
	return at
}

// Run collapses cells until none has more than one candidate, notifying
// obs after every step. Contradictions count as finished cells; the run
// neither reports nor repairs them beyond the returned Stats.
func (g *Grid) Run(obs Observer) Stats {
	for g.FindHighestEntropy() > 1 {
		at := g.CollapseStep()
		if obs != nil {
			obs.Observe(g.steps, at, g)
		}
	}
	return g.Stats()
}

// Done reports whether every cell is resolved.
func (g *Grid) Done() bool { return g.FindHighestEntropy() <= 1 }

// Assign narrows the cell at c to tile type t and propagates the change.
// It reports false when c is out of bounds, t is not a tile type, or t was
// no longer a candidate; in the last case the cell becomes a contradiction.
func (g *Grid) Assign(c Coord, t int) bool {
	if !g.InBounds(c) || t < 0 || t >= tile.Count {
		return false
	}
	cell := g.cells.At(c.X, c.Y)
	ok := cell.State().Has(t)
	if cell.Restrict(tile.Single(t)) {
		g.propagate(c)
	}
	return ok
}

// Stats counts steps taken, resolved cells and contradictions.
func (g *Grid) Stats() Stats {
	s := Stats{Steps: g.steps}
	for _, cell := range g.cells.Cells() {
		switch cell.Entropy() {
		case 0:
			s.Contradictions++
		case 1:
			s.Resolved++
		}
	}
	return s
}

// Contradictions returns the number of cells without candidates.
func (g *Grid) Contradictions() int { return g.Stats().Contradictions }

// Reset restores every cell to the unconstrained state and reseeds the
// RNG. A zero seed falls back to the configured one.
func (g *Grid) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.seed = seed
	g.rng.Reseed(seed)
	g.cells.Fill(tile.NewCell())
	g.steps = 0
}
