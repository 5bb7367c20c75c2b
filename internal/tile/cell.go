package tile

import "fmt"

// Chooser picks an index in [0, n). *core.RNG satisfies it.
type Chooser interface {
	IntN(n int) int
}

// Cell is one grid position's remaining candidate set.
type Cell struct {
	state State
}

// NewCell returns an unconstrained cell.
func NewCell() Cell { return Cell{state: StateAll} }

// State returns the current candidate mask.
func (c Cell) State() State { return c.state }

// Entropy returns the number of remaining candidates.
func (c Cell) Entropy() uint8 { return entropyTable[c.state] }

// Resolved reports whether the cell is out of play (collapsed or contradictory).
func (c Cell) Resolved() bool { return c.Entropy() <= 1 }

// Contradiction reports whether no candidate is left.
func (c Cell) Contradiction() bool { return c.state == StateNone }

// Tile returns the assigned type when exactly one candidate remains.
func (c Cell) Tile() (int, bool) {
	if c.Entropy() != 1 {
		return 0, false
	}
	for t := 0; t < Count; t++ {
		if c.state.Has(t) {
			return t, true
		}
	}
	return 0, false
}

// Collapse forces the cell to one of its candidates chosen uniformly by rng.
// A contradictory cell is left untouched.
func (c *Cell) Collapse(rng Chooser) {
	var candidates [Count]State
	n := 0
	for t := 0; t < Count; t++ {
		if c.state.Has(t) {
			candidates[n] = Single(t)
			n++
		}
	}
	if n == 0 {
		return
	}
	c.state = candidates[rng.IntN(n)]
}

// Propagate drops every candidate that no tile in neighbor could sit next
// to, and reports whether anything was dropped.
func (c *Cell) Propagate(neighbor State) bool {
	before := c.state
	for t := 0; t < Count; t++ {
		if neighbor&neighborMasks[t] == 0 {
			c.state &^= Single(t)
		}
	}
	return before != c.state
}

// Restrict intersects the candidates with mask and reports whether the
// set shrank. Bits are never added.
func (c *Cell) Restrict(mask State) bool {
	before := c.state
	c.state &= mask
	return before != c.state
}

// Glyph returns '1'..'8' for a collapsed cell and a blank otherwise.
func (c Cell) Glyph() rune {
	if t, ok := c.Tile(); ok {
		return rune('1' + t)
	}
	return ' '
}

// Binary renders the mask as eight binary digits, highest type first.
func (c Cell) Binary() string { return fmt.Sprintf("%08b", uint8(c.state)) }
