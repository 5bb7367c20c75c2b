package tile

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcollapse/pkg/core"
)

// fixedChooser always returns the same index, clamped to n.
type fixedChooser int

func (f fixedChooser) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestEntropyTableMatchesPopcount(t *testing.T) {
	for v := 0; v < 256; v++ {
		require.Equalf(t, uint8(bits.OnesCount8(uint8(v))), EntropyOf(State(v)), "value %08b", v)
	}
	assert.Equal(t, uint8(0), EntropyOf(StateNone))
	assert.Equal(t, uint8(8), EntropyOf(StateAll))
}

func TestCompatibleMasks(t *testing.T) {
	want := []State{0x03, 0x07, 0x0e, 0x1c, 0x38, 0x70, 0xe0, 0xc0}
	for i, w := range want {
		assert.Equalf(t, w, Compatible(i), "type %d", i)
	}
	assert.Equal(t, StateNone, Compatible(-1))
	assert.Equal(t, StateNone, Compatible(Count))
}

func TestNewCellUnconstrained(t *testing.T) {
	c := NewCell()
	assert.Equal(t, StateAll, c.State())
	assert.Equal(t, uint8(8), c.Entropy())
	assert.False(t, c.Resolved())
	assert.Equal(t, ' ', c.Glyph())
	assert.Equal(t, "11111111", c.Binary())
}

func TestCollapseYieldsSingletonSubset(t *testing.T) {
	rng := core.NewRNG(7)
	masks := []State{StateAll, 0x81, 0x1c, 0x40, 0xaa}
	for _, mask := range masks {
		for i := 0; i < 50; i++ {
			c := Cell{state: mask}
			c.Collapse(rng)
			require.Equal(t, uint8(1), c.Entropy(), "mask %08b", mask)
			require.Equal(t, c.State(), c.State()&mask, "collapse left the candidate set")
		}
	}
}

func TestCollapseDeterministicForSeed(t *testing.T) {
	run := func() []State {
		rng := core.NewRNG(99)
		out := make([]State, 0, 32)
		for i := 0; i < 32; i++ {
			c := NewCell()
			c.Collapse(rng)
			out = append(out, c.State())
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestCollapsePicksByIndex(t *testing.T) {
	c := Cell{state: 0x1c}
	c.Collapse(fixedChooser(1))
	assert.Equal(t, Single(3), c.State())

	tile, ok := c.Tile()
	require.True(t, ok)
	assert.Equal(t, 3, tile)
	assert.Equal(t, '4', c.Glyph())
}

func TestCollapseContradictionIsNoop(t *testing.T) {
	c := Cell{state: StateNone}
	c.Collapse(fixedChooser(0))
	assert.Equal(t, StateNone, c.State())
	assert.True(t, c.Contradiction())
	assert.True(t, c.Resolved())
	assert.Equal(t, ' ', c.Glyph())
}

func TestPropagateAgainstSingleton(t *testing.T) {
	c := NewCell()
	changed := c.Propagate(Single(3))
	assert.True(t, changed)
	assert.Equal(t, State(0x1c), c.State())
}

func TestPropagateCorrectness(t *testing.T) {
	for n := 0; n < 256; n++ {
		neighbor := State(n)
		for m := 0; m < 256; m += 7 {
			before := State(m)
			c := Cell{state: before}
			changed := c.Propagate(neighbor)
			after := c.State()

			require.Equal(t, after, after&before, "bits were added")
			require.Equal(t, before != after, changed)
			for tt := 0; tt < Count; tt++ {
				switch {
				case after.Has(tt):
					require.NotZero(t, neighbor&Compatible(tt), "type %d survived without support", tt)
				case before.Has(tt):
					require.Zero(t, neighbor&Compatible(tt), "type %d cleared despite support", tt)
				}
			}
		}
	}
}

func TestPropagateMonotonicNarrowing(t *testing.T) {
	rng := core.NewRNG(3)
	c := NewCell()
	prev := c.State()
	for i := 0; i < 200; i++ {
		c.Propagate(State(rng.IntN(256)))
		cur := c.State()
		require.Equal(t, cur, cur&prev)
		prev = cur
	}
}

func TestPropagateIdempotent(t *testing.T) {
	c := NewCell()
	require.True(t, c.Propagate(0x18))
	assert.False(t, c.Propagate(0x18))
}

func TestPropagateEmptyNeighborContradicts(t *testing.T) {
	c := NewCell()
	assert.True(t, c.Propagate(StateNone))
	assert.True(t, c.Contradiction())
}

func TestRestrictNeverAddsBits(t *testing.T) {
	c := Cell{state: 0x0f}
	assert.True(t, c.Restrict(0xf8))
	assert.Equal(t, State(0x08), c.State())
	assert.False(t, c.Restrict(StateAll))
	assert.Equal(t, State(0x08), c.State())
}
