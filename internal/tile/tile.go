// Package tile holds the per-position candidate set used by the collapse
// solver. A cell knows nothing about its neighbours; the grid hands it a
// neighbour's mask when constraints need to be narrowed.
package tile

// State is a bitmask of candidate tile types. Bit i set means type i is
// still possible.
type State uint8

// Count is the number of tile types.
const Count = 8

const (
	// StateNone is the empty candidate set (a contradiction).
	StateNone State = 0
	// StateAll has every tile type as a candidate.
	StateAll State = 0xff
)

// neighborMasks[i] lists the types allowed next to type i: [i-1, i+1]
// clipped to the valid range.
var neighborMasks = buildNeighborMasks()

// entropyTable maps every byte to its population count.
var entropyTable = buildEntropyTable()

func buildNeighborMasks() [Count]State {
	var masks [Count]State
	for i := 0; i < Count; i++ {
		for j := i - 1; j <= i+1; j++ {
			if j < 0 || j >= Count {
				continue
			}
			masks[i] |= Single(j)
		}
	}
	return masks
}

func buildEntropyTable() [256]uint8 {
	var table [256]uint8
	for i := range table {
		v := uint8(i)
		var n uint8
		for v != 0 {
			n += v & 1
			v >>= 1
		}
		table[i] = n
	}
	return table
}

// Single returns the mask with only tile type t set. Out-of-range types
// yield StateNone.
func Single(t int) State {
	if t < 0 || t >= Count {
		return StateNone
	}
	return State(1) << t
}

// Compatible returns the mask of types that may sit next to type t.
func Compatible(t int) State {
	if t < 0 || t >= Count {
		return StateNone
	}
	return neighborMasks[t]
}

// EntropyOf reports how many candidates s holds.
func EntropyOf(s State) uint8 { return entropyTable[s] }

// Has reports whether tile type t is a candidate in s.
func (s State) Has(t int) bool { return s&Single(t) != 0 }
