package wfc

import "strconv"

// DefaultSize is the edge length of the square grid when none is given.
const DefaultSize = 20

// Propagation selects how constraint changes are pushed through the grid.
type Propagation string

const (
	// PropagateRecursive walks neighbours depth-first on the call stack.
	PropagateRecursive Propagation = "recursive"
	// PropagateWorklist walks neighbours from an explicit stack of coordinates.
	PropagateWorklist Propagation = "worklist"
)

// Valid reports whether p names a known propagation strategy.
func (p Propagation) Valid() bool {
	return p == PropagateRecursive || p == PropagateWorklist
}

// Config controls the collapse grid.
type Config struct {
	Size        int
	Seed        int64
	Propagation Propagation
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:        DefaultSize,
		Seed:        1337,
		Propagation: PropagateRecursive,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["propagation"]; ok {
		if p := Propagation(v); p.Valid() {
			c.Propagation = p
		}
	}
	return c
}
