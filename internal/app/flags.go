package app

import (
	"flag"
	"strconv"

	"gridcollapse/internal/sims/wfc"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim         string
	Scale       int
	TPS         int
	Seed        int64
	Size        int
	Propagation string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "wfc",
		Scale:       24,
		TPS:         30,
		Seed:        wfc.DefaultConfig().Seed,
		Size:        wfc.DefaultSize,
		Propagation: string(wfc.PropagateRecursive),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "grid edge length")
	fs.StringVar(&c.Propagation, "propagation", c.Propagation, "propagation strategy: recursive or worklist")
}

// SimMap returns the sim settings in the registry's key/value form.
func (c *Config) SimMap() map[string]string {
	return map[string]string{
		"size":        strconv.Itoa(c.Size),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"propagation": c.Propagation,
	}
}
