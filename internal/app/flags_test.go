package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcollapse/internal/core"
	"gridcollapse/internal/sims/wfc"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-size", "12", "-seed", "5", "-propagation", "worklist", "-scale", "8"}))

	assert.Equal(t, 8, cfg.Scale)
	assert.Equal(t, map[string]string{"size": "12", "seed": "5", "propagation": "worklist"}, cfg.SimMap())
}

func TestConfigBuildsRegisteredSim(t *testing.T) {
	cfg := NewConfig()
	factory, ok := core.Lookup(cfg.Sim)
	require.True(t, ok)

	sim := factory(cfg.SimMap())
	grid, ok := sim.(*wfc.Grid)
	require.True(t, ok)
	assert.Equal(t, wfc.DefaultConfig(), grid.Config())
}
