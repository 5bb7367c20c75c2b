// Package config loads collapse run files written in HCL.
//
// A run file has up to three blocks, all optional:
//
//	grid {
//	  size        = 20
//	  seed        = 42
//	  propagation = "worklist"
//	}
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//	output {
//	  dump  = true
//	  final = true
//	}
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"gridcollapse/internal/sims/wfc"
)

var (
	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("config: grid size must be positive")
	// ErrUnknownPropagation indicates an unsupported propagation strategy.
	ErrUnknownPropagation = errors.New("config: unknown propagation strategy")
	// ErrUnknownLogLevel indicates a log level other than debug, info, warn or error.
	ErrUnknownLogLevel = errors.New("config: unknown log level")
	// ErrUnknownLogFormat indicates a log format other than text or json.
	ErrUnknownLogFormat = errors.New("config: unknown log format")
)

// File is a decoded run file with defaults applied.
type File struct {
	Grid   Grid
	Log    Log
	Output Output
}

// Grid mirrors wfc.Config.
type Grid struct {
	Size        int
	Seed        int64
	Propagation string
}

// Log selects the command logger.
type Log struct {
	Level  string
	Format string
}

// Output controls what the headless command prints.
type Output struct {
	// Dump prints the grid after every collapse step.
	Dump bool
	// Final prints the grid once the run ends.
	Final bool
}

type hclFile struct {
	Grid   *hclGrid   `hcl:"grid,block"`
	Log    *hclLog    `hcl:"log,block"`
	Output *hclOutput `hcl:"output,block"`
}

type hclGrid struct {
	Size        *int    `hcl:"size,optional"`
	Seed        *int64  `hcl:"seed,optional"`
	Propagation *string `hcl:"propagation,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclOutput struct {
	Dump  *bool `hcl:"dump,optional"`
	Final *bool `hcl:"final,optional"`
}

// Default returns the run settings used when no file is given.
func Default() File {
	d := wfc.DefaultConfig()
	return File{
		Grid:   Grid{Size: d.Size, Seed: d.Seed, Propagation: string(d.Propagation)},
		Log:    Log{Level: "info", Format: "text"},
		Output: Output{Dump: true, Final: false},
	}
}

// Load parses and validates the run file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, diags)
	}
	return decode(f.Body, path)
}

// Parse is Load for in-memory sources; filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse run file %s: %w", filename, diags)
	}
	return decode(f.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode run file %s: %w", filename, diags)
	}

	out := Default()
	if g := raw.Grid; g != nil {
		if g.Size != nil {
			out.Grid.Size = *g.Size
		}
		if g.Seed != nil {
			out.Grid.Seed = *g.Seed
		}
		if g.Propagation != nil {
			out.Grid.Propagation = *g.Propagation
		}
	}
	if l := raw.Log; l != nil {
		if l.Level != nil {
			out.Log.Level = *l.Level
		}
		if l.Format != nil {
			out.Log.Format = *l.Format
		}
	}
	if o := raw.Output; o != nil {
		if o.Dump != nil {
			out.Output.Dump = *o.Dump
		}
		if o.Final != nil {
			out.Output.Final = *o.Final
		}
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run file %s: %w", filename, err)
	}
	return &out, nil
}

// Validate checks every field against its allowed values.
func (f *File) Validate() error {
	if f.Grid.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, f.Grid.Size)
	}
	if !wfc.Propagation(f.Grid.Propagation).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPropagation, f.Grid.Propagation)
	}
	switch f.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, f.Log.Level)
	}
	switch f.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, f.Log.Format)
	}
	return nil
}

// SimConfig converts the grid block into a solver configuration.
func (f *File) SimConfig() wfc.Config {
	return wfc.Config{
		Size:        f.Grid.Size,
		Seed:        f.Grid.Seed,
		Propagation: wfc.Propagation(f.Grid.Propagation),
	}
}

// SimMap renders the grid block in the string-map form accepted by the sim
// registry.
func (f *File) SimMap() map[string]string {
	return map[string]string{
		"size":        strconv.Itoa(f.Grid.Size),
		"seed":        strconv.FormatInt(f.Grid.Seed, 10),
		"propagation": f.Grid.Propagation,
	}
}
