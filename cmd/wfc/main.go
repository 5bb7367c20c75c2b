package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcollapse/internal/config"
	"gridcollapse/internal/core"
	"gridcollapse/internal/ctxlog"
	"gridcollapse/internal/sims/wfc"
	"gridcollapse/internal/term"
)

// usageError marks bad command-line input; main exits with status 2 for it.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type pinList []string

func (l *pinList) String() string { return strings.Join(*l, ";") }

func (l *pinList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type options struct {
	configPath  string
	size        int
	seed        int64
	propagation string
	quiet       bool
	final       bool
	tui         bool
	tps         int
	params      bool
	logLevel    string
	logFormat   string
	pins        pinList
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ue usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, set, err := parseArgs(args, errW)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return usageError{err}
	}

	file := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		file = *loaded
	}
	applyFlags(&file, opts, set)
	if err := file.Validate(); err != nil {
		return usageError{err}
	}

	logger := ctxlog.NewLogger(file.Log.Level, file.Log.Format, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	grid := wfc.NewWithConfig(file.SimConfig())
	if err := applyPins(ctx, grid, opts.pins); err != nil {
		return usageError{err}
	}
	if opts.params {
		printParameters(outW, grid.Parameters())
	}

	logger.Debug("starting collapse", "size", grid.Dim(), "seed", grid.Seed(), "propagation", file.Grid.Propagation)
	start := time.Now()

	if opts.tui {
		if err := runTUI(ctx, grid, opts.tps); err != nil {
			return err
		}
	} else {
		var obs wfc.Observer
		var dumper *wfc.Dumper
		if file.Output.Dump {
			dumper = wfc.DumpObserver(outW)
			obs = dumper
		}
		grid.Run(obs)
		if dumper != nil && dumper.Err() != nil {
			return fmt.Errorf("writing snapshot: %w", dumper.Err())
		}
		if file.Output.Final {
			if err := grid.Dump(outW); err != nil {
				return fmt.Errorf("writing final grid: %w", err)
			}
		}
	}

	stats := grid.Stats()
	logger.Info("collapse finished",
		"steps", stats.Steps,
		"resolved", stats.Resolved,
		"contradictions", stats.Contradictions,
		"elapsed", time.Since(start).Round(time.Microsecond),
	)
	if stats.Contradictions > 0 {
		logger.Warn("grid contains contradictions", "cells", stats.Contradictions)
	}
	return nil
}

func parseArgs(args []string, errW io.Writer) (options, map[string]bool, error) {
	var opts options
	fs := flag.NewFlagSet("wfc", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.StringVar(&opts.configPath, "config", "", "HCL run file")
	fs.IntVar(&opts.size, "size", wfc.DefaultSize, "grid edge length")
	fs.Int64Var(&opts.seed, "seed", wfc.DefaultConfig().Seed, "random seed")
	fs.StringVar(&opts.propagation, "propagation", string(wfc.PropagateRecursive), "propagation strategy: recursive or worklist")
	fs.BoolVar(&opts.quiet, "quiet", false, "do not print the grid after every step")
	fs.BoolVar(&opts.final, "final", false, "print the grid once the run ends")
	fs.BoolVar(&opts.tui, "tui", false, "show the run live in the terminal")
	fs.IntVar(&opts.tps, "tps", 20, "collapse steps per second in -tui mode")
	fs.BoolVar(&opts.params, "params", false, "print the grid parameters before running")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	fs.Var(&opts.pins, "pin", "pre-place a tile as x,y=glyph with glyph 1-8 (repeatable)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: wfc [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	if fs.NArg() > 0 {
		return opts, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// applyFlags copies explicitly set flags over the run file. Without a run
// file every flag applies.
func applyFlags(file *config.File, opts options, set map[string]bool) {
	explicit := func(name string) bool { return opts.configPath == "" || set[name] }
	if explicit("size") {
		file.Grid.Size = opts.size
	}
	if explicit("seed") {
		file.Grid.Seed = opts.seed
	}
	if explicit("propagation") {
		file.Grid.Propagation = opts.propagation
	}
	if explicit("log-level") {
		file.Log.Level = opts.logLevel
	}
	if explicit("log-format") {
		file.Log.Format = opts.logFormat
	}
	if set["quiet"] {
		file.Output.Dump = !opts.quiet
	}
	if set["final"] {
		file.Output.Final = opts.final
	}
}

func applyPins(ctx context.Context, grid *wfc.Grid, pins []string) error {
	logger := ctxlog.FromContext(ctx)
	for _, pin := range pins {
		at, t, err := parsePin(pin)
		if err != nil {
			return err
		}
		if !grid.InBounds(at) {
			return fmt.Errorf("pin %q: outside the %dx%d grid", pin, grid.Dim(), grid.Dim())
		}
		if !grid.Assign(at, t) {
			logger.Warn("pinned tile conflicts with earlier pins", "pin", pin)
		}
	}
	return nil
}

func parsePin(pin string) (wfc.Coord, int, error) {
	pos, glyph, ok := strings.Cut(pin, "=")
	if !ok {
		return wfc.Coord{}, 0, fmt.Errorf("pin %q: want x,y=glyph", pin)
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return wfc.Coord{}, 0, fmt.Errorf("pin %q: want x,y=glyph", pin)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	g, errG := strconv.Atoi(strings.TrimSpace(glyph))
	if err := errors.Join(errX, errY, errG); err != nil {
		return wfc.Coord{}, 0, fmt.Errorf("pin %q: %w", pin, err)
	}
	if g < 1 || g > 8 {
		return wfc.Coord{}, 0, fmt.Errorf("pin %q: glyph must be 1-8", pin)
	}
	return wfc.Coord{X: x, Y: y}, g - 1, nil
}

func printParameters(w io.Writer, snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, p := range group.Params {
			fmt.Fprintf(w, "  %s = %s\n", p.Key, p.Value)
		}
	}
}

func runTUI(ctx context.Context, grid *wfc.Grid, tps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	err = term.New(screen, grid, tps).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
