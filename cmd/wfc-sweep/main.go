package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"gridcollapse/internal/ctxlog"
	"gridcollapse/internal/sims/wfc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	fs := flag.NewFlagSet("wfc-sweep", flag.ContinueOnError)
	fs.SetOutput(errW)
	runs := fs.Int("runs", 200, "number of seeds to run")
	first := fs.Int64("seed", 1, "first seed; runs use consecutive seeds")
	size := fs.Int("size", wfc.DefaultSize, "grid edge length")
	propagation := fs.String("propagation", string(wfc.PropagateRecursive), "propagation strategy: recursive or worklist")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel runs")
	top := fs.Int("top", 5, "number of worst seeds to list")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *runs <= 0 || *size <= 0 {
		return fmt.Errorf("runs and size must be positive")
	}
	mode := wfc.Propagation(*propagation)
	if !mode.Valid() {
		return fmt.Errorf("unknown propagation strategy %q", *propagation)
	}

	logger := ctxlog.NewLogger(*logLevel, "text", errW)
	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *first + int64(i)
	}

	fmt.Fprintf(outW, "Sweeping %d seeds (%d workers, %dx%d grid, %s propagation)\n", *runs, *workers, *size, *size, mode)
	start := time.Now()
	results := wfc.Sweep(ctx, wfc.Config{Size: *size, Propagation: mode}, seeds, *workers)
	elapsed := time.Since(start)
	if len(results) < len(seeds) {
		logger.Warn("sweep interrupted", "completed", len(results), "requested", len(seeds))
	}

	sum := wfc.Summarize(results)
	fmt.Fprintf(outW, "\nRuns %d (elapsed %s)\n", sum.Runs, elapsed.Round(time.Millisecond))
	fmt.Fprintf(outW, "Contradictions: %d runs (%.1f%%), %.2f cells per run\n",
		sum.WithContradictions, sum.ContradictionRate*100, sum.MeanContradictions)
	fmt.Fprintf(outW, "Steps: mean %.1f, min %d, max %d\n", sum.MeanSteps, sum.MinSteps, sum.MaxSteps)

	worst := append([]wfc.SweepResult(nil), results...)
	sort.SliceStable(worst, func(i, j int) bool {
		return worst[i].Stats.Contradictions > worst[j].Stats.Contradictions
	})
	shown := 0
	for _, res := range worst {
		if shown >= *top || res.Stats.Contradictions == 0 {
			break
		}
		if shown == 0 {
			fmt.Fprintf(outW, "\nWorst seeds:\n")
		}
		shown++
		fmt.Fprintf(outW, "%2d) seed=%d contradictions=%d steps=%d elapsed=%s\n",
			shown, res.Seed, res.Stats.Contradictions, res.Stats.Steps, res.Elapsed.Round(time.Microsecond))
	}
	logger.Debug("sweep done", "runs", sum.Runs, "elapsed", elapsed)
	return nil
}
