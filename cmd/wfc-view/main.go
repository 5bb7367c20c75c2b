//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"gridcollapse/internal/app"
	"gridcollapse/internal/core"
	"gridcollapse/internal/ctxlog"
	_ "gridcollapse/internal/sims/wfc"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	logger := ctxlog.NewLogger(*logLevel, "text", os.Stderr)
	slog.SetDefault(logger)

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		logger.Error("unknown sim", "sim", cfg.Sim)
		os.Exit(2)
	}

	sim := factory(cfg.SimMap())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridcollapse - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Debug("starting viewer", "sim", sim.Name(), "size", sim.Size().W, "seed", cfg.Seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}
