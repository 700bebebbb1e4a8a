package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var (
	configPath string
	preset     string
	width      int
	height     int
	mineCount  int
	seed       uint64
)

func init() {
	const usage = "settings file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&preset, "preset", "", "difficulty: easy, medium or hard")
	flag.IntVar(&width, "width", 0, "board width")
	flag.IntVar(&height, "height", 0, "board height")
	flag.IntVar(&mineCount, "mines", 0, "number of mines")
	flag.Uint64Var(&seed, "seed", 0, "random seed for mine placement")
}

// flagOverride collects only the flags given on the command line.
func flagOverride() config.Override {
	var o config.Override
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			o.Preset = preset
		case "width":
			o.Width = &width
		case "height":
			o.Height = &height
		case "mines":
			o.MineCount = &mineCount
		case "seed":
			o.Seed = &seed
		}
	})
	return o
}

func main() {
	flag.Parse()

	logger := config.NewLogger(os.Stderr)
	mines.Log = logger

	settings, err := config.Load(configPath)
	if err != nil {
		logger.Error("unable to load settings", slog.Any("error", err))
		os.Exit(1)
	}
	if err := settings.Apply(flagOverride()); err != nil {
		logger.Error("invalid flags", slog.Any("error", err))
		os.Exit(1)
	}
	if v, ok := terminalViewport(); ok {
		settings.Viewport = v
	}

	a, err := app.New(logger, settings, render.NewText(os.Stdout))
	if err != nil {
		logger.Error("failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := make(chan app.Command)

	// Scan blocks on stdin and cannot be interrupted, so the reader stays
	// outside the group.
	go func() {
		err := app.ReadCommands(ctx, os.Stdin, commands)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("stopped reading commands", slog.Any("error", err))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return a.Run(gctx, commands)
	})
	g.Go(func() error {
		return watchResize(gctx, commands)
	})

	if err := g.Wait(); err != nil {
		logger.Error("game loop failed", slog.Any("error", err))
		os.Exit(1)
	}
}
