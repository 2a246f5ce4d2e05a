package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lmittmann/tint"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mandelbrot-explorer/internal/assets"
	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
	"github.com/iburimskiy/mandelbrot-explorer/internal/explorer"
	"github.com/iburimskiy/mandelbrot-explorer/internal/game"
	"github.com/iburimskiy/mandelbrot-explorer/internal/render"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	if err := run(logger); err != nil {
		fatal(logger, err)
	}
}

func run(logger *slog.Logger) error {
	font, err := assets.LoadFont(config.FontPath)
	if err != nil {
		return err
	}
	logger.Info("font loaded", "path", config.FontPath, "name", font.Name)

	r := render.New(config.RenderWorkers)
	loop := explorer.New(config.Length, r)

	game.Setup()
	g, err := game.New(loop, font, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "size", config.Length, "workers", r.Workers())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// fatal reports err on stderr and in a native dialog, then exits. There is
// nothing to fall back to without a display.
func fatal(logger *slog.Logger, err error) {
	logger.Error("fatal", "err", err)
	if derr := zenity.Error(err.Error(),
		zenity.Title("Mandelbrot"),
		zenity.ErrorIcon,
	); derr != nil {
		logger.Warn("could not show error dialog", "err", derr)
	}
	os.Exit(1)
}
