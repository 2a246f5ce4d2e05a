// Package game presents the explorer in an ebiten window.
package game

import (
	"context"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/mandelbrot-explorer/internal/assets"
	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
	"github.com/iburimskiy/mandelbrot-explorer/internal/control"
	"github.com/iburimskiy/mandelbrot-explorer/internal/explorer"
)

// Game implements ebiten.Game on top of an explorer.Loop.
type Game struct {
	loop   *explorer.Loop
	queue  *control.Queue
	face   *text.GoTextFace
	image  *ebiten.Image
	keys   []ebiten.Key
	logger *slog.Logger
}

// New returns a game drawing loop's buffer with the overlay in font.
func New(loop *explorer.Loop, font *assets.Font, logger *slog.Logger) (*Game, error) {
	face, err := newFace(font)
	if err != nil {
		return nil, err
	}
	return &Game{
		loop:   loop,
		queue:  control.NewQueue(16),
		face:   face,
		image:  ebiten.NewImage(config.Length, config.Length),
		logger: logger,
	}, nil
}

// Setup configures the window. Call before ebiten.RunGame.
func Setup() {
	ebiten.SetWindowSize(config.Length, config.Length)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)
}

func (g *Game) Update() error {
	g.pollInput(g.queue)

	frame, err := g.loop.Tick(context.Background(), g.queue.Drain())
	if err != nil {
		return err
	}
	if frame.Quit {
		g.logger.Info("closing")
		return ebiten.Termination
	}
	if frame.Rendered {
		g.image.WritePixels(g.loop.Buffer().Pix)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.image, nil)
	g.drawOverlay(screen, g.loop.Overlay())
	g.loop.Meter().Mark()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Length, config.Length
}
