// Package explorer runs the explorer's frame loop independently of any
// display: each tick applies the pending input and re-renders the buffer
// when the viewport changed.
package explorer

import (
	"context"
	"fmt"
	"image"

	"github.com/iburimskiy/mandelbrot-explorer/internal/control"
	"github.com/iburimskiy/mandelbrot-explorer/internal/fractal"
	"github.com/iburimskiy/mandelbrot-explorer/internal/render"
)

// Frame is the outcome of one tick.
type Frame struct {
	// Rendered is set when the buffer was recomputed this tick and needs
	// uploading.
	Rendered bool
	// Quit is set once a close or escape event has been seen.
	Quit bool
}

// Loop owns the viewport controller, the renderer and the pixel buffer.
type Loop struct {
	ctrl     *control.Controller
	renderer *render.Renderer
	buf      *image.RGBA
	meter    *Meter
}

// New returns a loop for a length×length surface. The first tick renders.
func New(length int, r *render.Renderer) *Loop {
	return &Loop{
		ctrl:     control.NewController(length),
		renderer: r,
		buf:      render.NewBuffer(length),
		meter:    NewMeter(),
	}
}

// Tick applies events in arrival order, then renders the whole buffer once
// if any of them changed the viewport. An error means the frame could not
// be produced.
func (l *Loop) Tick(ctx context.Context, events []control.Event) (Frame, error) {
	l.ctrl.HandleAll(events)
	if l.ctrl.Quit() {
		return Frame{Quit: true}, nil
	}
	if !l.ctrl.Dirty() {
		return Frame{}, nil
	}

	if err := l.renderer.Render(ctx, l.buf, l.ctrl.Viewport()); err != nil {
		return Frame{}, fmt.Errorf("render frame: %w", err)
	}
	l.ctrl.ClearDirty()
	return Frame{Rendered: true}, nil
}

// Buffer returns the most recently rendered image.
func (l *Loop) Buffer() *image.RGBA { return l.buf }

// Viewport returns the current viewport.
func (l *Loop) Viewport() fractal.Viewport { return l.ctrl.Viewport() }

// Meter returns the loop's frame-rate meter.
func (l *Loop) Meter() *Meter { return l.meter }

// Overlay returns the status text for the current viewport at the measured
// frame rate.
func (l *Loop) Overlay() string {
	return FormatOverlay(l.meter.FPS(), l.ctrl.Viewport())
}
