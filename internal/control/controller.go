package control

import "github.com/iburimskiy/mandelbrot-explorer/internal/fractal"

// Controller owns the viewport and the flags the frame loop reads between
// ticks. It is not safe for concurrent use.
type Controller struct {
	viewport fractal.Viewport
	length   int
	dirty    bool
	quit     bool
}

// NewController returns a controller at the initial viewport for a
// length×length surface. It starts dirty so the first frame is rendered.
func NewController(length int) *Controller {
	return &Controller{
		viewport: fractal.InitialViewport(),
		length:   length,
		dirty:    true,
	}
}

// Handle applies e to the viewport.
func (c *Controller) Handle(e Event) {
	v, eff := Apply(c.viewport, e, c.length)
	c.viewport = v
	c.dirty = c.dirty || eff.Dirty
	c.quit = c.quit || eff.Quit
}

// HandleAll applies events in order.
func (c *Controller) HandleAll(events []Event) {
	for _, e := range events {
		c.Handle(e)
	}
}

func (c *Controller) Viewport() fractal.Viewport { return c.viewport }

func (c *Controller) Dirty() bool { return c.dirty }

// ClearDirty marks the rendered image as current.
func (c *Controller) ClearDirty() { c.dirty = false }

func (c *Controller) Quit() bool { return c.quit }
