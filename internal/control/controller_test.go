package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/mandelbrot-explorer/internal/fractal"
)

func TestControllerStartsDirty(t *testing.T) {
	c := NewController(length)
	assert.True(t, c.Dirty())
	assert.False(t, c.Quit())
	assert.Equal(t, fractal.InitialViewport(), c.Viewport())
}

func TestControllerDirtyFlag(t *testing.T) {
	c := NewController(length)
	c.ClearDirty()
	assert.False(t, c.Dirty())

	c.Handle(KeyPress{Key: KeyW})
	assert.True(t, c.Dirty())

	c.ClearDirty()
	c.Handle(Close{})
	assert.False(t, c.Dirty())
	assert.True(t, c.Quit())
}

func TestControllerBatchesEvents(t *testing.T) {
	c := NewController(length)
	c.ClearDirty()

	c.HandleAll([]Event{
		KeyPress{Key: KeyW},
		KeyPress{Key: KeyRight},
		KeyPress{Key: KeyRightBracket},
	})

	v := c.Viewport()
	assert.True(t, c.Dirty())
	assert.InDelta(t, 2.5/1.5, v.Extent, 1e-12)
	assert.InDelta(t, -0.5+(2.5/1.5)/25, real(v.Origin), 1e-12)
	assert.Equal(t, 275, v.MaxIterations)
}

func TestControllerQuitSticks(t *testing.T) {
	c := NewController(length)
	c.Handle(KeyPress{Key: KeyEscape})
	c.Handle(KeyPress{Key: KeyUp})
	assert.True(t, c.Quit())
}
