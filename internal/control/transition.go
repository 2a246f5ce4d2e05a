package control

import (
	"math"

	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
	"github.com/iburimskiy/mandelbrot-explorer/internal/fractal"
)

// Effect reports what an event asks of the frame loop besides the viewport
// change itself.
type Effect struct {
	// Dirty means the rendered image no longer matches the viewport.
	Dirty bool
	// Quit means the loop should stop.
	Quit bool
}

// Apply returns the viewport that results from event e and the effect it
// has on the loop. length is the side of the surface clicks are reported in.
func Apply(v fractal.Viewport, e Event, length int) (fractal.Viewport, Effect) {
	switch e := e.(type) {
	case Close:
		return v, Effect{Quit: true}
	case KeyPress:
		if e.Key == KeyEscape {
			return v, Effect{Quit: true}
		}
		return applyKey(v, e.Key), Effect{Dirty: true}
	case MouseClick:
		v.Origin += fractal.Offset(e.X, e.Y, length, v.Extent)
		return v, Effect{Dirty: true}
	case Scroll:
		switch {
		case e.Delta > 0:
			v.Extent = zoomIn(v.Extent, config.ZoomFactor)
		case e.Delta < 0:
			v.Extent = zoomOut(v.Extent)
		}
		return v, Effect{Dirty: true}
	}
	return v, Effect{}
}

func applyKey(v fractal.Viewport, k Key) fractal.Viewport {
	step := v.Extent / config.PanDivisor
	switch k {
	case KeyUp:
		v.Origin += complex(0, step)
	case KeyDown:
		v.Origin -= complex(0, step)
	case KeyLeft:
		v.Origin -= complex(step, 0)
	case KeyRight:
		v.Origin += complex(step, 0)
	case KeyW:
		v.Extent = zoomIn(v.Extent, config.ZoomInFactor)
	case KeyS:
		v.Extent = zoomOut(v.Extent)
	case KeyR:
		v = fractal.InitialViewport()
	case KeyRightBracket:
		v.MaxIterations += config.IterationStep
	case KeyLeftBracket:
		v.MaxIterations = max(v.MaxIterations-config.IterationStep, config.IterationFloor)
	}
	return v
}

// zoomIn keeps extent strictly positive however deep the zoom goes.
func zoomIn(extent, factor float64) float64 {
	return max(extent/factor, math.SmallestNonzeroFloat64)
}

func zoomOut(extent float64) float64 {
	return min(extent*config.ZoomFactor, fractal.MaxExtent)
}
