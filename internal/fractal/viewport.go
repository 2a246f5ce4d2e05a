package fractal

import "github.com/iburimskiy/mandelbrot-explorer/internal/config"

// MaxExtent is the largest side length the viewport may show.
const MaxExtent = config.MaxExtentFactor * config.InitialExtent

// Viewport is the visible square of the plane, centred on Origin with side
// Extent, sampled with an iteration budget of MaxIterations.
type Viewport struct {
	Origin        complex128
	Extent        float64
	MaxIterations int
}

// InitialViewport returns the viewport shown at startup and after a reset.
func InitialViewport() Viewport {
	return Viewport{
		Origin:        complex(config.InitialOriginRe, config.InitialOriginIm),
		Extent:        config.InitialExtent,
		MaxIterations: config.InitialMaxIteration,
	}
}

// Zoom returns the magnification relative to the initial extent.
func (v Viewport) Zoom() float64 {
	return config.InitialExtent / v.Extent
}
