// Package render fills pixel buffers with the escape-time image of a
// viewport.
package render

import (
	"fmt"
	"image"

	"github.com/iburimskiy/mandelbrot-explorer/internal/fractal"
)

// NewBuffer returns a black, opaque length×length buffer.
func NewBuffer(length int) *image.RGBA {
	buf := image.NewRGBA(image.Rect(0, 0, length, length))
	for i := 3; i < len(buf.Pix); i += 4 {
		buf.Pix[i] = 0xff
	}
	return buf
}

// RenderRows writes rows [start, end) of buf for viewport v. buf must be
// square with its origin at (0, 0). Calls over disjoint row ranges write
// disjoint parts of buf and may run concurrently.
func RenderRows(buf *image.RGBA, v fractal.Viewport, start, end int) {
	RenderRowsWith(buf, v, fractal.PaletteObserved, start, end)
}

// RenderRowsWith is RenderRows with an explicit palette.
func RenderRowsWith(buf *image.RGBA, v fractal.Viewport, p fractal.Palette, start, end int) {
	length := buf.Rect.Dx()
	if end <= start || start < 0 || end > length {
		panic(fmt.Sprintf("render: bad row range [%d, %d) for length %d", start, end, length))
	}

	for py := start; py < end; py++ {
		for px := 0; px < length; px++ {
			n := fractal.Calculate(fractal.PixelToPoint(px, py, v, length), v.MaxIterations)
			buf.SetRGBA(px, py, p.Color(n, v.MaxIterations))
		}
	}
}
