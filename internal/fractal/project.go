package fractal

// Offset returns the displacement from the centre of a length×length surface
// to pixel (x, y), scaled so the surface spans extent units. Row 0 is the top
// of the surface and maps to the most positive imaginary part.
func Offset(x, y, length int, extent float64) complex128 {
	u := float64(x)/float64(length) - 0.5
	v := -float64(y)/float64(length) + 0.5
	return complex(extent, 0) * complex(u, v)
}

// PixelToPoint maps pixel (px, py) of a length×length surface to the point of
// the plane it samples under viewport v.
func PixelToPoint(px, py int, v Viewport, length int) complex128 {
	return v.Origin + Offset(px, py, length, v.Extent)
}
