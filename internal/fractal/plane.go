// Package fractal holds the numeric core of the explorer: escape-time
// evaluation, colouring and the pixel to complex-plane projection.
//
// Points of the plane are plain complex128 values.
package fractal

import "math"

// Abs2 returns the squared modulus of z.
func Abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Abs returns the modulus of z.
func Abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
