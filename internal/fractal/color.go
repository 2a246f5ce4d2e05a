package fractal

import "image/color"

const saturation = 0.8

// Palette selects how the hue wheel is mapped to RGB.
type Palette int

const (
	// PaletteObserved keeps the wheel the viewer has always shown: the
	// magenta-to-red sector has a zero blue channel.
	PaletteObserved Palette = iota
	// PaletteCanonical uses the continuous HSV wheel in every sector.
	PaletteCanonical
)

// Color maps an escape count to a colour. Points that never escaped
// (iterations == maxIterations) are black; everything else takes its hue
// from iterations mod 360.
func Color(iterations, maxIterations int) color.RGBA {
	return PaletteObserved.Color(iterations, maxIterations)
}

// ColorContinuous is Color with the canonical HSV wheel.
func ColorContinuous(iterations, maxIterations int) color.RGBA {
	return PaletteCanonical.Color(iterations, maxIterations)
}

// Color maps an escape count to a colour using palette p.
func (p Palette) Color(iterations, maxIterations int) color.RGBA {
	val := 1.0
	if iterations == maxIterations {
		val = 0
	}
	return p.hsvToRGBA(iterations%360, saturation, val)
}

// hsvToRGBA converts an integer hue in degrees to RGB using the six-sector
// decomposition. Channels are truncated, not rounded.
func (p Palette) hsvToRGBA(hue int, sat, val float64) color.RGBA {
	h := hue / 60
	f := float64(hue)/60 - float64(h)
	lo := val * (1 - sat)
	q := val * (1 - sat*f)
	t := val * (1 - sat*(1-f))

	var r, g, b float64
	switch h {
	case 1:
		r, g, b = q, val, lo
	case 2:
		r, g, b = lo, val, t
	case 3:
		r, g, b = lo, q, val
	case 4:
		r, g, b = t, lo, val
	case 5:
		if p == PaletteCanonical {
			r, g, b = val, lo, q
		} else {
			r, g, b = val, lo, 0
		}
	default:
		r, g, b = val, t, lo
	}

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

func channel(v float64) uint8 {
	return uint8(v * 255)
}
