package fractal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var black = color.RGBA{A: 0xff}

func TestColorNeverEscapedIsBlack(t *testing.T) {
	for _, n := range []int{1, 25, 59, 60, 250, 300, 359, 360, 1000} {
		assert.Equal(t, black, Color(n, n), "n=%d", n)
		assert.Equal(t, black, ColorContinuous(n, n), "n=%d", n)
	}
}

func TestColorEscapedIsNeverBlack(t *testing.T) {
	const max = 1000
	for n := 0; n < max; n++ {
		c := Color(n, max)
		assert.NotEqual(t, black, c, "n=%d", n)
		assert.Equal(t, uint8(0xff), c.A)
	}
}

func TestColorSectors(t *testing.T) {
	// val = 1, sat = 0.8: p = 0.2 -> 51
	tests := []struct {
		iterations int
		want       color.RGBA
	}{
		// h=0, f=0: (val, t, p), t = 0.2
		{0, color.RGBA{255, 51, 51, 255}},
		// h=0, f=0.5: t = 1-0.8*0.5 = 0.6 -> 153
		{30, color.RGBA{255, 153, 51, 255}},
		// h=1, f=0: (q, val, p), q = 1
		{60, color.RGBA{255, 255, 51, 255}},
		// h=2, f=0: (p, val, t)
		{120, color.RGBA{51, 255, 51, 255}},
		// h=3, f=0: (p, q, val)
		{180, color.RGBA{51, 255, 255, 255}},
		// h=4, f=0: (t, p, val)
		{240, color.RGBA{51, 51, 255, 255}},
		// h=5, f=0: (val, p, 0)
		{300, color.RGBA{255, 51, 0, 255}},
		// hue wraps at 360
		{360, color.RGBA{255, 51, 51, 255}},
		{390, color.RGBA{255, 153, 51, 255}},
	}
	for _, tt := range tests {
		assertRGBA(t, tt.want, Color(tt.iterations, 10000), "iterations=%d", tt.iterations)
	}
}

// assertRGBA compares colours allowing one unit per channel, since channels
// are truncated from float products.
func assertRGBA(t *testing.T, want, got color.RGBA, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1, msgAndArgs...)
	assert.InDelta(t, want.G, got.G, 1, msgAndArgs...)
	assert.InDelta(t, want.B, got.B, 1, msgAndArgs...)
	assert.Equal(t, want.A, got.A, msgAndArgs...)
}

func TestColorContinuousSectorFive(t *testing.T) {
	// h=5, f=0: (val, p, q) with q = 1
	assertRGBA(t, color.RGBA{255, 51, 255, 255}, ColorContinuous(300, 10000))
	// h=5, f=0.5: q = 0.6
	assertRGBA(t, color.RGBA{255, 51, 153, 255}, ColorContinuous(330, 10000))
	assert.Equal(t, uint8(0), Color(330, 10000).B)

	// other sectors agree with the observed palette
	for n := 0; n < 300; n++ {
		assert.Equal(t, Color(n, 10000), ColorContinuous(n, 10000), "n=%d", n)
	}
}
