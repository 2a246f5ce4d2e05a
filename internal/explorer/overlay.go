package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iburimskiy/mandelbrot-explorer/internal/fractal"
)

// FormatOverlay renders the three status lines: frame rate, iteration
// budget and zoom.
func FormatOverlay(fps float64, v fractal.Viewport) string {
	return fmt.Sprintf("%.0f fps\n%d iters\n%s", fps, v.MaxIterations, formatSci(v.Zoom()))
}

// formatSci writes x with one fractional digit of mantissa and a bare
// exponent: 1.0e0, 6.0e1, 2.5e-1.
func formatSci(x float64) string {
	s := strconv.FormatFloat(x, 'e', 1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		// Inf and NaN have no exponent
		return s
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	return s[:i+1] + strconv.Itoa(exp)
}
