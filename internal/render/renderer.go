package render

import (
	"context"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/mandelbrot-explorer/internal/fractal"
)

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

// Bands splits [0, length) into at most n contiguous, non-empty bands whose
// sizes differ by at most one row.
func Bands(length, n int) []Band {
	if length <= 0 {
		return nil
	}
	n = min(max(n, 1), length)

	bands := make([]Band, 0, n)
	start := 0
	for i := range n {
		end := start + length/n
		if i < length%n {
			end++
		}
		bands = append(bands, Band{Start: start, End: end})
		start = end
	}
	return bands
}

// Renderer renders full frames by fanning row bands out to a bounded number
// of goroutines.
type Renderer struct {
	workers int
	bands   int
	palette fractal.Palette
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBands sets how many bands a frame is split into. The default is four
// per worker so slow bands near the set don't leave workers idle.
func WithBands(n int) Option {
	return func(r *Renderer) { r.bands = n }
}

// WithPalette selects the colour wheel.
func WithPalette(p fractal.Palette) Option {
	return func(r *Renderer) { r.palette = p }
}

// New returns a Renderer using up to workers goroutines. If workers is 0 or
// negative, GOMAXPROCS is used.
func New(workers int, opts ...Option) *Renderer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	r := &Renderer{workers: workers, bands: workers * 4}
	for _, opt := range opts {
		opt(r)
	}
	if r.bands <= 0 {
		r.bands = workers
	}
	return r
}

// Workers returns the goroutine limit.
func (r *Renderer) Workers() int { return r.workers }

// Render fills all of buf for viewport v and returns once every band is
// written. v is taken by value so the whole frame sees one viewport.
// Cancellation is checked before each band starts; a cancelled render
// leaves buf partially written and returns ctx.Err().
func (r *Renderer) Render(ctx context.Context, buf *image.RGBA, v fractal.Viewport) error {
	begin := time.Now()
	bands := Bands(buf.Rect.Dy(), r.bands)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, b := range bands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			RenderRowsWith(buf, v, r.palette, b.Start, b.End)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	Logger().Debug("frame rendered",
		"bands", len(bands),
		"workers", r.workers,
		"max_iterations", v.MaxIterations,
		"extent", v.Extent,
		"elapsed", time.Since(begin))
	return nil
}
