package game

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/mandelbrot-explorer/internal/assets"
	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
)

// outlineOffsets are drawn in black under the white text.
var outlineOffsets = func() [][2]float64 {
	var offs [][2]float64
	const w = config.OutlineWidth
	for dy := -w; dy <= w; dy++ {
		for dx := -w; dx <= w; dx++ {
			if dx != 0 || dy != 0 {
				offs = append(offs, [2]float64{float64(dx), float64(dy)})
			}
		}
	}
	return offs
}()

func newFace(f *assets.Font) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(f.Data))
	if err != nil {
		return nil, errors.Wrap(err, "create font face")
	}
	return &text.GoTextFace{Source: src, Size: config.FontSize}, nil
}

func (g *Game) drawOverlay(screen *ebiten.Image, s string) {
	op := &text.DrawOptions{}
	op.LineSpacing = g.face.Size * 1.2

	op.ColorScale.ScaleWithColor(color.Black)
	for _, o := range outlineOffsets {
		op.GeoM.Reset()
		op.GeoM.Translate(config.OverlayX+o[0], config.OverlayY+o[1])
		text.Draw(screen, s, g.face, op)
	}

	op.GeoM.Reset()
	op.GeoM.Translate(config.OverlayX, config.OverlayY)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, g.face, op)
}
