package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/mandelbrot-explorer/internal/control"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// pollInput pushes this tick's input onto q. Held keys repeat.
func (g *Game) pollInput(q *control.Queue) {
	if ebiten.IsWindowBeingClosed() {
		q.Push(control.Close{})
	}

	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if control.KeyFires(inpututil.KeyPressDuration(k)) {
			q.Push(control.KeyPress{Key: control.KeyByName(k.String())})
		}
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			q.Push(control.MouseClick{X: x, Y: y})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		q.Push(control.Scroll{Delta: dy})
	}
}
