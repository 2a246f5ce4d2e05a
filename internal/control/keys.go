package control

import "github.com/iburimskiy/mandelbrot-explorer/internal/config"

// displayKeys maps the display's key names to keys. Names follow the
// display library's Key.String.
var displayKeys = map[string]Key{
	"Escape":       KeyEscape,
	"ArrowUp":      KeyUp,
	"ArrowDown":    KeyDown,
	"ArrowLeft":    KeyLeft,
	"ArrowRight":   KeyRight,
	"W":            KeyW,
	"S":            KeyS,
	"R":            KeyR,
	"BracketRight": KeyRightBracket,
	"BracketLeft":  KeyLeftBracket,
}

// KeyByName returns the key the display calls name, or KeyUnknown.
func KeyByName(name string) Key {
	if k, ok := displayKeys[name]; ok {
		return k
	}
	return KeyUnknown
}

// KeyFires reports whether a key held for ticks ticks produces a press this
// tick: once when it goes down, then every KeyRepeatInterval ticks after
// KeyRepeatDelay.
func KeyFires(ticks int) bool {
	if ticks == 1 {
		return true
	}
	if ticks <= config.KeyRepeatDelay {
		return false
	}
	return (ticks-config.KeyRepeatDelay)%config.KeyRepeatInterval == 0
}
