// Package control turns discrete input events into viewport changes.
package control

import "fmt"

// Key identifies a keyboard key the explorer knows about.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyS
	KeyR
	KeyRightBracket
	KeyLeftBracket
)

var keyNames = [...]string{
	KeyUnknown:      "Unknown",
	KeyEscape:       "Escape",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyW:            "W",
	KeyS:            "S",
	KeyR:            "R",
	KeyRightBracket: "]",
	KeyLeftBracket:  "[",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Event is an input event delivered by the display.
type Event interface {
	isEvent()
}

// Close is a request to close the window.
type Close struct{}

// KeyPress reports a key going down.
type KeyPress struct {
	Key Key
}

// MouseClick reports a mouse button press at pixel (X, Y).
type MouseClick struct {
	X, Y int
}

// Scroll reports a vertical wheel movement. Positive Delta scrolls up.
type Scroll struct {
	Delta float64
}

func (Close) isEvent()      {}
func (KeyPress) isEvent()   {}
func (MouseClick) isEvent() {}
func (Scroll) isEvent()     {}
