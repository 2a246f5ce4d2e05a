package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Escape", KeyEscape},
		{"ArrowUp", KeyUp},
		{"ArrowDown", KeyDown},
		{"ArrowLeft", KeyLeft},
		{"ArrowRight", KeyRight},
		{"W", KeyW},
		{"S", KeyS},
		{"R", KeyR},
		{"BracketRight", KeyRightBracket},
		{"BracketLeft", KeyLeftBracket},
		{"Q", KeyUnknown},
		{"Space", KeyUnknown},
		{"", KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyByName(tt.name), "KeyByName(%q)", tt.name)
	}
}

func TestKeyFires(t *testing.T) {
	var fired []int
	for ticks := 0; ticks <= 46; ticks++ {
		if KeyFires(ticks) {
			fired = append(fired, ticks)
		}
	}
	assert.Equal(t, []int{1, 34, 38, 42, 46}, fired)
}
