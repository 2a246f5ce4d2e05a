package explorer

import (
	"sync"
	"time"
)

// Meter measures the frame rate from the interval between consecutive
// frames.
type Meter struct {
	now  func() time.Time
	mu   sync.Mutex
	last time.Time
	fps  float64
}

func NewMeter() *Meter {
	return newMeterWithClock(time.Now)
}

func newMeterWithClock(now func() time.Time) *Meter {
	return &Meter{now: now, last: now()}
}

// Mark records the end of a frame and returns the rate implied by the time
// since the previous Mark.
func (m *Meter) Mark() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.now()
	if dt := t.Sub(m.last); dt > 0 {
		m.fps = float64(time.Second) / float64(dt)
	}
	m.last = t
	return m.fps
}

// FPS returns the rate computed by the last Mark.
func (m *Meter) FPS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps
}
