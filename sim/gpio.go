package sim

import (
	"sync"

	"muff/core"
)

// GPIO records pin configuration and levels instead of touching
// hardware.
type GPIO struct {
	mu         sync.Mutex
	configured map[core.GPIOPin]bool
	levels     map[core.GPIOPin]bool
}

func NewGPIO() *GPIO {
	return &GPIO{
		configured: make(map[core.GPIOPin]bool),
		levels:     make(map[core.GPIOPin]bool),
	}
}

func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.mu.Lock()
	g.configured[pin] = true
	g.mu.Unlock()
	return nil
}

func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	g.mu.Lock()
	g.levels[pin] = value
	g.mu.Unlock()
	return nil
}

// Level reports the last value written to pin.
func (g *GPIO) Level(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.levels[pin]
}

// LEDBank mirrors the shift-register image so the simulator can show
// which LEDs are lit without decoding GPIO waveforms.
type LEDBank struct {
	mu     sync.Mutex
	groups []byte
}

func NewLEDBank() *LEDBank {
	return &LEDBank{}
}

func (b *LEDBank) Push(groups []byte) error {
	b.mu.Lock()
	b.groups = append(b.groups[:0], groups...)
	b.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the last pushed image.
func (b *LEDBank) Snapshot() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, len(b.groups))
	copy(out, b.groups)
	return out
}
