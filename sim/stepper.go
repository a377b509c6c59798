// Package sim provides in-memory stand-ins for the stage hardware:
// a stepper that advances one step per Run call, a GPIO driver that
// records writes, and a byte port backed by a channel. The simulator
// binary and the host-side tests both run the real firmware loop on
// top of these.
package sim

import "sync"

// Stepper is a software stepper motor. Run advances one step toward
// the target; Stop halts at the current position. Safe for concurrent
// observation while the firmware loop drives it.
type Stepper struct {
	mu       sync.Mutex
	position int
	target   int
	maxSpeed int
	accel    int
	enabled  bool
}

func NewStepper() *Stepper {
	return &Stepper{}
}

func (s *Stepper) SetMaxSpeed(v int) {
	s.mu.Lock()
	s.maxSpeed = v
	s.mu.Unlock()
}

func (s *Stepper) SetAcceleration(v int) {
	s.mu.Lock()
	s.accel = v
	s.mu.Unlock()
}

func (s *Stepper) SetCurrentPosition(p int) {
	s.mu.Lock()
	s.position = p
	s.target = p
	s.mu.Unlock()
}

func (s *Stepper) MoveTo(t int) {
	s.mu.Lock()
	s.target = t
	s.mu.Unlock()
}

func (s *Stepper) EnableOutputs() {
	s.mu.Lock()
	s.enabled = true
	s.mu.Unlock()
}

func (s *Stepper) DisableOutputs() {
	s.mu.Lock()
	s.enabled = false
	s.mu.Unlock()
}

func (s *Stepper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position != s.target
}

func (s *Stepper) Run() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position < s.target {
		s.position++
	} else if s.position > s.target {
		s.position--
	}
}

func (s *Stepper) Stop() {
	s.mu.Lock()
	s.target = s.position
	s.mu.Unlock()
}

// Position reports the current step count relative to the last zeroing.
func (s *Stepper) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Enabled reports whether the driver outputs are energized.
func (s *Stepper) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}
