//go:build arduino

package main

import (
	"machine"
	"time"
)

// TimedStepper drives a step/dir/enable stepper driver with software
// pulse timing. Run must be called continuously while a move is in
// flight; each call emits at most one step pulse. The speed ramps
// linearly up to the configured maximum and back down toward the
// target, all in integer steps-per-second arithmetic.
type TimedStepper struct {
	stepPin   machine.Pin
	dirPin    machine.Pin
	enablePin machine.Pin

	position int
	target   int
	maxSpeed int
	accel    int

	// speed is the current step rate in steps/s; zero when at rest.
	speed    int
	nextStep time.Time
}

// NewTimedStepper configures the three driver pins. The enable input
// is active low, so the driver powers up disabled.
func NewTimedStepper(step, dir, enable machine.Pin) *TimedStepper {
	step.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dir.Configure(machine.PinConfig{Mode: machine.PinOutput})
	enable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	step.Low()
	enable.High()
	return &TimedStepper{
		stepPin:   step,
		dirPin:    dir,
		enablePin: enable,
		maxSpeed:  1,
		accel:     1,
	}
}

func (s *TimedStepper) SetMaxSpeed(v int) {
	if v > 0 {
		s.maxSpeed = v
	}
}

func (s *TimedStepper) SetAcceleration(v int) {
	if v > 0 {
		s.accel = v
	}
}

func (s *TimedStepper) SetCurrentPosition(p int) {
	s.position = p
	s.target = p
	s.speed = 0
}

func (s *TimedStepper) MoveTo(t int) {
	s.target = t
	s.nextStep = time.Now()
}

func (s *TimedStepper) EnableOutputs() {
	s.enablePin.Low()
}

func (s *TimedStepper) DisableOutputs() {
	s.enablePin.High()
}

func (s *TimedStepper) IsRunning() bool {
	return s.position != s.target
}

// Run emits one step pulse when the current step interval has
// elapsed, then recomputes the speed for the next one.
func (s *TimedStepper) Run() {
	if s.position == s.target {
		s.speed = 0
		return
	}
	now := time.Now()
	if now.Before(s.nextStep) {
		return
	}

	if s.target > s.position {
		s.dirPin.High()
		s.pulse()
		s.position++
	} else {
		s.dirPin.Low()
		s.pulse()
		s.position--
	}

	s.updateSpeed()
	s.nextStep = now.Add(time.Second / time.Duration(s.speed))
}

// Stop abandons the remaining travel immediately. The mechanics of
// this stage are slow enough that skipping the deceleration ramp
// cannot lose steps.
func (s *TimedStepper) Stop() {
	s.target = s.position
	s.speed = 0
}

// updateSpeed ramps the step rate: accelerate until either the
// maximum speed or the deceleration point is reached, then slow down
// so the motor arrives at the target near rest.
func (s *TimedStepper) updateSpeed() {
	toGo := s.target - s.position
	if toGo < 0 {
		toGo = -toGo
	}

	// Steps needed to brake from the current speed: v^2 / (2*a).
	brake := (s.speed * s.speed) / (2 * s.accel)

	if toGo <= brake {
		// Time to slow down. One Run call spans roughly one step
		// period, so each step sheds accel/speed worth of rate.
		s.speed -= maxInt(s.accel/maxInt(s.speed, 1), 1)
	} else if s.speed < s.maxSpeed {
		s.speed += maxInt(s.accel/maxInt(s.speed, 1), 1)
	}
	if s.speed < 1 {
		s.speed = 1
	}
	if s.speed > s.maxSpeed {
		s.speed = s.maxSpeed
	}
}

// pulse generates a single step edge. The busy loop holds the pulse
// high for a few microseconds, which every common driver accepts.
func (s *TimedStepper) pulse() {
	s.stepPin.High()
	for i := 0; i < 16; i++ {
	}
	s.stepPin.Low()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
