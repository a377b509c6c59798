package core

// Motion owns the single motor's logical state on top of the external
// stepper driver: the configured acceleration and whether a move has
// been armed. Outputs are enabled exactly while a move is armed or in
// progress; reaching idle always disables them to drop holding current.
type Motion struct {
	drv      StepperDriver
	diag     *Diag
	maxAccel int
	armed    bool
}

// NewMotion initializes the motor stopped, outputs disabled, position
// reference at zero. maxAccel must be positive.
func NewMotion(drv StepperDriver, diag *Diag, maxAccel int) (*Motion, error) {
	if maxAccel <= 0 {
		return nil, ErrInvalidAcceleration
	}
	m := &Motion{drv: drv, diag: diag, maxAccel: maxAccel}
	drv.DisableOutputs()
	drv.SetAcceleration(maxAccel)
	drv.SetCurrentPosition(0)
	drv.MoveTo(0)
	return m, nil
}

// Start arms a move of steps motor steps (positive = clockwise, which
// raises the carriage) at the given max speed. A move already in flight
// is first brought to a complete stop; the new request fully replaces
// it. With wait set, Start drives the move to completion and only
// returns with the motor stopped and outputs disabled; otherwise it
// returns immediately and the caller advances the move through Poll.
func (m *Motion) Start(steps, maxSpeed int, wait bool) {
	m.Stop()

	direction := "clockwise"
	if steps < 0 {
		direction = "counterclockwise"
	}
	m.diag.Line("Turning the motor " + direction + " for " + itoa(steps) +
		" steps, max speed " + itoa(maxSpeed) + " steps/s")

	m.drv.DisableOutputs()
	m.drv.SetAcceleration(m.maxAccel)
	m.drv.SetMaxSpeed(maxSpeed)
	m.drv.SetCurrentPosition(0)
	m.drv.MoveTo(steps)
	m.drv.EnableOutputs()
	m.armed = true

	if wait {
		for m.drv.IsRunning() {
			m.drv.Run()
		}
		m.drv.DisableOutputs()
		m.armed = false
	}
}

// Stop halts the motor at the current position. On an idle motor it is
// a no-op. On a moving motor it asks the driver to decelerate as soon
// as possible, spins the driver until motion has physically ceased,
// then disables outputs. Completion of this call is the precondition
// for any further motor state change.
func (m *Motion) Stop() {
	if !m.drv.IsRunning() {
		if m.armed {
			// Armed but already at target: just drop the outputs.
			m.drv.DisableOutputs()
			m.armed = false
		}
		return
	}
	m.drv.Stop()
	for m.drv.IsRunning() {
		m.drv.Run()
	}
	m.drv.DisableOutputs()
	m.armed = false
}

// Poll advances a non-blocking move by at most one step and disables
// outputs on the running-to-stopped edge. The dispatch loop calls this
// whenever no command byte is pending.
func (m *Motion) Poll() {
	if !m.armed {
		return
	}
	m.drv.Run()
	if !m.drv.IsRunning() {
		m.drv.DisableOutputs()
		m.armed = false
	}
}

// Running reports whether the external driver still has motion in
// progress.
func (m *Motion) Running() bool {
	return m.drv.IsRunning()
}

// SetAcceleration stores a new maximum acceleration. It is applied to
// the driver at the start of the next move; an in-flight motion keeps
// its ramp untouched.
func (m *Motion) SetAcceleration(stepsPerSec2 int) error {
	if stepsPerSec2 <= 0 {
		return ErrInvalidAcceleration
	}
	m.maxAccel = stepsPerSec2
	return nil
}

// Acceleration returns the configured maximum acceleration.
func (m *Motion) Acceleration() int {
	return m.maxAccel
}
