package core

// StepperDriver is the external step and acceleration engine the motion
// controller drives. The surface mirrors the usual accelerated-stepper
// libraries: the controller sets a target and speed limits, then
// repeatedly calls Run so the driver can emit step pulses when due.
// Ramp mathematics live entirely behind this interface.
type StepperDriver interface {
	// SetMaxSpeed limits the step rate in steps per second.
	SetMaxSpeed(stepsPerSec int)

	// SetAcceleration sets the ramp acceleration in steps/s^2.
	SetAcceleration(stepsPerSec2 int)

	// SetCurrentPosition resets the driver's position reference.
	// Must only be called while the motor is stopped.
	SetCurrentPosition(steps int)

	// MoveTo sets the target position relative to the current
	// position reference.
	MoveTo(target int)

	// EnableOutputs energizes the motor coils.
	EnableOutputs()

	// DisableOutputs de-energizes the coils to drop holding current.
	DisableOutputs()

	// IsRunning reports whether the driver still has motion pending.
	IsRunning() bool

	// Run advances at most one pending step if its time has come.
	// It is a no-op when no step is due.
	Run()

	// Stop retargets the driver to decelerate to a halt as soon as
	// possible. The caller keeps invoking Run until IsRunning turns
	// false.
	Stop()
}
