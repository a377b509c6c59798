package core

// Converter translates user-facing micron displacements into motor
// steps using the stage's carriage pitch (nanometers of travel per
// motor step). The pitch is fixed for the lifetime of the process.
type Converter struct {
	nmPerStep int
}

// NewConverter creates a converter for the given pitch in nanometers
// per step. The pitch must be positive.
func NewConverter(nmPerStep int) Converter {
	if nmPerStep <= 0 {
		panic("core: nanometers per step must be positive")
	}
	return Converter{nmPerStep: nmPerStep}
}

// MicronsToSteps converts a signed micron displacement to a signed step
// count. Rounding is half-up on the unsigned magnitude; the sign is
// reapplied to the already-rounded value. This keeps rounding symmetric
// around zero: +3 um and -3 um both map to zero steps at 6250 nm/step.
func (c Converter) MicronsToSteps(microns int) int {
	m := microns
	negative := m < 0
	if negative {
		m = -m
	}
	steps := (m*1000 + c.nmPerStep/2) / c.nmPerStep
	if negative {
		steps = -steps
	}
	return steps
}

// StepsToMicrons converts a signed step count back to microns, with the
// same half-up-on-magnitude rounding rule. Used for diagnostic echoes
// and host-side display only.
func (c Converter) StepsToMicrons(steps int) int {
	s := steps
	negative := s < 0
	if negative {
		s = -s
	}
	microns := (s*c.nmPerStep + 500) / 1000
	if negative {
		microns = -microns
	}
	return microns
}
