package core

// Opcode bytes of the stage serial protocol. Each command is the opcode
// followed by a fixed, opcode-specific argument sequence; there are no
// terminators or checksums.
const (
	OpJogUpSlow   = '1'
	OpJogDownSlow = '2'
	OpStop        = '3'
	OpSetFrame    = '4' // sign + 3 digits, microns
	OpMoveFrame   = '5'
	OpJogUpFast   = '6'
	OpJogDownFast = '7'
	OpSetAccel    = '8' // 3 digits, steps/s^2
	OpLEDsOn      = '+' // LED code byte
	OpLEDsOff     = '-' // LED code byte
)

// InitStageCommands registers the stage's opcode set.
func InitStageCommands(reg *Registry) {
	reg.Register(OpJogUpSlow, "jog_up_slow", handleJogUpSlow)
	reg.Register(OpJogDownSlow, "jog_down_slow", handleJogDownSlow)
	reg.Register(OpStop, "stop_motor", handleStop)
	reg.Register(OpSetFrame, "set_frame_displacement", handleSetFrame)
	reg.Register(OpMoveFrame, "move_frame", handleMoveFrame)
	reg.Register(OpJogUpFast, "jog_up_fast", handleJogUpFast)
	reg.Register(OpJogDownFast, "jog_down_fast", handleJogDownFast)
	reg.Register(OpSetAccel, "set_max_acceleration", handleSetAccel)
	reg.Register(OpLEDsOn, "leds_on", handleLEDsOn)
	reg.Register(OpLEDsOff, "leds_off", handleLEDsOff)
}

func handleJogUpSlow(s *Stage) error   { return s.jog(+1, false) }
func handleJogDownSlow(s *Stage) error { return s.jog(-1, false) }
func handleJogUpFast(s *Stage) error   { return s.jog(+1, true) }
func handleJogDownFast(s *Stage) error { return s.jog(-1, true) }

// jog arms a non-blocking move of the configured span. Positive
// direction raises the carriage. Issuing a jog while one is in flight
// stops the first and applies the new direction and speed.
func (s *Stage) jog(direction int, fast bool) error {
	speed := s.cfg.SlowSpeed
	if fast {
		speed = s.cfg.FastSpeed
	}
	s.motion.Start(direction*s.cfg.JogSpan, speed, false)
	return nil
}

// handleStop halts the motor at the current position. The "stopping"
// diagnostic only appears when the motor was actually running.
func handleStop(s *Stage) error {
	if s.motion.Running() {
		s.diag.Line("Stopping the motor...")
		s.motion.Stop()
	}
	return nil
}

// handleSetFrame decodes a sign and three digits as microns, converts
// to motor steps and stores the result for the frame-move command. The
// motor is untouched.
func handleSetFrame(s *Stage) error {
	s.diag.Line("Setting the displacement between frames")
	microns, err := s.dec.FixedDigits(4, true)
	if err != nil {
		return err
	}
	steps := s.conv.MicronsToSteps(microns)
	s.diag.Line("Frame displacement = " + itoa(microns) + " microns = " + itoa(steps) + " steps")
	s.frameSteps = steps
	return nil
}

// handleMoveFrame executes the configured frame displacement as a
// blocking move: it returns only with the carriage in place and the
// motor de-energized.
func handleMoveFrame(s *Stage) error {
	s.motion.Start(s.frameSteps, s.cfg.SlowSpeed, true)
	return nil
}

// handleSetAccel decodes three digits as steps/s^2. Zero decodes fine
// but is rejected without touching the configured value; the new
// acceleration only shapes the next move, never an in-flight one.
func handleSetAccel(s *Stage) error {
	s.diag.Line("Setting the maximum acceleration")
	accel, err := s.dec.FixedDigits(3, false)
	if err != nil {
		return err
	}
	if accel == 0 {
		return ErrInvalidAcceleration
	}
	s.diag.Line("Maximum acceleration = " + itoa(accel) + " steps/s^2")
	return s.motion.SetAcceleration(accel)
}

func handleLEDsOn(s *Stage) error  { return s.switchLEDs(true) }
func handleLEDsOff(s *Stage) error { return s.switchLEDs(false) }

// switchLEDs decodes the LED code byte and routes it: wildcard to the
// whole bank, a letter to a single LED. A failed decode reaches neither
// the bank nor the hardware.
func (s *Stage) switchLEDs(on bool) error {
	if on {
		s.diag.Line("Switching LED(s) on")
	} else {
		s.diag.Line("Switching LED(s) off")
	}
	target, err := s.dec.LEDCode()
	if err != nil {
		return err
	}
	if target.All {
		return s.leds.SetAll(on)
	}
	return s.leds.Set(target.Index, on)
}
