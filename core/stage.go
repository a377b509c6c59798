package core

import (
	"errors"
	"io"
)

// Config holds the stage's build-time parameters. The values mirror the
// reference hardware; boards with a different pitch or LED count adjust
// them at wiring time.
type Config struct {
	// NanometersPerStep is the carriage travel per motor step.
	NanometersPerStep int

	// NumLEDs is the number of addressable status LEDs.
	NumLEDs int

	// SlowSpeed is the max step rate for fine jogs and frame moves,
	// in steps per second.
	SlowSpeed int

	// FastSpeed is the max step rate for coarse jogs.
	FastSpeed int

	// JogSpan is the step magnitude armed by the jog commands. It
	// only needs to outlast the longest press before a stop command
	// arrives.
	JogSpan int

	// MaxAccel is the initial maximum acceleration in steps/s^2.
	// The acceleration command overrides it at runtime.
	MaxAccel int
}

// DefaultConfig returns the reference-hardware parameters.
func DefaultConfig() Config {
	return Config{
		NanometersPerStep: 6250,
		NumLEDs:           24,
		SlowSpeed:         200,
		FastSpeed:         800,
		JogSpan:           30000,
		MaxAccel:          200,
	}
}

func (c Config) validate() error {
	switch {
	case c.NanometersPerStep <= 0:
		return errors.New("nanometers per step must be positive")
	case c.NumLEDs <= 0 || c.NumLEDs > 'Z'-'A'+1:
		return errors.New("LED count must address letters 'A' through 'Z'")
	case c.SlowSpeed <= 0 || c.FastSpeed <= 0:
		return errors.New("jog speeds must be positive")
	case c.JogSpan <= 0:
		return errors.New("jog span must be positive")
	case c.MaxAccel <= 0:
		return ErrInvalidAcceleration
	}
	return nil
}

// Stage ties the command interpreter to the motor and LED collaborators
// and carries the state the commands mutate: the configured frame
// displacement and the motion controller's acceleration.
type Stage struct {
	cfg    Config
	conv   Converter
	dec    *Decoder
	diag   *Diag
	motion *Motion
	leds   *Bank

	// frameSteps is the displacement armed by the frame-move command,
	// in motor steps, signed.
	frameSteps int
}

// NewStage wires a stage from its collaborators: the serial byte
// source, the external stepper driver, the LED shift output and the
// serial TX writer shared by diagnostics and acknowledgments.
func NewStage(cfg Config, src ByteSource, drv StepperDriver, out ShiftOutput, tx io.Writer) (*Stage, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	diag := NewDiag(tx)
	motion, err := NewMotion(drv, diag, cfg.MaxAccel)
	if err != nil {
		return nil, err
	}
	leds, err := NewBank(cfg.NumLEDs, out)
	if err != nil {
		return nil, err
	}
	return &Stage{
		cfg:    cfg,
		conv:   NewConverter(cfg.NanometersPerStep),
		dec:    NewDecoder(src, diag, cfg.NumLEDs),
		diag:   diag,
		motion: motion,
		leds:   leds,
	}, nil
}

// Motion exposes the motion controller, mainly so the dispatch loop can
// advance non-blocking moves.
func (s *Stage) Motion() *Motion {
	return s.motion
}

// LEDs exposes the LED bank.
func (s *Stage) LEDs() *Bank {
	return s.leds
}

// Diag exposes the diagnostic channel for callers that wrap the
// dispatch loop.
func (s *Stage) Diag() *Diag {
	return s.diag
}

// FrameSteps returns the configured frame displacement in motor steps.
func (s *Stage) FrameSteps() int {
	return s.frameSteps
}
