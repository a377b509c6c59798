package core

import "errors"

// Sentinel errors reported back over the diagnostic channel. The
// texts are what the host sees, so they stay short and self-contained.
var (
	// ErrMalformedArgument flags a numeric field with a bad sign or a
	// non-digit byte. The whole field is consumed regardless.
	ErrMalformedArgument = errors.New("invalid argument value")

	// ErrLEDOutOfRange flags an LED code beyond the installed bank.
	ErrLEDOutOfRange = errors.New("invalid LED code")

	// ErrInvalidAcceleration flags a zero acceleration, which would
	// leave the motor unable to move at all.
	ErrInvalidAcceleration = errors.New("maximum acceleration cannot be zero")

	// ErrUnknownCommand flags an opcode with no registered handler.
	ErrUnknownCommand = errors.New("unknown command code")
)
