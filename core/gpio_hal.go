package core

// GPIOPin identifies a hardware GPIO pin number.
type GPIOPin uint8

// GPIODriver is the abstract GPIO output interface the core code uses.
// Platform-specific implementations handle actual hardware control; the
// protocol logic never sees pin registers or board names.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output.
	ConfigureOutput(pin GPIOPin) error

	// SetPin drives the pin high (true) or low (false).
	SetPin(pin GPIOPin, value bool) error
}
