//go:build arduino

package main

import (
	"machine"

	"muff/core"
)

// AVRGPIODriver implements the GPIODriver interface on top of the
// machine package. Digital pin numbers map straight to machine.Pin on
// the Uno.
type AVRGPIODriver struct {
	configuredPins map[core.GPIOPin]machine.Pin
}

func NewAVRGPIODriver() *AVRGPIODriver {
	return &AVRGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *AVRGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		// Already configured, this is OK
		return nil
	}

	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configuredPins[pin] = machinePin
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *AVRGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		machinePin = d.configuredPins[pin]
	}

	machinePin.Set(value)
	return nil
}
