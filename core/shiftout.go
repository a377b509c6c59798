package core

// ShiftOutput receives complete LED bank images. The bank pushes the
// full group vector after every mutation.
type ShiftOutput interface {
	Push(groups []byte) error
}

// ShiftRegister drives a chain of 74HC595-style shift registers through
// three GPIO pins. A push holds the latch low, clocks every group out
// least-significant bit first in group order 0..N-1, then raises the
// latch so all outputs change at once. The bit ordering is part of the
// board wiring and must not change.
type ShiftRegister struct {
	gpio  GPIODriver
	latch GPIOPin
	clock GPIOPin
	data  GPIOPin
}

// NewShiftRegister configures the three multiplexer control pins as
// outputs and returns the register.
func NewShiftRegister(gpio GPIODriver, latch, clock, data GPIOPin) (*ShiftRegister, error) {
	for _, pin := range []GPIOPin{latch, clock, data} {
		if err := gpio.ConfigureOutput(pin); err != nil {
			return nil, err
		}
	}
	return &ShiftRegister{gpio: gpio, latch: latch, clock: clock, data: data}, nil
}

// Push sends the group vector to the hardware.
func (r *ShiftRegister) Push(groups []byte) error {
	if err := r.gpio.SetPin(r.latch, false); err != nil {
		return err
	}
	for _, g := range groups {
		if err := r.shiftOut(g); err != nil {
			return err
		}
	}
	return r.gpio.SetPin(r.latch, true)
}

func (r *ShiftRegister) shiftOut(b byte) error {
	for bit := 0; bit < 8; bit++ {
		if err := r.gpio.SetPin(r.data, b&(1<<uint(bit)) != 0); err != nil {
			return err
		}
		if err := r.gpio.SetPin(r.clock, true); err != nil {
			return err
		}
		if err := r.gpio.SetPin(r.clock, false); err != nil {
			return err
		}
	}
	return nil
}
