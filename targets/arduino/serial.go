//go:build arduino

package main

import "machine"

// uartSource adapts the hardware UART to the firmware's byte source.
// ReadByte spins until a byte arrives; the controller has nothing else
// to do while a command's argument bytes are in flight.
type uartSource struct {
	uart machine.Serialer
}

func (s *uartSource) Available() int {
	return s.uart.Buffered()
}

func (s *uartSource) ReadByte() byte {
	for {
		if s.uart.Buffered() > 0 {
			b, err := s.uart.ReadByte()
			if err == nil {
				return b
			}
		}
	}
}

// uartWriter is the TX side: diagnostics and acks.
type uartWriter struct {
	uart machine.Serialer
}

func (w *uartWriter) Write(p []byte) (int, error) {
	return w.uart.Write(p)
}
