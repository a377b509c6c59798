//go:build arduino

package main

import (
	"machine"

	"muff/core"
)

// Board wiring. The enable input of the stepper driver is active low.
const (
	pinEnable = machine.D2
	pinStep   = machine.D3
	pinDir    = machine.D4

	pinData  = core.GPIOPin(machine.D6)
	pinLatch = core.GPIOPin(machine.D8)
	pinClock = core.GPIOPin(machine.D9)
)

func main() {
	uart := machine.Serial
	uart.Configure(machine.UARTConfig{BaudRate: 9600})

	src := &uartSource{uart: uart}
	tx := &uartWriter{uart: uart}

	gpio := NewAVRGPIODriver()
	out, err := core.NewShiftRegister(gpio, pinLatch, pinClock, pinData)
	if err != nil {
		fatal(tx, err)
	}

	drv := NewTimedStepper(pinStep, pinDir, pinEnable)

	stage, err := core.NewStage(core.DefaultConfig(), src, drv, out, tx)
	if err != nil {
		fatal(tx, err)
	}

	reg := core.NewRegistry()
	core.InitStageCommands(reg)

	core.NewLoop(reg, stage, src, tx).Run()
}

// fatal reports a wiring-time failure on the serial port and halts.
// There is nothing sensible to do on a board without its peripherals.
func fatal(tx *uartWriter, err error) {
	diag := core.NewDiag(tx)
	for {
		diag.Error(err.Error())
		busyWait()
	}
}

func busyWait() {
	for i := 0; i < 1000000; i++ {
	}
}
