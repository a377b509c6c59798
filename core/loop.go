package core

import "io"

// AckByte is written to the serial TX after every handled command,
// successful or not, so the host can pace itself.
const AckByte = '0'

// Loop is the top-level read-dispatch cycle: at most one opcode handled
// per iteration, with the motion controller advanced whenever no
// command byte is waiting. Everything runs on one logical thread; a
// blocking command monopolizes it until done.
type Loop struct {
	reg   *Registry
	stage *Stage
	src   ByteSource
	tx    io.Writer
}

// NewLoop wires the dispatch loop. src and tx are the same serial
// endpoints the stage was built with.
func NewLoop(reg *Registry, stage *Stage, src ByteSource, tx io.Writer) *Loop {
	return &Loop{reg: reg, stage: stage, src: src, tx: tx}
}

// RunOnce performs a single loop iteration: handle one pending opcode,
// or advance the motion controller by one poll.
func (l *Loop) RunOnce() {
	if l.src.Available() <= 0 {
		l.stage.motion.Poll()
		return
	}
	opcode := l.src.ReadByte()
	l.stage.diag.Byte("Command received", opcode)
	if err := l.reg.Dispatch(opcode, l.stage); err != nil {
		l.stage.diag.Error(err.Error())
	}
	_, _ = l.tx.Write([]byte{AckByte})
}

// Run announces the firmware on the diagnostic channel and then cycles
// forever.
func (l *Loop) Run() {
	l.stage.diag.Line("stage firmware ready")
	for {
		l.RunOnce()
	}
}
