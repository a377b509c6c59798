// Command muff-sim runs the stage firmware loop against simulated
// hardware, with stdin as the command channel and stdout as the
// serial TX. Pipe it to muff-shell (or a script) to exercise the
// protocol without a board on the bench.
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"time"

	"github.com/golang/glog"

	"muff/core"
	"muff/sim"
)

// stdinSource adapts buffered stdin to the firmware's byte source.
// Available reports only what is already buffered, so the loop keeps
// polling the motion controller while the terminal is quiet.
type stdinSource struct {
	r *bufio.Reader
}

func (s *stdinSource) Available() int {
	return s.r.Buffered()
}

func (s *stdinSource) ReadByte() byte {
	b, err := s.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			glog.Flush()
			os.Exit(0)
		}
		glog.Exitf("stdin: %v", err)
	}
	return b
}

// fill pulls at least one byte into the buffer, blocking until input
// arrives or stdin closes.
func (s *stdinSource) fill() {
	if _, err := s.r.Peek(1); err != nil {
		if err == io.EOF {
			glog.Flush()
			os.Exit(0)
		}
		glog.Exitf("stdin: %v", err)
	}
}

func main() {
	flag.Parse()

	src := &stdinSource{r: bufio.NewReader(os.Stdin)}
	drv := sim.NewStepper()
	bank := sim.NewLEDBank()

	stage, err := core.NewStage(core.DefaultConfig(), src, drv, bank, os.Stdout)
	if err != nil {
		glog.Exitf("stage init: %v", err)
	}
	reg := core.NewRegistry()
	core.InitStageCommands(reg)
	loop := core.NewLoop(reg, stage, src, os.Stdout)

	stage.Diag().Line("stage firmware ready (simulated)")
	for {
		if src.Available() == 0 && !stage.Motion().Running() {
			// Nothing to poll; block on input instead of spinning.
			src.fill()
		}
		loop.RunOnce()
		if stage.Motion().Running() {
			time.Sleep(time.Millisecond)
		}
	}
}

func init() {
	_ = flag.Set("logtostderr", "true")
}
