package core

import (
	"errors"
	"strings"
	"testing"
)

func newStageRegistry() *Registry {
	reg := NewRegistry()
	InitStageCommands(reg)
	return reg
}

func TestSetFrameDisplacement(t *testing.T) {
	stage, _, _, _, tx := newTestStage([]byte("+123"))
	reg := newStageRegistry()

	if err := reg.Dispatch(OpSetFrame, stage); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if stage.FrameSteps() != 20 {
		t.Errorf("FrameSteps = %d, want 20", stage.FrameSteps())
	}
	if !strings.Contains(tx.String(), "123 microns = 20 steps") {
		t.Errorf("conversion echo missing, got %q", tx.String())
	}
}

func TestSetFrameDisplacementNegative(t *testing.T) {
	stage, _, _, _, _ := newTestStage([]byte("-123"))
	reg := newStageRegistry()

	if err := reg.Dispatch(OpSetFrame, stage); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if stage.FrameSteps() != -20 {
		t.Errorf("FrameSteps = %d, want -20", stage.FrameSteps())
	}
}

func TestSetFrameDisplacementMalformedKeepsValue(t *testing.T) {
	stage, _, _, _, _ := newTestStage([]byte("+123" + "1230"))
	reg := newStageRegistry()

	if err := reg.Dispatch(OpSetFrame, stage); err != nil {
		t.Fatalf("valid dispatch error: %v", err)
	}
	err := reg.Dispatch(OpSetFrame, stage) // "1230": missing sign
	if !errors.Is(err, ErrMalformedArgument) {
		t.Fatalf("err = %v, want ErrMalformedArgument", err)
	}
	if stage.FrameSteps() != 20 {
		t.Errorf("failed command overwrote displacement: %d", stage.FrameSteps())
	}
}

func TestMoveFrameBlocks(t *testing.T) {
	stage, drv, _, _, _ := newTestStage([]byte("+123"))
	reg := newStageRegistry()

	if err := reg.Dispatch(OpSetFrame, stage); err != nil {
		t.Fatalf("set frame error: %v", err)
	}
	if err := reg.Dispatch(OpMoveFrame, stage); err != nil {
		t.Fatalf("move frame error: %v", err)
	}

	if stage.Motion().Running() {
		t.Error("frame move returned while running")
	}
	if drv.position != 20 {
		t.Errorf("position = %d, want 20", drv.position)
	}
	if drv.maxSpeed != DefaultConfig().SlowSpeed {
		t.Errorf("frame move speed = %d, want slow speed", drv.maxSpeed)
	}
	if drv.enabled {
		t.Error("outputs enabled after frame move")
	}
}

func TestJogCommands(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		opcode byte
		target int
		speed  int
	}{
		{OpJogUpSlow, cfg.JogSpan, cfg.SlowSpeed},
		{OpJogDownSlow, -cfg.JogSpan, cfg.SlowSpeed},
		{OpJogUpFast, cfg.JogSpan, cfg.FastSpeed},
		{OpJogDownFast, -cfg.JogSpan, cfg.FastSpeed},
	}
	for _, c := range cases {
		stage, drv, _, _, _ := newTestStage(nil)
		reg := newStageRegistry()

		if err := reg.Dispatch(c.opcode, stage); err != nil {
			t.Errorf("Dispatch(%q) error: %v", c.opcode, err)
			continue
		}
		if !stage.Motion().Running() {
			t.Errorf("jog %q did not arm motion", c.opcode)
		}
		if drv.target != c.target || drv.maxSpeed != c.speed {
			t.Errorf("jog %q: target=%d speed=%d, want %d/%d",
				c.opcode, drv.target, drv.maxSpeed, c.target, c.speed)
		}
	}
}

func TestJogWhileJoggingReplacesRequest(t *testing.T) {
	stage, drv, _, _, _ := newTestStage(nil)
	reg := newStageRegistry()
	cfg := DefaultConfig()

	reg.Dispatch(OpJogUpSlow, stage)
	stage.Motion().Poll()
	reg.Dispatch(OpJogDownFast, stage)

	if drv.target != -cfg.JogSpan || drv.maxSpeed != cfg.FastSpeed {
		t.Errorf("second jog target=%d speed=%d, want %d/%d",
			drv.target, drv.maxSpeed, -cfg.JogSpan, cfg.FastSpeed)
	}
	if drv.position != 0 {
		t.Errorf("position reference = %d, want 0", drv.position)
	}
}

func TestStopCommandDiagnosticOnlyWhenRunning(t *testing.T) {
	stage, _, _, _, tx := newTestStage(nil)
	reg := newStageRegistry()

	// Idle stop: silent no-op.
	if err := reg.Dispatch(OpStop, stage); err != nil {
		t.Fatalf("idle stop error: %v", err)
	}
	if strings.Contains(tx.String(), "Stopping") {
		t.Error("idle stop emitted a stopping line")
	}

	// Moving stop: diagnostic and halt.
	reg.Dispatch(OpJogUpSlow, stage)
	if err := reg.Dispatch(OpStop, stage); err != nil {
		t.Fatalf("stop error: %v", err)
	}
	if !strings.Contains(tx.String(), "Stopping the motor") {
		t.Error("stop of a moving motor emitted no stopping line")
	}
	if stage.Motion().Running() {
		t.Error("motor still running after stop")
	}
}

func TestSetMaxAcceleration(t *testing.T) {
	stage, _, _, _, _ := newTestStage([]byte("250"))
	reg := newStageRegistry()

	if err := reg.Dispatch(OpSetAccel, stage); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if stage.Motion().Acceleration() != 250 {
		t.Errorf("acceleration = %d, want 250", stage.Motion().Acceleration())
	}
}

func TestSetMaxAccelerationZeroRejected(t *testing.T) {
	stage, _, _, _, _ := newTestStage([]byte("000"))
	reg := newStageRegistry()

	err := reg.Dispatch(OpSetAccel, stage)
	if !errors.Is(err, ErrInvalidAcceleration) {
		t.Fatalf("err = %v, want ErrInvalidAcceleration", err)
	}
	if stage.Motion().Acceleration() != DefaultConfig().MaxAccel {
		t.Errorf("rejected zero overwrote acceleration: %d", stage.Motion().Acceleration())
	}
}

func TestLEDCommands(t *testing.T) {
	stage, _, rec, _, _ := newTestStage([]byte("B@"))
	reg := newStageRegistry()

	if err := reg.Dispatch(OpLEDsOn, stage); err != nil {
		t.Fatalf("LED on error: %v", err)
	}
	// LED 1 is bit (1+7)%8 = 0 of group 0.
	if rec.last()[0] != 0x01 {
		t.Errorf("frame = %v after LED on", rec.last())
	}

	if err := reg.Dispatch(OpLEDsOff, stage); err != nil {
		t.Fatalf("LED off error: %v", err)
	}
	for _, g := range rec.last() {
		if g != 0 {
			t.Errorf("frame = %v after wildcard off", rec.last())
			break
		}
	}
}

func TestLEDCommandInvalidCodeLeavesBankAlone(t *testing.T) {
	stage, _, rec, _, _ := newTestStage([]byte("z"))
	reg := newStageRegistry()
	pushes := len(rec.frames)

	err := reg.Dispatch(OpLEDsOn, stage)
	if !errors.Is(err, ErrLEDOutOfRange) {
		t.Fatalf("err = %v, want ErrLEDOutOfRange", err)
	}
	if len(rec.frames) != pushes {
		t.Error("invalid LED code pushed to hardware")
	}
}
