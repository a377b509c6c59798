// Package stage is the host-side client for the stage controller. It
// speaks the single-byte opcode protocol over any io.ReadWriter and
// hides the framing: every call sends one command and waits for the
// controller's ack, relaying diagnostic lines to the log as they
// arrive.
package stage

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang/glog"
)

const (
	ackByte = '0'

	// The frame displacement field is sign plus three digits.
	maxFrameMicrons = 999

	// The acceleration field is three digits; zero is rejected by the
	// controller.
	maxAccel = 999
)

// Client drives a stage controller over a serial connection.
type Client struct {
	w io.Writer
	r *bufio.Reader
}

// NewClient wraps an open connection to the controller.
func NewClient(conn io.ReadWriter) *Client {
	return &Client{w: conn, r: bufio.NewReader(conn)}
}

// StartMotor jogs the stage. dir > 0 moves up, dir < 0 moves down;
// fast selects the fast jog speed. Any move in progress is stopped
// first so the jog starts from rest.
func (c *Client) StartMotor(dir int, fast bool) error {
	if err := c.StopMotor(); err != nil {
		return err
	}
	var op byte
	switch {
	case dir > 0 && fast:
		op = '6'
	case dir > 0:
		op = '1'
	case fast:
		op = '7'
	default:
		op = '2'
	}
	return c.command([]byte{op})
}

// StopMotor halts any move in progress. Safe to call when idle.
func (c *Client) StopMotor() error {
	return c.command([]byte{'3'})
}

// SetFrameStep programs the displacement between frames, in microns.
func (c *Client) SetFrameStep(microns int) error {
	if microns < -maxFrameMicrons || microns > maxFrameMicrons {
		return fmt.Errorf("frame step %d microns out of range [-%d, %d]",
			microns, maxFrameMicrons, maxFrameMicrons)
	}
	return c.command([]byte(fmt.Sprintf("4%+04d", microns)))
}

// MoveFrame advances the stage by the programmed frame displacement.
// The controller blocks until the move completes, so this call can
// take a while on long displacements.
func (c *Client) MoveFrame() error {
	return c.command([]byte{'5'})
}

// SetMaxAccel programs the acceleration ramp in steps per second
// squared.
func (c *Client) SetMaxAccel(accel int) error {
	if accel < 1 || accel > maxAccel {
		return fmt.Errorf("acceleration %d out of range [1, %d]", accel, maxAccel)
	}
	return c.command([]byte(fmt.Sprintf("8%03d", accel)))
}

// SetLED switches a single LED on or off. Index 0 is LED 'A'.
func (c *Client) SetLED(index int, on bool) error {
	if index < 0 || index > 'Z'-'A' {
		return fmt.Errorf("LED index %d out of range", index)
	}
	return c.command([]byte{ledOpcode(on), byte('A' + index)})
}

// SetAllLEDs switches the whole bank on or off.
func (c *Client) SetAllLEDs(on bool) error {
	return c.command([]byte{ledOpcode(on), '@'})
}

// TestLights walks a single lit LED across the bank, then clears it.
// Useful to verify the shift-register wiring after assembly.
func (c *Client) TestLights(count int, dwell time.Duration) error {
	if err := c.SetAllLEDs(false); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := c.SetLED(i, true); err != nil {
			return err
		}
		time.Sleep(dwell)
		if err := c.SetLED(i, false); err != nil {
			return err
		}
	}
	return nil
}

func ledOpcode(on bool) byte {
	if on {
		return '+'
	}
	return '-'
}

// command writes one framed command and consumes the controller's
// response up to and including the ack byte.
func (c *Client) command(cmd []byte) error {
	if _, err := c.w.Write(cmd); err != nil {
		return fmt.Errorf("write command %q: %w", cmd, err)
	}
	return c.waitOK()
}

// waitOK reads the response stream until the ack byte. Diagnostic
// lines (prefixed "# ") are relayed to the log; lines flagged with
// "**" are controller-reported errors and are both logged and
// returned.
func (c *Client) waitOK() error {
	var cmdErr error
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		if b == ackByte {
			return cmdErr
		}
		if b != '#' {
			// Stray byte between lines; the protocol has no framing
			// beyond the line prefix and the ack.
			glog.V(2).Infof("stage: stray byte %q", b)
			continue
		}
		line, err := c.r.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read response line: %w", err)
		}
		msg := strings.TrimSpace(line)
		if strings.HasPrefix(msg, "**") {
			msg = strings.TrimSpace(strings.TrimPrefix(msg, "**"))
			glog.Warningf("stage: %s", msg)
			if cmdErr == nil {
				cmdErr = fmt.Errorf("stage: %s", msg)
			}
			continue
		}
		glog.V(1).Infof("stage: %s", msg)
	}
}
