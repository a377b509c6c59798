// Command muff-shell is an interactive console for a connected stage
// controller. It opens the serial port named by MUFF_DEVICE (or the
// -device flag) and exposes the controller operations as shell
// commands.
package main

import (
	"flag"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"muff/host/serial"
	"muff/host/stage"
)

func main() {
	device := flag.String("device", "", "serial device (overrides MUFF_DEVICE)")
	baud := flag.Int("baud", 0, "baud rate (overrides MUFF_BAUD)")
	flag.Parse()

	cfg, err := serial.ConfigFromEnv()
	if err != nil {
		glog.Exitf("bad environment: %v", err)
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	port, err := serial.Open(cfg)
	if err != nil {
		glog.Exitf("open %s: %v", cfg.Device, err)
	}
	defer port.Close()

	client := stage.NewClient(port)

	shell := ishell.New()
	shell.Println("muff stage console on " + cfg.Device)

	shell.AddCmd(&ishell.Cmd{
		Name: "up",
		Help: "jog the stage up; 'up fast' uses the fast speed",
		Func: func(c *ishell.Context) {
			report(c, client.StartMotor(1, wantsFast(c.Args)))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "down",
		Help: "jog the stage down; 'down fast' uses the fast speed",
		Func: func(c *ishell.Context) {
			report(c, client.StartMotor(-1, wantsFast(c.Args)))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "stop",
		Help: "stop the motor",
		Func: func(c *ishell.Context) {
			report(c, client.StopMotor())
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "zstep",
		Help: "zstep <microns>: set the displacement between frames",
		Func: func(c *ishell.Context) {
			microns, err := intArg(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			report(c, client.SetFrameStep(microns))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "move",
		Help: "advance the stage by one frame displacement",
		Func: func(c *ishell.Context) {
			report(c, client.MoveFrame())
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "accel",
		Help: "accel <steps/s^2>: set the maximum acceleration",
		Func: func(c *ishell.Context) {
			accel, err := intArg(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			report(c, client.SetMaxAccel(accel))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "led",
		Help: "led <index> on|off: switch a single LED",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errUsage("led <index> on|off"))
				return
			}
			index, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			report(c, client.SetLED(index, c.Args[1] == "on"))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "all",
		Help: "all on|off: switch the whole LED bank",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errUsage("all on|off"))
				return
			}
			report(c, client.SetAllLEDs(c.Args[0] == "on"))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "test",
		Help: "walk a lit LED across the bank to check the wiring",
		Func: func(c *ishell.Context) {
			report(c, client.TestLights(24, 150*time.Millisecond))
		},
	})

	shell.Run()
	glog.Flush()
}

func wantsFast(args []string) bool {
	return len(args) > 0 && args[0] == "fast"
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage("expected one numeric argument")
	}
	return strconv.Atoi(args[0])
}

type errUsage string

func (e errUsage) Error() string { return "usage: " + string(e) }

func report(c *ishell.Context, err error) {
	if err != nil {
		c.Err(err)
		glog.Error(err)
		return
	}
	c.Println("ok")
}

func init() {
	// glog writes to files by default; a console tool wants stderr.
	_ = flag.Set("logtostderr", "true")
}
