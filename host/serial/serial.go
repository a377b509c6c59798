package serial

import (
	"io"

	"github.com/caarlos0/env"
)

// Port represents a serial connection to the stage controller.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - In-memory pipes for testing against the simulated firmware
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration. Fields can be populated
// from the environment so scripts do not need flags for every run.
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string `env:"MUFF_DEVICE" envDefault:"/dev/ttyUSB0"`

	// Baud rate; the controller always talks at 9600
	Baud int `env:"MUFF_BAUD" envDefault:"9600"`
}

// ConfigFromEnv builds a Config from MUFF_* environment variables,
// falling back to the defaults above.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
