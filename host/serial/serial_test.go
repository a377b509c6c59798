package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("MUFF_DEVICE", "")
	t.Setenv("MUFF_BAUD", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Device)
	assert.Equal(t, 9600, cfg.Baud)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("MUFF_DEVICE", "/dev/ttyACM3")
	t.Setenv("MUFF_BAUD", "115200")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM3", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
}
