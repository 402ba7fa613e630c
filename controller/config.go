package controller

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/boneycircuitry/megamega2612/ym2612"
)

// Config holds the unit's startup settings: where MIDI comes from, where
// the proxy sits, and the play settings that on hardware are burned into
// the firmware image.
type Config struct {
	MIDIPort            string `yaml:"midi_port"`
	SerialDevice        string `yaml:"serial_device"`
	Baud                int    `yaml:"baud"`
	Patch               int    `yaml:"patch"`
	VelocitySensitivity int    `yaml:"velocity_sensitivity"`
	MinVelocity         int    `yaml:"min_velocity"`
	TickMS              int    `yaml:"tick_ms"`
	LogLevel            string `yaml:"log_level"`
}

// DefaultConfig returns the settings the hardware boots with: the
// "one operator" patch, moderate velocity response, and a 4ms commit
// tick.
func DefaultConfig() Config {
	return Config{
		Baud:                115200,
		Patch:               15,
		VelocitySensitivity: 2,
		MinVelocity:         50,
		TickMS:              4,
		LogLevel:            "info",
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file
// is not an error; the defaults stand. Out-of-range values wrap the same
// way panel adjustments do.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	cfg.Patch = ym2612.Wrap(cfg.Patch, 0, len(ym2612.Patches)-1)
	cfg.VelocitySensitivity = ym2612.Wrap(cfg.VelocitySensitivity, 0, 10)
	cfg.MinVelocity = ym2612.Wrap(cfg.MinVelocity, 0, 127)
	if cfg.TickMS <= 0 {
		cfg.TickMS = DefaultConfig().TickMS
	}
	return cfg, nil
}
