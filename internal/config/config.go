// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Xcom XcomConfig `yaml:"xcom"`
}

// ---- GATEWAY ----

type XcomConfig struct {
	Serial SerialConfig `yaml:"serial"`

	// DipSwitchesOffset is the address offset set with the dip switches
	// inside the Xcom-485i. Every device id on the bus shifts by it.
	DipSwitchesOffset uint8 `yaml:"dip_switches_offset"`

	// Debug enables tx/rx tracing on the client.
	Debug bool `yaml:"debug"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Port      string `yaml:"port"`
	BaudRate  int    `yaml:"baud_rate"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Load reads and parses a YAML config file. Parsing only; call Validate and
// Normalize before use.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
