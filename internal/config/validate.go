// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/xcom485i/internal/addresses"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Xcom.Serial.Port == "" {
		return fmt.Errorf("config: serial port is required")
	}

	if cfg.Xcom.Serial.BaudRate < 0 {
		return fmt.Errorf("config: baud_rate must be positive, got %d", cfg.Xcom.Serial.BaudRate)
	}

	if cfg.Xcom.Serial.TimeoutMs < 0 {
		return fmt.Errorf("config: timeout_ms must be positive, got %d", cfg.Xcom.Serial.TimeoutMs)
	}

	if cfg.Xcom.DipSwitchesOffset > addresses.MaxOffset {
		return fmt.Errorf(
			"config: dip_switches_offset %d exceeds %d, derived device ids would leave the Modbus unit range",
			cfg.Xcom.DipSwitchesOffset,
			addresses.MaxOffset,
		)
	}

	return nil
}
