// internal/config/normalize.go
package config

// Serial defaults matching the gateway's reference setup.
const (
	defaultBaudRate  = 9600
	defaultTimeoutMs = 1000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Xcom.Serial.BaudRate == 0 {
		cfg.Xcom.Serial.BaudRate = defaultBaudRate
	}
	if cfg.Xcom.Serial.TimeoutMs == 0 {
		cfg.Xcom.Serial.TimeoutMs = defaultTimeoutMs
	}
}
