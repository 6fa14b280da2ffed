// internal/client/builder.go
package client

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/xcom485i/internal/addresses"
	"github.com/tamzrod/xcom485i/internal/client/rtu"
	"github.com/tamzrod/xcom485i/internal/config"
)

// Build wires config → serial transport → client. The serial port is opened
// fail-fast; the returned closer releases it and must run on every exit path.
func Build(cfg config.Config, logger zerolog.Logger) (*Client, func() error, error) {
	tr, err := rtu.New(rtu.Config{
		Port:     cfg.Xcom.Serial.Port,
		BaudRate: cfg.Xcom.Serial.BaudRate,
		Timeout:  time.Duration(cfg.Xcom.Serial.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	c := New(tr, addresses.New(cfg.Xcom.DipSwitchesOffset), logger)
	return c, c.Close, nil
}
