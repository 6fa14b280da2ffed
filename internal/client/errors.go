// internal/client/errors.go
package client

import (
	"errors"

	"github.com/goburrow/modbus"
)

// ExceptionCode reports whether err carries a Modbus slave exception
// response, and if so which exception code. Errors without one are transport
// or decode failures.
func ExceptionCode(err error) (uint8, bool) {
	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return me.ExceptionCode, true
	}
	return 0, false
}
