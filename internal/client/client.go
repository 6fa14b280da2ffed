// internal/client/client.go
package client

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/xcom485i/internal/addresses"
	"github.com/tamzrod/xcom485i/internal/registers"
)

// Transport abstracts the Modbus RTU exchanges the client needs.
// Geometry only: one request, one decoded response, no retries. The register
// windows and payload semantics live in this package, not in the transport.
type Transport interface {
	ReadHoldingRegisters(slaveID uint8, addr, qty uint16) ([]uint16, error) // FC 3
	ReadInputRegisters(slaveID uint8, addr, qty uint16) ([]uint16, error)   // FC 4
	// WriteMultipleRegisters issues FC 16 and returns the register count
	// echoed by the slave.
	WriteMultipleRegisters(slaveID uint8, addr uint16, regs []uint16) (uint16, error)
	Close() error
}

// Gateway message-queue geometry.
const (
	timeAddress     uint16 = 0 // system-time block, holding registers
	msgCountAddress uint16 = 0 // pending count, gateway input register
	msgBodyAddress  uint16 = 1 // message body, gateway input registers 1..4
	msgRegisters    uint16 = 4

	// MaxPendingMessages is the deepest queue the gateway reports.
	MaxPendingMessages uint16 = 128
)

// Message is one pending event drained from the gateway queue. Any device on
// the installation bus can emit one. Reading a message is destructive: the
// gateway drops it from its queue once delivered.
type Message struct {
	DeviceSource uint16
	MessageID    uint16
	ValueMSW     uint16
	ValueLSW     uint16
}

// Value returns the optional payload as a single 32-bit word.
func (m Message) Value() uint32 {
	return uint32(m.ValueMSW)<<16 | uint32(m.ValueLSW)
}

// Client is the Modbus master talking to one Xcom-485i gateway. It owns the
// transport for its lifetime; Close releases the serial channel.
//
// Not safe for concurrent use: Modbus RTU is a half-duplex bus with one
// in-flight exchange per master.
type Client struct {
	tr   Transport
	addr addresses.Space
	log  zerolog.Logger
}

// New builds a client over an open transport.
func New(tr Transport, space addresses.Space, logger zerolog.Logger) *Client {
	return &Client{
		tr:   tr,
		addr: space,
		log:  logger.With().Str("component", "xcom485i").Logger(),
	}
}

// Addresses returns the device-id space derived from the dip-switch offset.
func (c *Client) Addresses() addresses.Space {
	return c.addr
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.tr.Close()
}

// ReadParameter reads one parameter as a float from holding registers.
// addr must already carry the wanted read window (addresses.ReadFlash,
// ReadMin or ReadMax) added to the base register of the parameter.
func (c *Client) ReadParameter(slaveID uint8, addr uint16) (float32, error) {
	regs, err := c.tr.ReadHoldingRegisters(slaveID, addr, registers.FloatRegisterCount)
	if err != nil {
		return 0, fmt.Errorf("read parameter: slave %d addr %d: %w", slaveID, addr, err)
	}
	if len(regs) != int(registers.FloatRegisterCount) {
		return 0, fmt.Errorf("read parameter: slave %d addr %d: got %d registers, want %d",
			slaveID, addr, len(regs), registers.FloatRegisterCount)
	}

	v := registers.DecodeFloat32(regs[0], regs[1])
	c.log.Debug().Uint8("slave", slaveID).Uint16("addr", addr).Float32("value", v).Msg("read parameter")
	return v, nil
}

// WriteParameter writes one parameter value. addr must already carry the
// wanted write window (addresses.WriteFlashRAM or WriteRAMOnly). Returns the
// register count echoed by the slave, always 2 on success; a failed call must
// not be assumed to have taken effect.
func (c *Client) WriteParameter(slaveID uint8, addr uint16, value float32) (uint16, error) {
	words := registers.EncodeFloat32(value)

	n, err := c.tr.WriteMultipleRegisters(slaveID, addr, words[:])
	if err != nil {
		return 0, fmt.Errorf("write parameter: slave %d addr %d: %w", slaveID, addr, err)
	}
	if n != registers.FloatRegisterCount {
		return n, fmt.Errorf("write parameter: slave %d addr %d: slave acknowledged %d of %d registers",
			slaveID, addr, n, registers.FloatRegisterCount)
	}

	c.log.Debug().Uint8("slave", slaveID).Uint16("addr", addr).Float32("value", value).Msg("write parameter")
	return n, nil
}

// ReadInfo reads one live user-info value as a float from input registers.
// Info registers carry no window offsets.
func (c *Client) ReadInfo(slaveID uint8, addr uint16) (float32, error) {
	regs, err := c.tr.ReadInputRegisters(slaveID, addr, registers.FloatRegisterCount)
	if err != nil {
		return 0, fmt.Errorf("read info: slave %d addr %d: %w", slaveID, addr, err)
	}
	if len(regs) != int(registers.FloatRegisterCount) {
		return 0, fmt.Errorf("read info: slave %d addr %d: got %d registers, want %d",
			slaveID, addr, len(regs), registers.FloatRegisterCount)
	}

	v := registers.DecodeFloat32(regs[0], regs[1])
	c.log.Debug().Uint8("slave", slaveID).Uint16("addr", addr).Float32("value", v).Msg("read info")
	return v, nil
}

// ReadTime reads the installation system time.
func (c *Client) ReadTime(slaveID uint8) (time.Time, error) {
	regs, err := c.tr.ReadHoldingRegisters(slaveID, timeAddress, registers.TimeRegisterCount)
	if err != nil {
		return time.Time{}, fmt.Errorf("read time: slave %d: %w", slaveID, err)
	}

	t, err := registers.DecodeTime(regs)
	if err != nil {
		return time.Time{}, fmt.Errorf("read time: slave %d: %w", slaveID, err)
	}

	c.log.Debug().Uint8("slave", slaveID).Time("value", t).Msg("read time")
	return t, nil
}

// WriteTime sets the installation system time. All eight time registers are
// written in one exchange; the gateway accepts nothing less. Returns the
// register count echoed by the slave, always 8 on success.
func (c *Client) WriteTime(slaveID uint8, t time.Time) (uint16, error) {
	words := registers.EncodeTime(t)

	n, err := c.tr.WriteMultipleRegisters(slaveID, timeAddress, words[:])
	if err != nil {
		return 0, fmt.Errorf("write time: slave %d: %w", slaveID, err)
	}
	if n != registers.TimeRegisterCount {
		return n, fmt.Errorf("write time: slave %d: slave acknowledged %d of %d registers",
			slaveID, n, registers.TimeRegisterCount)
	}

	c.log.Debug().Uint8("slave", slaveID).Time("value", t).Msg("write time")
	return n, nil
}

// PendingMessageCount reads how many messages the gateway holds, up to
// MaxPendingMessages.
func (c *Client) PendingMessageCount() (uint16, error) {
	regs, err := c.tr.ReadInputRegisters(c.addr.Gateway, msgCountAddress, 1)
	if err != nil {
		return 0, fmt.Errorf("pending message count: %w", err)
	}
	if len(regs) != 1 {
		return 0, fmt.Errorf("pending message count: got %d registers, want 1", len(regs))
	}

	c.log.Debug().Uint16("count", regs[0]).Msg("pending message count")
	return regs[0], nil
}

// ReadMessage drains one message from the gateway queue. Call
// PendingMessageCount first and drain exactly that many times: each
// successful read deletes the message inside the gateway, and there is no way
// to peek or replay.
func (c *Client) ReadMessage() (Message, error) {
	regs, err := c.tr.ReadInputRegisters(c.addr.Gateway, msgBodyAddress, msgRegisters)
	if err != nil {
		return Message{}, fmt.Errorf("read message: %w", err)
	}
	if len(regs) != int(msgRegisters) {
		return Message{}, fmt.Errorf("read message: got %d registers, want %d", len(regs), msgRegisters)
	}

	m := Message{
		DeviceSource: regs[0],
		MessageID:    regs[1],
		ValueMSW:     regs[2],
		ValueLSW:     regs[3],
	}
	c.log.Debug().Uint16("source", m.DeviceSource).Uint16("id", m.MessageID).Uint32("value", m.Value()).Msg("read message")
	return m, nil
}

// ReadInputRegisters reads raw input registers from any device. Escape hatch
// for registers the typed operations do not cover.
func (c *Client) ReadInputRegisters(slaveID uint8, addr, qty uint16) ([]uint16, error) {
	regs, err := c.tr.ReadInputRegisters(slaveID, addr, qty)
	if err != nil {
		return nil, fmt.Errorf("read input registers: slave %d addr %d: %w", slaveID, addr, err)
	}
	return regs, nil
}
