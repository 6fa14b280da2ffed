// internal/client/rtu/transport.go
package rtu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Transport implements client.Transport over a Modbus RTU serial link.
// This adapter is geometry-only: it converts between register slices and the
// byte payloads of the underlying handler.
//
// Not safe for concurrent use: the slave id is set per exchange and RTU
// allows one in-flight request per bus.
type Transport struct {
	handler *modbus.RTUClientHandler
	mb      modbus.Client
}

// Config is minimal serial transport config. The framing the gateway expects
// is fixed: even parity, 8 data bits, 1 stop bit.
type Config struct {
	Port     string
	BaudRate int
	Timeout  time.Duration
}

// New opens the serial channel. Fail fast: a port that cannot be opened or
// configured surfaces here, before any protocol call.
func New(cfg Config) (*Transport, error) {
	if cfg.Port == "" {
		return nil, errors.New("rtu transport: serial port required")
	}

	h := modbus.NewRTUClientHandler(cfg.Port)
	h.BaudRate = cfg.BaudRate
	h.DataBits = 8
	h.Parity = "E"
	h.StopBits = 1
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("rtu transport: open %s: %w", cfg.Port, err)
	}

	return &Transport{
		handler: h,
		mb:      modbus.NewClient(h),
	}, nil
}

// Close releases the serial channel.
func (t *Transport) Close() error {
	return t.handler.Close()
}

// ---- client.Transport ----

func (t *Transport) ReadHoldingRegisters(slaveID uint8, addr, qty uint16) ([]uint16, error) {
	t.handler.SlaveId = slaveID
	raw, err := t.mb.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(raw, qty)
}

func (t *Transport) ReadInputRegisters(slaveID uint8, addr, qty uint16) ([]uint16, error) {
	t.handler.SlaveId = slaveID
	raw, err := t.mb.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(raw, qty)
}

func (t *Transport) WriteMultipleRegisters(slaveID uint8, addr uint16, regs []uint16) (uint16, error) {
	t.handler.SlaveId = slaveID
	raw, err := t.mb.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs))
	if err != nil {
		return 0, err
	}
	// The handler validates the echoed address and hands back the echoed
	// register quantity as two big-endian bytes.
	if len(raw) != 2 {
		return 0, fmt.Errorf("rtu transport: write echo is %d bytes, want 2", len(raw))
	}
	return binary.BigEndian.Uint16(raw), nil
}

// ---- helpers (pure geometry) ----

func packRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}

func unpackRegisters(data []byte, qty uint16) ([]uint16, error) {
	if len(data) != 2*int(qty) {
		return nil, fmt.Errorf("rtu transport: register payload is %d bytes, want %d", len(data), 2*qty)
	}
	out := make([]uint16, qty)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	return out, nil
}
