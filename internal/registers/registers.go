// internal/registers/registers.go
package registers

import (
	"fmt"
	"math"
	"time"
)

// Register block sizes. Layout is protocol-locked.
const (
	FloatRegisterCount uint16 = 2 // one IEEE-754 binary32 value
	TimeRegisterCount  uint16 = 8 // one full system-time block
)

// EncodeFloat32 splits v into two big-endian registers, high word first.
func EncodeFloat32(v float32) [2]uint16 {
	bits := math.Float32bits(v)
	return [2]uint16{uint16(bits >> 16), uint16(bits)}
}

// DecodeFloat32 is the inverse of EncodeFloat32. Any pair of raw words
// round-trips bit-exact, NaN and Inf included.
func DecodeFloat32(hi, lo uint16) float32 {
	return math.Float32frombits(uint32(hi)<<16 | uint32(lo))
}

// EncodeTime converts t into the eight-register system-time block:
//
//	0 millisecond
//	1 second
//	2 minute
//	3 hour
//	4 weekday, 0 = Monday
//	5 day
//	6 month
//	7 year - 2000
//
// Precision below one millisecond is lost.
func EncodeTime(t time.Time) [8]uint16 {
	return [8]uint16{
		uint16(t.Nanosecond() / int(time.Millisecond)),
		uint16(t.Second()),
		uint16(t.Minute()),
		uint16(t.Hour()),
		uint16((int(t.Weekday()) + 6) % 7),
		uint16(t.Day()),
		uint16(t.Month()),
		uint16(t.Year() % 100),
	}
}

// DecodeTime converts a system-time block back into wall time. The weekday
// register is ignored: the calendar date determines it. The year register is
// accepted both as two-digit (gateway format, 2000 added) and as a full year.
func DecodeTime(regs []uint16) (time.Time, error) {
	if len(regs) != int(TimeRegisterCount) {
		return time.Time{}, fmt.Errorf("registers: time block needs %d registers, got %d", TimeRegisterCount, len(regs))
	}

	year := int(regs[7])
	if year < 100 {
		year += 2000
	}

	return time.Date(
		year,
		time.Month(regs[6]),
		int(regs[5]),
		int(regs[3]),
		int(regs[2]),
		int(regs[1]),
		int(regs[0])*int(time.Millisecond),
		time.UTC,
	), nil
}
