// internal/registers/registers_test.go
package registers

import (
	"math"
	"testing"
	"time"
)

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{
		0,
		math.Float32frombits(0x80000000), // -0
		1.5,
		-123.456,
		math.Float32frombits(0x00000001), // smallest subnormal
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.Float32frombits(0x7fc00001), // NaN with payload
	}

	for _, v := range values {
		regs := EncodeFloat32(v)
		got := DecodeFloat32(regs[0], regs[1])
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Errorf("round trip 0x%08x: got 0x%08x", math.Float32bits(v), math.Float32bits(got))
		}
	}
}

func TestEncodeFloat32_WordOrder(t *testing.T) {
	// 2.5 is 0x40200000: high word first, big-endian within each word.
	regs := EncodeFloat32(2.5)
	if regs[0] != 0x4020 || regs[1] != 0x0000 {
		t.Fatalf("got [0x%04x 0x%04x], want [0x4020 0x0000]", regs[0], regs[1])
	}
}

func TestTimeRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 3, 14, 12, 34, 56, 123*int(time.Millisecond), time.UTC),
		time.Date(2099, 12, 31, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
	}

	for _, want := range times {
		regs := EncodeTime(want)
		got, err := DecodeTime(regs[:])
		if err != nil {
			t.Fatalf("DecodeTime(%v): %v", want, err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip %v: got %v", want, got)
		}
	}
}

func TestEncodeTime_Layout(t *testing.T) {
	// 2022-03-14 was a Monday.
	regs := EncodeTime(time.Date(2022, 3, 14, 12, 34, 56, 123*int(time.Millisecond), time.UTC))

	want := [8]uint16{123, 56, 34, 12, 0, 14, 3, 22}
	if regs != want {
		t.Fatalf("got %v, want %v", regs, want)
	}
}

func TestEncodeTime_SundayIsSix(t *testing.T) {
	regs := EncodeTime(time.Date(2022, 3, 13, 0, 0, 0, 0, time.UTC))
	if regs[4] != 6 {
		t.Fatalf("weekday register: got %d, want 6", regs[4])
	}
}

func TestEncodeTime_TruncatesSubMillisecond(t *testing.T) {
	regs := EncodeTime(time.Date(2022, 3, 14, 0, 0, 0, 1234567, time.UTC))
	if regs[0] != 1 {
		t.Fatalf("millisecond register: got %d, want 1", regs[0])
	}
}

func TestDecodeTime_YearFormats(t *testing.T) {
	twoDigit := []uint16{0, 0, 0, 0, 0, 1, 1, 22}
	got, err := DecodeTime(twoDigit)
	if err != nil {
		t.Fatalf("DecodeTime: %v", err)
	}
	if got.Year() != 2022 {
		t.Fatalf("two-digit year: got %d, want 2022", got.Year())
	}

	fullYear := []uint16{0, 0, 0, 0, 0, 1, 1, 2022}
	got, err = DecodeTime(fullYear)
	if err != nil {
		t.Fatalf("DecodeTime: %v", err)
	}
	if got.Year() != 2022 {
		t.Fatalf("full year: got %d, want 2022", got.Year())
	}
}

func TestDecodeTime_WrongRegisterCount(t *testing.T) {
	if _, err := DecodeTime(make([]uint16, 7)); err == nil {
		t.Fatal("expected error for short register block")
	}
}
