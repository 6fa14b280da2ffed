// internal/addresses/addresses_test.go
package addresses

import "testing"

func TestNew_ZeroOffset(t *testing.T) {
	s := New(0)

	checks := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"gateway", s.Gateway, 1},
		{"system", s.System, 2},
		{"xt l1 group", s.XTL1Group, 7},
		{"xt l2 group", s.XTL2Group, 8},
		{"xt l3 group", s.XTL3Group, 9},
		{"xt group", s.XTGroup, 10},
		{"xt 1", s.XT[0], 11},
		{"xt 9", s.XT[8], 19},
		{"vt group", s.VTGroup, 20},
		{"vt 1", s.VT[0], 21},
		{"vt 15", s.VT[14], 35},
		{"vs group", s.VSGroup, 40},
		{"vs 1", s.VS[0], 41},
		{"vs 15", s.VS[14], 55},
		{"bsp group", s.BSPGroup, 60},
		{"bsp", s.BSP, 61},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestNew_AppliesOffset(t *testing.T) {
	s := New(32)

	if s.Gateway != 33 {
		t.Fatalf("gateway: got %d, want 33", s.Gateway)
	}
	if s.XT[0] != 43 {
		t.Fatalf("xt 1: got %d, want 43", s.XT[0])
	}
	if s.BSP != 93 {
		t.Fatalf("bsp: got %d, want 93", s.BSP)
	}
}

func TestNew_Deterministic(t *testing.T) {
	if New(10) != New(10) {
		t.Fatal("two constructions with the same offset differ")
	}
}

func TestWindowOffsets(t *testing.T) {
	if ReadFlash != 0 || ReadMin != 2000 || ReadMax != 4000 {
		t.Fatalf("read windows: got %d/%d/%d, want 0/2000/4000", ReadFlash, ReadMin, ReadMax)
	}
	if WriteFlashRAM != 0 || WriteRAMOnly != 6000 {
		t.Fatalf("write windows: got %d/%d, want 0/6000", WriteFlashRAM, WriteRAMOnly)
	}
}
