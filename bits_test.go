package riscvh

import (
	"testing"
)

func TestBitsBit(t *testing.T) {
	var b Bits
	for _, i := range []uint{0, 1, 31, 32, 62, 63} {
		b.SetBit(i, true)
		if !b.Bit(i) {
			t.Errorf("Bit(%d) = false after SetBit(%d, true)", i, i)
		}
		b.SetBit(i, false)
		if b != 0 {
			t.Errorf("SetBit(%d, false) left 0x%x, want 0", i, uint64(b))
		}
	}
}

func TestBitsSetBitPreservesOthers(t *testing.T) {
	b := Bits(0xA5A5_A5A5_A5A5_A5A5)
	b.SetBit(1, true)
	b.SetBit(0, false)
	if want := Bits(0xA5A5_A5A5_A5A5_A5A6); b != want {
		t.Errorf("got 0x%x, want 0x%x", uint64(b), uint64(want))
	}
}

func TestBitsField(t *testing.T) {
	tests := []struct {
		name   string
		in     uint64
		lo, hi uint
		want   uint64
	}{
		{"low nibble", 0x1234, 0, 3, 0x4},
		{"middle byte", 0x1234, 4, 11, 0x23},
		{"mode", 9 << 60, 60, 63, 9},
		{"vsxl", 2 << 32, 32, 33, 2},
		{"single bit", 1 << 22, 22, 22, 1},
		{"full word", 0xDEAD_BEEF_0000_FFFF, 0, 63, 0xDEAD_BEEF_0000_FFFF},
		{"top bit", 1 << 63, 63, 63, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bits(tt.in).Field(tt.lo, tt.hi); got != tt.want {
				t.Errorf("Field(%d, %d) of 0x%x = 0x%x, want 0x%x", tt.lo, tt.hi, tt.in, got, tt.want)
			}
		})
	}
}

func TestBitsSetField(t *testing.T) {
	tests := []struct {
		name   string
		in     uint64
		lo, hi uint
		v      uint64
		want   uint64
	}{
		{"replace nibble", 0xFFFF, 4, 7, 0x0, 0xFF0F},
		{"truncate oversized value", 0, 0, 3, 0xFF, 0xF},
		{"vmid", 0, 44, 57, 0x2A3F, 0x2A3F << 44},
		{"full word", 0x1234, 0, 63, ^uint64(0), ^uint64(0)},
		{"top nibble keeps rest", 0x0FFF_FFFF_FFFF_FFFF, 60, 63, 8, 0x8FFF_FFFF_FFFF_FFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bits(tt.in)
			b.SetField(tt.lo, tt.hi, tt.v)
			if uint64(b) != tt.want {
				t.Errorf("SetField(%d, %d, 0x%x) on 0x%x = 0x%x, want 0x%x", tt.lo, tt.hi, tt.v, tt.in, uint64(b), tt.want)
			}
		})
	}
}

func TestBitsOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Bit(64)", func() { Bits(0).Bit(64) }},
		{"SetBit(64)", func() { var b Bits; b.SetBit(64, true) }},
		{"Field(0, 64)", func() { Bits(0).Field(0, 64) }},
		{"Field(5, 4)", func() { Bits(0).Field(5, 4) }},
		{"SetField(60, 64)", func() { var b Bits; b.SetField(60, 64, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}
