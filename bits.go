package riscvh

import "fmt"

// WordBits is the width of every register handled by this package (RV64).
const WordBits = 64

// Bits is a machine word with bit and bit-range accessors.
//
// Ranges are inclusive on both ends, matching the way the privileged
// architecture manual writes them (e.g. VSXL is bits 33:32). Indices outside
// the word, or a range with lo > hi, are programming errors and panic.
type Bits uint64

// Bit reports whether bit i is set.
func (b Bits) Bit(i uint) bool {
	checkBit(i)
	return b&(1<<i) != 0
}

// SetBit sets or clears bit i, leaving every other bit unchanged.
func (b *Bits) SetBit(i uint, v bool) {
	checkBit(i)
	if v {
		*b |= 1 << i
	} else {
		*b &^= 1 << i
	}
}

// Field returns bits lo..hi shifted down to bit 0.
func (b Bits) Field(lo, hi uint) uint64 {
	return (uint64(b) & rangeMask(lo, hi)) >> lo
}

// SetField writes v into bits lo..hi. Only the low hi-lo+1 bits of v are
// used; callers are responsible for passing a value that fits.
func (b *Bits) SetField(lo, hi uint, v uint64) {
	m := rangeMask(lo, hi)
	*b = Bits((uint64(*b) &^ m) | ((v << lo) & m))
}

// rangeMask returns the in-place mask for bits lo..hi.
func rangeMask(lo, hi uint) uint64 {
	checkRange(lo, hi)
	width := hi - lo + 1
	if width == WordBits {
		return ^uint64(0)
	}
	return ((1 << width) - 1) << lo
}

func checkBit(i uint) {
	if i >= WordBits {
		panic(fmt.Sprintf("riscvh: bit %d out of range (word is %d bits)", i, WordBits))
	}
}

func checkRange(lo, hi uint) {
	if lo > hi || hi >= WordBits {
		panic(fmt.Sprintf("riscvh: bit range %d..%d out of range (word is %d bits)", lo, hi, WordBits))
	}
}
