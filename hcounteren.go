package riscvh

import "fmt"

// Hypervisor counter enable fields.
var (
	HcounterenCY  = newFlag(CSRHcounteren, "CY", 0, "cycle counter visible to VS/VU-mode")
	HcounterenTM  = newFlag(CSRHcounteren, "TM", 1, "time counter visible to VS/VU-mode")
	HcounterenIR  = newFlag(CSRHcounteren, "IR", 2, "instret counter visible to VS/VU-mode")
	HcounterenHPM = newField(CSRHcounteren, "HPM", 3, 31, "hpmcounter3..hpmcounter31 visible to VS/VU-mode")
)

var hcounterenLayout = mustLayout(CSRHcounteren, "Hypervisor counter enable",
	HcounterenHPM, HcounterenIR.Field, HcounterenTM.Field, HcounterenCY.Field,
)

// Hcounteren controls which counters VS/VU-mode may read.
type Hcounteren struct{ Value }

// HcounterenFromBits wraps a raw hcounteren value.
func HcounterenFromBits(x uint64) Hcounteren { return Hcounteren{Value{Bits(x)}} }

// ReadHcounteren reads hcounteren.
func ReadHcounteren(h *Hart) (Hcounteren, error) {
	return readView(h, CSRHcounteren, HcounterenFromBits)
}

func (Hcounteren) CSR() CSR { return CSRHcounteren }

// Layout returns the field map of hcounteren.
func (Hcounteren) Layout() *Layout { return hcounterenLayout }

// Write commits r to hcounteren.
func (r Hcounteren) Write(h *Hart) error { return h.Commit(r) }

func (r Hcounteren) CY() bool      { return r.flag(HcounterenCY) }
func (r *Hcounteren) SetCY(v bool) { r.setFlag(HcounterenCY, v) }
func (r Hcounteren) TM() bool      { return r.flag(HcounterenTM) }
func (r *Hcounteren) SetTM(v bool) { r.setFlag(HcounterenTM, v) }
func (r Hcounteren) IR() bool      { return r.flag(HcounterenIR) }
func (r *Hcounteren) SetIR(v bool) { r.setFlag(HcounterenIR, v) }

// HPM reports whether hpmcounter n (3..31) is visible to the guest.
func (r Hcounteren) HPM(n uint) bool {
	return r.bits.Bit(hpmBit(n))
}

// SetHPM exposes or hides hpmcounter n (3..31).
func (r *Hcounteren) SetHPM(n uint, v bool) {
	r.bits.SetBit(hpmBit(n), v)
}

// HPMFlag returns the flag for hpmcounter n, for use with Hart.SetFlag.
func HPMFlag(n uint) Flag {
	b := hpmBit(n)
	return newFlag(CSRHcounteren, fmt.Sprintf("HPM%d", n), b, "hpmcounter visible to VS/VU-mode")
}

func hpmBit(n uint) uint {
	if n < 3 || n > 31 {
		panic(fmt.Sprintf("riscvh: hpmcounter %d out of range 3..31", n))
	}
	return n
}
