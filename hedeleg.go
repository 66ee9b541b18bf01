package riscvh

// Hypervisor exception delegation bits, one per synchronous exception cause.
// Causes 9-11, 14 and 16+ are reserved and never touched by a setter.
var (
	HedelegEX0  = newFlag(CSRHedeleg, "EX0", 0, "instruction address misaligned")
	HedelegEX1  = newFlag(CSRHedeleg, "EX1", 1, "instruction access fault")
	HedelegEX2  = newFlag(CSRHedeleg, "EX2", 2, "illegal instruction")
	HedelegEX3  = newFlag(CSRHedeleg, "EX3", 3, "breakpoint")
	HedelegEX4  = newFlag(CSRHedeleg, "EX4", 4, "load address misaligned")
	HedelegEX5  = newFlag(CSRHedeleg, "EX5", 5, "load access fault")
	HedelegEX6  = newFlag(CSRHedeleg, "EX6", 6, "store/AMO address misaligned")
	HedelegEX7  = newFlag(CSRHedeleg, "EX7", 7, "store/AMO access fault")
	HedelegEX8  = newFlag(CSRHedeleg, "EX8", 8, "environment call from U-mode or VU-mode")
	HedelegEX12 = newFlag(CSRHedeleg, "EX12", 12, "instruction page fault")
	HedelegEX13 = newFlag(CSRHedeleg, "EX13", 13, "load page fault")
	HedelegEX15 = newFlag(CSRHedeleg, "EX15", 15, "store/AMO page fault")
)

var hedelegFlags = []Flag{
	HedelegEX0, HedelegEX1, HedelegEX2, HedelegEX3, HedelegEX4, HedelegEX5,
	HedelegEX6, HedelegEX7, HedelegEX8, HedelegEX12, HedelegEX13, HedelegEX15,
}

var hedelegLayout = mustLayout(CSRHedeleg, "Hypervisor exception delegation", flagFields(hedelegFlags)...)

// Hedeleg is the hypervisor exception delegation register. A set bit sends
// the matching exception raised in VS/VU-mode to VS-mode instead of HS-mode.
type Hedeleg struct{ Value }

// HedelegFromBits wraps a raw hedeleg value.
func HedelegFromBits(x uint64) Hedeleg { return Hedeleg{Value{Bits(x)}} }

// ReadHedeleg reads hedeleg.
func ReadHedeleg(h *Hart) (Hedeleg, error) { return readView(h, CSRHedeleg, HedelegFromBits) }

func (Hedeleg) CSR() CSR { return CSRHedeleg }

// Layout returns the field map of hedeleg.
func (Hedeleg) Layout() *Layout { return hedelegLayout }

// Write commits r to hedeleg.
func (r Hedeleg) Write(h *Hart) error { return h.Commit(r) }

// Delegated reports whether exception cause is delegated. Reserved causes
// report false.
func (r Hedeleg) Delegated(cause uint) bool {
	f, ok := hedelegFlag(cause)
	return ok && r.flag(f)
}

// SetDelegated delegates or stops delegating exception cause. Reserved
// causes are ignored and report false.
func (r *Hedeleg) SetDelegated(cause uint, v bool) bool {
	f, ok := hedelegFlag(cause)
	if ok {
		r.setFlag(f, v)
	}
	return ok
}

func hedelegFlag(cause uint) (Flag, bool) {
	for _, f := range hedelegFlags {
		if f.Bit() == cause {
			return f, true
		}
	}
	return Flag{}, false
}

func (r Hedeleg) EX0() bool       { return r.flag(HedelegEX0) }
func (r *Hedeleg) SetEX0(v bool)  { r.setFlag(HedelegEX0, v) }
func (r Hedeleg) EX1() bool       { return r.flag(HedelegEX1) }
func (r *Hedeleg) SetEX1(v bool)  { r.setFlag(HedelegEX1, v) }
func (r Hedeleg) EX2() bool       { return r.flag(HedelegEX2) }
func (r *Hedeleg) SetEX2(v bool)  { r.setFlag(HedelegEX2, v) }
func (r Hedeleg) EX3() bool       { return r.flag(HedelegEX3) }
func (r *Hedeleg) SetEX3(v bool)  { r.setFlag(HedelegEX3, v) }
func (r Hedeleg) EX4() bool       { return r.flag(HedelegEX4) }
func (r *Hedeleg) SetEX4(v bool)  { r.setFlag(HedelegEX4, v) }
func (r Hedeleg) EX5() bool       { return r.flag(HedelegEX5) }
func (r *Hedeleg) SetEX5(v bool)  { r.setFlag(HedelegEX5, v) }
func (r Hedeleg) EX6() bool       { return r.flag(HedelegEX6) }
func (r *Hedeleg) SetEX6(v bool)  { r.setFlag(HedelegEX6, v) }
func (r Hedeleg) EX7() bool       { return r.flag(HedelegEX7) }
func (r *Hedeleg) SetEX7(v bool)  { r.setFlag(HedelegEX7, v) }
func (r Hedeleg) EX8() bool       { return r.flag(HedelegEX8) }
func (r *Hedeleg) SetEX8(v bool)  { r.setFlag(HedelegEX8, v) }
func (r Hedeleg) EX12() bool      { return r.flag(HedelegEX12) }
func (r *Hedeleg) SetEX12(v bool) { r.setFlag(HedelegEX12, v) }
func (r Hedeleg) EX13() bool      { return r.flag(HedelegEX13) }
func (r *Hedeleg) SetEX13(v bool) { r.setFlag(HedelegEX13, v) }
func (r Hedeleg) EX15() bool      { return r.flag(HedelegEX15) }
func (r *Hedeleg) SetEX15(v bool) { r.setFlag(HedelegEX15, v) }
