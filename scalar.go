package riscvh

// Registers that hold a plain word with no sub-fields.
var (
	_ = rawLayout(CSRVsscratch, "Virtual supervisor scratch")
	_ = rawLayout(CSRVsepc, "Virtual supervisor exception program counter")
	_ = rawLayout(CSRVstval, "Virtual supervisor trap value")
	_ = rawLayout(CSRHtval, "Hypervisor trap value (guest physical address >> 2)")
	_ = rawLayout(CSRHtinst, "Hypervisor trap instruction (transformed)")
	_ = rawLayout(CSRHtimedelta, "Hypervisor time delta")
	_ = rawLayout(CSRHtimedeltah, "Hypervisor time delta, high half (RV32)")
)

// ReadVsscratch reads vsscratch.
func ReadVsscratch(h *Hart) (uint64, error) { return h.Read(CSRVsscratch) }

// WriteVsscratch writes vsscratch.
func WriteVsscratch(h *Hart, v uint64) error { return h.Write(CSRVsscratch, v) }

// ReadVsepc reads vsepc.
func ReadVsepc(h *Hart) (uint64, error) { return h.Read(CSRVsepc) }

// WriteVsepc writes vsepc.
func WriteVsepc(h *Hart, v uint64) error { return h.Write(CSRVsepc, v) }

// ReadVstval reads vstval.
func ReadVstval(h *Hart) (uint64, error) { return h.Read(CSRVstval) }

// WriteVstval writes vstval.
func WriteVstval(h *Hart, v uint64) error { return h.Write(CSRVstval, v) }

// ReadHtval reads htval.
func ReadHtval(h *Hart) (uint64, error) { return h.Read(CSRHtval) }

// WriteHtval writes htval.
func WriteHtval(h *Hart, v uint64) error { return h.Write(CSRHtval, v) }

// ReadHtinst reads htinst.
func ReadHtinst(h *Hart) (uint64, error) { return h.Read(CSRHtinst) }

// WriteHtinst writes htinst.
func WriteHtinst(h *Hart, v uint64) error { return h.Write(CSRHtinst, v) }

// ReadHtimedelta reads htimedelta.
func ReadHtimedelta(h *Hart) (uint64, error) { return h.Read(CSRHtimedelta) }

// WriteHtimedelta writes htimedelta.
func WriteHtimedelta(h *Hart, v uint64) error { return h.Write(CSRHtimedelta, v) }

// ReadHtimedeltah reads htimedeltah. The register only exists on RV32.
func ReadHtimedeltah(h *Hart) (uint64, error) { return h.Read(CSRHtimedeltah) }

// WriteHtimedeltah writes htimedeltah. The register only exists on RV32.
func WriteHtimedeltah(h *Hart, v uint64) error { return h.Write(CSRHtimedeltah, v) }

// ReadHtimedelta64 returns the full 64-bit time delta. With xlen 32 the
// value is split across htimedeltah:htimedelta and the high half is re-read
// until it is stable, so a carry between the two reads is never observed.
func ReadHtimedelta64(h *Hart, xlen int) (uint64, error) {
	if xlen != 32 {
		return ReadHtimedelta(h)
	}
	for {
		hi, err := ReadHtimedeltah(h)
		if err != nil {
			return 0, err
		}
		lo, err := ReadHtimedelta(h)
		if err != nil {
			return 0, err
		}
		again, err := ReadHtimedeltah(h)
		if err != nil {
			return 0, err
		}
		if hi == again {
			return (hi&0xFFFFFFFF)<<32 | lo&0xFFFFFFFF, nil
		}
	}
}
