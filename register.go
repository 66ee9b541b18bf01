package riscvh

// Register is implemented by every register view.
type Register interface {
	// CSR returns the register number the view commits to.
	CSR() CSR
	// Bits returns the exact raw value.
	Bits() uint64
}

// Value is the raw word behind a register view. Views embed it; it is a
// plain value, so copies never share state.
type Value struct {
	bits Bits
}

// Bits returns the raw register value.
func (v Value) Bits() uint64 { return uint64(v.bits) }

func (v Value) flag(f Flag) bool { return v.bits.Bit(f.Lo) }

func (v *Value) setFlag(f Flag, on bool) { v.bits.SetBit(f.Lo, on) }

func (v Value) field(f Field) uint64 { return v.bits.Field(f.Lo, f.Hi) }

func (v *Value) setField(f Field, x uint64) { v.bits.SetField(f.Lo, f.Hi, x) }

// enumField decodes an enumerated field, failing on codes outside its set.
func enumField[T ~uint8](v Value, f Field) (T, error) {
	code := v.field(f)
	if err := f.Enum.decode(f, code); err != nil {
		return 0, err
	}
	return T(code), nil
}

// readView reads csr through h and wraps the word with wrap.
func readView[T any](h *Hart, csr CSR, wrap func(uint64) T) (T, error) {
	raw, err := h.Read(csr)
	if err != nil {
		var zero T
		return zero, err
	}
	return wrap(raw), nil
}
