package riscvh

import (
	"errors"
	"testing"
)

func TestHgatpBitExact(t *testing.T) {
	g := HgatpFromBits(0)
	g.SetMode(ModeSv48x4)
	g.SetVMID(0x2A3F)
	g.SetPPN(0x123456789AB)

	want := uint64(9<<60 | 0x2A3F<<44 | 0x123456789AB)
	if g.Bits() != want {
		t.Fatalf("Bits() = 0x%016x, want 0x%016x", g.Bits(), want)
	}

	mode, err := g.Mode()
	if err != nil || mode != ModeSv48x4 {
		t.Errorf("Mode() = %v, %v", mode, err)
	}
	if g.VMID() != 0x2A3F {
		t.Errorf("VMID() = 0x%x", g.VMID())
	}
	if g.PPN() != 0x123456789AB {
		t.Errorf("PPN() = 0x%x", g.PPN())
	}
}

func TestHgatpKeepsReservedBits(t *testing.T) {
	g := HgatpFromBits(3 << 58)
	g.SetMode(ModeSv39x4)
	g.SetVMID(^uint64(0))
	if g.Bits()&(3<<58) != 3<<58 {
		t.Errorf("setters disturbed bits 58-59: 0x%016x", g.Bits())
	}
	if g.VMID() != 0x3FFF {
		t.Errorf("VMID() = 0x%x, want truncation to 14 bits", g.VMID())
	}
}

func TestHgatpIllegalMode(t *testing.T) {
	for _, code := range []uint64{1, 7, 10, 15} {
		g := HgatpFromBits(code << 60)
		_, err := g.Mode()
		var fe *FieldValueError
		if !errors.As(err, &fe) {
			t.Errorf("mode %d: error = %v, want *FieldValueError", code, err)
			continue
		}
		if fe.Code != code || fe.CSR != CSRHgatp {
			t.Errorf("mode %d: FieldValueError = %+v", code, *fe)
		}
	}
}

func TestHstatusFields(t *testing.T) {
	s := HstatusFromBits(0)
	s.SetVSXL(VSXL64)
	s.SetVTSR(true)
	s.SetVTW(true)
	s.SetVTVM(true)
	s.SetVGEIN(0x3F)
	s.SetHU(true)
	s.SetSPVP(true)
	s.SetSPV(true)
	s.SetGVA(true)
	s.SetVSBE(true)

	want := uint64(2<<32 | 7<<20 | 0x3F<<12 | 0x1F<<5)
	if s.Bits() != want {
		t.Fatalf("Bits() = 0x%016x, want 0x%016x", s.Bits(), want)
	}

	s.SetSPV(false)
	if s.SPV() || !s.SPVP() || !s.HU() {
		t.Error("clearing SPV disturbed its neighbours")
	}
	if x, err := s.VSXL(); err != nil || x != VSXL64 {
		t.Errorf("VSXL() = %v, %v", x, err)
	}

	if _, err := HstatusFromBits(0).VSXL(); !errors.Is(err, ErrIllegalFieldValue) {
		t.Errorf("VSXL() on zero value error = %v, want ErrIllegalFieldValue", err)
	}
}

func TestVsstatusFields(t *testing.T) {
	s := VsstatusFromBits(0)
	s.SetUXL(UXL64)
	s.SetSD(0xF)
	s.SetFS(3)
	s.SetXS(1)
	s.SetSUM(true)
	s.SetMXR(true)
	s.SetSPP(true)
	s.SetSPIE(true)
	s.SetSIE(true)
	s.SetUBE(true)

	want := uint64(0xF<<60 | 2<<32 | 1<<19 | 1<<18 | 1<<15 | 3<<13 | 1<<8 | 1<<6 | 1<<5 | 1<<1)
	if s.Bits() != want {
		t.Fatalf("Bits() = 0x%016x, want 0x%016x", s.Bits(), want)
	}
	if x, err := s.UXL(); err != nil || x != UXL64 {
		t.Errorf("UXL() = %v, %v", x, err)
	}
	if s.FS() != 3 || s.XS() != 1 || s.SD() != 0xF {
		t.Errorf("FS/XS/SD = %d/%d/%d", s.FS(), s.XS(), s.SD())
	}
}

func TestVsatpFields(t *testing.T) {
	s := VsatpFromBits(0)
	s.SetMode(ModeSv39x4)
	s.SetASID(0xFFFF)
	s.SetPPN(0xABCDE)
	if want := uint64(8<<60 | 0xFFFF<<44 | 0xABCDE); s.Bits() != want {
		t.Fatalf("Bits() = 0x%016x, want 0x%016x", s.Bits(), want)
	}
	if s.ASID() != 0xFFFF || s.PPN() != 0xABCDE {
		t.Errorf("ASID/PPN = 0x%x/0x%x", s.ASID(), s.PPN())
	}
}

func TestHedelegDelegated(t *testing.T) {
	var d Hedeleg
	for _, cause := range []uint{0, 2, 8, 12, 13, 15} {
		if !d.SetDelegated(cause, true) {
			t.Errorf("SetDelegated(%d) rejected a delegable cause", cause)
		}
	}
	for _, cause := range []uint{9, 10, 11, 14, 16, 63, 200} {
		if d.SetDelegated(cause, true) {
			t.Errorf("SetDelegated(%d) accepted a reserved cause", cause)
		}
		if d.Delegated(cause) {
			t.Errorf("Delegated(%d) = true for a reserved cause", cause)
		}
	}
	if want := uint64(1<<0 | 1<<2 | 1<<8 | 1<<12 | 1<<13 | 1<<15); d.Bits() != want {
		t.Errorf("Bits() = 0x%x, want 0x%x", d.Bits(), want)
	}
	if !d.EX2() || d.EX3() || !d.EX15() {
		t.Error("named accessors disagree with Delegated")
	}
}

func TestHcounterenHPM(t *testing.T) {
	var c Hcounteren
	c.SetCY(true)
	c.SetHPM(3, true)
	c.SetHPM(31, true)
	if want := uint64(1 | 1<<3 | 1<<31); c.Bits() != want {
		t.Errorf("Bits() = 0x%x, want 0x%x", c.Bits(), want)
	}
	if !c.HPM(31) || c.HPM(4) {
		t.Error("HPM() disagrees with SetHPM")
	}
	if HPMFlag(7).Mask() != 1<<7 {
		t.Errorf("HPMFlag(7).Mask() = 0x%x", HPMFlag(7).Mask())
	}

	for _, n := range []uint{0, 2, 32} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("HPM(%d) did not panic", n)
				}
			}()
			c.HPM(n)
		}()
	}
}

func TestHgeieGEI(t *testing.T) {
	var e Hgeie
	e.SetEnabled(1, true)
	e.SetEnabled(63, true)
	if want := uint64(1<<1 | 1<<63); e.Bits() != want {
		t.Errorf("Bits() = 0x%x, want 0x%x", e.Bits(), want)
	}
	if !e.Enabled(63) || e.Enabled(2) {
		t.Error("Enabled() disagrees with SetEnabled")
	}
	if !HgeipFromBits(1 << 5).Pending(5) {
		t.Error("Pending(5) = false")
	}

	defer func() {
		if recover() == nil {
			t.Error("GEIFlag(0) did not panic")
		}
	}()
	GEIFlag(0)
}

func TestVstvecAndVscause(t *testing.T) {
	v := VstvecFromBits(0)
	v.SetBase(0x8000_0100 >> 2)
	v.SetMode(1)
	if v.Address() != 0x8000_0100 || v.Mode() != 1 {
		t.Errorf("Address/Mode = 0x%x/%d", v.Address(), v.Mode())
	}
	if v.Bits() != 0x8000_0101 {
		t.Errorf("Bits() = 0x%x", v.Bits())
	}

	c := VscauseFromBits(0)
	c.SetInterrupt(true)
	c.SetCode(5)
	if c.Bits() != 1<<63|5 {
		t.Errorf("Bits() = 0x%x", c.Bits())
	}
	if !c.Interrupt() || c.Code() != 5 {
		t.Errorf("Interrupt/Code = %v/%d", c.Interrupt(), c.Code())
	}
}

func TestInterruptViews(t *testing.T) {
	var d Hideleg
	d.SetSIP(true)
	d.SetEIP(true)
	if d.Bits() != 1<<2|1<<10 {
		t.Errorf("hideleg = 0x%x", d.Bits())
	}

	var v Hvip
	v.SetVSTIP(true)
	if v.Bits() != 1<<6 {
		t.Errorf("hvip = 0x%x", v.Bits())
	}

	var e Hie
	e.SetSGEIE(true)
	if e.Bits() != 1<<12 {
		t.Errorf("hie = 0x%x", e.Bits())
	}

	var se Vsie
	se.SetSEIE(true)
	if se.Bits() != 1<<9 {
		t.Errorf("vsie = 0x%x", se.Bits())
	}

	if !VsipFromBits(1 << 5).STIP() || !HipFromBits(1 << 12).SGEIP() {
		t.Error("pending views misread their bits")
	}
}

func TestViewsAreValues(t *testing.T) {
	a := HstatusFromBits(0)
	b := a
	b.SetVTSR(true)
	if a.VTSR() {
		t.Error("modifying a copy changed the original")
	}
}
