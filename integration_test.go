package riscvh_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"

	"github.com/blacktop/go-riscvh"
	"github.com/blacktop/go-riscvh/csrfile"
)

// TestGuestSetupIntegration walks through the CSR writes a hypervisor makes
// before entering a guest, against the emulated CSR file.
func TestGuestSetupIntegration(t *testing.T) {
	var logs []string
	logger := funcr.New(func(prefix, args string) {
		logs = append(logs, args)
	}, funcr.Options{Verbosity: 1})

	file := csrfile.New()
	hart, err := riscvh.NewHart(file, riscvh.WithLogger(logger))
	if err != nil {
		t.Fatalf("Failed to bind hart: %v", err)
	}
	defer func() {
		if err := hart.Close(); err != nil {
			t.Errorf("Failed to close hart: %v", err)
		}
	}()

	// G-stage translation for VMID 1
	g := riscvh.HgatpFromBits(0)
	g.SetMode(riscvh.ModeSv39x4)
	g.SetVMID(1)
	g.SetPPN(0x80200)
	if err := g.Write(hart); err != nil {
		t.Fatalf("Failed to write hgatp: %v", err)
	}

	// Delegate the usual exceptions and VS-level interrupts to the guest
	var ed riscvh.Hedeleg
	for _, cause := range []uint{0, 3, 8, 12, 13, 15} {
		ed.SetDelegated(cause, true)
	}
	if err := ed.Write(hart); err != nil {
		t.Fatalf("Failed to write hedeleg: %v", err)
	}
	var id riscvh.Hideleg
	id.SetSIP(true)
	id.SetTIP(true)
	id.SetEIP(true)
	if err := id.Write(hart); err != nil {
		t.Fatalf("Failed to write hideleg: %v", err)
	}

	// Return to VS-mode on sret
	s, err := riscvh.ReadHstatus(hart)
	if err != nil {
		t.Fatalf("Failed to read hstatus: %v", err)
	}
	s.SetVSXL(riscvh.VSXL64)
	s.SetSPV(true)
	s.SetSPVP(true)
	if err := s.Write(hart); err != nil {
		t.Fatalf("Failed to write hstatus: %v", err)
	}

	// Guest entry point and a pending timer interrupt
	if err := riscvh.WriteVsepc(hart, 0x8000_0000); err != nil {
		t.Fatalf("Failed to write vsepc: %v", err)
	}
	if err := hart.SetFlag(riscvh.HvipVSTIP); err != nil {
		t.Fatalf("Failed to set hvip.VSTIP: %v", err)
	}

	snap := file.Snapshot()
	want := map[riscvh.CSR]uint64{
		riscvh.CSRHgatp:   8<<60 | 1<<44 | 0x80200,
		riscvh.CSRHedeleg: 1<<0 | 1<<3 | 1<<8 | 1<<12 | 1<<13 | 1<<15,
		riscvh.CSRHideleg: 1<<2 | 1<<6 | 1<<10,
		riscvh.CSRHstatus: 2<<32 | 1<<8 | 1<<7,
		riscvh.CSRVsepc:   0x8000_0000,
		riscvh.CSRHvip:    1 << 6,
	}
	for csr, v := range want {
		if snap[csr] != v {
			t.Errorf("%s = 0x%016x, want 0x%016x", csr, snap[csr], v)
		}
	}

	// Decode the final hgatp through its layout
	l, _ := riscvh.LayoutOf(riscvh.CSRHgatp)
	fields, err := l.Decode(snap[riscvh.CSRHgatp])
	if err != nil {
		t.Fatalf("Failed to decode hgatp: %v", err)
	}
	if fields[0].Variant != "Sv39x4" {
		t.Errorf("hgatp.MODE decoded as %q", fields[0].Variant)
	}

	// Every access was logged at V(1)
	var writes int
	for _, l := range logs {
		if strings.Contains(l, `"csr write"`) {
			writes++
		}
	}
	if writes != 5 {
		t.Errorf("Expected 5 logged writes, got %d", writes)
	}
}

func TestHypervisorOnlyFromHSMode(t *testing.T) {
	file := csrfile.New(csrfile.WithPrivilege(riscvh.PrivSupervisor))
	hart, err := riscvh.NewHart(file)
	if err != nil {
		t.Fatalf("Failed to bind hart: %v", err)
	}
	defer hart.Close()

	if _, err := riscvh.ReadHstatus(hart); !errors.Is(err, riscvh.ErrPrivilege) {
		t.Errorf("ReadHstatus() from S-mode error = %v, want ErrPrivilege", err)
	}
	if err := riscvh.HgatpFromBits(0).Write(hart); !errors.Is(err, riscvh.ErrPrivilege) {
		t.Errorf("hgatp write from S-mode error = %v, want ErrPrivilege", err)
	}
}
