// Package riscvh provides typed access to the RISC-V hypervisor extension
// control and status registers (hstatus, hgatp, hedeleg, vsstatus, vsatp
// and the rest of the H-extension set).
//
// Every register is a plain value type wrapping its 64-bit raw word, with
// named getters and setters for each field. Views can be built, inspected
// and modified freely; only committing them to hardware needs privilege.
//
// # Requirements
//
//   - RV64 hart implementing the H extension
//   - HS-mode (or M-mode) execution context for any hardware access
//   - A raw CSR access primitive implementing Accessor
//
// # Basic Usage
//
// Build a register value without touching hardware:
//
//	g := riscvh.HgatpFromBits(0)
//	g.SetMode(riscvh.ModeSv48x4)
//	g.SetVMID(0x2A3F)
//	g.SetPPN(rootTablePhys >> 12)
//	fmt.Printf("hgatp = 0x%016x\n", g.Bits())
//
// Bind the privileged context once and commit through it:
//
//	hart, err := riscvh.NewHart(acc) // acc wraps csrr/csrw/csrs/csrc
//	if err != nil {
//		log.Fatal("Failed to bind hart:", err)
//	}
//	defer hart.Close()
//
//	if err := g.Write(hart); err != nil {
//		log.Fatal("Failed to write hgatp:", err)
//	}
//
// Read, modify and write back:
//
//	s, err := riscvh.ReadHstatus(hart)
//	if err != nil {
//		log.Fatal("Failed to read hstatus:", err)
//	}
//	s.SetVTSR(true)
//	s.SetSPV(true)
//	if err := s.Write(hart); err != nil {
//		log.Fatal("Failed to write hstatus:", err)
//	}
//
// Flip single bits in place with the atomic set/clear primitives:
//
//	_ = hart.SetFlag(riscvh.HstatusVTW)
//	_ = hart.ClearFlag(riscvh.HieVSTIE)
//
// # Enumerated Fields
//
// Fields with a closed set of legal codes (hgatp.MODE, vsatp.MODE,
// hstatus.VSXL, vsstatus.UXL) decode through typed enums. A code outside
// the legal set is reported, never coerced:
//
//	mode, err := g.Mode()
//	if errors.Is(err, riscvh.ErrIllegalFieldValue) {
//		var fe *riscvh.FieldValueError
//		errors.As(err, &fe)
//		fmt.Printf("hgatp.MODE holds code %d\n", fe.Code)
//	}
//
// # Layouts
//
// Every register's field map is available at run time through LayoutOf and
// Layouts, for generic decoding, encoding and dumping of raw values:
//
//	l, _ := riscvh.LayoutOf(riscvh.CSRHgatp)
//	fields, err := l.Decode(raw)
//	word, err := l.Encode(0, map[string]string{"MODE": "Sv39x4", "VMID": "7"})
//
// # Emulation
//
// Package csrfile provides an in-memory Accessor with the architectural
// access rules (reserved bits read as zero, read-only CSRs, address-encoded
// privilege), for tools and tests.
//
// # Error Handling
//
// Errors wrap the sentinels of this package (ErrUnknownCSR, ErrReadOnly,
// ErrHartClosed, ...) and are matched with errors.Is. Set RISCVH_ENV=production
// to reduce messages to their short form.
//
// # Platform Support
//
// Register values are portable. Supported reports whether the running Linux
// kernel sees a riscv64 hart with the H extension; other platforms return
// ErrUnsupported.
package riscvh
