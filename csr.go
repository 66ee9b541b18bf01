package riscvh

import (
	"fmt"
	"sort"
	"strings"
)

// CSR is a control-and-status register number in the 12-bit CSR address space.
type CSR uint16

// Hypervisor and virtual-supervisor CSRs.
const (
	CSRVsstatus    CSR = 0x200
	CSRVsie        CSR = 0x204
	CSRVstvec      CSR = 0x205
	CSRVsscratch   CSR = 0x240
	CSRVsepc       CSR = 0x241
	CSRVscause     CSR = 0x242
	CSRVstval      CSR = 0x243
	CSRVsip        CSR = 0x244
	CSRVsatp       CSR = 0x280
	CSRHstatus     CSR = 0x600
	CSRHedeleg     CSR = 0x602
	CSRHideleg     CSR = 0x603
	CSRHie         CSR = 0x604
	CSRHtimedelta  CSR = 0x605
	CSRHcounteren  CSR = 0x606
	CSRHgeie       CSR = 0x607
	CSRHtimedeltah CSR = 0x615
	CSRHtval       CSR = 0x643
	CSRHip         CSR = 0x644
	CSRHvip        CSR = 0x645
	CSRHtinst      CSR = 0x64A
	CSRHgatp       CSR = 0x680
	CSRHgeip       CSR = 0xE12
)

var csrNames = map[CSR]string{
	CSRVsstatus:    "vsstatus",
	CSRVsie:        "vsie",
	CSRVstvec:      "vstvec",
	CSRVsscratch:   "vsscratch",
	CSRVsepc:       "vsepc",
	CSRVscause:     "vscause",
	CSRVstval:      "vstval",
	CSRVsip:        "vsip",
	CSRVsatp:       "vsatp",
	CSRHstatus:     "hstatus",
	CSRHedeleg:     "hedeleg",
	CSRHideleg:     "hideleg",
	CSRHie:         "hie",
	CSRHtimedelta:  "htimedelta",
	CSRHcounteren:  "hcounteren",
	CSRHgeie:       "hgeie",
	CSRHtimedeltah: "htimedeltah",
	CSRHtval:       "htval",
	CSRHip:         "hip",
	CSRHvip:        "hvip",
	CSRHtinst:      "htinst",
	CSRHgatp:       "hgatp",
	CSRHgeip:       "hgeip",
}

// Privilege levels as encoded in CSR address bits 9:8.
const (
	PrivUser       uint8 = 0
	PrivSupervisor uint8 = 1
	PrivHypervisor uint8 = 2
	PrivMachine    uint8 = 3
)

func (c CSR) String() string {
	if name, ok := csrNames[c]; ok {
		return name
	}
	return fmt.Sprintf("csr(0x%03x)", uint16(c))
}

// Known reports whether c is one of the registers this package defines.
func (c CSR) Known() bool {
	_, ok := csrNames[c]
	return ok
}

// Privilege returns the lowest privilege level allowed to access c.
func (c CSR) Privilege() uint8 {
	return uint8(c>>8) & 3
}

// ReadOnly reports whether the address encodes a read-only CSR.
func (c CSR) ReadOnly() bool {
	return (c>>10)&3 == 3
}

// CSRs returns every defined CSR in address order.
func CSRs() []CSR {
	out := make([]CSR, 0, len(csrNames))
	for c := range csrNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LookupCSR resolves a register by name ("hgatp") or number ("0x680").
func LookupCSR(s string) (CSR, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range csrNames {
		if name == s {
			return c, nil
		}
	}
	n, err := parseUint(s)
	if err == nil && n <= 0xFFF && CSR(n).Known() {
		return CSR(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCSR, s)
}
