package riscvh

// Hypervisor virtual interrupt pending bits.
var (
	HvipVSSIP = newFlag(CSRHvip, "VSSIP", 2, "inject VS-level software interrupt")
	HvipVSTIP = newFlag(CSRHvip, "VSTIP", 6, "inject VS-level timer interrupt")
	HvipVSEIP = newFlag(CSRHvip, "VSEIP", 10, "inject VS-level external interrupt")
)

var hvipLayout = mustLayout(CSRHvip, "Hypervisor virtual interrupt pending",
	HvipVSSIP.Field, HvipVSTIP.Field, HvipVSEIP.Field,
)

// Hvip injects virtual interrupts into VS-mode.
type Hvip struct{ Value }

// HvipFromBits wraps a raw hvip value.
func HvipFromBits(x uint64) Hvip { return Hvip{Value{Bits(x)}} }

// ReadHvip reads hvip.
func ReadHvip(h *Hart) (Hvip, error) { return readView(h, CSRHvip, HvipFromBits) }

func (Hvip) CSR() CSR { return CSRHvip }

// Layout returns the field map of hvip.
func (Hvip) Layout() *Layout { return hvipLayout }

// Write commits r to hvip.
func (r Hvip) Write(h *Hart) error { return h.Commit(r) }

func (r Hvip) VSSIP() bool      { return r.flag(HvipVSSIP) }
func (r *Hvip) SetVSSIP(v bool) { r.setFlag(HvipVSSIP, v) }
func (r Hvip) VSTIP() bool      { return r.flag(HvipVSTIP) }
func (r *Hvip) SetVSTIP(v bool) { r.setFlag(HvipVSTIP, v) }
func (r Hvip) VSEIP() bool      { return r.flag(HvipVSEIP) }
func (r *Hvip) SetVSEIP(v bool) { r.setFlag(HvipVSEIP, v) }
