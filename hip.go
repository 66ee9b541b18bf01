package riscvh

// Hypervisor interrupt pending bits.
var (
	HipVSSIP = newFlag(CSRHip, "VSSIP", 2, "VS-level software interrupt pending")
	HipVSTIP = newFlag(CSRHip, "VSTIP", 6, "VS-level timer interrupt pending")
	HipVSEIP = newFlag(CSRHip, "VSEIP", 10, "VS-level external interrupt pending")
	HipSGEIP = newFlag(CSRHip, "SGEIP", 12, "supervisor guest external interrupt pending")
)

var hipLayout = mustLayout(CSRHip, "Hypervisor interrupt pending",
	HipVSSIP.Field, HipVSTIP.Field, HipVSEIP.Field, HipSGEIP.Field,
)

// Hip is the hypervisor interrupt pending register.
type Hip struct{ Value }

// HipFromBits wraps a raw hip value.
func HipFromBits(x uint64) Hip { return Hip{Value{Bits(x)}} }

// ReadHip reads hip.
func ReadHip(h *Hart) (Hip, error) { return readView(h, CSRHip, HipFromBits) }

func (Hip) CSR() CSR { return CSRHip }

// Layout returns the field map of hip.
func (Hip) Layout() *Layout { return hipLayout }

// Write commits r to hip.
func (r Hip) Write(h *Hart) error { return h.Commit(r) }

func (r Hip) VSSIP() bool      { return r.flag(HipVSSIP) }
func (r *Hip) SetVSSIP(v bool) { r.setFlag(HipVSSIP, v) }
func (r Hip) VSTIP() bool      { return r.flag(HipVSTIP) }
func (r *Hip) SetVSTIP(v bool) { r.setFlag(HipVSTIP, v) }
func (r Hip) VSEIP() bool      { return r.flag(HipVSEIP) }
func (r *Hip) SetVSEIP(v bool) { r.setFlag(HipVSEIP, v) }
func (r Hip) SGEIP() bool      { return r.flag(HipSGEIP) }
func (r *Hip) SetSGEIP(v bool) { r.setFlag(HipSGEIP, v) }
