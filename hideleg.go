package riscvh

// Hypervisor interrupt delegation bits.
var (
	HidelegSIP = newFlag(CSRHideleg, "SIP", 2, "VS-level software interrupt")
	HidelegTIP = newFlag(CSRHideleg, "TIP", 6, "VS-level timer interrupt")
	HidelegEIP = newFlag(CSRHideleg, "EIP", 10, "VS-level external interrupt")
)

var hidelegLayout = mustLayout(CSRHideleg, "Hypervisor interrupt delegation",
	HidelegSIP.Field, HidelegTIP.Field, HidelegEIP.Field,
)

// Hideleg is the hypervisor interrupt delegation register. A set bit sends
// the matching VS-level interrupt to VS-mode instead of HS-mode.
type Hideleg struct{ Value }

// HidelegFromBits wraps a raw hideleg value.
func HidelegFromBits(x uint64) Hideleg { return Hideleg{Value{Bits(x)}} }

// ReadHideleg reads hideleg.
func ReadHideleg(h *Hart) (Hideleg, error) { return readView(h, CSRHideleg, HidelegFromBits) }

func (Hideleg) CSR() CSR { return CSRHideleg }

// Layout returns the field map of hideleg.
func (Hideleg) Layout() *Layout { return hidelegLayout }

// Write commits r to hideleg.
func (r Hideleg) Write(h *Hart) error { return h.Commit(r) }

func (r Hideleg) SIP() bool      { return r.flag(HidelegSIP) }
func (r *Hideleg) SetSIP(v bool) { r.setFlag(HidelegSIP, v) }
func (r Hideleg) TIP() bool      { return r.flag(HidelegTIP) }
func (r *Hideleg) SetTIP(v bool) { r.setFlag(HidelegTIP, v) }
func (r Hideleg) EIP() bool      { return r.flag(HidelegEIP) }
func (r *Hideleg) SetEIP(v bool) { r.setFlag(HidelegEIP, v) }
