package riscvh

// Virtual supervisor interrupt pending bits.
var (
	VsipSSIP = newFlag(CSRVsip, "SSIP", 1, "supervisor software interrupt pending")
	VsipSTIP = newFlag(CSRVsip, "STIP", 5, "supervisor timer interrupt pending")
	VsipSEIP = newFlag(CSRVsip, "SEIP", 9, "supervisor external interrupt pending")
)

var vsipLayout = mustLayout(CSRVsip, "Virtual supervisor interrupt pending",
	VsipSSIP.Field, VsipSTIP.Field, VsipSEIP.Field,
)

// Vsip is the VS-mode view of sip.
type Vsip struct{ Value }

// VsipFromBits wraps a raw vsip value.
func VsipFromBits(x uint64) Vsip { return Vsip{Value{Bits(x)}} }

// ReadVsip reads vsip.
func ReadVsip(h *Hart) (Vsip, error) { return readView(h, CSRVsip, VsipFromBits) }

func (Vsip) CSR() CSR { return CSRVsip }

// Layout returns the field map of vsip.
func (Vsip) Layout() *Layout { return vsipLayout }

// Write commits r to vsip.
func (r Vsip) Write(h *Hart) error { return h.Commit(r) }

func (r Vsip) SSIP() bool      { return r.flag(VsipSSIP) }
func (r *Vsip) SetSSIP(v bool) { r.setFlag(VsipSSIP, v) }
func (r Vsip) STIP() bool      { return r.flag(VsipSTIP) }
func (r *Vsip) SetSTIP(v bool) { r.setFlag(VsipSTIP, v) }
func (r Vsip) SEIP() bool      { return r.flag(VsipSEIP) }
func (r *Vsip) SetSEIP(v bool) { r.setFlag(VsipSEIP, v) }
