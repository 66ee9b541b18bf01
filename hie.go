package riscvh

// Hypervisor interrupt enable bits.
var (
	HieVSSIE = newFlag(CSRHie, "VSSIE", 2, "VS-level software interrupt enable")
	HieVSTIE = newFlag(CSRHie, "VSTIE", 6, "VS-level timer interrupt enable")
	HieVSEIE = newFlag(CSRHie, "VSEIE", 10, "VS-level external interrupt enable")
	HieSGEIE = newFlag(CSRHie, "SGEIE", 12, "supervisor guest external interrupt enable")
)

var hieLayout = mustLayout(CSRHie, "Hypervisor interrupt enable",
	HieVSSIE.Field, HieVSTIE.Field, HieVSEIE.Field, HieSGEIE.Field,
)

// Hie is the hypervisor interrupt enable register.
type Hie struct{ Value }

// HieFromBits wraps a raw hie value.
func HieFromBits(x uint64) Hie { return Hie{Value{Bits(x)}} }

// ReadHie reads hie.
func ReadHie(h *Hart) (Hie, error) { return readView(h, CSRHie, HieFromBits) }

func (Hie) CSR() CSR { return CSRHie }

// Layout returns the field map of hie.
func (Hie) Layout() *Layout { return hieLayout }

// Write commits r to hie.
func (r Hie) Write(h *Hart) error { return h.Commit(r) }

func (r Hie) VSSIE() bool      { return r.flag(HieVSSIE) }
func (r *Hie) SetVSSIE(v bool) { r.setFlag(HieVSSIE, v) }
func (r Hie) VSTIE() bool      { return r.flag(HieVSTIE) }
func (r *Hie) SetVSTIE(v bool) { r.setFlag(HieVSTIE, v) }
func (r Hie) VSEIE() bool      { return r.flag(HieVSEIE) }
func (r *Hie) SetVSEIE(v bool) { r.setFlag(HieVSEIE, v) }
func (r Hie) SGEIE() bool      { return r.flag(HieSGEIE) }
func (r *Hie) SetSGEIE(v bool) { r.setFlag(HieSGEIE, v) }
