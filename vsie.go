package riscvh

// Virtual supervisor interrupt enable bits.
var (
	VsieSSIE = newFlag(CSRVsie, "SSIE", 1, "supervisor software interrupt enable")
	VsieSTIE = newFlag(CSRVsie, "STIE", 5, "supervisor timer interrupt enable")
	VsieSEIE = newFlag(CSRVsie, "SEIE", 9, "supervisor external interrupt enable")
)

var vsieLayout = mustLayout(CSRVsie, "Virtual supervisor interrupt enable",
	VsieSSIE.Field, VsieSTIE.Field, VsieSEIE.Field,
)

// Vsie is the VS-mode view of sie.
type Vsie struct{ Value }

// VsieFromBits wraps a raw vsie value.
func VsieFromBits(x uint64) Vsie { return Vsie{Value{Bits(x)}} }

// ReadVsie reads vsie.
func ReadVsie(h *Hart) (Vsie, error) { return readView(h, CSRVsie, VsieFromBits) }

func (Vsie) CSR() CSR { return CSRVsie }

// Layout returns the field map of vsie.
func (Vsie) Layout() *Layout { return vsieLayout }

// Write commits r to vsie.
func (r Vsie) Write(h *Hart) error { return h.Commit(r) }

func (r Vsie) SSIE() bool      { return r.flag(VsieSSIE) }
func (r *Vsie) SetSSIE(v bool) { r.setFlag(VsieSSIE, v) }
func (r Vsie) STIE() bool      { return r.flag(VsieSTIE) }
func (r *Vsie) SetSTIE(v bool) { r.setFlag(VsieSTIE, v) }
func (r Vsie) SEIE() bool      { return r.flag(VsieSEIE) }
func (r *Vsie) SetSEIE(v bool) { r.setFlag(VsieSEIE, v) }
