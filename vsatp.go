package riscvh

// Virtual supervisor address translation and protection fields.
var (
	VsatpMODE = newEnumField(CSRVsatp, "MODE", 60, 63, TranslationModes, "VS-stage translation scheme")
	VsatpASID = newField(CSRVsatp, "ASID", 44, 59, "address space identifier")
	VsatpPPN  = newField(CSRVsatp, "PPN", 0, 43, "physical page number of the root VS-stage page table")
)

var vsatpLayout = mustLayout(CSRVsatp, "Virtual supervisor address translation and protection",
	VsatpMODE, VsatpASID, VsatpPPN,
)

// Vsatp is the VS-mode satp, controlling VS-stage translation.
type Vsatp struct{ Value }

// VsatpFromBits wraps a raw vsatp value.
func VsatpFromBits(x uint64) Vsatp { return Vsatp{Value{Bits(x)}} }

// ReadVsatp reads vsatp.
func ReadVsatp(h *Hart) (Vsatp, error) { return readView(h, CSRVsatp, VsatpFromBits) }

func (Vsatp) CSR() CSR { return CSRVsatp }

// Layout returns the field map of vsatp.
func (Vsatp) Layout() *Layout { return vsatpLayout }

// Write commits r to vsatp.
func (r Vsatp) Write(h *Hart) error { return h.Commit(r) }

func (r Vsatp) Mode() (TranslationMode, error) { return enumField[TranslationMode](r.Value, VsatpMODE) }
func (r *Vsatp) SetMode(m TranslationMode)     { r.setField(VsatpMODE, m.Code()) }
func (r Vsatp) ASID() uint64                   { return r.field(VsatpASID) }
func (r *Vsatp) SetASID(v uint64)              { r.setField(VsatpASID, v) }
func (r Vsatp) PPN() uint64                    { return r.field(VsatpPPN) }
func (r *Vsatp) SetPPN(v uint64)               { r.setField(VsatpPPN, v) }
