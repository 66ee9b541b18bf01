package riscvh

// Hypervisor guest address translation and protection fields.
var (
	HgatpMODE = newEnumField(CSRHgatp, "MODE", 60, 63, TranslationModes, "G-stage translation scheme")
	HgatpVMID = newField(CSRHgatp, "VMID", 44, 57, "virtual machine identifier")
	HgatpPPN  = newField(CSRHgatp, "PPN", 0, 43, "physical page number of the root G-stage page table")
)

var hgatpLayout = mustLayout(CSRHgatp, "Hypervisor guest address translation and protection",
	HgatpMODE, HgatpVMID, HgatpPPN,
)

// Hgatp controls G-stage (guest physical to host physical) translation.
// Bits 58-59 are WARL zero and untouched by the setters.
type Hgatp struct{ Value }

// HgatpFromBits wraps a raw hgatp value.
func HgatpFromBits(x uint64) Hgatp { return Hgatp{Value{Bits(x)}} }

// ReadHgatp reads hgatp.
func ReadHgatp(h *Hart) (Hgatp, error) { return readView(h, CSRHgatp, HgatpFromBits) }

func (Hgatp) CSR() CSR { return CSRHgatp }

// Layout returns the field map of hgatp.
func (Hgatp) Layout() *Layout { return hgatpLayout }

// Write commits r to hgatp.
func (r Hgatp) Write(h *Hart) error { return h.Commit(r) }

// Mode returns the G-stage translation scheme.
func (r Hgatp) Mode() (TranslationMode, error) { return enumField[TranslationMode](r.Value, HgatpMODE) }

// SetMode sets the G-stage translation scheme.
func (r *Hgatp) SetMode(m TranslationMode) { r.setField(HgatpMODE, m.Code()) }

// VMID returns the virtual machine identifier.
func (r Hgatp) VMID() uint64 { return r.field(HgatpVMID) }

// SetVMID sets the virtual machine identifier. Only the low 14 bits are kept.
func (r *Hgatp) SetVMID(v uint64) { r.setField(HgatpVMID, v) }

// PPN returns the physical page number of the root page table.
func (r Hgatp) PPN() uint64 { return r.field(HgatpPPN) }

// SetPPN sets the physical page number of the root page table.
func (r *Hgatp) SetPPN(v uint64) { r.setField(HgatpPPN, v) }
