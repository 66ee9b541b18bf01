package riscvh

// Virtual supervisor status fields.
var (
	VsstatusSD   = newField(CSRVsstatus, "SD", 60, 63, "state dirty summary")
	VsstatusUXL  = newEnumField(CSRVsstatus, "UXL", 32, 33, UXLs, "effective XLEN for VU-mode")
	VsstatusMXR  = newFlag(CSRVsstatus, "MXR", 19, "make executable readable")
	VsstatusSUM  = newFlag(CSRVsstatus, "SUM", 18, "permit supervisor user memory access")
	VsstatusXS   = newField(CSRVsstatus, "XS", 15, 16, "user-mode extension state")
	VsstatusFS   = newField(CSRVsstatus, "FS", 13, 14, "floating-point unit state")
	VsstatusSPP  = newFlag(CSRVsstatus, "SPP", 8, "supervisor previous privilege")
	VsstatusUBE  = newFlag(CSRVsstatus, "UBE", 6, "VU-mode big-endian memory accesses")
	VsstatusSPIE = newFlag(CSRVsstatus, "SPIE", 5, "supervisor previous interrupt enable")
	VsstatusSIE  = newFlag(CSRVsstatus, "SIE", 1, "supervisor interrupt enable")
)

var vsstatusLayout = mustLayout(CSRVsstatus, "Virtual supervisor status",
	VsstatusSD, VsstatusUXL, VsstatusMXR.Field, VsstatusSUM.Field, VsstatusXS,
	VsstatusFS, VsstatusSPP.Field, VsstatusUBE.Field, VsstatusSPIE.Field,
	VsstatusSIE.Field,
)

// Vsstatus is the VS-mode sstatus. SD is kept as a 4-bit field covering
// bits 60-63, which is how the register has always been exposed here.
type Vsstatus struct{ Value }

// VsstatusFromBits wraps a raw vsstatus value.
func VsstatusFromBits(x uint64) Vsstatus { return Vsstatus{Value{Bits(x)}} }

// ReadVsstatus reads vsstatus.
func ReadVsstatus(h *Hart) (Vsstatus, error) { return readView(h, CSRVsstatus, VsstatusFromBits) }

func (Vsstatus) CSR() CSR { return CSRVsstatus }

// Layout returns the field map of vsstatus.
func (Vsstatus) Layout() *Layout { return vsstatusLayout }

// Write commits r to vsstatus.
func (r Vsstatus) Write(h *Hart) error { return h.Commit(r) }

// UXL returns the effective XLEN for VU-mode.
func (r Vsstatus) UXL() (UXL, error) { return enumField[UXL](r.Value, VsstatusUXL) }

// SetUXL sets the effective XLEN for VU-mode.
func (r *Vsstatus) SetUXL(x UXL) { r.setField(VsstatusUXL, x.Code()) }

func (r Vsstatus) SD() uint64      { return r.field(VsstatusSD) }
func (r *Vsstatus) SetSD(v uint64) { r.setField(VsstatusSD, v) }
func (r Vsstatus) MXR() bool       { return r.flag(VsstatusMXR) }
func (r *Vsstatus) SetMXR(v bool)  { r.setFlag(VsstatusMXR, v) }
func (r Vsstatus) SUM() bool       { return r.flag(VsstatusSUM) }
func (r *Vsstatus) SetSUM(v bool)  { r.setFlag(VsstatusSUM, v) }
func (r Vsstatus) XS() uint64      { return r.field(VsstatusXS) }
func (r *Vsstatus) SetXS(v uint64) { r.setField(VsstatusXS, v) }
func (r Vsstatus) FS() uint64      { return r.field(VsstatusFS) }
func (r *Vsstatus) SetFS(v uint64) { r.setField(VsstatusFS, v) }
func (r Vsstatus) SPP() bool       { return r.flag(VsstatusSPP) }
func (r *Vsstatus) SetSPP(v bool)  { r.setFlag(VsstatusSPP, v) }
func (r Vsstatus) UBE() bool       { return r.flag(VsstatusUBE) }
func (r *Vsstatus) SetUBE(v bool)  { r.setFlag(VsstatusUBE, v) }
func (r Vsstatus) SPIE() bool      { return r.flag(VsstatusSPIE) }
func (r *Vsstatus) SetSPIE(v bool) { r.setFlag(VsstatusSPIE, v) }
func (r Vsstatus) SIE() bool       { return r.flag(VsstatusSIE) }
func (r *Vsstatus) SetSIE(v bool)  { r.setFlag(VsstatusSIE, v) }
