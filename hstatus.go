package riscvh

// Hypervisor status register fields.
var (
	HstatusVSXL  = newEnumField(CSRHstatus, "VSXL", 32, 33, VSXLs, "effective XLEN for VS-mode")
	HstatusVTSR  = newFlag(CSRHstatus, "VTSR", 22, "trap SRET in VS-mode")
	HstatusVTW   = newFlag(CSRHstatus, "VTW", 21, "timeout wait for VS-mode")
	HstatusVTVM  = newFlag(CSRHstatus, "VTVM", 20, "trap virtual memory management in VS-mode")
	HstatusVGEIN = newField(CSRHstatus, "VGEIN", 12, 17, "virtual guest external interrupt number")
	HstatusHU    = newFlag(CSRHstatus, "HU", 9, "hypervisor load/store instructions allowed in U-mode")
	HstatusSPVP  = newFlag(CSRHstatus, "SPVP", 8, "supervisor previous virtual privilege")
	HstatusSPV   = newFlag(CSRHstatus, "SPV", 7, "supervisor previous virtualization mode")
	HstatusGVA   = newFlag(CSRHstatus, "GVA", 6, "guest virtual address written to stval")
	HstatusVSBE  = newFlag(CSRHstatus, "VSBE", 5, "VS-mode big-endian memory accesses")
)

var hstatusLayout = mustLayout(CSRHstatus, "Hypervisor status",
	HstatusVSXL, HstatusVTSR.Field, HstatusVTW.Field, HstatusVTVM.Field,
	HstatusVGEIN, HstatusHU.Field, HstatusSPVP.Field, HstatusSPV.Field,
	HstatusGVA.Field, HstatusVSBE.Field,
)

// Hstatus is the hypervisor status register.
type Hstatus struct{ Value }

// HstatusFromBits wraps a raw hstatus value.
func HstatusFromBits(x uint64) Hstatus { return Hstatus{Value{Bits(x)}} }

// ReadHstatus reads hstatus.
func ReadHstatus(h *Hart) (Hstatus, error) { return readView(h, CSRHstatus, HstatusFromBits) }

func (Hstatus) CSR() CSR { return CSRHstatus }

// Layout returns the field map of hstatus.
func (Hstatus) Layout() *Layout { return hstatusLayout }

// Write commits r to hstatus.
func (r Hstatus) Write(h *Hart) error { return h.Commit(r) }

// VSXL returns the effective XLEN for VS-mode.
func (r Hstatus) VSXL() (VSXL, error) { return enumField[VSXL](r.Value, HstatusVSXL) }

// SetVSXL sets the effective XLEN for VS-mode.
func (r *Hstatus) SetVSXL(x VSXL) { r.setField(HstatusVSXL, x.Code()) }

func (r Hstatus) VTSR() bool         { return r.flag(HstatusVTSR) }
func (r *Hstatus) SetVTSR(v bool)    { r.setFlag(HstatusVTSR, v) }
func (r Hstatus) VTW() bool          { return r.flag(HstatusVTW) }
func (r *Hstatus) SetVTW(v bool)     { r.setFlag(HstatusVTW, v) }
func (r Hstatus) VTVM() bool         { return r.flag(HstatusVTVM) }
func (r *Hstatus) SetVTVM(v bool)    { r.setFlag(HstatusVTVM, v) }
func (r Hstatus) VGEIN() uint64      { return r.field(HstatusVGEIN) }
func (r *Hstatus) SetVGEIN(v uint64) { r.setField(HstatusVGEIN, v) }
func (r Hstatus) HU() bool           { return r.flag(HstatusHU) }
func (r *Hstatus) SetHU(v bool)      { r.setFlag(HstatusHU, v) }
func (r Hstatus) SPVP() bool         { return r.flag(HstatusSPVP) }
func (r *Hstatus) SetSPVP(v bool)    { r.setFlag(HstatusSPVP, v) }
func (r Hstatus) SPV() bool          { return r.flag(HstatusSPV) }
func (r *Hstatus) SetSPV(v bool)     { r.setFlag(HstatusSPV, v) }
func (r Hstatus) GVA() bool          { return r.flag(HstatusGVA) }
func (r *Hstatus) SetGVA(v bool)     { r.setFlag(HstatusGVA, v) }
func (r Hstatus) VSBE() bool         { return r.flag(HstatusVSBE) }
func (r *Hstatus) SetVSBE(v bool)    { r.setFlag(HstatusVSBE, v) }
