package riscvh

// Virtual supervisor trap cause and vector fields.
var (
	VscauseINTERRUPT = newFlag(CSRVscause, "INTERRUPT", 63, "trap was caused by an interrupt")
	VscauseCODE      = newField(CSRVscause, "CODE", 0, 62, "exception or interrupt code")

	VstvecBASE = newField(CSRVstvec, "BASE", 2, 63, "trap vector base address, 4-byte aligned")
	VstvecMODE = newField(CSRVstvec, "MODE", 0, 1, "trap vector mode (0 direct, 1 vectored)")
)

var (
	vscauseLayout = mustLayout(CSRVscause, "Virtual supervisor cause", VscauseINTERRUPT.Field, VscauseCODE)
	vstvecLayout  = mustLayout(CSRVstvec, "Virtual supervisor trap vector", VstvecBASE, VstvecMODE)
)

// Vscause is the VS-mode scause.
type Vscause struct{ Value }

// VscauseFromBits wraps a raw vscause value.
func VscauseFromBits(x uint64) Vscause { return Vscause{Value{Bits(x)}} }

// ReadVscause reads vscause.
func ReadVscause(h *Hart) (Vscause, error) { return readView(h, CSRVscause, VscauseFromBits) }

func (Vscause) CSR() CSR { return CSRVscause }

// Layout returns the field map of vscause.
func (Vscause) Layout() *Layout { return vscauseLayout }

// Write commits r to vscause.
func (r Vscause) Write(h *Hart) error { return h.Commit(r) }

func (r Vscause) Interrupt() bool      { return r.flag(VscauseINTERRUPT) }
func (r *Vscause) SetInterrupt(v bool) { r.setFlag(VscauseINTERRUPT, v) }
func (r Vscause) Code() uint64         { return r.field(VscauseCODE) }
func (r *Vscause) SetCode(v uint64)    { r.setField(VscauseCODE, v) }

// Vstvec is the VS-mode stvec.
type Vstvec struct{ Value }

// VstvecFromBits wraps a raw vstvec value.
func VstvecFromBits(x uint64) Vstvec { return Vstvec{Value{Bits(x)}} }

// ReadVstvec reads vstvec.
func ReadVstvec(h *Hart) (Vstvec, error) { return readView(h, CSRVstvec, VstvecFromBits) }

func (Vstvec) CSR() CSR { return CSRVstvec }

// Layout returns the field map of vstvec.
func (Vstvec) Layout() *Layout { return vstvecLayout }

// Write commits r to vstvec.
func (r Vstvec) Write(h *Hart) error { return h.Commit(r) }

// Base returns BASE as stored, i.e. the trap vector address shifted right by 2.
func (r Vstvec) Base() uint64 { return r.field(VstvecBASE) }

// SetBase stores BASE. Pass the address shifted right by 2.
func (r *Vstvec) SetBase(v uint64) { r.setField(VstvecBASE, v) }

// Address returns the trap vector address.
func (r Vstvec) Address() uint64 { return r.Base() << 2 }

func (r Vstvec) Mode() uint64      { return r.field(VstvecMODE) }
func (r *Vstvec) SetMode(v uint64) { r.setField(VstvecMODE, v) }
