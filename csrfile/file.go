// Package csrfile provides an in-memory hypervisor CSR file that satisfies
// riscvh.Accessor.
//
// It models what software can observe of the real registers: bits outside
// a register's defined fields read as zero, read-only CSRs reject writes,
// and every access is checked against the privilege level encoded in the
// CSR address. Hardware-side updates (pending interrupts, hgeip) are made
// with Inject.
package csrfile

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/blacktop/go-riscvh"
)

// File is an emulated CSR file for one hart. It is safe for concurrent use;
// SetCSR and ClearCSR are atomic with respect to other accesses, like the
// csrrs/csrrc instructions they stand in for.
type File struct {
	mu   sync.Mutex
	regs map[riscvh.CSR]uint64
	priv uint8
	log  logr.Logger
}

// Option configures a File.
type Option func(*File)

// WithPrivilege sets the privilege level accesses are checked against.
func WithPrivilege(level uint8) Option {
	return func(f *File) { f.priv = level }
}

// WithLogger logs every access at V(2).
func WithLogger(l logr.Logger) Option {
	return func(f *File) { f.log = l }
}

// New returns a zeroed CSR file running at HS-mode.
func New(opts ...Option) *File {
	f := &File{
		regs: make(map[riscvh.CSR]uint64),
		priv: riscvh.PrivHypervisor,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetPrivilege changes the current privilege level.
func (f *File) SetPrivilege(level uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.priv = level
}

// ReadCSR implements riscvh.Accessor.
func (f *File) ReadCSR(csr riscvh.CSR) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check(csr, false); err != nil {
		return 0, err
	}
	v := f.regs[csr]
	f.log.V(2).Info("read", "csr", csr.String(), "value", v)
	return v, nil
}

// WriteCSR implements riscvh.Accessor.
func (f *File) WriteCSR(csr riscvh.CSR, value uint64) error {
	return f.update(csr, "write", func(uint64) uint64 { return value })
}

// SetCSR implements riscvh.Accessor.
func (f *File) SetCSR(csr riscvh.CSR, mask uint64) error {
	return f.update(csr, "set", func(old uint64) uint64 { return old | mask })
}

// ClearCSR implements riscvh.Accessor.
func (f *File) ClearCSR(csr riscvh.CSR, mask uint64) error {
	return f.update(csr, "clear", func(old uint64) uint64 { return old &^ mask })
}

// Inject stores value as the hardware would, bypassing the read-only and
// privilege checks. Bits outside the register's fields are still dropped.
func (f *File) Inject(csr riscvh.CSR, value uint64) error {
	l, ok := riscvh.LayoutOf(csr)
	if !ok {
		return fmt.Errorf("%w: %s", riscvh.ErrUnknownCSR, csr)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regs[csr] = value & l.Mask()
	f.log.V(2).Info("inject", "csr", csr.String(), "value", f.regs[csr])
	return nil
}

// Snapshot returns a copy of every register that has been written.
func (f *File) Snapshot() map[riscvh.CSR]uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[riscvh.CSR]uint64, len(f.regs))
	for c, v := range f.regs {
		out[c] = v
	}
	return out
}

func (f *File) update(csr riscvh.CSR, op string, next func(uint64) uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check(csr, true); err != nil {
		return err
	}
	l, _ := riscvh.LayoutOf(csr)
	v := next(f.regs[csr]) & l.Mask()
	f.regs[csr] = v
	f.log.V(2).Info(op, "csr", csr.String(), "value", v)
	return nil
}

// check applies the address-encoded access rules. Caller holds f.mu.
func (f *File) check(csr riscvh.CSR, write bool) error {
	if _, ok := riscvh.LayoutOf(csr); !ok {
		return fmt.Errorf("%w: %s", riscvh.ErrUnknownCSR, csr)
	}
	if f.priv < csr.Privilege() {
		return fmt.Errorf("%w: %s needs level %d, running at %d", riscvh.ErrPrivilege, csr, csr.Privilege(), f.priv)
	}
	if write && csr.ReadOnly() {
		return fmt.Errorf("%w: %s", riscvh.ErrReadOnly, csr)
	}
	return nil
}
