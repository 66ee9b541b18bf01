package riscvh

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

// Accessor is the raw CSR access primitive of one hardware thread. Kernels
// back it with csrr/csrw/csrs/csrc; tools and tests use the emulated file in
// package csrfile.
type Accessor interface {
	ReadCSR(csr CSR) (uint64, error)
	WriteCSR(csr CSR, value uint64) error
	// SetCSR ORs mask into the register without a separate read.
	SetCSR(csr CSR, mask uint64) error
	// ClearCSR clears the bits of mask without a separate read.
	ClearCSR(csr CSR, mask uint64) error
}

// Hart is the privileged context every side-effecting register operation
// goes through. Holding one is the caller's statement that the execution
// context (privilege level, interrupts, concurrent owners of the same
// physical hart) makes CSR writes sound. A Hart performs no validation of
// register contents and no serialization of hardware state.
type Hart struct {
	acc     Accessor
	log     logr.Logger
	closed  bool
	closeMu sync.RWMutex // Protect against use after Close()
}

// Option configures a Hart.
type Option func(*Hart)

// WithLogger logs every CSR access at V(1).
func WithLogger(l logr.Logger) Option {
	return func(h *Hart) { h.log = l }
}

// NewHart binds the raw access primitive of one hardware thread. Obtain it
// once when the privileged context is established and thread it through
// every commit.
func NewHart(acc Accessor, opts ...Option) (*Hart, error) {
	if acc == nil {
		recordAccessError()
		return nil, ErrNoAccessor
	}
	h := &Hart{acc: acc, log: logr.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Close revokes the capability. Idempotent.
func (h *Hart) Close() error {
	if h == nil {
		return nil
	}
	h.closeMu.Lock()
	defer h.closeMu.Unlock()
	h.closed = true
	return nil
}

// Read returns the current value of csr.
func (h *Hart) Read(csr CSR) (uint64, error) {
	if err := h.enter(csr); err != nil {
		return 0, err
	}
	defer h.closeMu.RUnlock()

	v, err := h.acc.ReadCSR(csr)
	if err != nil {
		recordAccessError()
		h.log.Error(err, "csr read failed", "csr", csr.String())
		return 0, fmt.Errorf("failed to read %s: %w", csr, err)
	}
	recordRead()
	h.log.V(1).Info("csr read", "csr", csr.String(), "value", hex(v))
	return v, nil
}

// Write replaces the value of csr.
func (h *Hart) Write(csr CSR, value uint64) error {
	if err := h.enter(csr); err != nil {
		return err
	}
	defer h.closeMu.RUnlock()

	if err := h.acc.WriteCSR(csr, value); err != nil {
		recordAccessError()
		h.log.Error(err, "csr write failed", "csr", csr.String(), "value", hex(value))
		return fmt.Errorf("failed to write %s: %w", csr, err)
	}
	recordWrite()
	h.log.V(1).Info("csr write", "csr", csr.String(), "value", hex(value))
	return nil
}

// Set ORs mask into csr.
func (h *Hart) Set(csr CSR, mask uint64) error {
	if err := h.enter(csr); err != nil {
		return err
	}
	defer h.closeMu.RUnlock()

	if err := h.acc.SetCSR(csr, mask); err != nil {
		recordAccessError()
		h.log.Error(err, "csr set failed", "csr", csr.String(), "mask", hex(mask))
		return fmt.Errorf("failed to set bits of %s: %w", csr, err)
	}
	recordSet()
	h.log.V(1).Info("csr set", "csr", csr.String(), "mask", hex(mask))
	return nil
}

// Clear clears the bits of mask in csr.
func (h *Hart) Clear(csr CSR, mask uint64) error {
	if err := h.enter(csr); err != nil {
		return err
	}
	defer h.closeMu.RUnlock()

	if err := h.acc.ClearCSR(csr, mask); err != nil {
		recordAccessError()
		h.log.Error(err, "csr clear failed", "csr", csr.String(), "mask", hex(mask))
		return fmt.Errorf("failed to clear bits of %s: %w", csr, err)
	}
	recordClear()
	h.log.V(1).Info("csr clear", "csr", csr.String(), "mask", hex(mask))
	return nil
}

// Commit writes the raw value of r to its CSR.
func (h *Hart) Commit(r Register) error {
	if err := h.Write(r.CSR(), r.Bits()); err != nil {
		return err
	}
	recordCommit()
	return nil
}

// SetFlag sets one bit of the physical register in place.
func (h *Hart) SetFlag(f Flag) error {
	return h.Set(f.CSR, f.Mask())
}

// ClearFlag clears one bit of the physical register in place.
func (h *Hart) ClearFlag(f Flag) error {
	return h.Clear(f.CSR, f.Mask())
}

// enter takes the read side of closeMu on success; the caller releases it.
func (h *Hart) enter(csr CSR) error {
	if h == nil {
		return ErrNoAccessor
	}
	h.closeMu.RLock()
	if h.closed {
		h.closeMu.RUnlock()
		return ErrHartClosed
	}
	if !csr.Known() {
		h.closeMu.RUnlock()
		recordAccessError()
		return fmt.Errorf("%w: %s", ErrUnknownCSR, csr)
	}
	return nil
}

func hex(v uint64) string { return fmt.Sprintf("0x%016x", v) }
