package riscvh

import "fmt"

// Guest external interrupt bits. Bit 0 is hard-wired to zero; bits 1..GEILEN
// map to guest external interrupt numbers.
var (
	HgeieGEI = newField(CSRHgeie, "GEI", 1, 63, "guest external interrupt enables")
	HgeipGEI = newField(CSRHgeip, "GEI", 1, 63, "guest external interrupts pending")
)

var (
	hgeieLayout = mustLayout(CSRHgeie, "Hypervisor guest external interrupt enable", HgeieGEI)
	hgeipLayout = mustLayout(CSRHgeip, "Hypervisor guest external interrupt pending", HgeipGEI)
)

// Hgeie enables guest external interrupts at HS-level.
type Hgeie struct{ Value }

// HgeieFromBits wraps a raw hgeie value.
func HgeieFromBits(x uint64) Hgeie { return Hgeie{Value{Bits(x)}} }

// ReadHgeie reads hgeie.
func ReadHgeie(h *Hart) (Hgeie, error) { return readView(h, CSRHgeie, HgeieFromBits) }

func (Hgeie) CSR() CSR { return CSRHgeie }

// Layout returns the field map of hgeie.
func (Hgeie) Layout() *Layout { return hgeieLayout }

// Write commits r to hgeie.
func (r Hgeie) Write(h *Hart) error { return h.Commit(r) }

// Enabled reports whether guest external interrupt n (1..63) is enabled.
func (r Hgeie) Enabled(n uint) bool { return r.bits.Bit(geiBit(n)) }

// SetEnabled enables or disables guest external interrupt n (1..63).
func (r *Hgeie) SetEnabled(n uint, v bool) { r.bits.SetBit(geiBit(n), v) }

// Hgeip reports pending guest external interrupts. It is read-only.
type Hgeip struct{ Value }

// HgeipFromBits wraps a raw hgeip value.
func HgeipFromBits(x uint64) Hgeip { return Hgeip{Value{Bits(x)}} }

// ReadHgeip reads hgeip.
func ReadHgeip(h *Hart) (Hgeip, error) { return readView(h, CSRHgeip, HgeipFromBits) }

func (Hgeip) CSR() CSR { return CSRHgeip }

// Layout returns the field map of hgeip.
func (Hgeip) Layout() *Layout { return hgeipLayout }

// Pending reports whether guest external interrupt n (1..63) is pending.
func (r Hgeip) Pending(n uint) bool { return r.bits.Bit(geiBit(n)) }

// GEIFlag returns the hgeie flag for guest external interrupt n, for use
// with Hart.SetFlag and Hart.ClearFlag.
func GEIFlag(n uint) Flag {
	return newFlag(CSRHgeie, fmt.Sprintf("GEI%d", n), geiBit(n), "guest external interrupt enable")
}

func geiBit(n uint) uint {
	if n < 1 || n >= WordBits {
		panic(fmt.Sprintf("riscvh: guest external interrupt %d out of range 1..63", n))
	}
	return n
}
