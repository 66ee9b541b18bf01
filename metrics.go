package riscvh

import (
	"sync/atomic"
)

// Operation metrics for monitoring CSR traffic
var (
	// Operation counters
	csrReads  uint64
	csrWrites uint64
	csrSets   uint64
	csrClears uint64
	commits   uint64

	// Error counters
	decodeErrors uint64
	accessErrors uint64
)

// Metrics provides access to operation metrics
type Metrics struct {
	Reads        uint64 `json:"csr_reads"`
	Writes       uint64 `json:"csr_writes"`
	Sets         uint64 `json:"csr_sets"`
	Clears       uint64 `json:"csr_clears"`
	Commits      uint64 `json:"commits"`
	DecodeErrors uint64 `json:"decode_errors"`
	AccessErrors uint64 `json:"access_errors"`
}

// GetMetrics returns current operation metrics
func GetMetrics() Metrics {
	return Metrics{
		Reads:        atomic.LoadUint64(&csrReads),
		Writes:       atomic.LoadUint64(&csrWrites),
		Sets:         atomic.LoadUint64(&csrSets),
		Clears:       atomic.LoadUint64(&csrClears),
		Commits:      atomic.LoadUint64(&commits),
		DecodeErrors: atomic.LoadUint64(&decodeErrors),
		AccessErrors: atomic.LoadUint64(&accessErrors),
	}
}

// ResetMetrics clears all operation metrics
func ResetMetrics() {
	atomic.StoreUint64(&csrReads, 0)
	atomic.StoreUint64(&csrWrites, 0)
	atomic.StoreUint64(&csrSets, 0)
	atomic.StoreUint64(&csrClears, 0)
	atomic.StoreUint64(&commits, 0)
	atomic.StoreUint64(&decodeErrors, 0)
	atomic.StoreUint64(&accessErrors, 0)
}

// Internal metric recording functions
func recordRead() {
	atomic.AddUint64(&csrReads, 1)
}

func recordWrite() {
	atomic.AddUint64(&csrWrites, 1)
}

func recordSet() {
	atomic.AddUint64(&csrSets, 1)
}

func recordClear() {
	atomic.AddUint64(&csrClears, 1)
}

func recordCommit() {
	atomic.AddUint64(&commits, 1)
}

func recordDecodeError() {
	atomic.AddUint64(&decodeErrors, 1)
}

func recordAccessError() {
	atomic.AddUint64(&accessErrors, 1)
}
