package riscvh

import (
	"testing"
)

func TestMetrics(t *testing.T) {
	// Reset metrics for clean test
	ResetMetrics()

	// Verify initial state
	metrics := GetMetrics()
	if metrics != (Metrics{}) {
		t.Errorf("Expected zero metrics after reset, got %+v", metrics)
	}

	h, acc := newTestHart(t)

	// Commit a register view
	if err := HgatpFromBits(0).Write(h); err != nil {
		t.Fatalf("Failed to write hgatp: %v", err)
	}
	metrics = GetMetrics()
	if metrics.Writes != 1 || metrics.Commits != 1 {
		t.Errorf("Expected Writes=1 Commits=1, got %+v", metrics)
	}

	// Read and flip flags
	if _, err := ReadHstatus(h); err != nil {
		t.Fatalf("Failed to read hstatus: %v", err)
	}
	_ = h.SetFlag(HstatusVTW)
	_ = h.ClearFlag(HstatusVTW)
	metrics = GetMetrics()
	if metrics.Reads != 1 || metrics.Sets != 1 || metrics.Clears != 1 {
		t.Errorf("Expected Reads=1 Sets=1 Clears=1, got %+v", metrics)
	}

	// Decode an illegal mode
	acc.regs[CSRVsatp] = 5 << 60
	s, err := ReadVsatp(h)
	if err != nil {
		t.Fatalf("Failed to read vsatp: %v", err)
	}
	if _, err := s.Mode(); err == nil {
		t.Fatal("Expected illegal mode error")
	}
	metrics = GetMetrics()
	if metrics.DecodeErrors != 1 {
		t.Errorf("Expected DecodeErrors=1, got %d", metrics.DecodeErrors)
	}

	// Unknown CSR counts as an access error
	_, _ = h.Read(CSR(0x300))
	metrics = GetMetrics()
	if metrics.AccessErrors != 1 {
		t.Errorf("Expected AccessErrors=1, got %d", metrics.AccessErrors)
	}

	t.Logf("Final metrics: %+v", metrics)
}
