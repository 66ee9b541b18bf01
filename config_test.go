package riscvh

import (
	"testing"
)

func TestProductionMode(t *testing.T) {
	tests := []struct {
		mode  string
		debug string
		want  bool
	}{
		{"", "", false},
		{"production", "", true},
		{"PROD", "", true},
		{"development", "", false},
		{"", "false", true},
		{"", "0", true},
		{"", "true", false},
		{"", "verbose", false},
		{"development", "false", true},
	}
	for _, tt := range tests {
		t.Run(tt.mode+"/"+tt.debug, func(t *testing.T) {
			if got := productionMode(tt.mode, tt.debug); got != tt.want {
				t.Errorf("productionMode(%q, %q) = %v, want %v", tt.mode, tt.debug, got, tt.want)
			}
		})
	}
}
