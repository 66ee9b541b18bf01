package riscvh

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "illegal field value",
			err:      ErrIllegalFieldValue,
			expected: "riscvh: illegal field value - register holds a code outside the field's legal set",
		},
		{
			name:     "unknown CSR",
			err:      ErrUnknownCSR,
			expected: "riscvh: unknown CSR - register is not part of the hypervisor extension set",
		},
		{
			name:     "read-only",
			err:      ErrReadOnly,
			expected: "riscvh: read-only CSR - address bits 11:10 mark the register read-only",
		},
		{
			name:     "privilege",
			err:      ErrPrivilege,
			expected: "riscvh: insufficient privilege - address bits 9:8 require a higher privilege level",
		},
		{
			name:     "no accessor",
			err:      ErrNoAccessor,
			expected: "riscvh: no CSR accessor - a hart needs a raw CSR access primitive",
		},
		{
			name:     "hart closed",
			err:      ErrHartClosed,
			expected: "riscvh: hart is closed",
		},
		{
			name:     "unsupported",
			err:      ErrUnsupported,
			expected: "riscvh: not supported on this platform",
		},
		{
			name:     "unknown code",
			err:      &Error{Code: 0x99},
			expected: "riscvh: unknown error code 153",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error{Code: %d}.Error() = %q, want %q", tt.err.Code, got, tt.expected)
			}
		})
	}
}

func TestSanitizedError(t *testing.T) {
	codes := []ErrorCode{
		CodeIllegalFieldValue, CodeUnknownCSR, CodeReadOnly, CodePrivilege,
		CodeNoAccessor, CodeHartClosed, CodeUnsupported,
	}
	seen := map[string]bool{}
	for _, c := range codes {
		e := &Error{Code: c}
		short := e.sanitizedError()
		if !strings.HasPrefix(e.detailedError(), short) {
			t.Errorf("code %d: detailed %q does not start with sanitized %q", c, e.detailedError(), short)
		}
		if seen[short] {
			t.Errorf("code %d: sanitized message %q is not unique", c, short)
		}
		seen[short] = true
	}
}

func TestErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("failed to write hgeip: %w", &Error{Code: CodeReadOnly})
	if !errors.Is(wrapped, ErrReadOnly) {
		t.Error("wrapped read-only error should match ErrReadOnly")
	}
	if errors.Is(wrapped, ErrPrivilege) {
		t.Error("read-only error should not match ErrPrivilege")
	}

	var fe error = &FieldValueError{Enum: "VSXL", Code: 0}
	if !errors.Is(fmt.Errorf("decode: %w", fe), ErrIllegalFieldValue) {
		t.Error("FieldValueError should match ErrIllegalFieldValue")
	}
}

func TestErrorConstants(t *testing.T) {
	expectedCodes := map[string]ErrorCode{
		"CodeIllegalFieldValue": 1,
		"CodeUnknownCSR":        2,
		"CodeReadOnly":          3,
		"CodePrivilege":         4,
		"CodeNoAccessor":        5,
		"CodeHartClosed":        6,
		"CodeUnsupported":       7,
	}

	actualCodes := map[string]ErrorCode{
		"CodeIllegalFieldValue": CodeIllegalFieldValue,
		"CodeUnknownCSR":        CodeUnknownCSR,
		"CodeReadOnly":          CodeReadOnly,
		"CodePrivilege":         CodePrivilege,
		"CodeNoAccessor":        CodeNoAccessor,
		"CodeHartClosed":        CodeHartClosed,
		"CodeUnsupported":       CodeUnsupported,
	}

	for name, expected := range expectedCodes {
		actual, exists := actualCodes[name]
		if !exists {
			t.Errorf("Missing constant %s", name)
			continue
		}
		if actual != expected {
			t.Errorf("Constant %s = %d, want %d", name, actual, expected)
		}
	}
}
