package riscvh

import (
	"fmt"
)

// ErrorCode classifies failures reported by this package.
type ErrorCode uint32

const (
	CodeIllegalFieldValue ErrorCode = iota + 1
	CodeUnknownCSR
	CodeReadOnly
	CodePrivilege
	CodeNoAccessor
	CodeHartClosed
	CodeUnsupported
)

// Error is the error type behind every sentinel in this package.
type Error struct {
	Code    ErrorCode
	message string // Optional custom message for specific errors
}

func (e *Error) Error() string {
	// Production hides custom messages too
	if LoadConfig().Production {
		return e.sanitizedError()
	}
	if e.message != "" {
		return e.message
	}
	return e.detailedError()
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// detailedError provides full error context for development
func (e *Error) detailedError() string {
	switch e.Code {
	case CodeIllegalFieldValue:
		return "riscvh: illegal field value - register holds a code outside the field's legal set"
	case CodeUnknownCSR:
		return "riscvh: unknown CSR - register is not part of the hypervisor extension set"
	case CodeReadOnly:
		return "riscvh: read-only CSR - address bits 11:10 mark the register read-only"
	case CodePrivilege:
		return "riscvh: insufficient privilege - address bits 9:8 require a higher privilege level"
	case CodeNoAccessor:
		return "riscvh: no CSR accessor - a hart needs a raw CSR access primitive"
	case CodeHartClosed:
		return "riscvh: hart closed - privileged context has been revoked"
	case CodeUnsupported:
		return "riscvh: operation unsupported - hypervisor extension not available on this platform"
	default:
		return fmt.Sprintf("riscvh: unknown error code %d", e.Code)
	}
}

// sanitizedError provides minimal error information for production
func (e *Error) sanitizedError() string {
	switch e.Code {
	case CodeIllegalFieldValue:
		return "riscvh: illegal field value"
	case CodeUnknownCSR:
		return "riscvh: unknown CSR"
	case CodeReadOnly:
		return "riscvh: read-only CSR"
	case CodePrivilege:
		return "riscvh: insufficient privilege"
	case CodeNoAccessor:
		return "riscvh: no CSR accessor"
	case CodeHartClosed:
		return "riscvh: hart closed"
	case CodeUnsupported:
		return "riscvh: operation unsupported"
	default:
		return "riscvh: error"
	}
}

// Common errors for API consumers. Compare with errors.Is.
var (
	ErrIllegalFieldValue = &Error{Code: CodeIllegalFieldValue}
	ErrUnknownCSR        = &Error{Code: CodeUnknownCSR}
	ErrReadOnly          = &Error{Code: CodeReadOnly}
	ErrPrivilege         = &Error{Code: CodePrivilege}
	ErrNoAccessor        = &Error{Code: CodeNoAccessor}
	ErrHartClosed        = &Error{Code: CodeHartClosed, message: "riscvh: hart is closed"}
	ErrUnsupported       = &Error{Code: CodeUnsupported, message: "riscvh: not supported on this platform"}
)

// FieldValueError reports an enumerated field holding a code outside its
// legal set. It matches ErrIllegalFieldValue under errors.Is.
type FieldValueError struct {
	CSR   CSR    // zero when decoding a bare code
	Field string // empty when decoding a bare code
	Enum  string
	Code  uint64
}

func (e *FieldValueError) Error() string {
	if LoadConfig().Production {
		return ErrIllegalFieldValue.sanitizedError()
	}
	if e.Field == "" {
		return fmt.Sprintf("riscvh: illegal %s code %d", e.Enum, e.Code)
	}
	return fmt.Sprintf("riscvh: %s.%s holds illegal %s code %d", e.CSR, e.Field, e.Enum, e.Code)
}

func (e *FieldValueError) Unwrap() error { return ErrIllegalFieldValue }
