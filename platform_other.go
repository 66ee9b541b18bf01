//go:build !linux

package riscvh

// Supported returns false on platforms other than Linux.
func Supported() (bool, error) {
	return false, ErrUnsupported
}
