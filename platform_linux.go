//go:build linux

package riscvh

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Supported returns true if the running kernel reports a riscv64 machine
// whose harts implement the hypervisor extension.
func Supported() (bool, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return false, fmt.Errorf("failed to uname: %w", err)
	}
	if unix.ByteSliceToString(u.Machine[:]) != "riscv64" {
		return false, nil
	}
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return false, fmt.Errorf("failed to read cpuinfo: %w", err)
	}
	return cpuinfoHasH(string(data)), nil
}
