package riscvh

import (
	"bufio"
	"strings"
)

// cpuinfoHasH reports whether every "isa" line of a /proc/cpuinfo dump
// lists the H extension among its single-letter extensions.
func cpuinfoHasH(cpuinfo string) bool {
	found := false
	sc := bufio.NewScanner(strings.NewReader(cpuinfo))
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "isa" {
			continue
		}
		if !isaHasH(val) {
			return false
		}
		found = true
	}
	return found
}

// isaHasH parses an ISA string such as "rv64imafdch_zicsr_zifencei".
func isaHasH(isa string) bool {
	isa = strings.ToLower(strings.TrimSpace(isa))
	if !strings.HasPrefix(isa, "rv32") && !strings.HasPrefix(isa, "rv64") {
		return false
	}
	for _, r := range isa[4:] {
		switch r {
		case '_', 'z', 's', 'x':
			return false
		case 'h':
			return true
		}
	}
	return false
}
