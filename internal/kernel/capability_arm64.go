//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	// FMADD is part of the base ARMv8 floating-point unit.
	hasFMA = cpu.ARM64.HasFP
	initCapabilities()
}
