package kernel

import (
	"os"
	"strings"
)

// EnvKernel is the environment variable used to override kernel selection.
const EnvKernel = "GROUNDTRUTH_KERNEL"

// Kernel identifies an accumulation routine.
type Kernel uint8

const (
	// Sequential multiplies and adds in two rounding steps, in index order.
	Sequential Kernel = iota
	// Fused accumulates with a single rounding per element via math.FMA.
	Fused
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case Fused:
		return "fused"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential":
		return Sequential, true
	case "fused", "fma":
		return Fused, true
	default:
		return Sequential, false
	}
}

// Package-level state, set once from the platform-specific init.
var (
	active      Kernel
	hasOverride bool

	hasFMA bool
)

func initCapabilities() {
	active, hasOverride = selectKernel(os.Getenv(EnvKernel), hasFMA)
	apply(active)
}

// selectKernel resolves an override against the available CPU features.
// An unknown or unavailable override falls back to Sequential.
func selectKernel(override string, fma bool) (Kernel, bool) {
	if override == "" {
		return Sequential, false
	}
	k, ok := ParseKernel(override)
	if !ok {
		return Sequential, false
	}
	if k == Fused && !fma {
		return Sequential, true
	}
	return k, true
}

func apply(k Kernel) {
	switch k {
	case Fused:
		dotImpl = dotFused
		sumSquaresImpl = sumSquaresFused
	default:
		dotImpl = dotSequential
		sumSquaresImpl = sumSquaresSequential
	}
}

// Active returns the currently active kernel.
func Active() Kernel {
	return active
}

// IsOverridden returns true if GROUNDTRUTH_KERNEL was set to a known kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA returns true if the CPU executes fused multiply-add in hardware.
func HasFMA() bool {
	return hasFMA
}
