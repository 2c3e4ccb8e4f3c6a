// Package kernel provides the float64 accumulation routines behind the
// similarity package.
//
// # Kernels
//
//   - Sequential: left-to-right multiply then add (default)
//   - Fused: left-to-right math.FMA accumulation
//
// Sequential reproduces the rounding of a naive loop in any language and is
// always the default. Fused can be selected with GROUNDTRUTH_KERNEL=fused and is
// only honored when the CPU executes FMA in hardware; otherwise math.FMA falls
// back to a slow software path.
package kernel
