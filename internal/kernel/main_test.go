package kernel

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel is active so CI logs show the path under test.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvKernel, os.Getenv(EnvKernel))
	fmt.Printf("Active kernel: %s\n", Active())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Hardware FMA: %v\n", HasFMA())
	fmt.Printf("==========================\n\n")

	os.Exit(m.Run())
}
