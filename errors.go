package groundtruth

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation error in this module.
var ErrValidation = errors.New("validation error")

// ErrDimensionMismatch indicates that vectors taking part in the same operation
// have different lengths.
//
// Index is the position of the offending vector within a collection, or -1
// for pairwise operations.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Index    int
}

// NewDimensionMismatch returns a pairwise dimension mismatch error.
func NewDimensionMismatch(expected, actual int) *ErrDimensionMismatch {
	return &ErrDimensionMismatch{Expected: expected, Actual: actual, Index: -1}
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("dimension mismatch at index %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrValidation }

// ErrInvalidBatchSize indicates a batch size smaller than one.
type ErrInvalidBatchSize struct {
	Size int
}

func (e *ErrInvalidBatchSize) Error() string {
	return fmt.Sprintf("invalid batch size: %d (must be >= 1)", e.Size)
}

func (e *ErrInvalidBatchSize) Unwrap() error { return ErrValidation }
