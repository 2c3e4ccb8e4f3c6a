package groundtruth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrDimensionMismatch(t *testing.T) {
	t.Run("Pairwise", func(t *testing.T) {
		err := NewDimensionMismatch(3, 2)
		assert.Equal(t, "dimension mismatch: expected 3, got 2", err.Error())
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Indexed", func(t *testing.T) {
		var err error = &ErrDimensionMismatch{Expected: 2, Actual: 1, Index: 4}
		assert.Equal(t, "dimension mismatch at index 4: expected 2, got 1", err.Error())

		var dm *ErrDimensionMismatch
		assert.True(t, errors.As(err, &dm))
		assert.Equal(t, 4, dm.Index)
	})
}

func TestErrInvalidBatchSize(t *testing.T) {
	err := &ErrInvalidBatchSize{Size: 0}
	assert.Equal(t, "invalid batch size: 0 (must be >= 1)", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
