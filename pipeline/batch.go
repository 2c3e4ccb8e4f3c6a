package pipeline

import (
	"iter"

	"github.com/hupe1980/groundtruth"
)

// BatchIterator yields contiguous batches of a slice.
//
// Batches share memory with the underlying slice; their capacity is clipped
// so that appending to one batch never overwrites the next. The iterator is
// single-use and not safe for concurrent use.
type BatchIterator[T any] struct {
	data []T
	size int
	pos  int
}

// NewBatchIterator returns an iterator over data in batches of size.
// Every batch holds size elements except possibly the last, which holds the remainder.
func NewBatchIterator[T any](data []T, size int) (*BatchIterator[T], error) {
	if size < 1 {
		return nil, &groundtruth.ErrInvalidBatchSize{Size: size}
	}

	return &BatchIterator[T]{data: data, size: size}, nil
}

// Next returns the next batch, or false once the data is exhausted.
func (it *BatchIterator[T]) Next() ([]T, bool) {
	if it.pos >= len(it.data) {
		return nil, false
	}

	end := len(it.data)
	if it.size < end-it.pos {
		end = it.pos + it.size
	}

	batch := it.data[it.pos:end:end]
	it.pos = end

	return batch, true
}

// Len returns the total number of batches.
func (it *BatchIterator[T]) Len() int {
	n := len(it.data) / it.size
	if len(it.data)%it.size != 0 {
		n++
	}
	return n
}

// Remaining returns the number of batches not yet returned by Next.
func (it *BatchIterator[T]) Remaining() int {
	left := len(it.data) - it.pos
	n := left / it.size
	if left%it.size != 0 {
		n++
	}
	return n
}

// Batches returns a single-use sequence over data in batches of size.
//
//	seq, err := pipeline.Batches(data, 32)
//	for batch := range seq {
//		// ...
//	}
func Batches[T any](data []T, size int) (iter.Seq[[]T], error) {
	it, err := NewBatchIterator(data, size)
	if err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		for batch, ok := it.Next(); ok; batch, ok = it.Next() {
			if !yield(batch) {
				return
			}
		}
	}, nil
}
