package fibonacci

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned for indices outside [0, MaxIndex].
var ErrInvalidIndex = errors.New("fibonacci: invalid index")

// IndexError describes a rejected index. It matches ErrInvalidIndex with
// errors.Is.
type IndexError struct {
	// Index is the requested index.
	Index int64
	// Max is the largest index that was accepted.
	Max int64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("fibonacci: index %d out of range [0, %d]", e.Index, e.Max)
}

// Unwrap returns ErrInvalidIndex.
func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// checkIndex validates k against [0, MaxIndex].
func checkIndex(k int64) error {
	if k < 0 || k > MaxIndex {
		return &IndexError{Index: k, Max: MaxIndex}
	}
	return nil
}
