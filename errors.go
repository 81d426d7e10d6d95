package rangeintern

import (
	"errors"
	"fmt"
)

var (
	// ErrOffsetOverflow is the panic value (wrapped) raised when an intern
	// call would grow an arena past MaxOffset.
	ErrOffsetOverflow = errors.New("arena offset overflow")

	// ErrRangeOutOfBounds is the panic value (wrapped) raised when a range
	// does not lie within the arena it is looked up in.
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)

// OffsetOverflowError describes an append that does not fit in 32-bit offsets.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type OffsetOverflowError struct {
	Start  int
	Length int
	cause  error
}

func (e *OffsetOverflowError) Error() string {
	return fmt.Sprintf("arena offset overflow: appending %d elements at offset %d exceeds %d", e.Length, e.Start, uint64(MaxOffset))
}

func (e *OffsetOverflowError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrOffsetOverflow}
	}
	return []error{ErrOffsetOverflow, e.cause}
}

// RangeOutOfBoundsError describes a lookup with a range that ends past the
// arena. It usually means the range came from another arena.
type RangeOutOfBoundsError struct {
	Start uint32
	End   uint32
	Size  int
}

func (e *RangeOutOfBoundsError) Error() string {
	return fmt.Sprintf("range out of bounds: [%d:%d) with arena size %d", e.Start, e.End, e.Size)
}

func (e *RangeOutOfBoundsError) Unwrap() error { return ErrRangeOutOfBounds }
