package rangeintern

import (
	"cmp"
	"fmt"
	"math"
)

// MaxOffset is the largest arena offset a range can carry. Arenas never grow
// past it; see ErrOffsetOverflow.
const MaxOffset = math.MaxUint32

// span is the offset pair shared by both range flavors.
type span struct {
	start uint32
	end   uint32
}

func (s span) len() int { return int(s.end - s.start) }

func compareSpan(a, b span) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}
	return cmp.Compare(a.end, b.end)
}

// StrRange identifies interned text inside a StrInterner as the half-open byte
// range [Start, End).
//
// A StrRange is a position, not a reference: it does not keep the arena alive
// and is only meaningful for the StrInterner that returned it. Two ranges are
// equal (==) iff their offsets are equal; content is never compared. The zero
// value is the empty range.
type StrRange struct {
	start uint32
	end   uint32
}

// Start returns the offset of the first byte.
func (r StrRange) Start() uint32 { return r.start }

// End returns the offset one past the last byte.
func (r StrRange) End() uint32 { return r.end }

// Len returns the number of bytes covered by r.
func (r StrRange) Len() int { return span(r).len() }

// IsEmpty reports whether r covers no bytes.
func (r StrRange) IsEmpty() bool { return r.start == r.end }

// Compare orders ranges by start offset, then by end offset.
func (r StrRange) Compare(other StrRange) int { return compareSpan(span(r), span(other)) }

func (r StrRange) String() string { return fmt.Sprintf("[%d:%d)", r.start, r.end) }

// CompareStrRange is StrRange.Compare as a function, for slices.SortFunc.
func CompareStrRange(a, b StrRange) int { return a.Compare(b) }

// SliceRange identifies an interned element sequence inside an Interner[T] as
// the half-open element range [Start, End).
//
// T only ties the range to its arena's element type at compile time; a
// SliceRange holds two offsets and nothing else. Equality and ordering follow
// StrRange.
type SliceRange[T any] struct {
	start uint32
	end   uint32
}

// Start returns the offset of the first element.
func (r SliceRange[T]) Start() uint32 { return r.start }

// End returns the offset one past the last element.
func (r SliceRange[T]) End() uint32 { return r.end }

// Len returns the number of elements covered by r.
func (r SliceRange[T]) Len() int { return span(r).len() }

// IsEmpty reports whether r covers no elements.
func (r SliceRange[T]) IsEmpty() bool { return r.start == r.end }

// Compare orders ranges by start offset, then by end offset.
func (r SliceRange[T]) Compare(other SliceRange[T]) int {
	return compareSpan(span(r), span(other))
}

func (r SliceRange[T]) String() string { return fmt.Sprintf("[%d:%d)", r.start, r.end) }

// CompareSliceRange is SliceRange.Compare as a function, for slices.SortFunc.
func CompareSliceRange[T any](a, b SliceRange[T]) int { return a.Compare(b) }
