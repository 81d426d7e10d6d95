package rangeintern

import (
	"iter"
	"slices"
)

// Internable is the intern capability shared by every arena: store a value of
// shape V once and identify it by a handle H.
//
// *StrInterner is an Internable[string, StrRange] and *Interner[T] is an
// Internable[[]T, SliceRange[T]]. BytesOf and SeqOf expose the other input
// shapes those arenas accept. Every shape of one arena shares the same dedup
// table, so equal content yields equal handles regardless of its shape.
type Internable[V any, H comparable] interface {
	Intern(value V) H
	Find(value V) (H, bool)
}

var (
	_ Internable[string, StrRange]                     = (*StrInterner)(nil)
	_ Internable[[]byte, StrRange]                     = bytesShape{}
	_ Internable[[]uint32, SliceRange[uint32]]         = (*Interner[uint32])(nil)
	_ Internable[iter.Seq[uint32], SliceRange[uint32]] = seqShape[uint32]{}
	_ Internable[[]string, SliceRange[string]]         = (*Interner[string])(nil)
	_ Internable[iter.Seq[string], SliceRange[string]] = seqShape[string]{}
	_ Internable[[][]byte, SliceRange[[]byte]]         = (*Interner[[]byte])(nil)
)

// BytesOf returns the byte-string shape of in.
func BytesOf(in *StrInterner) Internable[[]byte, StrRange] {
	return bytesShape{in: in}
}

type bytesShape struct{ in *StrInterner }

func (b bytesShape) Intern(value []byte) StrRange        { return b.in.InternBytes(value) }
func (b bytesShape) Find(value []byte) (StrRange, bool) { return b.in.FindBytes(value) }

// SeqOf returns the iterator shape of in.
func SeqOf[T any](in *Interner[T]) Internable[iter.Seq[T], SliceRange[T]] {
	return seqShape[T]{in: in}
}

type seqShape[T any] struct{ in *Interner[T] }

func (s seqShape[T]) Intern(value iter.Seq[T]) SliceRange[T] { return s.in.InternSeq(value) }

func (s seqShape[T]) Find(value iter.Seq[T]) (SliceRange[T], bool) {
	return s.in.Find(slices.Collect(value))
}

// InternAll interns every value yielded by values, in order, and returns the
// handles in the same order.
func InternAll[V any, H comparable](in Internable[V, H], values iter.Seq[V]) []H {
	var out []H
	for v := range values {
		out = append(out, in.Intern(v))
	}
	return out
}

// FindAll looks up every value yielded by values without interning. Values that
// were never interned yield the zero handle and false.
func FindAll[V any, H comparable](in Internable[V, H], values iter.Seq[V]) iter.Seq2[H, bool] {
	return func(yield func(H, bool) bool) {
		for v := range values {
			if !yield(in.Find(v)) {
				return
			}
		}
	}
}
