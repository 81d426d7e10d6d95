package rangeintern

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/rangeintern/fingerprint"
)

// errNoConstructor is the panic value raised by a zero-value Interner.
var errNoConstructor = errors.New("rangeintern: Interner used without NewInterner or NewInternerFunc")

// Interner stores each distinct sequence of T once in a single growable
// element arena and hands out SliceRange handles into it.
//
// T needs no equality of its own: sequences are identified by fingerprint.
// Equality is only consulted under WithContentVerification.
//
// Interners must be created with NewInterner or NewInternerFunc; the zero
// value panics on first use. An Interner must not be used from several
// goroutines at once without external locking.
type Interner[T any] struct {
	buf   []T
	hash  func([]T) uint64
	equal func(a, b T) bool
	table table
}

// NewInterner returns an empty Interner for integer elements, fingerprinted
// with fingerprint.Slice.
func NewInterner[T constraints.Integer](opts ...Option) *Interner[T] {
	return newInterner(fingerprint.Slice[T], func(a, b T) bool { return a == b }, opts)
}

// NewInternerFunc returns an empty Interner whose fingerprint mixes each
// element with hashElem. For string elements pass (*fingerprint.Hasher).WriteString.
//
// With WithContentVerification, elements are compared with the function given
// to WithElementEqual, or with == if T is comparable. NewInternerFunc panics
// if verification is requested for a non-comparable T without
// WithElementEqual.
func NewInternerFunc[T any](hashElem func(*fingerprint.Hasher, T), opts ...Option) *Interner[T] {
	return newInterner(func(v []T) uint64 {
		return fingerprint.SliceFunc(v, hashElem)
	}, nil, opts)
}

func newInterner[T any](hash func([]T) uint64, equal func(a, b T) bool, opts []Option) *Interner[T] {
	o := applyOptions(opts)
	if o.elemEqual != nil {
		eq, ok := o.elemEqual.(func(a, b T) bool)
		if !ok {
			panic(fmt.Errorf("rangeintern: WithElementEqual takes %T, want func(a, b %v) bool",
				o.elemEqual, reflect.TypeFor[T]()))
		}
		equal = eq
	}
	if equal == nil && reflect.TypeFor[T]().Comparable() {
		equal = func(a, b T) bool { return any(a) == any(b) }
	}
	if o.verify && equal == nil {
		panic(fmt.Errorf("rangeintern: content verification of %v elements requires WithElementEqual",
			reflect.TypeFor[T]()))
	}
	return &Interner[T]{
		buf:   make([]T, 0, o.capacity),
		hash:  hash,
		equal: equal,
		table: newTable(o),
	}
}

// Intern returns the range of values, copying values to the end of the arena
// if no content with the same fingerprint is stored yet. Fixed-size arrays are
// interned as arr[:]. values is not retained.
//
// Intern panics with an error wrapping ErrOffsetOverflow if the arena would
// grow past MaxOffset elements; the arena is left unchanged in that case.
func (in *Interner[T]) Intern(values []T) SliceRange[T] {
	fp := in.fingerprint(values)
	if found, ok := in.table.lookup(fp, in.matcher(values)); ok {
		in.table.hit(len(values))
		return SliceRange[T](found)
	}

	added := in.table.reserve(len(in.buf), len(values))
	in.buf = append(in.buf, values...)
	in.table.record(fp, added)
	return SliceRange[T](added)
}

// InternSeq interns the elements yielded by seq as one sequence. Elements are
// moved straight into the arena tail and fingerprinted there, so no temporary
// slice is built; on a hit the tail is discarded again. If seq panics, or the
// sequence does not fit below MaxOffset, the tail is discarded before the
// panic propagates.
//
// The result equals Intern(slices.Collect(seq)).
func (in *Interner[T]) InternSeq(seq iter.Seq[T]) SliceRange[T] {
	start := len(in.buf)
	committed := false
	defer func() {
		if !committed {
			in.truncate(start)
		}
	}()

	for v := range seq {
		in.buf = append(in.buf, v)
	}
	tail := in.buf[start:]
	n := len(tail)

	fp := in.fingerprint(tail)
	if found, ok := in.table.lookup(fp, in.matcher(tail)); ok {
		in.table.hit(n)
		return SliceRange[T](found)
	}

	added := in.table.reserve(start, n)
	in.table.record(fp, added)
	committed = true
	return SliceRange[T](added)
}

// Find returns the range of values if an equal sequence has been interned. It
// never modifies the interner.
func (in *Interner[T]) Find(values []T) (SliceRange[T], bool) {
	found, ok := in.table.find(in.fingerprint(values), in.matcher(values))
	return SliceRange[T](found), ok
}

// Lookup returns the elements covered by r. The result aliases the arena and
// has its capacity clipped, so appending to it never writes into the arena.
// Callers must not modify the elements.
//
// Lookup panics with an error wrapping ErrRangeOutOfBounds if r ends past the
// arena, which happens when r came from a different interner.
func (in *Interner[T]) Lookup(r SliceRange[T]) []T {
	s := span(r)
	checkBounds(s, len(in.buf))
	return in.buf[s.start:s.end:s.end]
}

// Len returns the number of distinct sequences stored.
func (in *Interner[T]) Len() int { return in.table.entries() }

// Size returns the arena length in elements.
func (in *Interner[T]) Size() int { return len(in.buf) }

// Ranges yields the range of every stored sequence in arena order.
func (in *Interner[T]) Ranges() iter.Seq[SliceRange[T]] {
	spans := in.table.spans()
	return func(yield func(SliceRange[T]) bool) {
		for _, s := range spans {
			if !yield(SliceRange[T](s)) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the interner's counters.
func (in *Interner[T]) Stats() Stats { return in.table.stats(len(in.buf)) }

// Clone returns a deep copy of the arena and table. Elements are copied by
// assignment, so pointers inside T are shared with the original.
func (in *Interner[T]) Clone() *Interner[T] {
	return &Interner[T]{
		buf:   slices.Clone(in.buf),
		hash:  in.hash,
		equal: in.equal,
		table: in.table.clone(),
	}
}

func (in *Interner[T]) fingerprint(values []T) uint64 {
	if in.hash == nil {
		panic(errNoConstructor)
	}
	return in.hash(values)
}

func (in *Interner[T]) matcher(values []T) func(span) bool {
	return func(stored span) bool {
		return slices.EqualFunc(in.buf[stored.start:stored.end], values, in.equal)
	}
}

// truncate drops the arena tail from n on, zeroing it first so dropped
// elements do not pin memory.
func (in *Interner[T]) truncate(n int) {
	clear(in.buf[n:])
	in.buf = in.buf[:n]
}
