package rangeintern

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a panic")
		var ok bool
		err, ok = rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
	}()
	fn()
	return nil
}

// spannedSize sums the lengths of all stored ranges. Without aliasing it
// equals the arena size.
func spannedSize[R interface{ Len() int }](ranges iter.Seq[R]) int {
	n := 0
	for r := range ranges {
		n += r.Len()
	}
	return n
}

func TestStrInterner_OverflowLeavesArenaUnchanged(t *testing.T) {
	in := NewStrInterner()
	in.table.maxOffset = 8

	abc := in.Intern("abcdef")
	err := recoverError(t, func() { in.Intern("xyz") })
	assert.ErrorIs(t, err, ErrOffsetOverflow)

	assert.Equal(t, 6, in.Size())
	assert.Equal(t, 1, in.Len())
	assert.Equal(t, "abcdef", in.Lookup(abc))
	_, ok := in.Find("xyz")
	assert.False(t, ok)

	xy := in.Intern("xy")
	assert.Equal(t, StrRange{start: 6, end: 8}, xy)
	assert.Equal(t, in.Size(), spannedSize(in.Ranges()))
}

func TestInterner_OverflowLeavesArenaUnchanged(t *testing.T) {
	t.Run("Intern", func(t *testing.T) {
		in := NewInterner[uint32]()
		in.table.maxOffset = 4
		a := in.Intern([]uint32{1, 2, 3})

		err := recoverError(t, func() { in.Intern([]uint32{4, 5}) })
		var oerr *OffsetOverflowError
		require.ErrorAs(t, err, &oerr)
		assert.Equal(t, 3, oerr.Start)
		assert.Equal(t, 2, oerr.Length)

		assert.Equal(t, 3, in.Size())
		assert.Equal(t, []uint32{1, 2, 3}, in.Lookup(a))
		assert.Equal(t, SliceRange[uint32]{start: 3, end: 4}, in.Intern([]uint32{4}))
	})

	t.Run("InternSeq", func(t *testing.T) {
		in := NewInterner[uint32]()
		in.table.maxOffset = 4
		a := in.InternSeq(slices.Values([]uint32{1, 2, 3}))

		err := recoverError(t, func() { in.InternSeq(slices.Values([]uint32{4, 5})) })
		assert.ErrorIs(t, err, ErrOffsetOverflow)

		assert.Equal(t, 3, in.Size())
		assert.Equal(t, 1, in.Len())
		assert.Equal(t, []uint32{1, 2, 3}, in.Lookup(a))
		_, ok := in.Find([]uint32{4, 5})
		assert.False(t, ok)

		b := in.InternSeq(slices.Values([]uint32{4}))
		assert.Equal(t, []uint32{4}, in.Lookup(b))
		assert.Equal(t, in.Size(), spannedSize(in.Ranges()))
	})
}

func TestInterner_InternSeqRollsBackOnIteratorPanic(t *testing.T) {
	in := NewInterner[uint32]()
	a := in.Intern([]uint32{1, 2})

	failing := func(yield func(uint32) bool) {
		if yield(7) && yield(8) {
			panic("source failed")
		}
	}
	assert.PanicsWithValue(t, "source failed", func() { in.InternSeq(failing) })

	assert.Equal(t, 2, in.Size())
	assert.Equal(t, 1, in.Len())
	assert.Equal(t, in.Size(), spannedSize(in.Ranges()))

	b := in.InternSeq(slices.Values([]uint32{7, 8}))
	assert.Equal(t, SliceRange[uint32]{start: 2, end: 4}, b)
	assert.Equal(t, []uint32{1, 2}, in.Lookup(a))
}

func TestInterner_ZeroValuePanicsClearly(t *testing.T) {
	var in Interner[uint32]

	assert.PanicsWithError(t, errNoConstructor.Error(), func() { in.Intern([]uint32{1}) })
	assert.PanicsWithError(t, errNoConstructor.Error(), func() { in.InternSeq(slices.Values([]uint32{1})) })
	assert.PanicsWithError(t, errNoConstructor.Error(), func() { in.Find([]uint32{1}) })

	assert.Equal(t, 0, in.Size())
	assert.Empty(t, in.Lookup(SliceRange[uint32]{}))
}
