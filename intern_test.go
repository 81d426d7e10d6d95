package rangeintern

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternAll_Strings(t *testing.T) {
	in := NewStrInterner()
	words := []string{"a", "b", "a", "c", "b"}

	got := InternAll[string, StrRange](in, slices.Values(words))
	require.Len(t, got, len(words))
	assert.Equal(t, got[0], got[2])
	assert.Equal(t, got[1], got[4])
	assert.Equal(t, 3, in.Len())

	for i, r := range got {
		assert.Equal(t, words[i], in.Lookup(r))
	}
}

func TestBytesOf(t *testing.T) {
	in := NewStrInterner()
	shape := BytesOf(in)

	r := shape.Intern([]byte("foo"))
	assert.Equal(t, r, in.Intern("foo"))

	got, ok := shape.Find([]byte("foo"))
	require.True(t, ok)
	assert.Equal(t, r, got)

	_, ok = shape.Find([]byte("nope"))
	assert.False(t, ok)
}

func TestSeqOf(t *testing.T) {
	in := NewInterner[uint32]()
	shape := SeqOf(in)

	r := shape.Intern(slices.Values([]uint32{1, 2, 3}))
	assert.Equal(t, r, in.Intern([]uint32{1, 2, 3}))

	got, ok := shape.Find(slices.Values([]uint32{1, 2, 3}))
	require.True(t, ok)
	assert.Equal(t, r, got)
}

// internTwice works with any arena and input shape.
func internTwice[V any, H comparable](in Internable[V, H], v V) (H, H) {
	return in.Intern(v), in.Intern(v)
}

func TestInternable_AllShapesAgree(t *testing.T) {
	strs := NewStrInterner()
	a, b := internTwice[string, StrRange](strs, "x")
	assert.Equal(t, a, b)
	c, d := internTwice(BytesOf(strs), []byte("x"))
	assert.Equal(t, a, c)
	assert.Equal(t, c, d)

	ints := NewInterner[uint32]()
	e, f := internTwice[[]uint32, SliceRange[uint32]](ints, []uint32{4, 5})
	assert.Equal(t, e, f)
	g, _ := internTwice(SeqOf(ints), slices.Values([]uint32{4, 5}))
	assert.Equal(t, e, g)
}

func TestFindAll(t *testing.T) {
	in := NewStrInterner()
	foo := in.Intern("foo")

	var (
		found []StrRange
		oks   []bool
	)
	for r, ok := range FindAll[string, StrRange](in, slices.Values([]string{"foo", "bar", "foo"})) {
		found = append(found, r)
		oks = append(oks, ok)
	}
	assert.Equal(t, []StrRange{foo, {}, foo}, found)
	assert.Equal(t, []bool{true, false, true}, oks)
	assert.Equal(t, 1, in.Len())

	n := 0
	for range FindAll[string, StrRange](in, slices.Values([]string{"foo", "bar"})) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
