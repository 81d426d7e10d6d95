//go:build amd64 || arm64

package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	t.Run("reference digest", func(t *testing.T) {
		got := Slice([]int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 4})
		assert.Equal(t, uint64(8947523901814331430), got)
	})

	t.Run("element width is part of the digest", func(t *testing.T) {
		assert.Equal(t, uint64(11732905138903982993), Slice([]uint8{1, 2, 3}))
		assert.Equal(t, uint64(12257276794398020962), Slice([]uint32{1, 2, 3}))
		assert.Equal(t, uint64(1369339951573947237), Slice([]uint64{1, 2, 3}))
	})

	t.Run("signedness is not", func(t *testing.T) {
		assert.Equal(t, Slice([]uint32{1, 2, 3}), Slice([]int32{1, 2, 3}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, uint64(4961360378828212978), Slice([]uint32{}))
		assert.Equal(t, Slice([]uint32{}), Slice[uint32](nil))
	})
}

func TestSliceDiffersFromSliceFuncForBytes(t *testing.T) {
	// A byte slice hashed as raw bytes is not the same as hashing each byte
	// as a word; the two families must stay distinguishable.
	v := []uint8{1, 2, 3}
	assert.NotEqual(t, Slice(v), SliceFunc(v, (*Hasher).WriteUint8))
}
