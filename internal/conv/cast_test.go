package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})
}

func TestSpan(t *testing.T) {
	t.Run("empty at zero", func(t *testing.T) {
		lo, hi, err := Span(0, 0)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), lo)
		assert.Equal(t, uint32(0), hi)
	})

	t.Run("regular", func(t *testing.T) {
		lo, hi, err := Span(3, 5)
		require.NoError(t, err)
		assert.Equal(t, uint32(3), lo)
		assert.Equal(t, uint32(8), hi)
	})

	t.Run("negative length", func(t *testing.T) {
		_, _, err := Span(3, -1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
