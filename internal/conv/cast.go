package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every conversion error of this package.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Span converts the half-open range [start, start+length) into 32-bit
// offsets. It fails if either bound does not fit.
func Span(start, length int) (uint32, uint32, error) {
	if length < 0 {
		return 0, 0, fmt.Errorf("%w: negative length %d", ErrOverflow, length)
	}
	lo, err := IntToUint32(start)
	if err != nil {
		return 0, 0, err
	}
	if uint64(length) > math.MaxUint32-uint64(lo) {
		return 0, 0, fmt.Errorf("%w: span [%d, %d+%d) exceeds uint32 offsets", ErrOverflow, start, start, length)
	}
	return lo, lo + uint32(length), nil
}
