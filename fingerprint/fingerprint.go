package fingerprint

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Seed words of the text family.
const (
	StrSeed0 uint64 = 5016128656285951095
	StrSeed1 uint64 = 15991804453339263156
	StrSeed2 uint64 = 869180266196383410
	StrSeed3 uint64 = 16177865525426686551
)

// Seed words of the sequence family.
const (
	SliceSeed0 uint64 = 458768224117184340
	SliceSeed1 uint64 = 13440494329435370347
	SliceSeed2 uint64 = 12752177437526035150
	SliceSeed3 uint64 = 16620102976742681879
)

var (
	// StrSeeds keys digests of text content.
	StrSeeds = Seeds{StrSeed0, StrSeed1, StrSeed2, StrSeed3}
	// SliceSeeds keys digests of element sequences.
	SliceSeeds = Seeds{SliceSeed0, SliceSeed1, SliceSeed2, SliceSeed3}
)

// String returns the text-family digest of s.
func String(s string) uint64 {
	h := New(StrSeeds)
	h.WriteString(s)
	return h.Sum64()
}

// Bytes returns the text-family digest of b. It equals String(string(b)).
func Bytes(b []byte) uint64 {
	h := New(StrSeeds)
	h.write(b)
	h.update(0xff)
	return h.Sum64()
}

// Slice returns the sequence-family digest of v: a length prefix followed by
// the elements' in-memory bytes as a single write. Digests match across hosts
// of the same byte order.
func Slice[T constraints.Integer](v []T) uint64 {
	h := New(SliceSeeds)
	h.WriteLen(len(v))
	h.write(rawBytes(v))
	return h.Sum64()
}

// SliceFunc returns the sequence-family digest of v, mixing each element with
// hashElem after a length prefix. Method expressions such as
// (*Hasher).WriteString or (*Hasher).WriteUint64 can be passed directly.
func SliceFunc[T any](v []T, hashElem func(*Hasher, T)) uint64 {
	h := New(SliceSeeds)
	h.WriteLen(len(v))
	for _, e := range v {
		hashElem(&h, e)
	}
	return h.Sum64()
}

func rawBytes[T constraints.Integer](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*int(unsafe.Sizeof(zero)))
}
