package fingerprint

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

const (
	// multiple is the PCG multiplier used for word updates.
	multiple = 6364136223846793005
	rot      = 23
)

// pi2 is XOR-ed into caller supplied seeds, so all-zero seeds still produce a
// well mixed initial state.
var pi2 = [4]uint64{
	0x4528_21e6_38d0_1377,
	0xbe54_66cf_34e9_0c6c,
	0xc0ac_29b7_c97c_50dd,
	0x3f84_d5b5_b547_0917,
}

// Seeds is a 4-word key for the hasher.
type Seeds [4]uint64

// Hasher is a keyed, streaming 64-bit hasher.
//
// A Hasher is a small value type. Copying it forks the hash state.
// It is not safe for concurrent use.
type Hasher struct {
	buffer uint64
	pad    uint64
	extra  [2]uint64
}

// New returns a Hasher keyed with seeds.
func New(seeds Seeds) Hasher {
	return Hasher{
		buffer: seeds[1] ^ pi2[1],
		pad:    seeds[0] ^ pi2[0],
		extra:  [2]uint64{seeds[2] ^ pi2[2], seeds[3] ^ pi2[3]},
	}
}

// WriteUint8 mixes a single byte as a word.
func (h *Hasher) WriteUint8(v uint8) { h.update(uint64(v)) }

// WriteUint16 mixes v as a word.
func (h *Hasher) WriteUint16(v uint16) { h.update(uint64(v)) }

// WriteUint32 mixes v as a word.
func (h *Hasher) WriteUint32(v uint32) { h.update(uint64(v)) }

// WriteUint64 mixes v as a word.
func (h *Hasher) WriteUint64(v uint64) { h.update(v) }

// WriteBool mixes b as a single byte.
func (h *Hasher) WriteBool(b bool) {
	if b {
		h.update(1)
		return
	}
	h.update(0)
}

// WriteLen mixes a length prefix. Sequence digests start with one so that
// concatenations of different splits do not collide trivially.
func (h *Hasher) WriteLen(n int) { h.update(uint64(n)) } //nolint:gosec // lengths are non-negative

// Write mixes p as one byte string. The length of p is folded in first.
// It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.write(p)
	return len(p), nil
}

// WriteString mixes the bytes of s followed by a 0xff terminator.
func (h *Hasher) WriteString(s string) {
	h.write(unsafe.Slice(unsafe.StringData(s), len(s)))
	h.update(0xff)
}

// Sum64 returns the digest of everything written so far. It does not change
// the hasher state.
func (h *Hasher) Sum64() uint64 {
	r := int(h.buffer & 63)
	return bits.RotateLeft64(foldedMultiply(h.buffer, h.pad), r)
}

func (h *Hasher) update(v uint64) {
	h.buffer = foldedMultiply(v^h.buffer, multiple)
}

func (h *Hasher) largeUpdate(lo, hi uint64) {
	combined := foldedMultiply(lo^h.extra[0], hi^h.extra[1])
	h.buffer = bits.RotateLeft64((h.buffer+h.pad)^combined, rot)
}

func (h *Hasher) write(data []byte) {
	n := len(data)
	// Added, not xor-ed, so crafted input cannot cancel the length out.
	h.buffer = (h.buffer + uint64(n)) * multiple

	switch {
	case n > 16:
		h.largeUpdate(le64(data[n-16:]), le64(data[n-8:]))
		for len(data) > 16 {
			h.largeUpdate(le64(data), le64(data[8:]))
			data = data[16:]
		}
	case n > 8:
		h.largeUpdate(le64(data), le64(data[n-8:]))
	default:
		h.largeUpdate(readSmall(data))
	}
}

// readSmall loads up to 8 bytes as two overlapping words.
func readSmall(data []byte) (uint64, uint64) {
	n := len(data)
	switch {
	case n >= 4:
		return uint64(binary.LittleEndian.Uint32(data)), uint64(binary.LittleEndian.Uint32(data[n-4:]))
	case n >= 2:
		return uint64(binary.LittleEndian.Uint16(data)), uint64(data[n-1])
	case n == 1:
		return uint64(data[0]), uint64(data[0])
	default:
		return 0, 0
	}
}

func le64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func foldedMultiply(s, by uint64) uint64 {
	hi, lo := bits.Mul64(s, by)
	return hi ^ lo
}
