package rangeintern

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/hupe1980/rangeintern/fingerprint"
	"github.com/hupe1980/rangeintern/internal/hash"
)

// StrInterner stores each distinct string once in a single growable byte
// arena and hands out StrRange handles into it.
//
// The zero value is an empty interner ready to use. A StrInterner must not be
// used from several goroutines at once without external locking.
type StrInterner struct {
	buf   []byte
	table table
}

// NewStrInterner returns an empty StrInterner configured by opts.
func NewStrInterner(opts ...Option) *StrInterner {
	o := applyOptions(opts)
	return &StrInterner{
		buf:   make([]byte, 0, o.capacity),
		table: newTable(o),
	}
}

// Intern returns the range of s, appending s to the arena if no content with
// the same fingerprint is stored yet.
//
// Intern panics with an error wrapping ErrOffsetOverflow if the arena would
// grow past MaxOffset bytes; the arena is left unchanged in that case.
func (in *StrInterner) Intern(s string) StrRange {
	return in.intern(fingerprint.String(s), s)
}

// InternBytes is Intern for byte strings. Equal content yields the same range
// whether it was interned as a string or as bytes. b is not retained.
func (in *StrInterner) InternBytes(b []byte) StrRange {
	return in.intern(fingerprint.Bytes(b), bytesToString(b))
}

func (in *StrInterner) intern(fp uint64, s string) StrRange {
	if found, ok := in.table.lookup(fp, in.matcher(s)); ok {
		in.table.hit(len(s))
		return StrRange(found)
	}

	added := in.table.reserve(len(in.buf), len(s))
	in.buf = append(in.buf, s...)
	in.table.record(fp, added)
	return StrRange(added)
}

// Find returns the range of s if it has been interned. It never modifies the
// interner.
func (in *StrInterner) Find(s string) (StrRange, bool) {
	found, ok := in.table.find(fingerprint.String(s), in.matcher(s))
	return StrRange(found), ok
}

// FindBytes is Find for byte strings.
func (in *StrInterner) FindBytes(b []byte) (StrRange, bool) {
	s := bytesToString(b)
	found, ok := in.table.find(fingerprint.Bytes(b), in.matcher(s))
	return StrRange(found), ok
}

// Lookup returns the text covered by r. The result shares memory with the
// arena; it stays valid and unchanged for the interner's lifetime.
//
// Lookup panics with an error wrapping ErrRangeOutOfBounds if r ends past the
// arena, which happens when r came from a different interner.
func (in *StrInterner) Lookup(r StrRange) string {
	s := span(r)
	checkBounds(s, len(in.buf))
	return in.text(s)
}

// Len returns the number of distinct strings stored.
func (in *StrInterner) Len() int { return in.table.entries() }

// Size returns the arena length in bytes.
func (in *StrInterner) Size() int { return len(in.buf) }

// Ranges yields the range of every stored string in arena order, which is the
// order they were first interned in.
func (in *StrInterner) Ranges() iter.Seq[StrRange] {
	spans := in.table.spans()
	return func(yield func(StrRange) bool) {
		for _, s := range spans {
			if !yield(StrRange(s)) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the interner's counters.
func (in *StrInterner) Stats() Stats { return in.table.stats(len(in.buf)) }

// Checksum returns the CRC32-Castagnoli checksum of the arena bytes. Two
// interners fed the same sequence of intern calls have equal checksums.
func (in *StrInterner) Checksum() uint32 { return hash.CRC32C(in.buf) }

// Clone returns a deep copy. Ranges issued before the call are valid for both
// interners; ranges issued afterwards belong to the interner that issued them.
func (in *StrInterner) Clone() *StrInterner {
	return &StrInterner{
		buf:   slices.Clone(in.buf),
		table: in.table.clone(),
	}
}

func (in *StrInterner) matcher(s string) func(span) bool {
	return func(stored span) bool {
		return in.text(stored) == s
	}
}

// text views the arena bytes of s as a string without copying. Arena bytes
// are never rewritten once a span covers them, so the view is immutable even
// after the buffer has been reallocated by later appends.
func (in *StrInterner) text(s span) string {
	if s.start == s.end {
		return ""
	}
	return unsafe.String(&in.buf[s.start], s.len())
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
