// Package rangeintern provides content-addressed interning into contiguous
// arenas.
//
// An interner stores every distinct content exactly once in one growable
// buffer and returns a small range handle (a half-open offset pair) instead of
// an owned copy. Interning equal content twice returns the identical handle;
// distinct content gets a non-overlapping handle. Handles are plain values:
// they compare with ==, order by offsets and can be kept in maps, and the
// content is recovered with Lookup.
//
// # Quick Start
//
//	var strs rangeintern.StrInterner
//	foo := strs.Intern("foo")
//	_ = strs.Intern("bar")
//	again := strs.Intern("foo") // again == foo
//	fmt.Println(strs.Lookup(foo))
//
//	ints := rangeintern.NewInterner[uint32]()
//	r := ints.Intern([]uint32{1, 2, 3})
//	fmt.Println(ints.Lookup(r)) // [1 2 3]
//
// # Deduplication
//
// Content is keyed by its 64-bit fingerprint (see package fingerprint). By
// default a fingerprint hit is trusted without comparing content, so two
// distinct contents with the same fingerprint alias each other. Use
// WithContentVerification to compare content on every hit instead.
//
// # Limits
//
// Offsets are 32 bits wide. An intern call that would grow an arena past
// MaxOffset elements panics with an error wrapping ErrOffsetOverflow and leaves
// the arena untouched. Looking up a range that ends past the arena panics with
// an error wrapping ErrRangeOutOfBounds; a range from another arena that
// happens to fit is not detected.
//
// # Concurrency
//
// Interners have no internal locking. Each instance must be owned by one
// goroutine at a time; guard shared instances with a mutex.
package rangeintern
