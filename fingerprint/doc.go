// Package fingerprint computes the deterministic 64-bit content digests used as
// deduplication keys by the rangeintern arenas.
//
// # Algorithm
//
// Digests are produced by a keyed AHash-class construction (the portable
// "fallback" variant): a folded 64x64→128 bit multiply drives word updates and
// byte input is consumed in 16-byte blocks. The output depends only on the
// seeds and the input, so digests are identical across runs, processes and
// machines of the same byte order.
//
// Two fixed seed sets exist, one per content family:
//
//	StrSeeds    text (strings and byte strings)
//	SliceSeeds  element sequences
//
// The seeds are exported so other implementations can be checked against the
// reference digests:
//
//	fingerprint.String("foobarbaz")                                 == 4247283670897481861
//	fingerprint.Slice([]int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 4})        == 8947523901814331430
//
// # Limits
//
// The hash is not collision resistant. Distinct inputs may share a digest;
// callers that need to detect this must compare content themselves.
package fingerprint
