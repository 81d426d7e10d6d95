// Package hash provides CRC32-Castagnoli checksums of arena contents.
//
// Arena checksums are a cheap way to compare the result of two runs over the
// same input: equal intern call sequences must yield byte-identical arenas,
// hence equal checksums.
//
//	checksum := hash.CRC32C(data)
package hash
