// Package testutil provides testing utilities for rangeintern.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible inputs with a controlled amount of repetition.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	vocab := rng.Words(256, 3, 12)      // 256 distinct words, 3..12 bytes
//	text := testutil.Sample(rng, vocab, 10_000) // 10k draws with repeats
//	seqs := rng.Uint32Seqs(100, 8, 50)  // 100 sequences over values < 50
package testutil
