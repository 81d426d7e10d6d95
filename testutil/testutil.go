package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Word returns a random lowercase ASCII word of length in [minLen, maxLen].
func (r *RNG) Word(minLen, maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.word(minLen, maxLen)
}

func (r *RNG) word(minLen, maxLen int) string {
	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(b)
}

// Words returns n distinct random words with lengths in [minLen, maxLen].
// The range must admit at least n distinct words or Words does not return.
func (r *RNG) Words(n, minLen, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		w := r.word(minLen, maxLen)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Sample draws n values from vocab uniformly with replacement.
func Sample[T any](r *RNG, vocab []T, n int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, n)
	for i := range out {
		out[i] = vocab[r.rand.Intn(len(vocab))]
	}
	return out
}

// Uint32Seqs returns n sequences of length [0, maxLen] with elements in
// [0, maxVal).
func (r *RNG) Uint32Seqs(n, maxLen int, maxVal uint32) [][]uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]uint32, n)
	for i := range out {
		seq := make([]uint32, r.rand.Intn(maxLen+1))
		for j := range seq {
			seq[j] = uint32(r.rand.Int63n(int64(maxVal)))
		}
		out[i] = seq
	}
	return out
}
