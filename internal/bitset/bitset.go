// Package bitset provides a fixed-size bitset used to track which
// frequency buckets are non-empty.
//revive:disable:var-naming  // allow short receiver/param names in bit helpers
package bitset

import "math/bits"

const wordBits = 64

// Set is a fixed-size bitset over [0, n). The zero value is not usable;
// construct with New. Not safe for concurrent use.
type Set struct {
	words []uint64
}

// New returns a Set covering indices [0, n). n must be > 0.
func New(n int) *Set {
	if n <= 0 {
		panic("bitset: size must be > 0")
	}
	return &Set{words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Set marks index i.
func (s *Set) Set(i int) { s.words[i/wordBits] |= 1 << (uint(i) % wordBits) }

// Clear unmarks index i.
func (s *Set) Clear(i int) { s.words[i/wordBits] &^= 1 << (uint(i) % wordBits) }

// Test reports whether index i is marked.
func (s *Set) Test(i int) bool {
	return s.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Min returns the smallest marked index, or -1 if the set is empty.
// Cost is one trailing-zeros scan per 64 indices, so effectively O(1)
// for the small ranges this package is used with.
func (s *Set) Min() int {
	for w, word := range s.words {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// Reset unmarks every index.
func (s *Set) Reset() {
	for i := range s.words {
		s.words[i] = 0
	}
}
