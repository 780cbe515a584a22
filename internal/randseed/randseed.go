// Package randseed provides a deterministic pseudo-random source derived
// from a string seed. The same seed string always yields the same sequence,
// which is what makes generated palette ids reproducible.
package randseed

import (
	"math/rand"
	"strings"
)

const (
	hashBasis  uint32 = 0xdeadbeef
	hashPrime  uint32 = 2654435761
	lcgMulti   uint32 = 1664525
	lcgIncr    uint32 = 1013904223
	seedChars         = "0123456789abcdefghijklmnopqrstuvwxyz"
	seedLength        = 7
)

// Hash folds a seed string into a 32-bit state value. The fold is byte-wise,
// so multi-byte characters and invalid UTF-8 hash by their raw encoding.
func Hash(seed string) uint32 {
	h := hashBasis
	for i := 0; i < len(seed); i++ {
		h = (h ^ uint32(seed[i])) * hashPrime
	}
	return h ^ (h >> 16)
}

// Source is a deterministic pseudo-random number generator. It is not safe
// for concurrent use; create one Source per generation call.
type Source struct {
	state uint32
}

// NewSource creates a Source seeded from the given string.
func NewSource(seed string) *Source {
	return &Source{state: Hash(seed)}
}

// Next advances the generator and returns a value in [0, 1).
func (s *Source) Next() float64 {
	s.state = s.state*lcgMulti + lcgIncr
	return float64(s.state) / 4294967296.0
}

// Range returns a value in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// IntN returns an integer in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return int(s.Next() * float64(n))
}

// Choice returns a pseudo-randomly selected element of list.
func Choice[T any](s *Source, list []T) T {
	return list[s.IntN(len(list))]
}

// RandomSeed returns a fresh 7-character base36 seed string. This is the
// only non-deterministic entry point in the package.
func RandomSeed() string {
	var b strings.Builder
	b.Grow(seedLength)
	for i := 0; i < seedLength; i++ {
		b.WriteByte(seedChars[rand.Intn(len(seedChars))])
	}
	return b.String()
}
