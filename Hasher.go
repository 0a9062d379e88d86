package Go_Tables

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher wraps a maphash.Seed, create it using MakeHasher. Hashes are only stable for the lifetime of the process and the same Hasher.
type Hasher struct {
	seed maphash.Seed
}

// MakeHasher with a random seed.
func MakeHasher() Hasher {
	return Hasher{maphash.MakeSeed()}
}

// HashString hashes s.
func (u Hasher) HashString(s string) int {
	return int(maphash.String(u.seed, s))
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) int {
	return int(maphash.Bytes(u.seed, b))
}

// HashComparable hashes any comparable value by its contents. Pointers and interfaces holding pointers are hashed by address.
func HashComparable[K comparable](u Hasher, k K) int {
	return int(maphash.Comparable(u.seed, k))
}

// HashInt is the identity hash. Tables reduce it modulo their capacity, so consecutive integers land in consecutive slots.
func HashInt[K constraints.Integer](k K) int {
	return int(k)
}

// HashPoly is the 31-polynomial string hash computed in 32-bit arithmetic, s[0]*31^(n-1) + ... + s[n-1]. It's deterministic across runs and may be negative.
func HashPoly(s string) int {
	var h int32
	for i := 0; i < len(s); i++ {
		h = 31*h + int32(s[i])
	}
	return int(h)
}

// HashXX hashes s with xxhash64. It's deterministic across runs.
func HashXX(s string) int {
	return int(xxhash.Sum64String(s))
}
