// Package minhash estimates Jaccard similarity between k-mer shingle sets
// from fixed-length MinHash signatures.
package minhash

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/aria-lang/dynaalign-go/internal/kmer"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

var (
	// ErrInvalidNumHash is the cause of a ConfigurationError for a
	// signature length below 1.
	ErrInvalidNumHash = errors.New("number of hash functions must be at least 1")

	// ErrSignatureLength is returned when comparing signatures from
	// families of different sizes.
	ErrSignatureLength = errors.New("minhash signature lengths do not match")
)

// Empty is the value of every slot of the signature of an empty set.
const Empty = math.MaxUint64

// Family is a fixed set of numHash hash functions. Function i maps a
// shingle to mix(xxhash(shingle) ^ seed_i), where the seeds are drawn from
// a PCG stream. Two families built with the same size and seed are
// identical.
type Family struct {
	seeds []uint64
}

// NewFamily derives numHash hash functions from seed.
func NewFamily(numHash int, seed uint64) (*Family, error) {
	if numHash < 1 {
		return nil, substitution.NewConfigurationError("num_hash", numHash, ErrInvalidNumHash)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seeds := make([]uint64, numHash)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return &Family{seeds: seeds}, nil
}

// Size returns the number of hash functions, which is also the signature
// length.
func (f *Family) Size() int {
	return len(f.seeds)
}

// Hash applies function i to shingle.
func (f *Family) Hash(i int, shingle string) uint64 {
	return mix(xxhash.Sum64String(shingle) ^ f.seeds[i])
}

// Sketch computes the signature of set: slot i is the minimum of function
// i over all shingles. An empty set yields Empty in every slot.
func (f *Family) Sketch(set kmer.Set) Signature {
	sig := make(Signature, len(f.seeds))
	for i := range sig {
		sig[i] = Empty
	}

	for shingle := range set {
		base := xxhash.Sum64String(shingle)
		for i, seed := range f.seeds {
			if h := mix(base ^ seed); h < sig[i] {
				sig[i] = h
			}
		}
	}
	return sig
}

// mix is the 64-bit finalizer from MurmurHash3. It is a bijection, so
// distinct base hashes stay distinct under every function of the family.
func mix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Signature is the vector of per-function minima of one shingle set.
type Signature []uint64

// IsEmpty reports whether the signature came from an empty set.
func (s Signature) IsEmpty() bool {
	for _, v := range s {
		if v != Empty {
			return false
		}
	}
	return true
}

// Similarity estimates the Jaccard similarity as the fraction of slots in
// which the two signatures agree.
func (s Signature) Similarity(other Signature) (float64, error) {
	if len(s) != len(other) || len(s) == 0 {
		return 0, ErrSignatureLength
	}

	agree := 0
	for i := range s {
		if s[i] == other[i] {
			agree++
		}
	}
	return float64(agree) / float64(len(s)), nil
}
