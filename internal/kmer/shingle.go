// Package kmer decomposes sequences into their sets of distinct k-length
// substrings (shingles) and compares those sets exactly.
//
// Shingling works on raw bytes and does not check the residue alphabet;
// callers validate first.
package kmer

import (
	"fmt"
	"sort"
)

// InvalidKError reports a shingle length below 1.
type InvalidKError struct {
	K int
}

func (e *InvalidKError) Error() string {
	return fmt.Sprintf("invalid k-mer length %d: k must be at least 1", e.K)
}

// Set is the set of distinct shingles of one sequence.
type Set map[string]struct{}

// Len returns the number of distinct shingles.
func (s Set) Len() int {
	return len(s)
}

// Contains reports whether shingle is in the set.
func (s Set) Contains(shingle string) bool {
	_, ok := s[shingle]
	return ok
}

// Sorted returns the shingles in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for shingle := range s {
		out = append(out, shingle)
	}
	sort.Strings(out)
	return out
}

// Shingles returns every distinct length-k substring of seq. A sequence
// shorter than k yields an empty set.
func Shingles(seq string, k int) (Set, error) {
	if k < 1 {
		return nil, &InvalidKError{K: k}
	}

	n := len(seq) - k + 1
	if n <= 0 {
		return Set{}, nil
	}

	set := make(Set, n)
	for i := 0; i < n; i++ {
		set[seq[i:i+k]] = struct{}{}
	}
	return set, nil
}

// MustShingles is like Shingles but panics on an invalid k.
func MustShingles(seq string, k int) Set {
	s, err := Shingles(seq, k)
	if err != nil {
		panic(err)
	}
	return s
}
