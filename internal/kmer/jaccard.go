package kmer

// Intersection counts the shingles present in both sets.
func Intersection(a, b Set) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	shared := 0
	for shingle := range a {
		if _, ok := b[shingle]; ok {
			shared++
		}
	}
	return shared
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets are identical (1.0);
// an empty and a non-empty set share nothing (0.0).
func Jaccard(a, b Set) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	shared := Intersection(a, b)
	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}

// JaccardDistance is 1 - Jaccard(a, b).
func JaccardDistance(a, b Set) float64 {
	return 1.0 - Jaccard(a, b)
}

// Shared returns the shingles present in both sets, sorted.
func Shared(a, b Set) []string {
	out := make(Set)
	for shingle := range a {
		if _, ok := b[shingle]; ok {
			out[shingle] = struct{}{}
		}
	}
	return out.Sorted()
}
