package kmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShingles(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		k    int
		want []string
	}{
		{"overlapping windows", "ACDEF", 3, []string{"ACD", "CDE", "DEF"}},
		{"k equals length", "ACDEF", 5, []string{"ACDEF"}},
		{"k exceeds length", "ACD", 4, []string{}},
		{"empty sequence", "", 1, []string{}},
		{"repeats collapse", "AAAAA", 2, []string{"AA"}},
		{"single residues", "ACAC", 1, []string{"A", "C"}},
		{"periodic", "ACACAC", 3, []string{"ACA", "CAC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Shingles(tt.seq, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Sorted())
			assert.Equal(t, len(tt.want), set.Len())
		})
	}
}

func TestShinglesInvalidK(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		_, err := Shingles("ACDEF", k)
		var ike *InvalidKError
		require.ErrorAs(t, err, &ike)
		assert.Equal(t, k, ike.K)
	}

	assert.Panics(t, func() { MustShingles("ACD", 0) })
}

func TestShinglesLength(t *testing.T) {
	set := MustShingles("MKTAYIAKQRQISFVKSHFSRQ", 4)
	for shingle := range set {
		assert.Len(t, shingle, 4)
	}
	assert.True(t, set.Contains("MKTA"))
	assert.False(t, set.Contains("AAAA"))
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		k    int
		want float64
	}{
		{"identical", "ACDEF", "ACDEF", 3, 1.0},
		{"half shared", "ACDEF", "CDEFG", 3, 0.5},
		{"disjoint", "AAAA", "CCCC", 2, 0.0},
		{"both empty", "", "", 3, 1.0},
		{"one empty", "AC", "ACDEF", 3, 0.0},
		{"subset", "ACDE", "ACDEF", 3, 2.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustShingles(tt.a, tt.k)
			b := MustShingles(tt.b, tt.k)
			assert.InDelta(t, tt.want, Jaccard(a, b), 1e-12)
			assert.InDelta(t, tt.want, Jaccard(b, a), 1e-12)
			assert.InDelta(t, 1-tt.want, JaccardDistance(a, b), 1e-12)
		})
	}
}

func TestShared(t *testing.T) {
	a := MustShingles("ACDEF", 3)
	b := MustShingles("CDEFG", 3)

	assert.Equal(t, 2, Intersection(a, b))
	assert.Equal(t, []string{"CDE", "DEF"}, Shared(a, b))
	assert.Empty(t, Shared(a, Set{}))
}

func BenchmarkShingles(b *testing.B) {
	seq := "MKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQGSHMSLFDFFKNKGSAA"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Shingles(seq, 3)
	}
}
