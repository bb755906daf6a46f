// Package dynaalign provides a high-level API for pairwise protein
// similarity.
//
// It exposes exact affine-gap global alignment scored against BLOSUM
// matrices and approximate k-mer MinHash similarity through a small set of
// functions returning N×N similarity matrices.
//
// Example usage:
//
//	m, err := dynaalign.SimilarityMatrix([]string{"MKTAYIAKQR", "MKTAFIAKQR"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.2f\n", m.At(0, 1))
//
//	approx, err := dynaalign.MinHashSimilarityMatrix(seqs, 3, 200)
package dynaalign

import (
	"fmt"

	"github.com/aria-lang/dynaalign-go/internal/alignment"
	"github.com/aria-lang/dynaalign-go/internal/kmer"
	"github.com/aria-lang/dynaalign-go/internal/minhash"
	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
	"github.com/aria-lang/dynaalign-go/internal/stats"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

// Re-export types for convenience
type (
	Sequence           = sequence.Sequence
	Matrix             = similarity.Matrix
	Result             = alignment.Result
	MatrixStats        = stats.MatrixStats
	SequenceSetStats   = stats.SequenceSetStats
	InvalidSymbolError = sequence.InvalidSymbolError
	ConfigurationError = substitution.ConfigurationError
	InvalidKError      = kmer.InvalidKError
	SequenceError      = similarity.SequenceError
)

// Defaults
const (
	DefaultMatrix    = substitution.DefaultMatrix
	DefaultGapOpen   = alignment.DefaultGapOpen
	DefaultGapExtend = alignment.DefaultGapExtend
	DefaultK         = minhash.DefaultK
	DefaultNumHash   = minhash.DefaultNumHash
)

// NeedlemanWunschScore returns the optimal linear-gap global alignment score
// of s1 and s2. match is added for identical residues, mismatch for
// differing ones and gap for every gap position, so penalties are passed as
// negative numbers.
func NeedlemanWunschScore(s1, s2 string, match, mismatch, gap int) (float64, error) {
	score, err := alignment.NeedlemanWunschScore(s1, s2, &alignment.LinearScoring{
		Match:    match,
		Mismatch: mismatch,
		Gap:      gap,
	})
	if err != nil {
		return 0, err
	}
	return float64(score), nil
}

// Align runs a single Gotoh global alignment under the named matrix.
func Align(s1, s2, matrixName string, gapOpen, gapExtend int) (*Result, error) {
	m, err := substitution.Lookup(matrixName)
	if err != nil {
		return nil, err
	}
	return alignment.Gotoh(s1, s2, m, gapOpen, gapExtend)
}

// SimilarityMatrix aligns every pair of seqs. Without options it uses
// BLOSUM62 with gap open 10 and gap extend 4.
func SimilarityMatrix(seqs []string, opts ...similarity.Option) (*Matrix, error) {
	b, err := similarity.NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	return b.Build(seqs)
}

// MinHashSimilarityMatrix estimates the k-mer Jaccard similarity of every
// pair from numHash-slot signatures. k and numHash take precedence over
// WithK and WithNumHash in opts.
func MinHashSimilarityMatrix(seqs []string, k, numHash int, opts ...minhash.Option) (*Matrix, error) {
	opts = append(opts, minhash.WithK(k), minhash.WithNumHash(numHash))
	e, err := minhash.NewEstimator(opts...)
	if err != nil {
		return nil, err
	}
	return e.Build(seqs)
}

// JaccardSimilarityMatrix computes the exact k-mer Jaccard similarity that
// MinHashSimilarityMatrix estimates.
func JaccardSimilarityMatrix(seqs []string, k int) (*Matrix, error) {
	return minhash.JaccardMatrix(seqs, k)
}

// Matrices lists the accepted substitution matrix names.
func Matrices() []string {
	return substitution.Names()
}

// Summarize computes off-diagonal statistics of a similarity matrix.
func Summarize(m *Matrix) (*MatrixStats, error) {
	return stats.FromMatrix(m)
}

// SequenceStats calculates length statistics for a batch.
func SequenceStats(seqs []*Sequence) (*SequenceSetStats, error) {
	return stats.FromSequences(seqs)
}

// Version returns the DynaAlign version.
func Version() string {
	return "1.0.0"
}

// Info returns information about DynaAlign.
func Info() string {
	return fmt.Sprintf(`DynaAlign v%s - Protein Similarity Library

Features:
  - Gotoh affine-gap global alignment
  - BLOSUM45, 50, 62, 80, 90 and 100 substitution matrices
  - All-pairs exact similarity matrices
  - k-mer MinHash similarity estimation
  - Exact k-mer Jaccard similarity
  - FASTA parsing
`, Version())
}
