// Package stats summarizes sequence batches and the similarity matrices
// built from them.
package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
)

var (
	// ErrNoSequences is returned for an empty sequence batch.
	ErrNoSequences = errors.New("sequence list cannot be empty")

	// ErrNoPairs is returned for a matrix with fewer than two rows.
	ErrNoPairs = errors.New("matrix has no off-diagonal pairs")
)

// SequenceSetStats represents aggregated statistics for a batch of
// protein sequences.
type SequenceSetStats struct {
	Count          int     `json:"count"`
	TotalResidues  int     `json:"total_residues"`
	MinLength      int     `json:"min_length"`
	MaxLength      int     `json:"max_length"`
	MeanLength     float64 `json:"mean_length"`
	MedianLength   float64 `json:"median_length"`
	TotalAmbiguous int     `json:"total_ambiguous"`
	WithStop       int     `json:"with_stop"`

	// Composition counts each residue across the batch, omitting absent
	// symbols.
	Composition map[string]int `json:"composition"`
}

// FromSequences calculates statistics for a collection of sequences.
func FromSequences(seqs []*sequence.Sequence) (*SequenceSetStats, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	lengths := make([]float64, len(seqs))
	s := &SequenceSetStats{
		Count:     len(seqs),
		MinLength: seqs[0].Len(),
		MaxLength: seqs[0].Len(),
	}

	var counts [sequence.Size]int
	for i, seq := range seqs {
		for sym, c := range seq.Composition() {
			counts[sym] += c
		}
		n := seq.Len()
		lengths[i] = float64(n)
		s.TotalResidues += n
		s.MinLength = min(s.MinLength, n)
		s.MaxLength = max(s.MaxLength, n)
		s.TotalAmbiguous += seq.CountAmbiguous()
		if seq.HasStop() {
			s.WithStop++
		}
	}

	s.MeanLength = float64(s.TotalResidues) / float64(s.Count)
	s.MedianLength = median(lengths)

	s.Composition = make(map[string]int)
	for sym, c := range counts {
		if c > 0 {
			s.Composition[string(sequence.Alphabet[sym])] = c
		}
	}
	return s, nil
}

// FromResidues is FromSequences over raw residue strings. Strings are not
// validated.
func FromResidues(residues []string) (*SequenceSetStats, error) {
	seqs := make([]*sequence.Sequence, len(residues))
	for i, r := range residues {
		seqs[i] = &sequence.Sequence{Residues: r}
	}
	return FromSequences(seqs)
}

func (s *SequenceSetStats) String() string {
	return fmt.Sprintf(`SequenceSetStats {
  count: %d
  total residues: %d
  length range: %d - %d
  mean length: %.1f
  median length: %.1f
  ambiguous residues: %d
  with stop: %d
}`, s.Count, s.TotalResidues, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.TotalAmbiguous, s.WithStop)
}

// MatrixStats summarizes the off-diagonal entries of a similarity matrix.
type MatrixStats struct {
	Pairs  int     `json:"pairs"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// FromMatrix computes MatrixStats over the N(N-1)/2 distinct pairs.
func FromMatrix(m *similarity.Matrix) (*MatrixStats, error) {
	values := m.OffDiagonal()
	if len(values) == 0 {
		return nil, ErrNoPairs
	}

	s := &MatrixStats{Pairs: len(values), Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(values))
	s.Median = median(values)
	return s, nil
}

func (s *MatrixStats) String() string {
	return fmt.Sprintf("MatrixStats { pairs: %d, min: %.4f, max: %.4f, mean: %.4f, median: %.4f }",
		s.Pairs, s.Min, s.Max, s.Mean, s.Median)
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Histogram bins the off-diagonal similarities of a matrix over [0, 1].
type Histogram struct {
	Bins    []int
	BinSize float64
	NumBins int
}

// NewHistogram creates a similarity histogram with numBins equal bins.
// A value of exactly 1.0 falls in the last bin.
func NewHistogram(m *similarity.Matrix, numBins int) (*Histogram, error) {
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}
	values := m.OffDiagonal()
	if len(values) == 0 {
		return nil, ErrNoPairs
	}

	binSize := 1.0 / float64(numBins)
	bins := make([]int, numBins)

	for _, v := range values {
		idx := int(v / binSize)
		if idx >= numBins {
			idx = numBins - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx]++
	}

	return &Histogram{Bins: bins, BinSize: binSize, NumBins: numBins}, nil
}

// ModeBin returns the bounds of the most populated bin.
func (h *Histogram) ModeBin() (float64, float64) {
	maxCount := h.Bins[0]
	maxBin := 0

	for i, count := range h.Bins {
		if count > maxCount {
			maxCount = count
			maxBin = i
		}
	}

	start := float64(maxBin) * h.BinSize
	return start, start + h.BinSize
}

func (h *Histogram) String() string {
	var sb strings.Builder
	sb.WriteString("Similarity Histogram:\n")
	for i := 0; i < h.NumBins; i++ {
		start := float64(i) * h.BinSize
		fmt.Fprintf(&sb, "%.2f-%.2f: %s (%d)\n", start, start+h.BinSize, strings.Repeat("#", h.Bins[i]), h.Bins[i])
	}
	return sb.String()
}
