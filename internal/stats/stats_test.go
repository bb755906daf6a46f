package stats

import (
	"testing"

	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSequences(t *testing.T) {
	s1, _ := sequence.New("ACDE")     // len=4
	s2, _ := sequence.New("ACDEFGHI") // len=8
	s3, _ := sequence.New("XBZ*")     // len=4, 3 ambiguous, stop

	stats, err := FromSequences([]*sequence.Sequence{s1, s2, s3})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 16, stats.TotalResidues)
	assert.Equal(t, 4, stats.MinLength)
	assert.Equal(t, 8, stats.MaxLength)
	assert.InDelta(t, 16.0/3.0, stats.MeanLength, 0.0001)
	assert.Equal(t, 4.0, stats.MedianLength)
	assert.Equal(t, 3, stats.TotalAmbiguous)
	assert.Equal(t, 1, stats.WithStop)
	assert.Equal(t, map[string]int{
		"A": 2, "C": 2, "D": 2, "E": 2, "F": 1, "G": 1, "H": 1, "I": 1,
		"X": 1, "B": 1, "Z": 1, "*": 1,
	}, stats.Composition)
	assert.Contains(t, stats.String(), "length range: 4 - 8")
}

func TestFromSequencesEmpty(t *testing.T) {
	_, err := FromSequences([]*sequence.Sequence{})
	require.ErrorIs(t, err, ErrNoSequences)
}

func TestFromResidues(t *testing.T) {
	stats, err := FromResidues([]string{"", "AC", "ACDE", "ACDEFG"})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.MinLength)
	assert.Equal(t, 6, stats.MaxLength)
	assert.Equal(t, 3.0, stats.MedianLength) // sorted: 0, 2, 4, 6
}

func sampleMatrix() *similarity.Matrix {
	m := similarity.NewMatrix(3)
	for i := 0; i < 3; i++ {
		m.Set(i, i, 1)
	}
	m.Set(0, 1, 0.2)
	m.Set(0, 2, 0.9)
	m.Set(1, 2, 0.4)
	return m
}

func TestFromMatrix(t *testing.T) {
	stats, err := FromMatrix(sampleMatrix())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Pairs)
	assert.Equal(t, 0.2, stats.Min)
	assert.Equal(t, 0.9, stats.Max)
	assert.InDelta(t, 0.5, stats.Mean, 1e-12)
	assert.Equal(t, 0.4, stats.Median)

	_, err = FromMatrix(similarity.NewMatrix(1))
	require.ErrorIs(t, err, ErrNoPairs)
}

func TestHistogram(t *testing.T) {
	m := sampleMatrix()
	m.Set(1, 2, 1.0)

	h, err := NewHistogram(m, 5)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 0, 0, 2}, h.Bins)

	start, end := h.ModeBin()
	assert.InDelta(t, 0.8, start, 1e-12)
	assert.InDelta(t, 1.0, end, 1e-12)
	assert.Contains(t, h.String(), "0.80-1.00: ## (2)")

	_, err = NewHistogram(m, 0)
	require.Error(t, err)
}
