package dynaalign

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/dynaalign-go/internal/minhash"
	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

func TestNeedlemanWunschScore(t *testing.T) {
	tests := []struct {
		name     string
		s1, s2   string
		match    int
		mismatch int
		gap      int
		want     float64
	}{
		{"identical", "ACD", "ACD", 1, -1, -2, 3},
		{"empty against three", "", "ACD", 1, -1, -2, -6},
		{"heavier match", "ACD", "ACE", 2, -1, -2, 3},
		{"unit gaps", "GATTACA", "GCATGCT", 1, -1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NeedlemanWunschScore(tt.s1, tt.s2, tt.match, tt.mismatch, tt.gap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NeedlemanWunschScore("ACD", "acd", 1, -1, -2)
	var ise *InvalidSymbolError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 2, ise.Sequence)
}

func TestAlign(t *testing.T) {
	r, err := Align("HEAGAWGHEE", "PAWHEAE", "BLOSUM62", DefaultGapOpen, DefaultGapExtend)
	require.NoError(t, err)
	assert.Equal(t, -3, r.Score)
	assert.InDelta(t, 0.3, r.Similarity, 1e-12)

	_, err = Align("A", "A", "BLOSUM30", DefaultGapOpen, DefaultGapExtend)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "matrix", ce.Field)
	assert.Equal(t, "BLOSUM30", ce.Value)
}

func TestSimilarityMatrix(t *testing.T) {
	seqs := []string{"MKTAYIAKQR", "MKTAFIAKQR"}

	m, err := SimilarityMatrix(seqs)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, m.Labels())
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.InDelta(t, 0.9, m.At(0, 1), 1e-12)

	m, err = SimilarityMatrix(seqs, similarity.WithMatrix("BLOSUM45"), similarity.WithWorkers(1))
	require.NoError(t, err)
	assert.True(t, m.IsSymmetric())

	_, err = SimilarityMatrix(seqs, similarity.WithMatrix("BLOSUM999"))
	assert.True(t, errors.Is(err, substitution.ErrUnknownMatrix))

	_, err = SimilarityMatrix([]string{"ACD", "AC1"})
	var se *SequenceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)
}

func TestMinHashSimilarityMatrix(t *testing.T) {
	seqs := []string{"MKTAYIAKQRQISFVKSHFSRQ", "MKTAYIAKQRQISFVKSHFSRQ", "GSHMSLFDFFKNKGSAA"}

	// k and numHash win over options.
	m, err := MinHashSimilarityMatrix(seqs, 3, 50, minhash.WithK(1000), minhash.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Less(t, m.At(0, 2), 0.5)

	_, err = MinHashSimilarityMatrix(seqs, 0, 50)
	var ike *InvalidKError
	require.ErrorAs(t, err, &ike)

	_, err = MinHashSimilarityMatrix(seqs, 3, 0)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "num_hash", ce.Field)
}

func TestJaccardSimilarityMatrix(t *testing.T) {
	m, err := JaccardSimilarityMatrix([]string{"ACDEF", "CDEFG"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.At(0, 1))
}

func TestMatrices(t *testing.T) {
	assert.Equal(t, []string{"BLOSUM45", "BLOSUM50", "BLOSUM62", "BLOSUM80", "BLOSUM90", "BLOSUM100"}, Matrices())
}

func TestSummarize(t *testing.T) {
	m, err := SimilarityMatrix([]string{"ACD", "ACE", "AC"})
	require.NoError(t, err)

	s, err := Summarize(m)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Pairs)
	assert.InDelta(t, 2.0/3.0, s.Mean, 1e-12)
}

const fastaInput = `>sp|P1 lysozyme fragment
kvfgrcelaa
AMKRHGLDNY
; comment line

>sp|P2
MKTAYIAKQR
>sp|P3 stop terminated
ACDE*
`

func TestParseFASTA(t *testing.T) {
	seqs, err := ParseFASTA(strings.NewReader(fastaInput))
	require.NoError(t, err)
	require.Len(t, seqs, 3)

	assert.Equal(t, "sp|P1", seqs[0].ID)
	assert.Equal(t, "lysozyme fragment", seqs[0].Description)
	assert.Equal(t, "KVFGRCELAAAMKRHGLDNY", seqs[0].Residues)
	assert.Equal(t, "", seqs[1].Description)
	assert.True(t, seqs[2].HasStop())

	assert.Equal(t, []string{"sp|P1", "sp|P2", "sp|P3"}, IDs(seqs))
	assert.Equal(t, "MKTAYIAKQR", Residues(seqs)[1])

	stats, err := SequenceStats(seqs)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 35, stats.TotalResidues)
}

func TestParseFASTAErrors(t *testing.T) {
	t.Run("invalid residue", func(t *testing.T) {
		_, err := ParseFASTA(strings.NewReader(">a\nACD\n>b\nAC1D\n"))
		var ise *InvalidSymbolError
		require.ErrorAs(t, err, &ise)
		assert.Equal(t, 2, ise.Position)
		assert.Contains(t, err.Error(), "record 2 (b)")
	})

	t.Run("header without residues", func(t *testing.T) {
		_, err := ParseFASTA(strings.NewReader(">a\n>b\nACD\n"))
		var ese *sequence.EmptySequenceError
		require.ErrorAs(t, err, &ese)
		assert.Equal(t, "a", ese.ID)
	})

	t.Run("empty input", func(t *testing.T) {
		seqs, err := ParseFASTA(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, seqs)
	})
}

func TestFASTARoundTrip(t *testing.T) {
	seqs, err := ParseFASTA(strings.NewReader(fastaInput))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.fasta")
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, seqs))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	back, err := ReadFASTA(path)
	require.NoError(t, err)
	require.Len(t, back, len(seqs))
	for i := range seqs {
		assert.True(t, seqs[i].Equal(back[i]))
		assert.Equal(t, seqs[i].ID, back[i].ID)
	}

	_, err = ReadFASTA(filepath.Join(t.TempDir(), "missing.fasta"))
	require.Error(t, err)
}

func TestIDsFallback(t *testing.T) {
	a, _ := sequence.New("ACD")
	b, _ := sequence.WithID("ACE", "x")
	assert.Equal(t, []string{"1", "x"}, IDs([]*Sequence{a, b}))
}

func TestInfo(t *testing.T) {
	assert.Contains(t, Info(), Version())
}
