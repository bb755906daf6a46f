package substitution

import (
	"errors"
	"testing"

	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		matrix  string
		wantErr bool
	}{
		{"BLOSUM45", "BLOSUM45", false},
		{"BLOSUM50", "BLOSUM50", false},
		{"BLOSUM62", "BLOSUM62", false},
		{"BLOSUM80", "BLOSUM80", false},
		{"BLOSUM90", "BLOSUM90", false},
		{"BLOSUM100", "BLOSUM100", false},
		{"unknown number", "BLOSUM999", true},
		{"lowercase", "blosum62", true},
		{"PAM is not supported", "PAM250", true},
		{"empty", "", true},
		{"trailing space", "BLOSUM62 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.matrix)
			if tt.wantErr {
				require.Error(t, err)

				var ce *ConfigurationError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.matrix, ce.Value)
				assert.True(t, errors.Is(err, ErrUnknownMatrix))
				assert.Contains(t, err.Error(), "invalid substitution matrix name")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.matrix, m.Name)
		})
	}
}

func TestMatricesSymmetric(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			m := MustLookup(name)
			for i := 0; i < Size; i++ {
				for j := 0; j < Size; j++ {
					require.Equal(t, m.Scores[i][j], m.Scores[j][i], "(%d,%d)", i, j)
				}
			}
		})
	}
}

func TestDiagonalPositive(t *testing.T) {
	// X is the only self-substitution that scores below zero.
	unknown, _ := sequence.Index('X')
	for _, name := range Names() {
		m := MustLookup(name)
		for i := 0; i < Size; i++ {
			if i == unknown {
				assert.Less(t, m.ScoreAt(i, i), 0, name)
				continue
			}
			assert.Greater(t, m.ScoreAt(i, i), 0, "%s: %c", name, sequence.Alphabet[i])
		}
	}
}

func TestStopPenalized(t *testing.T) {
	stop, _ := sequence.Index('*')
	for _, name := range Names() {
		m := MustLookup(name)
		for i := 0; i < Size-1; i++ {
			assert.Less(t, m.ScoreAt(stop, i), 0, "%s: * vs %c", name, sequence.Alphabet[i])
		}
	}
}

func TestScore(t *testing.T) {
	m := MustLookup("BLOSUM62")

	tests := []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'C', 'C', 9},
		{'D', 'E', 2},
		{'A', 'W', -3},
		{'*', '*', 1},
		{'X', 'A', 0},
	}

	for _, tt := range tests {
		got, err := m.Score(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%c/%c", tt.a, tt.b)
	}

	_, err := m.Score('A', 'j')
	assert.IsType(t, &sequence.InvalidSymbolError{}, err)
}

func TestDiagonals(t *testing.T) {
	tests := []struct {
		matrix string
		ww     int
		stop   int
	}{
		{"BLOSUM45", 15, -5},
		{"BLOSUM50", 15, -5},
		{"BLOSUM62", 11, -4},
		{"BLOSUM80", 16, -8},
		{"BLOSUM90", 11, -6},
		{"BLOSUM100", 17, -10},
	}

	for _, tt := range tests {
		t.Run(tt.matrix, func(t *testing.T) {
			m := MustLookup(tt.matrix)
			ww, _ := m.Score('W', 'W')
			assert.Equal(t, tt.ww, ww)
			sa, _ := m.Score('*', 'A')
			assert.Equal(t, tt.stop, sa)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"BLOSUM45", "BLOSUM50", "BLOSUM62", "BLOSUM80", "BLOSUM90", "BLOSUM100"}, Names())
	assert.Contains(t, Names(), DefaultMatrix)
}

func TestValidateGaps(t *testing.T) {
	assert.NoError(t, ValidateGaps(10, 4))
	assert.NoError(t, ValidateGaps(0, 0))

	err := ValidateGaps(-1, 4)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "gap_open", ce.Field)
	assert.ErrorIs(t, err, ErrNegativeGap)

	err = ValidateGaps(10, -4)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "gap_extend", ce.Field)
}

func TestMustLookupPanics(t *testing.T) {
	assert.Panics(t, func() { MustLookup("BLOSUM1") })
}
