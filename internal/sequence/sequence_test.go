package sequence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		residues string
		want     string
		wantErr  bool
	}{
		{
			name:     "valid protein sequence",
			residues: "MKTAYIAKQR",
			want:     "MKTAYIAKQR",
		},
		{
			name:     "lowercase is normalized",
			residues: "mktayiakqr",
			want:     "MKTAYIAKQR",
		},
		{
			name:     "ambiguity codes and stop",
			residues: "ABZX*",
			want:     "ABZX*",
		},
		{
			name:     "empty sequence",
			residues: "",
			want:     "",
		},
		{
			name:     "digit is invalid",
			residues: "ACD1",
			wantErr:  true,
		},
		{
			name:     "gap character is invalid",
			residues: "AC-D",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.residues)

			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &InvalidSymbolError{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.Residues)
		})
	}
}

func TestIndex(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		idx, ok := Index(Alphabet[i])
		require.True(t, ok, "symbol %c", Alphabet[i])
		assert.Equal(t, i, idx)
	}

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := Index('a')
		assert.False(t, ok)
	})

	t.Run("fixed positions", func(t *testing.T) {
		idx, _ := Index('A')
		assert.Equal(t, 0, idx)
		idx, _ = Index('V')
		assert.Equal(t, 19, idx)
		idx, _ = Index('*')
		assert.Equal(t, 23, idx)
	})

	assert.Equal(t, 24, Size)
}

func TestValidate(t *testing.T) {
	err := Validate("ACDEFa")
	require.Error(t, err)

	var ise *InvalidSymbolError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 5, ise.Position)
	assert.Equal(t, byte('a'), ise.Found)
	assert.Equal(t, 0, ise.Sequence)

	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate(Alphabet))
}

func TestValidateOperand(t *testing.T) {
	err := ValidateOperand("AC9", 2)
	require.Error(t, err)

	var ise *InvalidSymbolError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 2, ise.Sequence)
	assert.Equal(t, 2, ise.Position)
	assert.Contains(t, err.Error(), "sequence2")
	assert.Contains(t, err.Error(), "'9'")

	assert.NoError(t, ValidateOperand("ACD", 1))
}

func TestEncode(t *testing.T) {
	got, err := Encode("ARN*")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 2, 23}, got)

	_, err = Encode("AJ")
	assert.IsType(t, &InvalidSymbolError{}, err)
}

func TestWithID(t *testing.T) {
	seq, err := WithID("ACDE", "P12345")
	require.NoError(t, err)
	assert.Equal(t, "P12345", seq.ID)

	_, err = WithID("ACDE", "")
	require.Error(t, err)
}

func TestComposition(t *testing.T) {
	seq, _ := New("AAR*X")
	counts := seq.Composition()

	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[1])
	assert.Equal(t, 1, counts[22])
	assert.Equal(t, 1, counts[23])
	assert.Equal(t, 1, seq.CountAmbiguous())
	assert.True(t, seq.HasStop())
}

func TestToFASTA(t *testing.T) {
	seq, err := WithMetadata("MKTAYIAKQR", "sp|P1", "test protein")
	require.NoError(t, err)
	assert.Equal(t, ">sp|P1 test protein\nMKTAYIAKQR\n", seq.ToFASTA())

	long, _ := New(strings.Repeat("A", 61))
	assert.Equal(t, ">sequence\n"+strings.Repeat("A", 60)+"\nA\n", long.ToFASTA())
}

func TestResidueStrings(t *testing.T) {
	a, _ := New("ACD")
	b, _ := New("efg")
	assert.Equal(t, []string{"ACD", "EFG"}, ResidueStrings([]*Sequence{a, b}))
}
