package alignment

import (
	"fmt"
	"math"

	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

// Default affine gap costs.
const (
	DefaultGapOpen   = 10
	DefaultGapExtend = 4
)

// unreachable leaves headroom so that subtracting gap costs from it cannot
// wrap around.
const unreachable = math.MinInt / 4

// Result summarizes one global alignment.
type Result struct {
	// Score is the optimal alignment score.
	Score int
	// Matches counts diagonal steps over identical residues.
	Matches int
	// Length counts all traceback steps.
	Length int
	// Similarity is Matches/Length, or 1.0 when both sequences are empty.
	Similarity float64
}

func (r *Result) String() string {
	return fmt.Sprintf("Result { score: %d, matches: %d, length: %d, similarity: %.4f }",
		r.Score, r.Matches, r.Length, r.Similarity)
}

// Aligner runs Gotoh affine-gap global alignments with fixed scoring.
// It holds no per-call state and is safe for concurrent use.
type Aligner struct {
	matrix    *substitution.Matrix
	gapOpen   int
	gapExtend int
}

// NewAligner validates the gap costs and returns an Aligner. A nil matrix
// selects BLOSUM62.
func NewAligner(matrix *substitution.Matrix, gapOpen, gapExtend int) (*Aligner, error) {
	if matrix == nil {
		matrix = substitution.MustLookup(substitution.DefaultMatrix)
	}
	if err := substitution.ValidateGaps(gapOpen, gapExtend); err != nil {
		return nil, err
	}
	return &Aligner{matrix: matrix, gapOpen: gapOpen, gapExtend: gapExtend}, nil
}

// Matrix returns the substitution matrix in use.
func (a *Aligner) Matrix() *substitution.Matrix {
	return a.matrix
}

// Align validates both sequences and aligns them.
func (a *Aligner) Align(seq1, seq2 string) (*Result, error) {
	x, err := encodeOperand(seq1, 1)
	if err != nil {
		return nil, err
	}
	y, err := encodeOperand(seq2, 2)
	if err != nil {
		return nil, err
	}
	r := a.AlignEncoded(x, y)
	return &r, nil
}

// AlignEncoded aligns two sequences already converted with
// sequence.Encode.
//
// Ix holds the best score ending in a gap that consumes sequence 1 (an up
// move), Iy the same for sequence 2 (a left move). At every interior cell
// the diagonal is preferred when it is at least as good as both gap
// states, then Up over Left; M is overwritten with the chosen value, so it
// always holds the cell optimum that traceback follows.
func (a *Aligner) AlignEncoded(x, y []uint8) Result {
	m, n := len(x), len(y)
	cols := n + 1
	size := (m + 1) * cols

	M := make([]int, size)
	Ix := make([]int, size)
	Iy := make([]int, size)
	trace := make([]Direction, size)
	for k := range M {
		M[k], Ix[k], Iy[k] = unreachable, unreachable, unreachable
	}
	M[0] = 0

	for i := 1; i <= m; i++ {
		Ix[i*cols] = -a.gapOpen - (i-1)*a.gapExtend
		trace[i*cols] = Up
	}
	for j := 1; j <= n; j++ {
		Iy[j] = -a.gapOpen - (j-1)*a.gapExtend
		trace[j] = Left
	}

	open := a.gapOpen + a.gapExtend
	extend := a.gapExtend

	for i := 1; i <= m; i++ {
		row := i * cols
		prev := row - cols
		scores := &a.matrix.Scores[x[i-1]]

		for j := 1; j <= n; j++ {
			c := row + j
			up := prev + j
			d := up - 1

			ix := max(M[up]-open, Ix[up]-extend)
			iy := max(M[c-1]-open, Iy[c-1]-extend)
			diag := max(M[d], Ix[d], Iy[d]) + scores[y[j-1]]

			Ix[c] = ix
			Iy[c] = iy

			switch {
			case diag >= ix && diag >= iy:
				M[c] = diag
				trace[c] = Diagonal
			case ix >= iy:
				M[c] = ix
				trace[c] = Up
			default:
				M[c] = iy
				trace[c] = Left
			}
		}
	}

	last := size - 1
	result := Result{Score: max(M[last], Ix[last], Iy[last])}
	result.Matches, result.Length = traceback(x, y, trace, cols)
	result.Similarity = similarity(result.Matches, result.Length)
	return result
}

// traceback walks from (m,n) back to (0,0) and counts identical diagonal
// steps and total steps.
func traceback(x, y []uint8, trace []Direction, cols int) (matches, length int) {
	i, j := len(x), len(y)

	for i > 0 || j > 0 {
		switch trace[i*cols+j] {
		case Diagonal:
			if x[i-1] == y[j-1] {
				matches++
			}
			i--
			j--
		case Up:
			i--
		default:
			j--
		}
		length++
	}

	return matches, length
}

// similarity defines the empty/empty pair as identical.
func similarity(matches, length int) float64 {
	if length == 0 {
		return 1.0
	}
	return float64(matches) / float64(length)
}

func encodeOperand(residues string, n int) ([]uint8, error) {
	enc, err := sequence.Encode(residues)
	if err != nil {
		if ise, ok := err.(*sequence.InvalidSymbolError); ok {
			ise.Sequence = n
		}
		return nil, err
	}
	return enc, nil
}

// Gotoh aligns seq1 and seq2 globally with affine gaps, where the first
// position of a gap costs gapOpen+gapExtend and each further position
// costs gapExtend.
func Gotoh(seq1, seq2 string, matrix *substitution.Matrix, gapOpen, gapExtend int) (*Result, error) {
	aligner, err := NewAligner(matrix, gapOpen, gapExtend)
	if err != nil {
		return nil, err
	}
	return aligner.Align(seq1, seq2)
}

// Similarity is Gotoh reduced to its similarity ratio.
func Similarity(seq1, seq2 string, matrix *substitution.Matrix, gapOpen, gapExtend int) (float64, error) {
	r, err := Gotoh(seq1, seq2, matrix, gapOpen, gapExtend)
	if err != nil {
		return 0, err
	}
	return r.Similarity, nil
}
