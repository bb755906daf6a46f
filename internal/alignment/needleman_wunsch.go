package alignment

import (
	"github.com/aria-lang/dynaalign-go/internal/sequence"
)

// NeedlemanWunschScore returns the optimal global alignment score of seq1
// and seq2 under a linear gap model.
//
// Only two DP rows are kept, so memory is O(len(seq2)). A nil scoring
// uses DefaultLinear.
func NeedlemanWunschScore(seq1, seq2 string, scoring *LinearScoring) (int, error) {
	if scoring == nil {
		scoring = DefaultLinear()
	}
	if err := sequence.ValidateOperand(seq1, 1); err != nil {
		return 0, err
	}
	if err := sequence.ValidateOperand(seq2, 2); err != nil {
		return 0, err
	}

	m, n := len(seq1), len(seq2)
	prevRow := make([]int, n+1)
	currRow := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prevRow[j] = j * scoring.Gap
	}

	for i := 1; i <= m; i++ {
		currRow[0] = i * scoring.Gap

		for j := 1; j <= n; j++ {
			diag := prevRow[j-1] + scoring.Score(seq1[i-1], seq2[j-1])
			up := prevRow[j] + scoring.Gap
			left := currRow[j-1] + scoring.Gap

			currRow[j] = max(diag, up, left)
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[n], nil
}
