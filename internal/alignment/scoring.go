// Package alignment provides global pairwise alignment of protein sequences.
//
// Gotoh computes an affine-gap alignment against a BLOSUM matrix and
// reports the fraction of identical aligned positions. NeedlemanWunschScore
// is the simpler linear-gap scorer with flat match and mismatch values.
package alignment

import "fmt"

// Direction represents the traceback direction in the alignment matrix.
type Direction uint8

const (
	// Origin marks cell (0,0), where traceback ends.
	Origin Direction = iota
	// Diagonal consumes one residue from each sequence.
	Diagonal
	// Up consumes one residue from sequence 1 (gap in sequence 2).
	Up
	// Left consumes one residue from sequence 2 (gap in sequence 1).
	Left
)

func (d Direction) String() string {
	switch d {
	case Origin:
		return "origin"
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// LinearScoring holds the parameters of the linear-gap scorer. Each value
// is added to the running score as is, so penalties are passed as
// negative numbers.
type LinearScoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// NewLinearScoring creates linear-gap scoring parameters with validation.
func NewLinearScoring(match, mismatch, gap int) (*LinearScoring, error) {
	if match <= 0 {
		return nil, fmt.Errorf("match score must be positive")
	}
	if mismatch > 0 {
		return nil, fmt.Errorf("mismatch penalty should be <= 0")
	}
	if gap > 0 {
		return nil, fmt.Errorf("gap penalty should be <= 0")
	}
	return &LinearScoring{Match: match, Mismatch: mismatch, Gap: gap}, nil
}

// DefaultLinear returns +1 match, -1 mismatch, -2 gap.
func DefaultLinear() *LinearScoring {
	return &LinearScoring{Match: 1, Mismatch: -1, Gap: -2}
}

// Score returns the score for aligning residue a against residue b.
func (s *LinearScoring) Score(a, b byte) int {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

func (s *LinearScoring) String() string {
	return fmt.Sprintf("LinearScoring { match: %d, mismatch: %d, gap: %d }", s.Match, s.Mismatch, s.Gap)
}
