// Package substitution provides the BLOSUM amino-acid substitution matrices
// used to score aligned residue pairs.
//
// The tables are process-wide constants; nothing in this package mutates
// them after initialization, so concurrent readers need no locking.
package substitution

import (
	"github.com/aria-lang/dynaalign-go/internal/sequence"
)

// Size is the edge length of every matrix.
const Size = sequence.Size

// DefaultMatrix is the matrix used when a caller does not name one.
const DefaultMatrix = "BLOSUM62"

// Matrix is a named, symmetric 24x24 substitution table indexed in
// sequence.Alphabet order.
type Matrix struct {
	Name   string
	Scores [Size][Size]int
}

var (
	blosum45  = &Matrix{Name: "BLOSUM45", Scores: blosum45Scores}
	blosum50  = &Matrix{Name: "BLOSUM50", Scores: blosum50Scores}
	blosum62  = &Matrix{Name: "BLOSUM62", Scores: blosum62Scores}
	blosum80  = &Matrix{Name: "BLOSUM80", Scores: blosum80Scores}
	blosum90  = &Matrix{Name: "BLOSUM90", Scores: blosum90Scores}
	blosum100 = &Matrix{Name: "BLOSUM100", Scores: blosum100Scores}
)

// ordered by clustering threshold
var registry = []*Matrix{blosum45, blosum50, blosum62, blosum80, blosum90, blosum100}

// Lookup returns the matrix registered under name. Matching is exact and
// case-sensitive; any other string yields a *ConfigurationError.
func Lookup(name string) (*Matrix, error) {
	for _, m := range registry {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, &ConfigurationError{Field: "matrix", Value: name, cause: ErrUnknownMatrix}
}

// MustLookup is like Lookup but panics on an unknown name.
func MustLookup(name string) *Matrix {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Names returns the supported matrix names.
func Names() []string {
	names := make([]string, len(registry))
	for i, m := range registry {
		names[i] = m.Name
	}
	return names
}

// ScoreAt returns the score for alphabet indices i and j.
func (m *Matrix) ScoreAt(i, j int) int {
	return m.Scores[i][j]
}

// Score returns the score for residues a and b.
func (m *Matrix) Score(a, b byte) (int, error) {
	i, ok := sequence.Index(a)
	if !ok {
		return 0, &sequence.InvalidSymbolError{Sequence: 1, Found: a}
	}
	j, ok := sequence.Index(b)
	if !ok {
		return 0, &sequence.InvalidSymbolError{Sequence: 2, Found: b}
	}
	return m.Scores[i][j], nil
}

func (m *Matrix) String() string {
	return m.Name
}
