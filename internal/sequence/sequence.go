// Package sequence provides the protein sequence type and its 24-symbol
// residue alphabet.
//
// Residues are stored as upper-case bytes. Validation happens at
// construction time; the alignment and sketching engines re-check raw
// strings they receive directly.
package sequence

import (
	"fmt"
	"strings"
)

// Sequence represents a validated amino-acid sequence.
type Sequence struct {
	Residues    string
	ID          string
	Description string
}

// New creates a new protein sequence, upper-casing residues before
// validation. An empty residue string is allowed.
func New(residues string) (*Sequence, error) {
	normalized := strings.ToUpper(residues)
	if err := Validate(normalized); err != nil {
		return nil, err
	}
	return &Sequence{Residues: normalized}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(residues, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(residues)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a new sequence with full metadata.
func WithMetadata(residues, id, description string) (*Sequence, error) {
	seq, err := New(residues)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// CountAmbiguous counts the B, Z and X ambiguity codes.
func (s *Sequence) CountAmbiguous() int {
	count := 0
	for i := 0; i < len(s.Residues); i++ {
		switch s.Residues[i] {
		case 'B', 'Z', 'X':
			count++
		}
	}
	return count
}

// HasStop reports whether the sequence contains a '*' stop symbol.
func (s *Sequence) HasStop() bool {
	return strings.IndexByte(s.Residues, '*') >= 0
}

// Composition returns per-symbol counts in Alphabet order.
func (s *Sequence) Composition() [Size]int {
	var counts [Size]int
	for i := 0; i < len(s.Residues); i++ {
		if idx, ok := Index(s.Residues[i]); ok {
			counts[idx]++
		}
	}
	return counts
}

// ToFASTA returns the sequence in FASTA format.
func (s *Sequence) ToFASTA() string {
	var header string
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	} else {
		header = ">sequence"
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')

	// 60 residues per line, as UniProt writes them
	for i := 0; i < len(s.Residues); i += 60 {
		end := min(i+60, len(s.Residues))
		sb.WriteString(s.Residues[i:end])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Residues)
	}
	return s.Residues
}

// ResidueStrings extracts the residue strings of seqs, preserving order.
func ResidueStrings(seqs []*Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.Residues
	}
	return out
}
