package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// InvalidSymbolError is returned when a residue is outside the alphabet.
//
// Sequence is the 1-based operand number when the error comes from a
// pairwise operation, and 0 otherwise.
type InvalidSymbolError struct {
	Sequence int
	Position int
	Found    byte
}

func (e *InvalidSymbolError) Error() string {
	if e.Sequence > 0 {
		return fmt.Sprintf("invalid amino acid in sequence%d: '%c' at position %d", e.Sequence, e.Found, e.Position)
	}
	return fmt.Sprintf("invalid amino acid '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidSymbolError) IsSequenceError() {}

// EmptySequenceError is returned when a record has no residues.
type EmptySequenceError struct {
	ID string
}

func (e *EmptySequenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("sequence %q has no residues", e.ID)
	}
	return "sequence must have at least one residue"
}

func (e *EmptySequenceError) IsSequenceError() {}

// Validate checks that every byte of residues is in the alphabet.
func Validate(residues string) error {
	for i := 0; i < len(residues); i++ {
		if !IsValidResidue(residues[i]) {
			return &InvalidSymbolError{Position: i, Found: residues[i]}
		}
	}
	return nil
}

// ValidateOperand validates residues as operand n (1 or 2) of a pairwise
// operation.
func ValidateOperand(residues string, n int) error {
	if err := Validate(residues); err != nil {
		ise := err.(*InvalidSymbolError)
		ise.Sequence = n
		return ise
	}
	return nil
}
