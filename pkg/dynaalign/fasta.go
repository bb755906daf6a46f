package dynaalign

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aria-lang/dynaalign-go/internal/sequence"
)

// ReadFASTA reads protein sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader. Residues are upper-cased
// and validated; a header without residues is an error.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var currentID, currentDesc string
	var currentResidues strings.Builder
	inRecord := false

	flushSequence := func() error {
		if !inRecord && currentResidues.Len() == 0 {
			return nil
		}
		if currentResidues.Len() == 0 {
			return &sequence.EmptySequenceError{ID: currentID}
		}

		seq, err := sequence.WithMetadata(currentResidues.String(), currentID, currentDesc)
		if err != nil {
			return fmt.Errorf("record %d (%s): %w", len(sequences)+1, currentID, err)
		}
		sequences = append(sequences, seq)
		currentResidues.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == ';' {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			parts := strings.SplitN(line[1:], " ", 2)
			currentID = parts[0]
			currentDesc = ""
			if len(parts) > 1 {
				currentDesc = strings.TrimSpace(parts[1])
			}
			inRecord = true
		} else {
			currentResidues.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// WriteFASTA writes sequences in FASTA format.
func WriteFASTA(w io.Writer, sequences []*Sequence) error {
	for _, seq := range sequences {
		if _, err := io.WriteString(w, seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}
	return nil
}

// Residues extracts residue strings in order, ready for the matrix
// builders.
func Residues(sequences []*Sequence) []string {
	return sequence.ResidueStrings(sequences)
}

// IDs extracts record identifiers, substituting the one-based position for
// records without one.
func IDs(sequences []*Sequence) []string {
	ids := make([]string, len(sequences))
	for i, seq := range sequences {
		if seq.ID != "" {
			ids[i] = seq.ID
		} else {
			ids[i] = fmt.Sprint(i + 1)
		}
	}
	return ids
}
