package similarity

import "fmt"

// SequenceError ties a failure to the zero-based position of the sequence
// in the batch.
type SequenceError struct {
	Index int
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("sequence %d: %v", e.Index, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
