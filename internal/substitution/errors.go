package substitution

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMatrix is the cause of a ConfigurationError for a matrix
	// name outside the enumerated set.
	ErrUnknownMatrix = errors.New("unknown substitution matrix")

	// ErrNegativeGap is the cause of a ConfigurationError for a negative
	// gap cost.
	ErrNegativeGap = errors.New("gap cost must be non-negative")
)

// ConfigurationError reports an invalid scoring parameter. It is raised
// before any computation starts.
type ConfigurationError struct {
	Field string
	Value any
	cause error
}

// NewConfigurationError builds a ConfigurationError wrapping cause.
func NewConfigurationError(field string, value any, cause error) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, cause: cause}
}

func (e *ConfigurationError) Error() string {
	if errors.Is(e.cause, ErrUnknownMatrix) {
		return fmt.Sprintf("invalid substitution matrix name: %v", e.Value)
	}
	if e.cause != nil {
		return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// ValidateGaps checks the affine gap costs.
func ValidateGaps(gapOpen, gapExtend int) error {
	if gapOpen < 0 {
		return NewConfigurationError("gap_open", gapOpen, ErrNegativeGap)
	}
	if gapExtend < 0 {
		return NewConfigurationError("gap_extend", gapExtend, ErrNegativeGap)
	}
	return nil
}
