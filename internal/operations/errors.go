package operations

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a Step runs before the data it needs exists
var ErrMissingInput = errors.New("required input not produced by an earlier step")

// StepError ties a failure to the Step that produced it
type StepError struct {
	Step  string
	Cause error
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e == nil {
		return "unknown step error"
	}
	return fmt.Sprintf("step %s: %v", e.Step, e.Cause)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewStepError wraps cause with the failing Step's ID
func NewStepError(step string, cause error) *StepError {
	return &StepError{Step: step, Cause: cause}
}
