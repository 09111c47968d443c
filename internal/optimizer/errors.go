package optimizer

import (
	"errors"
	"fmt"
)

// ErrNilResume is returned when no master resume is supplied
var ErrNilResume = errors.New("master resume is required")

// OptimizeError represents a failure to produce the document source for a selection
type OptimizeError struct {
	Message string
	Cause   error
}

func (e *OptimizeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("optimize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("optimize error: %s", e.Message)
}

func (e *OptimizeError) Unwrap() error {
	return e.Cause
}
