package extraction

import "fmt"

// ExtractionError is returned for every resume extraction failure.
// Message names the failed step; Cause carries the underlying error.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
