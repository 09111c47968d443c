package resume

import "fmt"

// LoadError represents a failure to read, decode or validate a master resume
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	location := e.Path
	if location == "" {
		location = "(input)"
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume %s: %s: %v", location, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume %s: %s", location, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
