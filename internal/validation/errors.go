// Package validation checks rendered LaTeX against layout constraints and screens
// uploaded text before it reaches a model.
package validation

import (
	"errors"
	"strings"
)

// ErrCompilerNotFound is returned when pdflatex is not installed
var ErrCompilerNotFound = errors.New("pdflatex not found in PATH")

// Error is a file or PDF failure around compilation.
type Error struct {
	Op    string
	Path  string
	Cause error
}

func (e *Error) Error() string {
	msg := "validation: " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CompilationError means pdflatex ran but did not produce a usable PDF.
// LogOutput holds the tail of the compiler output.
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	msg := "LaTeX compilation failed: " + e.Message
	if d := e.Diagnostic(); d != "" {
		msg += " (" + d + ")"
	}
	return msg
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// Diagnostic returns the first TeX error line ("! ...") from the log, or "".
func (e *CompilationError) Diagnostic() string {
	for _, line := range strings.Split(e.LogOutput, "\n") {
		if strings.HasPrefix(line, "! ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "! "))
		}
	}
	return ""
}
