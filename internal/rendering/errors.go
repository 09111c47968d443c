// Package rendering turns selected resume content into LaTeX source or a plain-text preview.
package rendering

import "fmt"

// TemplateError is returned when a template cannot be loaded, parsed or executed.
// Template holds the file path, or the built-in template name.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := "template error: " + e.Message
	if e.Template != "" {
		msg = fmt.Sprintf("template error (%s): %s", e.Template, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is returned for failures unrelated to template content
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
