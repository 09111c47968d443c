package types

// Violation severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation types reported by the LaTeX checks
const (
	ViolationLineTooLong     = "line_too_long"
	ViolationForbiddenPhrase = "forbidden_phrase"
	ViolationPageOverflow    = "page_overflow"
)

// Violation represents a single problem found in rendered document source
type Violation struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Details    string `json:"details"`
	LineNumber *int   `json:"line_number,omitempty"`
	CharCount  *int   `json:"char_count,omitempty"`
	Pages      *int   `json:"pages,omitempty"`
}

// Violations represents a collection of validation failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}
