package validation

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Default layout limits for a rendered resume
const (
	DefaultMaxPages        = 1
	DefaultMaxCharsPerLine = 0
)

// Options selects which checks Check runs.
type Options struct {
	MaxPages         int
	MaxCharsPerLine  int
	ForbiddenPhrases []string
	// Compile runs pdflatex to count pages. Without it MaxPages is ignored.
	Compile bool
}

// Check runs the configured checks against rendered LaTeX source. Violations
// are returned in check order: line length, forbidden phrases, then page count.
// An error is only returned when compilation was requested and could not run.
func Check(ctx context.Context, latex string, opts Options) (*types.Violations, error) {
	result := &types.Violations{Violations: []types.Violation{}}

	result.Violations = append(result.Violations, CheckLineLengths(latex, opts.MaxCharsPerLine)...)
	result.Violations = append(result.Violations, CheckForbiddenPhrases(latex, opts.ForbiddenPhrases)...)

	if !opts.Compile {
		return result, nil
	}

	pages, err := CompileLaTeXSource(ctx, latex)
	if err != nil {
		return result, err
	}
	if opts.MaxPages > 0 && pages > opts.MaxPages {
		result.Violations = append(result.Violations, types.Violation{
			Type:     types.ViolationPageOverflow,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("Document has %d pages, maximum is %d", pages, opts.MaxPages),
			Pages:    intPtr(pages),
		})
	}
	return result, nil
}
