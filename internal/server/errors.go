package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/optimizer"
	"github.com/jonathan/resume-tailor/internal/resume"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Invalid input, including a jobUrl on a non-public host, maps to 400 and an
// unreachable job posting to 502. Everything else is 500.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var loadErr *resume.LoadError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &loadErr):
		return http.StatusBadRequest
	case errors.Is(err, optimizer.ErrNilResume), errors.Is(err, ingestion.ErrInvalidURL),
		errors.Is(err, fetch.ErrForbiddenDestination):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrHTTPRequestFailed), errors.Is(err, ingestion.ErrContentExtractionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
