package ingestion

import "errors"

var (
	// ErrInvalidURL is returned when URL is malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
	// ErrUnsupportedFormat is returned for document types that cannot be read
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyJobDescription is returned when a source yields no text
	ErrEmptyJobDescription = errors.New("job description is empty")
)
