package types

import (
	"github.com/go-playground/validator/v10"
)

// Supported MIME types for resume extraction
const (
	MIMETypePDF       = "application/pdf"
	MIMETypePlainText = "text/plain"
	MIMETypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ParseResumeRequest is the body of a resume extraction request.
// FileData holds the base64-encoded file bytes.
type ParseResumeRequest struct {
	FileData string `json:"fileData" validate:"required,base64"`
	MimeType string `json:"mimeType" validate:"required,oneof=application/pdf text/plain application/vnd.openxmlformats-officedocument.wordprocessingml.document"`
}

// OptimizeRequest is the body of an optimization request.
// JobURL names a posting to fetch in place of an inline JobDescription.
type OptimizeRequest struct {
	MasterResume   *MasterResume `json:"masterResume" validate:"required"`
	JobDescription string        `json:"jobDescription"`
	JobURL         string        `json:"jobUrl,omitempty" validate:"excluded_with=JobDescription"`
}

// ErrorResponse is the JSON error payload returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the resume structure using the validator.
func (r *MasterResume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
