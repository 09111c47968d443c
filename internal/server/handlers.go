package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/jonathan/resume-tailor/internal/types"
	"go.uber.org/zap"
)

// Error messages returned by the API
const (
	msgMethodNotAllowed  = "Method Not Allowed"
	msgMissingFileData   = "Missing file data or mime type"
	msgMissingAPIKey     = "GEMINI_API_KEY is not configured on the server"
	msgParseFailed       = "Failed to parse resume"
	msgMissingResume     = "masterResume is required"
	msgInvalidBody       = "Invalid request body"
	msgUnsupportedUpload = "fileData must be base64 and mimeType one of application/pdf, text/plain or DOCX"
	msgAmbiguousJob      = "Send either jobDescription or jobUrl, not both"
)

// optimizeBody keeps masterResume raw so it can be schema-checked before decoding
type optimizeBody struct {
	MasterResume   json.RawMessage `json:"masterResume"`
	JobDescription string          `json:"jobDescription"`
	JobURL         string          `json:"jobUrl"`
}

// handleParseResume extracts a master resume from an uploaded document
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.errorResponse(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var req types.ParseResumeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody+": "+err.Error())
		return
	}

	if req.FileData == "" || req.MimeType == "" {
		s.errorResponse(w, http.StatusBadRequest, msgMissingFileData)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgUnsupportedUpload)
		return
	}

	if s.apiKey == "" {
		s.errorResponse(w, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	extractor, closeFn, err := s.extractors(r.Context(), s.apiKey)
	if err != nil {
		s.logger.Error("failed to create extractor", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	parsed, err := extractor.ExtractResume(r.Context(), req)
	if err != nil {
		s.logger.Error("resume extraction failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		message := err.Error()
		if message == "" {
			message = msgParseFailed
		}
		s.errorResponse(w, HTTPStatus(err), message)
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleOptimize scores a master resume against a job description
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.errorResponse(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var body optimizeBody
	if err := s.decodeJSON(w, r, &body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody+": "+err.Error())
		return
	}
	if len(body.MasterResume) == 0 || string(body.MasterResume) == "null" {
		s.errorResponse(w, http.StatusBadRequest, msgMissingResume)
		return
	}

	master, err := resume.Parse(body.MasterResume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req := types.OptimizeRequest{MasterResume: master, JobDescription: body.JobDescription, JobURL: body.JobURL}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if req.JobURL != "" {
		req.JobDescription, _, err = ingestion.IngestFromURL(r.Context(), req.JobURL, &ingestion.Options{
			Fetcher: s.jobPages,
			Logger:  s.logger,
		})
		if err != nil {
			s.logger.Warn("job posting fetch failed",
				zap.String("request_id", RequestIDFromContext(r.Context())),
				zap.String("url", req.JobURL),
				zap.Error(err),
			)
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	result, err := s.optimizer.Optimize(req.MasterResume, req.JobDescription)
	if err != nil {
		s.logger.Error("optimization failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// decodeJSON decodes a size-limited request body
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errors.New("body too large")
		}
		return err
	}
	return nil
}

// validationMessage describes the first failed field check of a request.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgInvalidBody + ": " + err.Error()
	}

	fe := fieldErrs[0]
	switch {
	case fe.Tag() == "excluded_with":
		return msgAmbiguousJob
	case fe.Tag() == "required" && fe.Field() == "MasterResume":
		return msgMissingResume
	case fe.Tag() == "required":
		return fmt.Sprintf("%s: %s is required", msgInvalidBody, fe.Field())
	default:
		return fmt.Sprintf("%s: %s failed the %s check", msgInvalidBody, fe.Field(), fe.Tag())
	}
}
