// Package resume loads, validates and supplies master resumes.
package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a master resume file
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension. Anything that is not YAML is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a master resume from a JSON or YAML file, then validates it.
func Load(path string) (*types.MasterResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var r *types.MasterResume
	switch FormatForPath(path) {
	case FormatYAML:
		r, err = ParseYAML(data)
	default:
		r, err = Parse(data)
	}
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Path = path
		}
		return nil, err
	}

	return r, nil
}

// Parse decodes a JSON master resume. The document is checked against the
// master resume schema before decoding so errors carry field paths.
func Parse(data []byte) (*types.MasterResume, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &LoadError{Message: "resume is empty"}
	}

	if err := schemas.ValidateBytes(schemafiles.MasterResume, data); err != nil {
		return nil, &LoadError{Message: "resume does not match schema", Cause: err}
	}

	var r types.MasterResume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &LoadError{Message: "failed to parse JSON", Cause: err}
	}

	return finish(&r)
}

// ParseYAML decodes a YAML master resume using the same field names as JSON.
func ParseYAML(data []byte) (*types.MasterResume, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &LoadError{Message: "resume is empty"}
	}

	var r types.MasterResume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	return finish(&r)
}

// Validate checks struct-level rules such as a present full name and well-formed e-mail.
func Validate(r *types.MasterResume) error {
	if r == nil {
		return &LoadError{Message: "resume is nil"}
	}
	if err := r.Validate(); err != nil {
		return &LoadError{Message: describeValidation(err), Cause: err}
	}
	return nil
}

// Encode writes a resume in the requested format.
func Encode(r *types.MasterResume, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported resume format: %s", format)
	}
}

func finish(r *types.MasterResume) (*types.MasterResume, error) {
	r.Normalize()
	if err := Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func describeValidation(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "invalid resume"
	}
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
