// Package schemas validates JSON documents against the bundled JSON Schemas.
package schemas

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/xeipuuv/gojsonschema"
)

const rootField = "(root)"

// FieldError is one schema violation at a dotted field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document, ordered by field path.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means a bundled schema could not be found or compiled.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var compiled sync.Map // file name -> *gojsonschema.Schema

// ValidateBytes validates a JSON document against a bundled schema such as
// schemas.MasterResume. Malformed JSON is reported as a ValidationError at (root).
func ValidateBytes(schemaName string, data []byte) error {
	schema, err := bundledSchema(schemaName)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: rootField, Message: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}
	return newValidationError(result.Errors())
}

func bundledSchema(name string) (*gojsonschema.Schema, error) {
	if cached, ok := compiled.Load(name); ok {
		return cached.(*gojsonschema.Schema), nil
	}

	content, err := schemafiles.Read(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "unknown bundled schema", Cause: err}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
	}

	actual, _ := compiled.LoadOrStore(name, schema)
	return actual.(*gojsonschema.Schema), nil
}

func newValidationError(descs []gojsonschema.ResultError) *ValidationError {
	fields := make([]FieldError, 0, len(descs))
	for _, desc := range descs {
		field := desc.Field()
		if field == "" {
			field = rootField
		}
		fields = append(fields, FieldError{Field: field, Message: desc.Description()})
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return &ValidationError{Errors: fields}
}
