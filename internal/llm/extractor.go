// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/prompts"
)

const extractionPrompts = "extraction.json"

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text or a document.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "MasterResume")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
	Rules       []string      // Extra numbered rules appended after the structure
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", or an inline JSON shape
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
// An empty inputText builds a prompt for an attached document.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("Rules:\n")
	rules := append([]string{"Return ONLY valid JSON, no markdown, no explanation, no code blocks."}, schema.Rules...)
	for i, rule := range rules {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rule))
	}

	if inputText != "" {
		sb.WriteString("\nInput text:\n\"\"\"\n")
		sb.WriteString(inputText)
		sb.WriteString("\n\"\"\"\n")
	}

	return sb.String()
}

// --- Predefined Schemas ---

// MasterResumeSchema returns the extraction schema for a candidate's resume.
// The field names match the master resume JSON format.
func MasterResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "MasterResume",
		Description: prompts.MustGet(extractionPrompts, "resume-description"),
		Fields: []SchemaField{
			{
				Name:        "personalInfo",
				Type:        `{"fullName": "string", "email": "string", "phone": "string", "linkedin": "string", "github": "string"}`,
				Description: prompts.MustGet(extractionPrompts, "resume-field-personal-info"),
				Required:    true,
			},
			{
				Name:     "education",
				Type:     `[{"institution": "string", "degree": "string", "location": "string", "dateRange": "string"}]`,
				Required: true,
			},
			{
				Name:        "experience",
				Type:        `[{"company": "string", "role": "string", "location": "string", "dateRange": "string", "bullets": ["string"]}]`,
				Description: prompts.MustGet(extractionPrompts, "resume-field-experience"),
				Required:    true,
			},
			{
				Name:     "projects",
				Type:     `[{"name": "string", "technologies": ["string"], "link": "string", "bullets": ["string"]}]`,
				Required: true,
			},
			{
				Name:        "skills",
				Type:        `{"languages": ["string"], "frameworks": ["string"], "tools": ["string"], "libraries": ["string"]}`,
				Description: prompts.MustGet(extractionPrompts, "resume-field-skills"),
				Required:    true,
			},
		},
		Rules: strings.Split(prompts.MustGet(extractionPrompts, "resume-rules"), "\n"),
	}
}
