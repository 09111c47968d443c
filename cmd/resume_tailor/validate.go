package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/jonathan/resume-tailor/internal/schemas"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a master resume",
	Long: "Checks a master resume against the JSON schema and the struct rules, and optionally an " +
		"optimization result JSON file against its schema. Exits non-zero when problems are found.",
	RunE: runValidate,
}

var validateResultFile string

func init() {
	validateCmd.Flags().StringP("resume", "r", "", "Path to master resume JSON or YAML")
	validateCmd.Flags().StringVar(&validateResultFile, "result", "", "Path to an optimize --format json output to check")

	rootCmd.AddCommand(validateCmd)
}

// ErrInvalidDocument is returned when validation finds problems
var ErrInvalidDocument = errors.New("validation failed")

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.Resume == "" && validateResultFile == "" {
		return fmt.Errorf("either --resume or --result must be provided")
	}

	var problems []string
	if cfg.Resume != "" {
		if _, err := resume.Load(cfg.Resume); err != nil {
			problems = append(problems, validationProblems(err)...)
		}
	}
	if validateResultFile != "" {
		data, err := os.ReadFile(validateResultFile)
		if err != nil {
			return fmt.Errorf("failed to read result file: %w", err)
		}
		if err := schemas.ValidateBytes(schemafiles.OptimizationResult, data); err != nil {
			problems = append(problems, validationProblems(err)...)
		}
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintValidationErrors(problems)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problems", ErrInvalidDocument, len(problems))
	}
	return nil
}

// validationProblems flattens schema errors into one line per field.
func validationProblems(err error) []string {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) && len(schemaErr.Errors) > 0 {
		problems := make([]string, 0, len(schemaErr.Errors))
		for _, fe := range schemaErr.Errors {
			problems = append(problems, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
		}
		return problems
	}
	return []string{err.Error()}
}
