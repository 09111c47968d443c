package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkLaTeXCmd = &cobra.Command{
	Use:   "check-latex",
	Short: "Check rendered LaTeX against layout constraints",
	Long: "Reports lines longer than --max-chars and lines containing forbidden phrases. " +
		"With --compile, runs pdflatex and reports documents longer than --max-pages. " +
		"Exits non-zero when any error-severity violation is found.",
	RunE: runCheckLaTeX,
}

var (
	checkLaTeXFile    string
	checkLaTeXCompile bool
	checkLaTeXJSON    bool
)

func init() {
	checkLaTeXCmd.Flags().StringVarP(&checkLaTeXFile, "file", "i", "", "Path to a .tex file (required)")
	checkLaTeXCmd.Flags().Int("max-pages", validation.DefaultMaxPages, "Maximum page count when compiling")
	checkLaTeXCmd.Flags().Int("max-chars", validation.DefaultMaxCharsPerLine, "Maximum visible characters per source line (0 disables)")
	checkLaTeXCmd.Flags().StringSlice("forbid", nil, "Forbidden phrase (repeatable or comma-separated)")
	checkLaTeXCmd.Flags().BoolVar(&checkLaTeXCompile, "compile", false, "Compile with pdflatex and check the page count")
	checkLaTeXCmd.Flags().BoolVar(&checkLaTeXJSON, "json", false, "Print violations as JSON")

	if err := checkLaTeXCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(checkLaTeXCmd)
}

// ErrConstraintViolation is returned when check-latex finds error-severity violations
var ErrConstraintViolation = errors.New("constraint violations found")

func runCheckLaTeX(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	latex, err := os.ReadFile(checkLaTeXFile)
	if err != nil {
		return fmt.Errorf("failed to read LaTeX file: %w", err)
	}

	opts := validation.Options{
		MaxPages:         cfg.MaxPages,
		MaxCharsPerLine:  cfg.MaxCharsPerLine,
		ForbiddenPhrases: cfg.ForbiddenPhrases,
		Compile:          checkLaTeXCompile,
	}
	logger.Debug("checking LaTeX",
		zap.String("file", checkLaTeXFile),
		zap.Int("max_pages", opts.MaxPages),
		zap.Int("max_chars", opts.MaxCharsPerLine),
		zap.Strings("forbidden", opts.ForbiddenPhrases),
		zap.Bool("compile", opts.Compile),
	)

	violations, err := validation.Check(cmd.Context(), string(latex), opts)
	if err != nil {
		if validation.IsCompilerMissing(err) {
			return fmt.Errorf("--compile requires pdflatex: %w", err)
		}
		return err
	}

	if checkLaTeXJSON {
		data, err := json.MarshalIndent(violations, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal violations: %w", err)
		}
		if err := writeOutput(cmd, "", append(data, '\n')); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(violations)
	}

	if violations.HasErrors() {
		return fmt.Errorf("%w: %d violations", ErrConstraintViolation, len(violations.Violations))
	}
	return nil
}
