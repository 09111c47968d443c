package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a master resume from a PDF, DOCX or text file",
	Long: "Sends a resume document to Gemini and writes the structured master resume as JSON or YAML. " +
		"Requires GEMINI_API_KEY.",
	RunE: runParseResume,
}

var parseResumeFile string

func init() {
	parseResumeCmd.Flags().StringVar(&parseResumeFile, "file", "", "Resume document (.pdf, .docx or .txt) (required)")
	parseResumeCmd.Flags().StringP("out", "o", "", "Output file; .yaml/.yml writes YAML (default JSON to stdout)")
	parseResumeCmd.Flags().String("model", "", "Gemini model override")

	_ = parseResumeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseResumeCmd)
}

type resumeExtractor interface {
	ExtractResume(ctx context.Context, req types.ParseResumeRequest) (*types.MasterResume, error)
	Close() error
}

// newResumeExtractor builds the Gemini extractor; tests replace it.
var newResumeExtractor = func(ctx context.Context, apiKey string, config *llm.Config, logger *zap.Logger) (resumeExtractor, error) {
	e, err := extraction.NewFromAPIKey(ctx, apiKey, config, extraction.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return e, nil
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	data, err := os.ReadFile(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	mimeType := ingestion.DetectMIMEType(parseResumeFile, data)
	logger.Debug("parsing resume", zap.String("file", parseResumeFile), zap.String("mime_type", mimeType))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	llmConfig := llm.NewConfig(cfg.Model)

	extractor, err := newResumeExtractor(ctx, cfg.APIKey, llmConfig, logger)
	if err != nil {
		return err
	}
	defer extractor.Close() //nolint:errcheck

	master, err := extractor.ExtractResume(ctx, types.ParseResumeRequest{
		FileData: base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	})
	if err != nil {
		return err
	}

	encoded, err := resume.Encode(master, resume.FormatForPath(cfg.Output))
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := writeOutput(cmd, cfg.Output, encoded); err != nil {
		return err
	}
	if cfg.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully extracted resume for %s\n", master.PersonalInfo.FullName)
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Output)
	}
	return nil
}
