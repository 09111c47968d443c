package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the bundled sample master resume",
	Long:  "Writes the sample master resume (JSON, or YAML for .yaml/.yml paths) and optionally the sample job description.",
	RunE:  runSample,
}

var sampleJobOut string

func init() {
	sampleCmd.Flags().StringP("out", "o", "", "Output file (default JSON to stdout)")
	sampleCmd.Flags().StringVar(&sampleJobOut, "job-out", "", "Also write the sample job description to this file")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := resume.Encode(resume.Default(), resume.FormatForPath(cfg.Output))
	if err != nil {
		return fmt.Errorf("failed to encode sample resume: %w", err)
	}
	if cfg.Output == "" {
		data = append(data, '\n')
	}
	if err := writeOutput(cmd, cfg.Output, data); err != nil {
		return err
	}

	if sampleJobOut != "" {
		job := strings.TrimSpace(resume.SampleJobDescription()) + "\n"
		if err := writeOutput(cmd, sampleJobOut, []byte(job)); err != nil {
			return err
		}
	}

	if cfg.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Sample resume: %s\n", cfg.Output)
	}
	if sampleJobOut != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Sample job description: %s\n", sampleJobOut)
	}
	return nil
}
