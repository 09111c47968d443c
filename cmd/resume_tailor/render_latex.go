package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderLaTeXCmd = &cobra.Command{
	Use:   "render-latex",
	Short: "Render a full master resume as LaTeX",
	Long:  "Renders every entry of a master resume through the LaTeX template without scoring or selection.",
	RunE:  runRenderLaTeX,
}

func init() {
	renderLaTeXCmd.Flags().StringP("resume", "r", "", "Path to master resume JSON or YAML (required)")
	renderLaTeXCmd.Flags().StringP("template", "t", "", "Custom LaTeX template (default built-in)")
	renderLaTeXCmd.Flags().StringP("out", "o", "", "Output .tex file (default stdout)")

	rootCmd.AddCommand(renderLaTeXCmd)
}

func runRenderLaTeX(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	master, err := resume.Load(cfg.Resume)
	if err != nil {
		return err
	}

	var renderer *rendering.LaTeXRenderer
	if cfg.Template != "" {
		renderer, err = rendering.NewLaTeXRendererFromFile(cfg.Template)
	} else {
		renderer, err = rendering.NewLaTeXRenderer()
	}
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	latex, err := renderer.Render(master.PersonalInfo, master.Education, master.Experience, master.Projects, master.Skills)
	if err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}
	logger.Debug("rendered master resume",
		zap.Int("experience", len(master.Experience)),
		zap.Int("projects", len(master.Projects)),
		zap.Int("bytes", len(latex)),
	)

	if err := writeOutput(cmd, cfg.Output, []byte(latex)); err != nil {
		return err
	}
	if cfg.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered LaTeX resume\n")
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Output)
	}
	return nil
}
