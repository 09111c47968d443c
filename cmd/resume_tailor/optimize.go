package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/optimizer"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Tailor a master resume to a job description",
	Long: "Scores every experience entry, project and skill of a master resume against a job description, " +
		"keeps the most relevant content and renders it as LaTeX, JSON or plain text.",
	Example: `  resume_tailor optimize --resume master.json --job posting.txt --out resume.tex
  resume_tailor optimize -r master.yaml -j https://example.com/jobs/123 --format json
  pbpaste | resume_tailor optimize -r master.json -j - --format text`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringP("resume", "r", "", "Path to master resume JSON or YAML (required)")
	optimizeCmd.Flags().StringP("job", "j", "", "Job description: file (.txt, .md, .pdf, .docx), URL, or - for stdin (required)")
	optimizeCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	optimizeCmd.Flags().StringP("format", "f", config.FormatLaTeX, "Output format: latex, json or text")
	optimizeCmd.Flags().StringP("template", "t", "", "Custom LaTeX template (default built-in)")
	optimizeCmd.Flags().Int("max-projects", ranking.MaxProjects, "Projects to keep; -1 keeps all")
	optimizeCmd.Flags().Int("limit", optimizer.DefaultKeywordLimit, "Keywords to report")
	optimizeCmd.Flags().Bool("use-browser", false, "Render job pages in headless Chrome when static HTML has too little text")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	source := jobSource(cfg)
	if source == "" {
		return fmt.Errorf("--job is required")
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	master, jobDescription, err := loadInputs(ctx, cmd, cfg, source, logger)
	if err != nil {
		return err
	}

	renderer, err := rendererFor(cfg)
	if err != nil {
		return err
	}

	opt := optimizer.New(renderer,
		optimizer.WithMaxProjects(cfg.MaxProjects),
		optimizer.WithKeywordLimit(cfg.KeywordLimit),
		optimizer.WithLogger(logger),
	)
	result, err := opt.Optimize(master, jobDescription)
	if err != nil {
		return fmt.Errorf("failed to optimize resume: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		weights := ranking.ExtractTermWeights(jobDescription)
		printer.PrintJobDescription(source, jobDescription)
		printer.PrintTermWeights(weights.Entries())
		printer.PrintSelection(result, master)
		logMatches(logger, ranking.NewScorer(weights), result.OptimizedData)
	}

	output, err := formatResult(cfg.Format, result)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, cfg.Output, output); err != nil {
		return err
	}

	if cfg.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully tailored resume\n")
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Output)
	}
	return nil
}

// loadInputs reads the master resume and the job description concurrently.
func loadInputs(ctx context.Context, cmd *cobra.Command, cfg config.Config, source string, logger *zap.Logger) (*types.MasterResume, string, error) {
	var (
		master         *types.MasterResume
		jobDescription string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := resume.Load(cfg.Resume)
		if err != nil {
			return err
		}
		master = r
		return nil
	})
	g.Go(func() error {
		text, _, err := ingestion.LoadJobDescription(gctx, source, &ingestion.Options{
			Fetcher:    fetch.NewCachedFetcher(nil, cfg.CacheTTL()),
			UseBrowser: cfg.UseBrowser,
			Stdin:      cmd.InOrStdin(),
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		jobDescription = text
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, "", err
	}
	return master, jobDescription, nil
}

// rendererFor picks the document renderer for the output format.
// A nil renderer makes the optimizer use the built-in LaTeX template.
func rendererFor(cfg config.Config) (optimizer.DocumentRenderer, error) {
	if cfg.Format == config.FormatText {
		return rendering.PlainTextRenderer{}, nil
	}
	if cfg.Template == "" {
		return nil, nil
	}
	r, err := rendering.NewLaTeXRendererFromFile(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return r, nil
}

// formatResult encodes the optimization result for output.
func formatResult(format string, result *types.OptimizationResult) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return append(data, '\n'), nil
	case config.FormatLaTeX, config.FormatText, "":
		return []byte(result.LaTeX), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// logMatches logs which job terms each selected entry matched.
func logMatches(logger *zap.Logger, scorer *ranking.Scorer, selected types.SelectedContent) {
	for i, e := range selected.Experience {
		logger.Debug("experience ranked",
			zap.Int("rank", i+1),
			zap.String("company", e.Company),
			zap.Float64("score", ranking.ScoreExperience(scorer, e)),
			zap.Strings("matched", scorer.MatchedTerms(e.Role+" "+e.Company+" "+strings.Join(e.Bullets, " "))),
		)
	}
	for i, p := range selected.Projects {
		logger.Debug("project kept",
			zap.Int("rank", i+1),
			zap.String("name", p.Name),
			zap.Float64("score", ranking.ScoreProject(scorer, p)),
			zap.Strings("matched", scorer.MatchedTerms(strings.Join(p.Technologies, " ")+" "+strings.Join(p.Bullets, " "))),
		)
	}
}
