package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/optimizer"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the weighted terms of a job description",
	Long: "Extracts unigrams, bigrams and trigrams from a job description and prints them by weight. " +
		"Technical terms are marked with *.",
	RunE: runKeywords,
}

var keywordsOnly bool

func init() {
	keywordsCmd.Flags().StringP("job", "j", "", "Job description: file, URL, or - for stdin (required)")
	keywordsCmd.Flags().IntP("limit", "l", optimizer.DefaultKeywordLimit, "Rows to print; 0 prints every term")
	keywordsCmd.Flags().Bool("use-browser", false, "Render job pages in headless Chrome when static HTML has too little text")
	keywordsCmd.Flags().BoolVar(&keywordsOnly, "keywords-only", false, "Print only the reported technical keywords, one per line")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
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

	text, _, err := ingestion.LoadJobDescription(ctx, source, &ingestion.Options{
		Fetcher:    fetch.NewCachedFetcher(nil, cfg.CacheTTL()),
		UseBrowser: cfg.UseBrowser,
		Stdin:      cmd.InOrStdin(),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	weights := ranking.ExtractTermWeights(text)
	out := cmd.OutOrStdout()

	if keywordsOnly {
		limit := cfg.KeywordLimit
		if limit == 0 {
			limit = -1
		}
		for _, keyword := range ranking.TopKeywords(weights, limit) {
			fmt.Fprintln(out, keyword)
		}
		return nil
	}

	entries := weights.Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Weight > entries[j].Weight })
	if cfg.KeywordLimit > 0 && len(entries) > cfg.KeywordLimit {
		entries = entries[:cfg.KeywordLimit]
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TERM\tFREQ\tWEIGHT\tTECH")
	for _, e := range entries {
		tech := ""
		if e.Technical {
			tech = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\n", e.Term, e.Frequency, e.Weight, tech)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d terms; keywords: %s\n", weights.Len(), strings.Join(ranking.TopKeywords(weights, optimizer.DefaultKeywordLimit), ", "))
	return nil
}
