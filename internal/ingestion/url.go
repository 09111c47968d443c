package ingestion

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"go.uber.org/zap"
)

// IngestFromURL fetches a job posting, extracts its text with platform-specific
// selectors, and returns cleaned text with metadata.
// With opts.UseBrowser set, pages whose text is too short are re-rendered in a headless browser.
func IngestFromURL(ctx context.Context, urlStr string, opts *Options) (string, *Metadata, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	parsed, err := url.Parse(urlStr)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidURL, urlStr)
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("fetching job posting", zap.String("url", urlStr), zap.String("platform", string(platform)))

	var pageHTML string
	if opts.Fetcher != nil {
		result, err := opts.Fetcher.Fetch(ctx, urlStr)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
		}
		pageHTML = result.HTML
		logger.Debug("fetched HTML", zap.Int("bytes", len(pageHTML)), zap.Bool("cached", result.FromCache))
	} else {
		result, err := fetch.URL(ctx, urlStr, opts.FetchOptions)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
		}
		pageHTML = result.HTML
		logger.Debug("fetched HTML", zap.Int("bytes", len(pageHTML)))
	}

	textContent, err := fetch.ExtractJobPosting(pageHTML, platform)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	logger.Debug("extracted text", zap.Int("chars", len(textContent)))

	if opts.UseBrowser && fetch.ShouldUseBrowser(textContent) {
		logger.Debug("content too short, rendering in browser",
			zap.Int("chars", len(textContent)), zap.Int("min", fetch.MinContentLength))

		browserHTML, browserErr := opts.Render(ctx, urlStr, opts.BrowserTimeout, logger)
		if browserErr != nil {
			// keep the HTTP content
			logger.Warn("browser rendering failed", zap.Error(browserErr))
		} else if rendered, err := fetch.ExtractJobPosting(browserHTML, platform); err == nil {
			textContent = rendered
			logger.Debug("browser extracted text", zap.Int("chars", len(textContent)))
		}
	}

	cleanedText := CleanText(textContent)

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)
	metadata.Source = urlStr
	metadata.Format = "text/html"

	return cleanedText, metadata, nil
}
