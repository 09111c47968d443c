package ingestion

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"go.uber.org/zap"
)

// StdinSource is the source name that reads from standard input
const StdinSource = "-"

// Options configures job description loading. The zero value is usable.
type Options struct {
	// Fetcher caches fetched pages; nil fetches directly with FetchOptions.
	Fetcher      *fetch.CachedFetcher
	FetchOptions *fetch.Options

	UseBrowser     bool
	BrowserTimeout time.Duration
	// Render replaces the headless browser, mainly in tests.
	Render fetch.RenderFunc

	// Stdin is read for the "-" source; nil uses os.Stdin.
	Stdin  io.Reader
	Logger *zap.Logger
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	if out.Render == nil {
		out.Render = fetch.WithBrowser
	}
	if out.BrowserTimeout <= 0 {
		out.BrowserTimeout = fetch.DefaultBrowserTimeout
	}
	if out.Stdin == nil {
		out.Stdin = os.Stdin
	}
	return &out
}

// IsURL reports whether source names an http or https URL.
func IsURL(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LoadJobDescription reads a job description from a URL, standard input ("-"),
// or a .txt, .md, .pdf or .docx file. The text is cleaned; an empty result is an error.
func LoadJobDescription(ctx context.Context, source string, opts *Options) (string, *Metadata, error) {
	opts = opts.withDefaults()

	var (
		text     string
		metadata *Metadata
		err      error
	)
	switch {
	case source == "":
		return "", nil, fmt.Errorf("job description source is required")
	case source == StdinSource:
		text, metadata, err = ingestFromReader(opts.Stdin)
	case IsURL(source):
		text, metadata, err = IngestFromURL(ctx, source, opts)
	default:
		text, metadata, err = IngestFromFile(source)
	}
	if err != nil {
		return "", nil, err
	}

	if strings.TrimSpace(text) == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyJobDescription, source)
	}

	if metadata.Source == "" {
		metadata.Source = source
	}
	opts.Logger.Debug("loaded job description", zap.Object("job", metadata))
	return text, metadata, nil
}

func ingestFromReader(r io.Reader) (string, *Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	text, err := ExtractText("", data)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(text)
	metadata := NewMetadata(cleanedText, "")
	metadata.Source = StdinSource
	metadata.Format = "text/plain"
	return cleanedText, metadata, nil
}
