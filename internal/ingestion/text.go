// Package ingestion reads job descriptions from files, URLs or standard input
// and normalizes them to clean text.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerSpaceRe   = regexp.MustCompile(`\s+`)
	blankLineRunRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLineRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	// Markdown headings lose their indentation
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullets keep their marker and indentation; "•" is normalized to "-"
	if isBulletLine(trimmed) {
		for _, marker := range []string{"• ", "· "} {
			if strings.HasPrefix(trimmed, marker) {
				trimmed = "- " + strings.TrimPrefix(trimmed, marker)
			}
		}
	}

	content := innerSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// IngestFromFile reads a job description file, extracts its text based on the
// extension, cleans it, and returns cleaned text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := ExtractText(MIMETypeForPath(path), content)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}

	cleanedText := CleanText(text)
	metadata := NewMetadata(cleanedText, "")
	metadata.Source = path
	metadata.Format = MIMETypeForPath(path)

	return cleanedText, metadata, nil
}
