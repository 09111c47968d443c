package validation

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// InjectionCheckResult holds the result of the injection heuristic check.
type InjectionCheckResult struct {
	IsSafe  bool     // Whether the content passed the check
	Matches []string // Suspicious fragments found, in document order
	Reason  string   // Human-readable explanation
}

// injectionPatterns match instructions aimed at the model rather than resume content.
// Single words like "ignore" or "override" are too common in real resumes to flag.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+instructions?`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|above)`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|prior|everything)`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+an?\b`),
	regexp.MustCompile(`(?i)act\s+as\s+if\s+you\s+are\b`),
	regexp.MustCompile(`(?i)new\s+instructions?:`),
	regexp.MustCompile(`(?i)system\s+prompt`),
}

// DetectInjection scans text for phrases that try to redirect the model.
// It is a heuristic; the extraction prompt still treats the document as data.
func DetectInjection(text string) *InjectionCheckResult {
	var matches []string
	for _, pattern := range injectionPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			matches = append(matches, strings.ToLower(m))
		}
	}

	if len(matches) == 0 {
		return &InjectionCheckResult{IsSafe: true}
	}
	return &InjectionCheckResult{
		Matches: matches,
		Reason:  "detected potential injection phrases: " + strings.Join(matches, ", "),
	}
}

// WarnOnInjection logs a warning when text looks like an injection attempt and
// reports whether it did. Processing is never blocked.
func WarnOnInjection(logger *zap.Logger, text, source string) bool {
	result := DetectInjection(text)
	if result.IsSafe {
		return false
	}
	if logger != nil {
		logger.Warn("potential prompt injection",
			zap.String("source", source),
			zap.Strings("matches", result.Matches),
		)
	}
	return true
}

// StripInjectionAttempts replaces known injection phrases with a marker.
func StripInjectionAttempts(text string) string {
	result := text
	for _, pattern := range injectionPatterns {
		result = pattern.ReplaceAllString(result, "[REDACTED]")
	}
	return result
}
