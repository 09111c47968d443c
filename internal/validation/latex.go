package validation

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	// latexCommandPattern matches commands like \textbf{content} or \begin{environment}
	latexCommandPattern = regexp.MustCompile(`\\([a-zA-Z]+|.)\{[^}]*\}`)
	// bareCommandPattern matches commands without an argument such as \item or \\
	bareCommandPattern = regexp.MustCompile(`\\([a-zA-Z]+\*?|\\)`)
	// commentPattern matches a LaTeX comment that is not an escaped percent sign
	commentPattern = regexp.MustCompile(`(^|[^\\])%.*$`)
)

// CheckLineLengths reports source lines whose visible text exceeds maxChars.
// Comment lines are skipped. A non-positive maxChars disables the check.
func CheckLineLengths(latex string, maxChars int) []types.Violation {
	if maxChars <= 0 {
		return nil
	}

	var violations []types.Violation
	eachLine(latex, func(lineNum int, line string) {
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			return
		}

		length := countContentChars(commentPattern.ReplaceAllString(line, "$1"))
		if length > maxChars {
			violations = append(violations, types.Violation{
				Type:       types.ViolationLineTooLong,
				Severity:   types.SeverityWarning,
				Details:    fmt.Sprintf("Line %d has %d characters, maximum is %d", lineNum, length, maxChars),
				LineNumber: intPtr(lineNum),
				CharCount:  intPtr(length),
			})
		}
	})
	return violations
}

// CheckForbiddenPhrases reports lines containing any of phrases, case-insensitively
// and after LaTeX escapes are undone. Only the first match per line is reported.
func CheckForbiddenPhrases(latex string, phrases []string) []types.Violation {
	normalized := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if p := strings.ToLower(strings.TrimSpace(phrase)); p != "" {
			normalized = append(normalized, p)
		}
	}
	if len(normalized) == 0 {
		return nil
	}

	var violations []types.Violation
	eachLine(latex, func(lineNum int, line string) {
		text := normalizeForMatching(line)
		for _, phrase := range normalized {
			if strings.Contains(text, phrase) {
				violations = append(violations, types.Violation{
					Type:       types.ViolationForbiddenPhrase,
					Severity:   types.SeverityError,
					Details:    fmt.Sprintf("Line %d contains forbidden phrase: %s", lineNum, phrase),
					LineNumber: intPtr(lineNum),
				})
				return
			}
		}
	})
	return violations
}

func eachLine(text string, fn func(lineNum int, line string)) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fn(lineNum, scanner.Text())
	}
}

// countContentChars approximates the visible characters of a LaTeX line:
// command arguments are kept, command names dropped.
func countContentChars(line string) int {
	processed := line
	// nested arguments unwrap one level per pass
	for i := 0; i < 4; i++ {
		next := latexCommandPattern.ReplaceAllStringFunc(processed, func(match string) string {
			start := strings.Index(match, "{")
			end := strings.LastIndex(match, "}")
			if start >= 0 && end > start {
				return match[start+1 : end]
			}
			return ""
		})
		if next == processed {
			break
		}
		processed = next
	}
	processed = bareCommandPattern.ReplaceAllString(processed, "")
	processed = strings.NewReplacer("{", "", "}", "").Replace(processed)

	return len([]rune(strings.TrimSpace(processed)))
}

// normalizeForMatching undoes LaTeX escapes, drops comments and lower-cases the line
func normalizeForMatching(text string) string {
	text = strings.ReplaceAll(text, `\textbackslash{}`, "\\")
	text = strings.ReplaceAll(text, `\textasciitilde{}`, "~")
	text = strings.ReplaceAll(text, `\textasciicircum{}`, "^")

	// Remove the comment before unescaping so \% is not taken as a comment start
	text = commentPattern.ReplaceAllString(text, "$1")

	text = strings.NewReplacer(
		`\$`, "$", `\&`, "&", `\%`, "%", `\#`, "#", `\_`, "_", `\{`, "{", `\}`, "}",
	).Replace(text)

	return strings.ToLower(text)
}

func intPtr(i int) *int {
	return &i
}
