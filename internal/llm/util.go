package llm

import (
	"regexp"
	"strings"
)

// fencePattern matches a markdown code fence with an optional language tag
var fencePattern = regexp.MustCompile("(?s)^```[A-Za-z0-9_+-]*[ \\t]*\\n?(.*?)\\s*```")

// CleanJSONBlock strips what models wrap around JSON despite being told not to:
// markdown fences, a sentence of preamble, or trailing chatter.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if strings.HasPrefix(text, "```") {
		// unterminated fence
		text = strings.TrimSpace(strings.TrimLeft(strings.TrimPrefix(text, "```"), "abcdefghijklmnopqrstuvwxyz"))
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	if found := balancedPrefix(text[start:], text[start], closer); found != "" {
		return found
	}
	return text
}

// balancedPrefix returns the JSON value at the start of s that closes the
// opening delimiter, skipping delimiters inside strings. It returns "" when s
// does not start with open or never closes.
func balancedPrefix(s string, open, close byte) string {
	if s == "" || s[0] != open {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			if depth--; depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
