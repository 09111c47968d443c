package rendering

import "strings"

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
// Non-breaking spaces become plain spaces.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{', '}', '$', '&', '%', '#', '_':
			result.WriteByte('\\')
			result.WriteRune(r)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '\u00a0':
			result.WriteByte(' ')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// escapeJoined escapes each item and joins them with a comma
func escapeJoined(items []string) string {
	return EscapeLaTeX(strings.Join(items, ", "))
}

// linkTarget strips a leading scheme so the template can prefix its own.
func linkTarget(link string) string {
	link = strings.TrimSpace(link)
	for _, scheme := range []string{"https://", "http://"} {
		if len(link) >= len(scheme) && strings.EqualFold(link[:len(scheme)], scheme) {
			return link[len(scheme):]
		}
	}
	return link
}

// hrefEscape escapes only the characters that break \href arguments.
func hrefEscape(link string) string {
	return strings.NewReplacer(`%`, `\%`, `#`, `\#`, `{`, "", `}`, "", `\`, "").Replace(link)
}
