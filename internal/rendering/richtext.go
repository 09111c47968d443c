package rendering

import (
	"regexp"
	"strings"
)

// richToken matches the only markup bullets may carry. Anything else that
// looks like a tag is prose and stays literal.
var richToken = regexp.MustCompile(`(?i)<(/?)(b|strong|i|em)\s*>|<br\s*/?>|&nbsp;|&amp;`)

type richKind int

const (
	richText richKind = iota
	richOpen
	richClose
	richBreak
)

type richPart struct {
	kind   richKind
	text   string
	italic bool
}

// splitRichText breaks text into literal runs and recognised markup.
// Entities are decoded into the literal runs.
func splitRichText(text string) []richPart {
	var parts []richPart
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, richPart{kind: richText, text: lit.String()})
			lit.Reset()
		}
	}

	last := 0
	for _, m := range richToken.FindAllStringSubmatchIndex(text, -1) {
		lit.WriteString(text[last:m[0]])
		last = m[1]

		token := strings.ToLower(text[m[0]:m[1]])
		switch {
		case token == "&nbsp;":
			lit.WriteByte(' ')
		case token == "&amp;":
			lit.WriteByte('&')
		case strings.HasPrefix(token, "<br"):
			flush()
			parts = append(parts, richPart{kind: richBreak})
		default:
			flush()
			name := strings.ToLower(text[m[4]:m[5]])
			kind := richOpen
			if m[3] > m[2] {
				kind = richClose
			}
			parts = append(parts, richPart{kind: kind, italic: name == "i" || name == "em"})
		}
	}
	lit.WriteString(text[last:])
	flush()
	return parts
}

// RichTextToLaTeX converts bullet markup to LaTeX. <b>/<strong> become \textbf,
// <i>/<em> become \textit and all other text, including unrecognised tags, is
// escaped. Stray closing tags are dropped and unclosed ones are closed at the end.
func RichTextToLaTeX(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return EscapeLaTeX(text)
	}

	var sb strings.Builder
	var open []bool
	for _, p := range splitRichText(text) {
		switch p.kind {
		case richText:
			sb.WriteString(EscapeLaTeX(p.text))
		case richBreak:
			sb.WriteByte(' ')
		case richOpen:
			if p.italic {
				sb.WriteString(`\textit{`)
			} else {
				sb.WriteString(`\textbf{`)
			}
			open = append(open, p.italic)
		case richClose:
			if len(open) > 0 && open[len(open)-1] == p.italic {
				sb.WriteByte('}')
				open = open[:len(open)-1]
			}
		}
	}
	sb.WriteString(strings.Repeat("}", len(open)))
	return sb.String()
}

// StripRichText removes the recognised markup and decodes entities, leaving readable text.
func StripRichText(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	var sb strings.Builder
	for _, p := range splitRichText(text) {
		switch p.kind {
		case richText:
			sb.WriteString(p.text)
		case richBreak:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
