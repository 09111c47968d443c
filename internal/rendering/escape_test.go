package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "This is normal text", "This is normal text"},
		{"backslash", `test\backslash`, `test\textbackslash{}backslash`},
		{"braces", "text{with}braces", `text\{with\}braces`},
		{"dollar", "cost $100", `cost \$100`},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "100% complete", `100\% complete`},
		{"hash", "C# and F#", `C\# and F\#`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"underscore", "snake_case", `snake\_case`},
		{"tilde", "~approx", `\textasciitilde{}approx`},
		{"all", `${}~&%#^_\`, `\$\{\}\textasciitilde{}\&\%\#\textasciicircum{}\_\textbackslash{}`},
		{"unicode", "résumé: α β γ", "résumé: α β γ"},
		{"nbsp", "Go\u00a0services", "Go services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestEscapeLaTeX_MixedContent(t *testing.T) {
	result := EscapeLaTeX("Built system handling $1M+ requests/day with 99.9% uptime")
	assert.Contains(t, result, `\$1M+`)
	assert.Contains(t, result, `99.9\%`)
	assert.Contains(t, result, "requests/day")
}

func TestEscapeJoined(t *testing.T) {
	assert.Equal(t, `C++, C\#, Node.js`, escapeJoined([]string{"C++", "C#", "Node.js"}))
	assert.Equal(t, "", escapeJoined(nil))
}

func TestLinkTarget(t *testing.T) {
	assert.Equal(t, "github.com/jake", linkTarget("https://github.com/jake"))
	assert.Equal(t, "github.com/jake", linkTarget("HTTP://github.com/jake"))
	assert.Equal(t, "linkedin.com/in/jake", linkTarget(" linkedin.com/in/jake "))
	assert.Equal(t, "", linkTarget(""))
}

func TestHrefEscape(t *testing.T) {
	assert.Equal(t, `example.com/a\%20b\#top`, hrefEscape("example.com/a%20b#top"))
	assert.Equal(t, "example.com", hrefEscape(`example.com{}\`))
}
