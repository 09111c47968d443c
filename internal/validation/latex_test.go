package validation

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountContentChars(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"plain text", 10},
		{`\textbf{Go}`, 2},
		{`\item Built \textbf{fast} services`, 19},
		{`\textbf{\emph{Go}} dev`, 6},
		{`\\`, 0},
		{"  ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, countContentChars(tt.line))
		})
	}
}

func TestCheckLineLengths(t *testing.T) {
	latex := strings.Join([]string{
		`\section{Experience}`,
		`% ` + strings.Repeat("x", 200),
		`\item ` + strings.Repeat("a", 30),
		`\item short % ` + strings.Repeat("c", 100),
	}, "\n")

	violations := CheckLineLengths(latex, 20)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, types.ViolationLineTooLong, v.Type)
	assert.Equal(t, types.SeverityWarning, v.Severity)
	require.NotNil(t, v.LineNumber)
	assert.Equal(t, 3, *v.LineNumber)
	require.NotNil(t, v.CharCount)
	assert.Equal(t, 30, *v.CharCount)
	assert.Contains(t, v.Details, "maximum is 20")
}

func TestCheckLineLengths_Disabled(t *testing.T) {
	assert.Nil(t, CheckLineLengths(strings.Repeat("x", 500), 0))
}

func TestCheckForbiddenPhrases(t *testing.T) {
	latex := strings.Join([]string{
		`\item Synergy \& leverage across teams`,
		`\item Improved uptime to 99.9\%`,
		`% synergy in a comment`,
		`\item Delivered SYNERGY and leverage`,
	}, "\n")

	violations := CheckForbiddenPhrases(latex, []string{"synergy & leverage", " Synergy ", ""})
	require.Len(t, violations, 2)

	assert.Equal(t, 1, *violations[0].LineNumber)
	assert.Contains(t, violations[0].Details, "synergy & leverage")
	assert.Equal(t, types.SeverityError, violations[0].Severity)
	assert.Equal(t, 4, *violations[1].LineNumber)
	assert.Contains(t, violations[1].Details, "synergy")
}

func TestCheckForbiddenPhrases_NoPhrases(t *testing.T) {
	assert.Nil(t, CheckForbiddenPhrases("anything", nil))
	assert.Nil(t, CheckForbiddenPhrases("anything", []string{"  "}))
}

func TestNormalizeForMatching(t *testing.T) {
	assert.Equal(t, "r&d 100% c# ", normalizeForMatching(`R\&D 100\% C\# % trailing`))
	assert.Equal(t, `a\b~c`, normalizeForMatching(`A\textbackslash{}B\textasciitilde{}C`))
}
