package ranking

import (
	"math"
	"regexp"
	"strings"
)

// termMatcher counts occurrences of a single weighted term.
// Phrases are matched as plain substrings; single words need word boundaries
// so that "java" does not match inside "javascript".
type termMatcher struct {
	term   string
	weight float64
	word   *regexp.Regexp
}

func newTermMatcher(term string, weight float64) termMatcher {
	m := termMatcher{term: term, weight: weight}
	if !strings.Contains(term, " ") {
		m.word = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return m
}

// count returns the number of non-overlapping matches in already case-folded text.
func (m termMatcher) count(lowerText string) int {
	if m.word == nil {
		return strings.Count(lowerText, m.term)
	}
	return len(m.word.FindAllStringIndex(lowerText, -1))
}

// Scorer scores text blocks against a fixed set of weighted terms.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	matchers []termMatcher
}

// NewScorer precompiles a matcher for every term in weights.
func NewScorer(weights *TermWeights) *Scorer {
	s := &Scorer{matchers: make([]termMatcher, 0, weights.Len())}
	weights.Each(func(term string, weight float64) {
		s.matchers = append(s.matchers, newTermMatcher(term, weight))
	})
	return s
}

// Score returns the relevance of text. Each matched term contributes
// weight * (1 + log10(matches)), so repeated mentions have diminishing returns.
// Returns 0 when nothing matches.
func (s *Scorer) Score(text string) float64 {
	if s == nil || len(s.matchers) == 0 || text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	score := 0.0
	for _, m := range s.matchers {
		if n := m.count(lower); n > 0 {
			score += m.weight * (1 + math.Log10(float64(n)))
		}
	}
	return score
}

// MatchedTerms returns the terms that occur in text, in term-map order.
func (s *Scorer) MatchedTerms(text string) []string {
	if s == nil || text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var matched []string
	for _, m := range s.matchers {
		if m.count(lower) > 0 {
			matched = append(matched, m.term)
		}
	}
	return matched
}
