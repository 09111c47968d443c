// Package ranking scores resume content against the weighted terms of a job description.
package ranking

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/dictionary"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Term weighting constants
const (
	techBaseWeight  = 15.0
	plainBaseWeight = 1.0
	phraseBoost     = 1.4
	maxNGram        = 3
	// minPlainTermLength is the shortest non-technical term that is counted.
	minPlainTermLength = 4
)

// tokenSeparatorRe matches runs of characters that cannot appear inside a token.
// Keeping + # . / - intact preserves terms such as c++, c#, node.js and ci/cd.
var tokenSeparatorRe = regexp.MustCompile(`[^a-z0-9+#./-]+`)

// TermWeights maps case-folded terms to weights. It remembers the order in which
// terms were first seen so that iteration and tie-breaking are deterministic.
// A TermWeights is read-only once returned by ExtractTermWeights.
type TermWeights struct {
	order     []string
	frequency map[string]int
	weight    map[string]float64
}

// Tokenize case-folds text and splits it into tokens, dropping tokens of one character.
func Tokenize(text string) []string {
	parts := tokenSeparatorRe.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) > 1 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// ExtractTermWeights builds the weighted term map for a job description.
// Unigrams, bigrams and trigrams are counted when they are technical terms, or when
// they are not stop words and are longer than three characters.
func ExtractTermWeights(jobDescription string) *TermWeights {
	tokens := Tokenize(jobDescription)
	tw := &TermWeights{
		frequency: make(map[string]int),
		weight:    make(map[string]float64),
	}

	for i := range tokens {
		for n := 1; n <= maxNGram && i+n <= len(tokens); n++ {
			term := strings.Join(tokens[i:i+n], " ")
			if !isCountable(term) {
				continue
			}
			if _, seen := tw.frequency[term]; !seen {
				tw.order = append(tw.order, term)
			}
			tw.frequency[term]++
		}
	}

	for _, term := range tw.order {
		tw.weight[term] = termWeight(term, tw.frequency[term])
	}

	return tw
}

// isCountable applies the stop-word and length filter to a candidate term of any length.
func isCountable(term string) bool {
	if dictionary.IsTechTerm(term) {
		return true
	}
	return !dictionary.IsStopWord(term) && len(term) >= minPlainTermLength
}

// termWeight combines the technical bonus, a log-frequency boost and the phrase boost.
func termWeight(term string, frequency int) float64 {
	base := plainBaseWeight
	if dictionary.IsTechTerm(term) {
		base = techBaseWeight
	}
	frequencyBoost := 1 + math.Log1p(float64(frequency))
	boost := 1.0
	if strings.Contains(term, " ") {
		boost = phraseBoost
	}
	return base * frequencyBoost * boost
}

// Len returns the number of distinct terms.
func (tw *TermWeights) Len() int {
	if tw == nil {
		return 0
	}
	return len(tw.order)
}

// Has reports whether term is a key of the map.
func (tw *TermWeights) Has(term string) bool {
	if tw == nil {
		return false
	}
	_, ok := tw.weight[term]
	return ok
}

// Weight returns the weight of term.
func (tw *TermWeights) Weight(term string) (float64, bool) {
	if tw == nil {
		return 0, false
	}
	w, ok := tw.weight[term]
	return w, ok
}

// Frequency returns how many times term was counted in the job description.
func (tw *TermWeights) Frequency(term string) int {
	if tw == nil {
		return 0
	}
	return tw.frequency[term]
}

// Terms returns the terms in first-occurrence order.
func (tw *TermWeights) Terms() []string {
	if tw == nil {
		return nil
	}
	out := make([]string, len(tw.order))
	copy(out, tw.order)
	return out
}

// Each calls fn for every term in first-occurrence order.
func (tw *TermWeights) Each(fn func(term string, weight float64)) {
	if tw == nil {
		return
	}
	for _, term := range tw.order {
		fn(term, tw.weight[term])
	}
}

// Entries returns every term with its frequency and weight, in first-occurrence order.
func (tw *TermWeights) Entries() []types.WeightedTerm {
	if tw == nil {
		return nil
	}
	out := make([]types.WeightedTerm, 0, len(tw.order))
	for _, term := range tw.order {
		out = append(out, types.WeightedTerm{
			Term:      term,
			Frequency: tw.frequency[term],
			Weight:    tw.weight[term],
			Technical: dictionary.IsTechTerm(term),
		})
	}
	return out
}
