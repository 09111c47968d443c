// Package dictionary holds the static stop-word and technical-term sets used to weight job descriptions.
// The sets are initialised once at package load and never modified.
package dictionary

// IsStopWord reports whether term is a stop word. term must already be case-folded.
func IsStopWord(term string) bool {
	_, ok := stopWords[term]
	return ok
}

// IsTechTerm reports whether term is a recognised technical term or phrase.
// term must already be case-folded.
func IsTechTerm(term string) bool {
	_, ok := techTerms[term]
	return ok
}

// TechTermCount returns the size of the technical vocabulary.
func TechTermCount() int {
	return len(techTerms)
}

// StopWordCount returns the size of the stop-word set.
func StopWordCount() int {
	return len(stopWords)
}
