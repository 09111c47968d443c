package ranking

import (
	"sort"

	"github.com/jonathan/resume-tailor/internal/dictionary"
)

// scoredItem pairs an entity with its relevance score. Scores stay inside this package;
// callers only see the reordered entities.
type scoredItem[T any] struct {
	item  T
	score float64
}

// rankByScore returns items sorted by descending score. Equal scores keep their
// original relative order.
func rankByScore[T any](items []T, score func(T) float64) []T {
	scored := make([]scoredItem[T], len(items))
	for i, item := range items {
		scored[i] = scoredItem[T]{item: item, score: score(item)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]T, len(scored))
	for i, s := range scored {
		out[i] = s.item
	}
	return out
}

// TopKeywords returns up to limit technical terms from weights, heaviest first.
// Ties keep the order in which the terms first appeared in the job description.
func TopKeywords(weights *TermWeights, limit int) []string {
	type keyword struct {
		term   string
		weight float64
	}

	var technical []keyword
	weights.Each(func(term string, weight float64) {
		if dictionary.IsTechTerm(term) {
			technical = append(technical, keyword{term: term, weight: weight})
		}
	})

	sort.SliceStable(technical, func(i, j int) bool {
		return technical[i].weight > technical[j].weight
	})

	if limit >= 0 && len(technical) > limit {
		technical = technical[:limit]
	}

	out := make([]string, len(technical))
	for i, k := range technical {
		out[i] = k.term
	}
	return out
}
