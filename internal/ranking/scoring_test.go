package ranking

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_WordBoundary(t *testing.T) {
	s := NewScorer(ExtractTermWeights("java"))

	assert.Equal(t, 0.0, s.Score("javascript developer"))
	assert.Greater(t, s.Score("wrote java services"), 0.0)
}

func TestScorer_CaseInsensitive(t *testing.T) {
	s := NewScorer(ExtractTermWeights("kubernetes"))
	assert.Equal(t, s.Score("kubernetes"), s.Score("KUBERNETES"))
	assert.Greater(t, s.Score("Kubernetes"), 0.0)
}

func TestScorer_EscapesSpecialCharacters(t *testing.T) {
	s := NewScorer(ExtractTermWeights("node.js"))

	assert.Greater(t, s.Score("Built on Node.js"), 0.0)
	assert.Equal(t, 0.0, s.Score("Built on nodexjs"), "the dot must match literally")

	cpp := NewScorer(ExtractTermWeights("c++ (modern)"))
	assert.NotPanics(t, func() { cpp.Score("c++ cxx c+ (modern)") })
	assert.Equal(t, 0.0, cpp.Score("cxx"))
}

func TestScorer_DiminishingReturns(t *testing.T) {
	weights := ExtractTermWeights("kubernetes")
	w, _ := weights.Weight("kubernetes")
	s := NewScorer(weights)

	assert.InDelta(t, w, s.Score("kubernetes"), 1e-9)

	tenTimes := strings.Repeat("kubernetes ", 10)
	assert.InDelta(t, w*(1+math.Log10(10)), s.Score(tenTimes), 1e-9)
}

func TestScorer_PhraseMatchedAsSubstring(t *testing.T) {
	weights := ExtractTermWeights("spring boot")
	s := NewScorer(weights)

	phrase, _ := weights.Weight("spring boot")
	spring, _ := weights.Weight("spring")
	boot, _ := weights.Weight("boot")

	assert.InDelta(t, phrase+spring+boot, s.Score("Spring Boot services"), 1e-9)
	assert.InDelta(t, spring, s.Score("spring cleaning"), 1e-9)
}

func TestScorer_EmptyInputs(t *testing.T) {
	empty := NewScorer(ExtractTermWeights(""))
	assert.Equal(t, 0.0, empty.Score("anything at all"))

	s := NewScorer(ExtractTermWeights("golang"))
	assert.Equal(t, 0.0, s.Score(""))
	assert.Equal(t, 0.0, s.Score("no matching words"))

	var nilScorer *Scorer
	assert.Equal(t, 0.0, nilScorer.Score("golang"))
}

func TestScorer_Deterministic(t *testing.T) {
	jd := "Senior Go engineer: Kubernetes, gRPC, PostgreSQL, Kafka. Go and Kubernetes daily."
	text := "Ran Kafka and PostgreSQL on Kubernetes with Go services over gRPC"

	first := NewScorer(ExtractTermWeights(jd)).Score(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, NewScorer(ExtractTermWeights(jd)).Score(text))
	}
}

func TestScorer_ConcurrentUse(t *testing.T) {
	s := NewScorer(ExtractTermWeights("react typescript graphql"))
	want := s.Score("React with TypeScript and GraphQL")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.Score("React with TypeScript and GraphQL"))
		}()
	}
	wg.Wait()
}

func TestScorer_MatchedTerms(t *testing.T) {
	s := NewScorer(ExtractTermWeights("docker and kubernetes"))

	assert.Equal(t, []string{"docker", "kubernetes"}, s.MatchedTerms("Kubernetes, Docker"))
	assert.Empty(t, s.MatchedTerms("nothing here"))
	assert.Nil(t, s.MatchedTerms(""))
}
