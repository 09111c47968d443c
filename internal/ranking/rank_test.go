package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankByScore_StableDescending(t *testing.T) {
	items := []string{"b1", "a3", "c1", "d3", "e2"}
	score := func(s string) float64 { return float64(s[1] - '0') }

	ranked := rankByScore(items, score)
	assert.Equal(t, []string{"a3", "d3", "e2", "b1", "c1"}, ranked)
	assert.Equal(t, []string{"b1", "a3", "c1", "d3", "e2"}, items, "input is not reordered")
}

func TestTopKeywords_TechnicalOnlyByWeight(t *testing.T) {
	weights := ExtractTermWeights("docker kubernetes react react hiring")

	assert.Equal(t, []string{"react", "docker", "kubernetes"}, TopKeywords(weights, 12))
	assert.Equal(t, []string{"react", "docker"}, TopKeywords(weights, 2))
}

func TestTopKeywords_PhrasesOutrankWords(t *testing.T) {
	weights := ExtractTermWeights("python and machine vision with computer vision")

	top := TopKeywords(weights, 12)
	assert.Equal(t, []string{"computer vision", "python"}, top)
}

func TestTopKeywords_Limit(t *testing.T) {
	jd := strings.Join([]string{
		"python", "java", "rust", "golang", "ruby", "php", "swift", "kotlin", "scala", "dart",
		"elixir", "haskell", "react", "angular", "svelte",
	}, " ")

	top := TopKeywords(ExtractTermWeights(jd), 12)
	assert.Len(t, top, 12)
	assert.Equal(t, "python", top[0], "equal weights keep first-occurrence order")
	assert.Equal(t, "elixir", top[10])
}

func TestTopKeywords_NoLimit(t *testing.T) {
	weights := ExtractTermWeights("python java")
	assert.Len(t, TopKeywords(weights, -1), 2)
}
