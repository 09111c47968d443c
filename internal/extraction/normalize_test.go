package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := map[string]string{
		"golang":        "Go",
		"  NodeJS ":     "Node.js",
		"k8s":           "Kubernetes",
		"AWS":           "AWS",
		"Google  Cloud": "Google Cloud",
		"":              "",
	}
	for input, want := range tests {
		assert.Equal(t, want, NormalizeSkillName(input), input)
	}
}

func TestNormalizeSkills(t *testing.T) {
	assert.Equal(t,
		[]string{"Go", "Python", "SQL"},
		NormalizeSkills([]string{"golang", "Python", " ", "Go", "python", "SQL", "sql"}),
	)
	assert.Nil(t, NormalizeSkills(nil))
	assert.Empty(t, NormalizeSkills([]string{" "}))
}
