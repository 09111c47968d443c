package ranking

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectExperience_MonotonicRelevance(t *testing.T) {
	s := NewScorer(ExtractTermWeights("kubernetes kubernetes kubernetes"))

	plain := types.Experience{Company: "Acme", Role: "Engineer", Bullets: []string{"Ran deployments", "Wrote tooling"}}
	relevant := types.Experience{
		Company: "Acme",
		Role:    "Engineer",
		Bullets: []string{"Ran kubernetes deployments", "Wrote kubernetes tooling", "Upgraded kubernetes"},
	}

	assert.Greater(t, ScoreExperience(s, relevant), ScoreExperience(s, plain))

	selected := SelectExperience(s, []types.Experience{plain, relevant})
	require.Len(t, selected, 2)
	assert.Equal(t, relevant, selected[0])
	assert.Equal(t, plain, selected[1])
}

func TestSelectExperience_LiteralScenario(t *testing.T) {
	s := NewScorer(ExtractTermWeights("React and Node.js required. 3+ years React experience."))

	tech := types.Experience{Bullets: []string{"Built APIs with Node.js and React"}}
	retail := types.Experience{Bullets: []string{"Managed a retail team."}}

	assert.Greater(t, ScoreExperience(s, tech), ScoreExperience(s, retail))
	assert.Equal(t, 0.0, ScoreExperience(s, retail))
}

func TestScoreExperience_ComponentWeights(t *testing.T) {
	weights := ExtractTermWeights("kubernetes")
	w, _ := weights.Weight("kubernetes")
	s := NewScorer(weights)

	assert.InDelta(t, 2.0*w, ScoreExperience(s, types.Experience{Role: "Kubernetes Admin"}), 1e-9)
	assert.InDelta(t, 0.5*w, ScoreExperience(s, types.Experience{Company: "Kubernetes Inc"}), 1e-9)
	assert.InDelta(t, w, ScoreExperience(s, types.Experience{Bullets: []string{"ran", "kubernetes"}}), 1e-9)
}

func TestSelectExperience_NeverDropsAndKeepsTies(t *testing.T) {
	s := NewScorer(ExtractTermWeights(""))
	input := []types.Experience{{Company: "A"}, {Company: "B"}, {Company: "C"}, {Company: "D"}}

	selected := SelectExperience(s, input)
	require.Len(t, selected, len(input))
	for i := range input {
		assert.Equal(t, input[i].Company, selected[i].Company)
	}
}

func TestSelectExperience_DoesNotShareBullets(t *testing.T) {
	s := NewScorer(ExtractTermWeights("go"))
	input := []types.Experience{{Company: "A", Bullets: []string{"Go services"}}}

	selected := SelectExperience(s, input)
	selected[0].Bullets[0] = "changed"
	assert.Equal(t, "Go services", input[0].Bullets[0])
}

func TestSelectExperience_Empty(t *testing.T) {
	s := NewScorer(ExtractTermWeights("go"))
	assert.Empty(t, SelectExperience(s, nil))
}

func TestSelectProjects_CapAndOrder(t *testing.T) {
	s := NewScorer(ExtractTermWeights("Looking for React and GraphQL"))
	projects := []types.Project{
		{Name: "One", Technologies: []string{"Java"}},
		{Name: "Two", Technologies: []string{"React"}},
		{Name: "Three", Technologies: []string{"Perl"}},
		{Name: "Four", Technologies: []string{"Rust"}, Bullets: []string{"GraphQL gateway"}},
		{Name: "Five", Technologies: []string{"React", "GraphQL"}},
	}

	selected := SelectProjects(s, projects, MaxProjects)
	require.Len(t, selected, 3)
	assert.Equal(t, "Five", selected[0].Name)
	assert.Equal(t, "Two", selected[1].Name)
	assert.Equal(t, "Four", selected[2].Name)
}

func TestScoreProject_TechnologiesWeighted(t *testing.T) {
	weights := ExtractTermWeights("graphql")
	w, _ := weights.Weight("graphql")
	s := NewScorer(weights)

	assert.InDelta(t, 2.5*w, ScoreProject(s, types.Project{Technologies: []string{"GraphQL"}}), 1e-9)
	assert.InDelta(t, w, ScoreProject(s, types.Project{Bullets: []string{"GraphQL API"}}), 1e-9)
}

func TestSelectProjects_EmptyJobKeepsOriginalOrder(t *testing.T) {
	s := NewScorer(ExtractTermWeights(""))
	projects := []types.Project{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}

	selected := SelectProjects(s, projects, MaxProjects)
	require.Len(t, selected, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{selected[0].Name, selected[1].Name, selected[2].Name})
}

func TestSelectProjects_Limits(t *testing.T) {
	s := NewScorer(ExtractTermWeights(""))
	projects := []types.Project{{Name: "A"}, {Name: "B"}}

	assert.Len(t, SelectProjects(s, projects, MaxProjects), 2)
	assert.Len(t, SelectProjects(s, projects, -1), 2)
	assert.Empty(t, SelectProjects(s, projects, 0))
	assert.Empty(t, SelectProjects(s, nil, MaxProjects))
}

func TestSelectSkills_FilterThenBackfill(t *testing.T) {
	jd := "We need Go and Python"
	master := types.Skills{
		Languages: []string{"Python", "Go", "Java", "Rust", "Haskell", "Cobol", "Fortran", "English"},
	}

	selected := SelectSkills(ExtractTermWeights(jd), jd, master)
	assert.Equal(t, []string{"Python", "Go", "Java", "Rust", "Haskell", "Cobol"}, selected.Languages)
}

func TestSelectSkills_NoBackfillWhenEnoughMatch(t *testing.T) {
	jd := "python java rust haskell"
	master := types.Skills{
		Languages: []string{"Python", "Java", "Rust", "Haskell", "Cobol", "Fortran"},
	}

	selected := SelectSkills(ExtractTermWeights(jd), jd, master)
	assert.Equal(t, []string{"Python", "Java", "Rust", "Haskell"}, selected.Languages)
}

func TestSelectSkills_SubstringOfJobDescription(t *testing.T) {
	jd := "Experience with Tailwind CSS"
	master := types.Skills{Libraries: []string{"CSS", "Sketching"}}

	selected := SelectSkills(ExtractTermWeights(jd), jd, master)
	assert.Equal(t, []string{"CSS"}, selected.Libraries)
}

func TestSelectSkills_BackfillOnlyTechnicalTerms(t *testing.T) {
	master := types.Skills{Tools: []string{"Teamwork", "Leadership", "Docker"}}

	selected := SelectSkills(ExtractTermWeights(""), "", master)
	assert.Equal(t, []string{"Docker"}, selected.Tools)
}

func TestSelectSkills_CollapsesDuplicates(t *testing.T) {
	jd := "docker"
	master := types.Skills{Tools: []string{"Docker", "Docker", "Git", "Git"}}

	selected := SelectSkills(ExtractTermWeights(jd), jd, master)
	assert.Equal(t, []string{"Docker", "Git"}, selected.Tools)
}

func TestSelectSkills_SkillFloor(t *testing.T) {
	master := types.Skills{
		Languages:  []string{"Python", "JavaScript", "TypeScript", "SQL", "Java", "Go", "Rust", "Ruby"},
		Frameworks: []string{"React", "Node.js", "FastAPI"},
		Tools:      []string{"Git", "Docker", "AWS", "Kubernetes", "Terraform", "Jenkins", "Linux"},
	}

	for _, jd := range []string{"", "Python and Docker", "nothing relevant here"} {
		selected := SelectSkills(ExtractTermWeights(jd), jd, master)

		assert.GreaterOrEqual(t, len(selected.Languages), MinSkillsPerCategory, jd)
		assert.LessOrEqual(t, len(selected.Languages), MaxSkillsPerCategory, jd)
		assert.GreaterOrEqual(t, len(selected.Tools), MinSkillsPerCategory, jd)
		assert.LessOrEqual(t, len(selected.Tools), MaxSkillsPerCategory, jd)
		assert.Len(t, selected.Frameworks, 3, "fewer than four in the master list keeps them all")
		assert.Empty(t, selected.Libraries)
	}
}

func TestSelectSkills_DoesNotMutateMaster(t *testing.T) {
	master := types.Skills{Languages: []string{"Python", "Go"}}
	_ = SelectSkills(ExtractTermWeights("go"), "go", master)
	assert.Equal(t, []string{"Python", "Go"}, master.Languages)
}
