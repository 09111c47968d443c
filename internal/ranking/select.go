package ranking

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/dictionary"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Selection weights and limits
const (
	roleWeight         = 2.0
	companyWeight      = 0.5
	technologiesWeight = 2.5

	// MaxProjects is the default number of projects kept.
	MaxProjects = 3
	// MinSkillsPerCategory triggers back-filling when fewer skills survive filtering.
	MinSkillsPerCategory = 4
	// MaxSkillsPerCategory caps back-filling.
	MaxSkillsPerCategory = 6
)

// ScoreExperience returns the relevance score of a single job entry.
func ScoreExperience(s *Scorer, e types.Experience) float64 {
	return roleWeight*s.Score(e.Role) +
		companyWeight*s.Score(e.Company) +
		s.Score(strings.Join(e.Bullets, " "))
}

// ScoreProject returns the relevance score of a single project.
func ScoreProject(s *Scorer, p types.Project) float64 {
	return technologiesWeight*s.Score(strings.Join(p.Technologies, " ")) +
		s.Score(strings.Join(p.Bullets, " "))
}

// SelectExperience reorders every experience entry by relevance. Entries are never dropped.
func SelectExperience(s *Scorer, experience []types.Experience) []types.Experience {
	ranked := rankByScore(experience, func(e types.Experience) float64 {
		return ScoreExperience(s, e)
	})
	for i := range ranked {
		ranked[i].Bullets = cloneStrings(ranked[i].Bullets)
	}
	return ranked
}

// SelectProjects returns the limit most relevant projects. A negative limit keeps all of them.
func SelectProjects(s *Scorer, projects []types.Project, limit int) []types.Project {
	ranked := rankByScore(projects, func(p types.Project) float64 {
		return ScoreProject(s, p)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Technologies = cloneStrings(ranked[i].Technologies)
		ranked[i].Bullets = cloneStrings(ranked[i].Bullets)
	}
	return ranked
}

// SelectSkills filters each category to skills mentioned by the job description,
// then tops up thin categories with recognised technical skills from the master list.
//
// A skill is kept when its case-folded form is a weighted term or a substring of the
// case-folded job description. Back-filled skills only need to be technical terms, so a
// category can regain a skill that was filtered out as irrelevant.
func SelectSkills(weights *TermWeights, jobDescription string, master types.Skills) types.Skills {
	jdLower := strings.ToLower(jobDescription)

	var selected types.Skills
	for _, category := range types.SkillCategories() {
		available := master.Get(category)
		kept := make([]string, 0, len(available))
		present := make(map[string]bool, len(available))

		for _, skill := range available {
			lower := strings.ToLower(skill)
			if present[skill] || !(weights.Has(lower) || strings.Contains(jdLower, lower)) {
				continue
			}
			present[skill] = true
			kept = append(kept, skill)
		}

		if len(kept) < MinSkillsPerCategory {
			for _, skill := range available {
				if len(kept) >= MaxSkillsPerCategory {
					break
				}
				if present[skill] || !dictionary.IsTechTerm(strings.ToLower(skill)) {
					continue
				}
				present[skill] = true
				kept = append(kept, skill)
			}
		}

		selected.Set(category, kept)
	}

	return selected
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
