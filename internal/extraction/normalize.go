package extraction

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"next.js":    "Next.js",
	"nextjs":     "Next.js",
}

// NormalizeSkillName trims a skill and maps known variants to their canonical form.
// Unknown skills keep the casing the resume used.
func NormalizeSkillName(skillName string) string {
	normalized := strings.Join(strings.Fields(skillName), " ")
	if canonical, ok := skillNormalizations[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkills normalizes skill names and drops blanks and case-insensitive duplicates,
// keeping the first occurrence.
func NormalizeSkills(skills []string) []string {
	if skills == nil {
		return nil
	}

	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		name := NormalizeSkillName(skill)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, name)
	}
	return normalized
}
