// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MasterResume is the candidate's full resume. The optimizer only reads it and copies selected subsets.
type MasterResume struct {
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo" validate:"required"`
	Education    []Education  `json:"education" yaml:"education" validate:"dive"`
	Experience   []Experience `json:"experience" yaml:"experience" validate:"dive"`
	Projects     []Project    `json:"projects" yaml:"projects" validate:"dive"`
	Skills       Skills       `json:"skills" yaml:"skills"`
}

// PersonalInfo holds the contact header of a resume
type PersonalInfo struct {
	FullName string `json:"fullName" yaml:"fullName" validate:"required"`
	Email    string `json:"email" yaml:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" yaml:"phone"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
}

// Education represents a single degree entry
type Education struct {
	Institution string `json:"institution" yaml:"institution" validate:"required"`
	Degree      string `json:"degree" yaml:"degree"`
	Location    string `json:"location" yaml:"location"`
	DateRange   string `json:"dateRange" yaml:"dateRange"`
}

// Experience represents a single job. Bullets may carry inline rich-text markup (<b>, <i>).
type Experience struct {
	Company   string   `json:"company" yaml:"company"`
	Role      string   `json:"role" yaml:"role"`
	Location  string   `json:"location" yaml:"location"`
	DateRange string   `json:"dateRange" yaml:"dateRange"`
	Bullets   []string `json:"bullets" yaml:"bullets"`
}

// Project represents a side or portfolio project
type Project struct {
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Link         string   `json:"link,omitempty" yaml:"link,omitempty"`
	Bullets      []string `json:"bullets" yaml:"bullets"`
}

// Skills groups skill strings into the four fixed resume categories.
// Ordering inside a category is preserved but carries no meaning.
type Skills struct {
	Languages  []string `json:"languages" yaml:"languages"`
	Frameworks []string `json:"frameworks" yaml:"frameworks"`
	Tools      []string `json:"tools" yaml:"tools"`
	Libraries  []string `json:"libraries" yaml:"libraries"`
}

// SkillCategory names one of the four skill lists
type SkillCategory string

// Skill categories in the order they are rendered
const (
	SkillLanguages  SkillCategory = "languages"
	SkillFrameworks SkillCategory = "frameworks"
	SkillTools      SkillCategory = "tools"
	SkillLibraries  SkillCategory = "libraries"
)

// SkillCategories returns all categories in canonical order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{SkillLanguages, SkillFrameworks, SkillTools, SkillLibraries}
}

// Get returns the list for a category. Unknown categories return nil.
func (s Skills) Get(category SkillCategory) []string {
	switch category {
	case SkillLanguages:
		return s.Languages
	case SkillFrameworks:
		return s.Frameworks
	case SkillTools:
		return s.Tools
	case SkillLibraries:
		return s.Libraries
	default:
		return nil
	}
}

// Set replaces the list for a category. Unknown categories are ignored.
func (s *Skills) Set(category SkillCategory, values []string) {
	switch category {
	case SkillLanguages:
		s.Languages = values
	case SkillFrameworks:
		s.Frameworks = values
	case SkillTools:
		s.Tools = values
	case SkillLibraries:
		s.Libraries = values
	}
}

// Total returns the number of skills across all categories.
func (s Skills) Total() int {
	return len(s.Languages) + len(s.Frameworks) + len(s.Tools) + len(s.Libraries)
}

// Clone returns a deep copy of the resume.
func (r *MasterResume) Clone() *MasterResume {
	if r == nil {
		return nil
	}
	out := &MasterResume{
		PersonalInfo: r.PersonalInfo,
		Education:    append([]Education(nil), r.Education...),
		Experience:   make([]Experience, len(r.Experience)),
		Projects:     make([]Project, len(r.Projects)),
	}
	for i, e := range r.Experience {
		e.Bullets = cloneStrings(e.Bullets)
		out.Experience[i] = e
	}
	for i, p := range r.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		p.Bullets = cloneStrings(p.Bullets)
		out.Projects[i] = p
	}
	for _, c := range SkillCategories() {
		out.Skills.Set(c, cloneStrings(r.Skills.Get(c)))
	}
	return out
}

// Normalize replaces nil slices with empty ones so JSON output always carries arrays.
func (r *MasterResume) Normalize() {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
		if r.Projects[i].Bullets == nil {
			r.Projects[i].Bullets = []string{}
		}
	}
	for _, c := range SkillCategories() {
		if r.Skills.Get(c) == nil {
			r.Skills.Set(c, []string{})
		}
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
