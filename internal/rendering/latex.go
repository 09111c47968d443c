package rendering

import (
	_ "embed"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Templates use << >> delimiters so LaTeX braces never collide with actions.
const (
	leftDelim  = "<<"
	rightDelim = ">>"
)

//go:embed templates/resume.tex.tmpl
var defaultTemplate string

// TemplateData represents the data structure passed to the LaTeX template.
// Every string field is already escaped.
type TemplateData struct {
	Name        string
	Phone       string
	Email       string
	EmailURL    string
	LinkedIn    string
	LinkedInURL string
	GitHub      string
	GitHubURL   string
	Education   []EducationSection
	Experience  []ExperienceSection
	Projects    []ProjectSection
	Skills      SkillsSection
}

// EducationSection is one escaped education entry
type EducationSection struct {
	Institution string
	Location    string
	Degree      string
	DateRange   string
}

// ExperienceSection is one escaped job with its bullets converted from rich text
type ExperienceSection struct {
	Role      string
	Company   string
	Location  string
	DateRange string
	Bullets   []string
}

// ProjectSection is one escaped project
type ProjectSection struct {
	Name         string
	Technologies string
	Link         string
	Bullets      []string
}

// SkillsSection holds each skill category joined with commas
type SkillsSection struct {
	Languages  string
	Frameworks string
	Tools      string
	Libraries  string
}

// LaTeXRenderer renders resume content through a parsed template.
// It is safe for concurrent use.
type LaTeXRenderer struct {
	tmpl *template.Template
}

// NewLaTeXRenderer returns a renderer for the built-in single-page template.
func NewLaTeXRenderer() (*LaTeXRenderer, error) {
	tmpl, err := parseTemplate("resume", defaultTemplate)
	if err != nil {
		return nil, err
	}
	return &LaTeXRenderer{tmpl: tmpl}, nil
}

// NewLaTeXRendererFromFile loads a custom template. It receives a TemplateData and
// may call the escape, richtext and join functions.
func NewLaTeXRendererFromFile(templatePath string) (*LaTeXRenderer, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{Template: templatePath, Message: "template file not found", Cause: err}
		}
		return nil, &TemplateError{Template: templatePath, Message: "failed to read template file", Cause: err}
	}

	tmpl, err := parseTemplate(templatePath, string(content))
	if err != nil {
		return nil, err
	}
	return &LaTeXRenderer{tmpl: tmpl}, nil
}

// RenderLaTeX renders with the built-in template.
func RenderLaTeX(info types.PersonalInfo, education []types.Education, experience []types.Experience, projects []types.Project, skills types.Skills) (string, error) {
	r, err := NewLaTeXRenderer()
	if err != nil {
		return "", err
	}
	return r.Render(info, education, experience, projects, skills)
}

// Render produces a complete LaTeX document. Output depends only on the inputs.
func (r *LaTeXRenderer) Render(info types.PersonalInfo, education []types.Education, experience []types.Experience, projects []types.Project, skills types.Skills) (string, error) {
	if r == nil || r.tmpl == nil {
		return "", &RenderError{Message: "renderer has no template"}
	}

	data := buildTemplateData(info, education, experience, projects, skills)

	var result strings.Builder
	if err := r.tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Template: r.tmpl.Name(), Message: "failed to execute template", Cause: err}
	}

	return result.String(), nil
}

func parseTemplate(name, content string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"escape":   EscapeLaTeX,
			"richtext": RichTextToLaTeX,
			"join":     escapeJoined,
		}).
		Parse(content)
	if err != nil {
		return nil, &TemplateError{Template: name, Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// buildTemplateData escapes every field the template prints
func buildTemplateData(info types.PersonalInfo, education []types.Education, experience []types.Experience, projects []types.Project, skills types.Skills) *TemplateData {
	data := &TemplateData{
		Name:        EscapeLaTeX(info.FullName),
		Phone:       EscapeLaTeX(info.Phone),
		Email:       EscapeLaTeX(info.Email),
		EmailURL:    hrefEscape(strings.TrimSpace(info.Email)),
		LinkedIn:    EscapeLaTeX(info.LinkedIn),
		LinkedInURL: hrefEscape(linkTarget(info.LinkedIn)),
		GitHub:      EscapeLaTeX(info.GitHub),
		GitHubURL:   hrefEscape(linkTarget(info.GitHub)),
		Education:   make([]EducationSection, 0, len(education)),
		Experience:  make([]ExperienceSection, 0, len(experience)),
		Projects:    make([]ProjectSection, 0, len(projects)),
		Skills: SkillsSection{
			Languages:  escapeJoined(skills.Languages),
			Frameworks: escapeJoined(skills.Frameworks),
			Tools:      escapeJoined(skills.Tools),
			Libraries:  escapeJoined(skills.Libraries),
		},
	}

	for _, edu := range education {
		data.Education = append(data.Education, EducationSection{
			Institution: EscapeLaTeX(edu.Institution),
			Location:    EscapeLaTeX(edu.Location),
			Degree:      EscapeLaTeX(edu.Degree),
			DateRange:   EscapeLaTeX(edu.DateRange),
		})
	}

	for _, exp := range experience {
		data.Experience = append(data.Experience, ExperienceSection{
			Role:      EscapeLaTeX(exp.Role),
			Company:   EscapeLaTeX(exp.Company),
			Location:  EscapeLaTeX(exp.Location),
			DateRange: EscapeLaTeX(exp.DateRange),
			Bullets:   richBullets(exp.Bullets),
		})
	}

	for _, proj := range projects {
		data.Projects = append(data.Projects, ProjectSection{
			Name:         EscapeLaTeX(proj.Name),
			Technologies: escapeJoined(proj.Technologies),
			Link:         EscapeLaTeX(proj.Link),
			Bullets:      richBullets(proj.Bullets),
		})
	}

	return data
}

// richBullets converts bullets and drops the ones with no visible text
func richBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if strings.TrimSpace(StripRichText(b)) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(RichTextToLaTeX(b)))
	}
	return out
}
