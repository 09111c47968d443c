package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// PlainTextRenderer renders a readable text preview of the tailored resume.
type PlainTextRenderer struct {
	// Width of section rules. Zero uses 60.
	Width int
}

// Render produces the preview. It never fails; the error keeps the renderer signature.
func (r PlainTextRenderer) Render(info types.PersonalInfo, education []types.Education, experience []types.Experience, projects []types.Project, skills types.Skills) (string, error) {
	width := r.Width
	if width <= 0 {
		width = 60
	}
	rule := strings.Repeat("-", width)

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(info.FullName))
	sb.WriteByte('\n')
	sb.WriteString(joinNonEmpty(" | ", info.Phone, info.Email, info.LinkedIn, info.GitHub))
	sb.WriteByte('\n')

	section := func(title string) {
		fmt.Fprintf(&sb, "\n%s\n%s\n", strings.ToUpper(title), rule)
	}

	section("Education")
	for _, edu := range education {
		fmt.Fprintf(&sb, "%s\n", joinNonEmpty(", ", edu.Institution, edu.Location))
		if line := joinNonEmpty("  ", edu.Degree, edu.DateRange); line != "" {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}

	section("Experience")
	for _, exp := range experience {
		fmt.Fprintf(&sb, "%s\n", joinNonEmpty(" - ", exp.Role, exp.Company))
		if line := joinNonEmpty("  ", exp.Location, exp.DateRange); line != "" {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
		writeTextBullets(&sb, exp.Bullets)
	}

	section("Projects")
	for _, proj := range projects {
		fmt.Fprintf(&sb, "%s\n", joinNonEmpty(" | ", proj.Name, strings.Join(proj.Technologies, ", "), proj.Link))
		writeTextBullets(&sb, proj.Bullets)
	}

	section("Technical Skills")
	fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(skills.Languages, ", "))
	fmt.Fprintf(&sb, "Frameworks: %s\n", strings.Join(skills.Frameworks, ", "))
	fmt.Fprintf(&sb, "Developer Tools: %s\n", strings.Join(skills.Tools, ", "))
	fmt.Fprintf(&sb, "Libraries: %s\n", strings.Join(skills.Libraries, ", "))

	return sb.String(), nil
}

func writeTextBullets(sb *strings.Builder, bullets []string) {
	for _, b := range bullets {
		if text := strings.TrimSpace(StripRichText(b)); text != "" {
			fmt.Fprintf(sb, "  * %s\n", text)
		}
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
