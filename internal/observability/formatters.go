// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintJobDescription outputs where the job description came from and a short preview.
func (p *Printer) PrintJobDescription(source string, text string) {
	if text == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:  %s\n", source))
	sb.WriteString(fmt.Sprintf("Length:  %d chars\n\n", len(text)))

	lines := strings.Split(text, "\n")
	shown := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if shown == maxItemsToShow {
			sb.WriteString("...\n")
			break
		}
		sb.WriteString(line + "\n")
		shown++
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTermWeights outputs the heaviest extracted terms, technical terms marked with "*".
func (p *Printer) PrintTermWeights(terms []types.WeightedTerm) {
	if len(terms) == 0 {
		return
	}

	sorted := make([]types.WeightedTerm, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total terms weighted: %d\n\n", len(terms)))

	limit := min(len(sorted), 2*maxItemsToShow)
	for i := 0; i < limit; i++ {
		term := sorted[i]
		marker := " "
		if term.Technical {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-30s %6.2f  x%d\n", marker, truncate(term.Term, 30), term.Weight, term.Frequency))
	}
	if len(sorted) > limit {
		sb.WriteString(fmt.Sprintf("... and %d more terms", len(sorted)-limit))
	}

	p.printBox("WEIGHTED TERMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs what the optimizer kept from the master resume.
func (p *Printer) PrintSelection(result *types.OptimizationResult, master *types.MasterResume) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if len(result.KeywordsExtracted) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n\n", strings.Join(result.KeywordsExtracted, ", ")))
	}

	selected := result.OptimizedData
	sb.WriteString("Experience (by relevance):\n")
	for i, e := range selected.Experience {
		sb.WriteString(fmt.Sprintf("  #%d %s - %s\n", i+1, e.Role, e.Company))
	}

	totalProjects := len(selected.Projects)
	if master != nil {
		totalProjects = len(master.Projects)
	}
	sb.WriteString(fmt.Sprintf("\nProjects (kept %d of %d):\n", len(selected.Projects), totalProjects))
	for _, proj := range selected.Projects {
		sb.WriteString(fmt.Sprintf("  • %s\n", proj.Name))
	}

	sb.WriteString("\nSkills:\n")
	for _, category := range types.SkillCategories() {
		kept := len(selected.Skills.Get(category))
		if master != nil {
			sb.WriteString(fmt.Sprintf("  %-11s %d of %d\n", category, kept, len(master.Skills.Get(category))))
		} else {
			sb.WriteString(fmt.Sprintf("  %-11s %d\n", category, kept))
		}
	}

	p.printBox("SELECTED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationErrors outputs resume validation problems, or a success line when there are none.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintValidationErrors(problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(problems)))
	for i, problem := range problems {
		sb.WriteString(fmt.Sprintf("⚠ %s", problem))
		if i < len(problems)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME VALIDATION", sb.String())
}

// PrintViolations outputs layout violations found in rendered LaTeX.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == types.SeverityError {
			marker = "✖"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, v.Type))
		sb.WriteString(fmt.Sprintf("  %s", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", sb.String())
}
