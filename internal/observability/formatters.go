// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/gap-advisor/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirements outputs a summary of the extracted requirements.
func (p *Printer) PrintJobRequirements(requirements *types.JobRequirements) {
	if requirements == nil {
		return
	}

	var sb strings.Builder
	summary := requirements.Summary()

	sb.WriteString(fmt.Sprintf("Skills:     %d (%d must-have)\n", summary.TotalSkills, summary.MustHaveSkills))
	if requirements.ExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Experience: %d years\n", requirements.ExperienceYears))
	}
	if requirements.EducationLevel != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", requirements.EducationLevel))
	}

	musts := requirements.GetMustHaves()
	if len(musts) > 0 {
		sb.WriteString("\nMust-haves:\n")
		count := min(len(musts), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", musts[i].Name, musts[i].Category))
		}
		if len(musts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(musts)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs a summary of a gap analysis result.
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	summary := result.GetGapSummary()

	sb.WriteString(fmt.Sprintf("Match score:    %.2f%%\n", summary.MatchScore))
	sb.WriteString(fmt.Sprintf("Skills found:   %d\n", len(result.SkillsFound)))
	sb.WriteString(fmt.Sprintf("Gaps:           %d (%d critical)\n", summary.TotalGaps, summary.CriticalGaps))
	if summary.ExperienceGapYears > 0 {
		sb.WriteString(fmt.Sprintf("Experience gap: %d years\n", summary.ExperienceGapYears))
	}

	critical := result.GetCriticalGaps()
	if len(critical) > 0 {
		sb.WriteString("\nCritical gaps:\n")
		count := min(len(critical), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", critical[i].SkillName))
		}
		if len(critical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(critical)-maxItemsToShow))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestionGroups outputs the grouped follow-up questions.
func (p *Printer) PrintQuestionGroups(groups []*types.QuestionGroup) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for i, group := range groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s (score %d):\n", group.Category, group.PriorityScore()))
		for _, q := range group.Questions {
			sb.WriteString(fmt.Sprintf("  • %s\n", q.Text))
		}
	}

	p.printBox("FOLLOW-UP QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
