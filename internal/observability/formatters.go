// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/pathway-onboarding/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobList outputs a ranked summary of explored job candidates.
func (p *Printer) PrintJobList(jobs []types.JobExploreItem, totalJobs int) {
	var sb strings.Builder

	shown := len(jobs)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}
	for i := 0; i < shown; i++ {
		job := jobs[i]
		if job.MatchScore > 0 {
			sb.WriteString(fmt.Sprintf("%d. %s (%.0f%%)\n", i+1, job.Title, job.MatchScore*100))
		} else {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, job.Title))
		}
	}
	if len(jobs) > shown {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(jobs)-shown))
	}
	sb.WriteString(fmt.Sprintf("\nTotal matches: %d", totalJobs))

	p.printBox("JOB CANDIDATES", sb.String())
}

// PrintJobPreview outputs a human-readable summary of one job preview.
func (p *Printer) PrintJobPreview(preview *types.JobPreview) {
	if preview == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role: %s\n", preview.Title))

	if len(preview.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		for i, req := range preview.Requirements {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more\n", len(preview.Requirements)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("- %s\n", req))
		}
	}

	if len(preview.SkillGaps) > 0 {
		sb.WriteString("\nSkill gaps:\n")
		for _, gap := range preview.SkillGaps {
			if gap.RequiredLevel != "" {
				sb.WriteString(fmt.Sprintf("- %s (need %s, have %s)\n", gap.Skill, gap.RequiredLevel, orNone(gap.CurrentLevel)))
			} else {
				sb.WriteString(fmt.Sprintf("- %s\n", gap.Skill))
			}
		}
	}

	p.printBox("JOB PREVIEW", sb.String())
}

// PrintPathway outputs the generated pathway with its weeks, when present.
func (p *Printer) PrintPathway(pathway *types.Pathway) {
	if pathway == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pathway: %s\n", pathway.ID))
	sb.WriteString(fmt.Sprintf("Modes:   %s / %s\n", pathway.CourseMode, pathway.GenerationMode))

	if len(pathway.Weeks) > 0 {
		sb.WriteString("\n")
		for _, week := range pathway.Weeks {
			sb.WriteString(fmt.Sprintf("Week %d: %s\n", week.Number, week.Topic))
			for _, lesson := range week.Lessons {
				sb.WriteString(fmt.Sprintf("  - %s\n", lesson))
			}
		}
	}

	p.printBox("LEARNING PATHWAY", sb.String())
}

func orNone(level string) string {
	if level == "" {
		return "none"
	}
	return level
}
