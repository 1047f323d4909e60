// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
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

// PrintParsedResume outputs a human-readable summary of one parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	name := resume.Name
	if name == "" {
		name = "(not found)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if resume.ContactInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.ContactInfo.Email))
	}
	if resume.ContactInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.ContactInfo.Phone))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Projects:            %d\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Achievements:        %d\n", len(resume.Achievements)))
	sb.WriteString(fmt.Sprintf("Tables detected:     %d\n", resume.TablesDetected))

	if len(resume.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the parsed job history with nested projects.
func (p *Printer) PrintExperience(jobs []types.JobEntry) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d jobs:\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		title := job.Position
		if title == "" {
			title = job.RawHeader
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		if job.Company != "" {
			sb.WriteString(fmt.Sprintf("    Company:  %s\n", job.Company))
		}
		if job.Duration != "" {
			sb.WriteString(fmt.Sprintf("    Duration: %s\n", job.Duration))
		}
		if len(job.Projects) > 0 {
			sb.WriteString(fmt.Sprintf("    Projects: %d\n", len(job.Projects)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

// PrintTables outputs the recovered table records.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTables(records []types.TableRecord) {
	if len(records) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO TABLES DETECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d tables:\n\n", len(records)))

	for i, record := range records {
		sb.WriteString(fmt.Sprintf("Table %d on page %d\n", record.TableIndex, record.Page))
		sb.WriteString(fmt.Sprintf("  %d rows\n", len(record.Rows)))
		if i < len(records)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DETECTED TABLES", sb.String())
}

// PrintBatchSummary outputs per-file results of a folder run.
func (p *Printer) PrintBatchSummary(parsed, failed int, failures []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed:  %d\n", parsed))
	sb.WriteString(fmt.Sprintf("Failed:  %d\n", failed))

	if len(failures) > 0 {
		sb.WriteString("\nFailures:\n")
		count := min(len(failures), maxItemsToShow)
		for i := 0; i < count; i++ {
			msg := failures[i]
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
		}
		if len(failures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(failures)-maxItemsToShow))
		}
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
