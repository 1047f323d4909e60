// Package education parses the education section into degree records.
package education

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/tables"
	"github.com/jonathan/resume-parser/internal/types"
)

// institutionPatterns start a new record when matched. The first covers
// named institutions, the second the looser "Name, City" shape.
var institutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][A-Za-z\s&,.&-]+(?:University|College|Institute|School))`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&,.&-]+),\s*[A-Za-z]+`),
}

// degreePatterns is an ordered table of (pattern, canonical label) pairs,
// evaluated first-match-wins against each line of an open record. Specific
// degree forms are listed before the generic bachelor/master catch-alls so
// "Bachelor of Technology in X" resolves to B.Tech with X as the field
// rather than swallowing "Technology in X" whole.
var degreePatterns = []struct {
	pattern *regexp.Regexp
	degree  string
}{
	{regexp.MustCompile(`(?i)(?:bachelor\s+of\s+technology|b\.?\s*tech)\.?(?:\s+in)?\s+([^,\n]+)`), "B.Tech"},
	{regexp.MustCompile(`(?i)(?:master\s+of\s+technology|m\.?\s*tech)\.?(?:\s+in)?\s+([^,\n]+)`), "M.Tech"},
	{regexp.MustCompile(`(?i)(?:bachelor\s+of\s+science|b\.?\s*sc)\.?(?:\s+in)?\s+([^,\n]+)`), "B.Sc"},
	{regexp.MustCompile(`(?i)(?:master\s+of\s+science|m\.?\s*sc)\.?(?:\s+in)?\s+([^,\n]+)`), "M.Sc"},
	{regexp.MustCompile(`(?i)b\.?\s*e\.?\s+in\s+([^,\n]+)`), "B.E"},
	{regexp.MustCompile(`(?i)bachelor\s+of\s+([^,\n]+)`), "Bachelor of"},
	{regexp.MustCompile(`(?i)master\s+of\s+([^,\n]+)`), "Master of"},
	{regexp.MustCompile(`(?i)masters?\s+in\s+([^,\n]+)`), "Masters"},
	{regexp.MustCompile(`(?i)\bmba\b`), "MBA"},
	{regexp.MustCompile(`(?i)diploma\s+in\s+([^,\n]+)`), "Diploma"},
}

var (
	yearPattern       = regexp.MustCompile(`(\d{4})`)
	cgpaPattern       = regexp.MustCompile(`(?i)(cgpa|gpa)[\s:]*(\d+\.?\d*)`)
	percentagePattern = regexp.MustCompile(`(\d+\.?\d*)%`)
)

// Parse extracts education records from the section's lines, preferring
// table mode and falling back to line mode.
func Parse(lines []string) []types.EducationEntry {
	if entries := parseTableRows(lines); len(entries) > 0 {
		return entries
	}
	return parseLines(lines)
}

func parseTableRows(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry
	var current types.EducationEntry

	flush := func() {
		if current != (types.EducationEntry{}) {
			entries = append(entries, current)
		}
		current = types.EducationEntry{}
	}

	for _, line := range lines {
		cells, ok := tables.ParseRowLine(line)
		if !ok {
			continue
		}
		flush()
		for _, cell := range cells {
			switch {
			case tables.KeyContainsAny(cell.Key, "degree", "qualification", "course"):
				current.Degree = cell.Value
			case tables.KeyContainsAny(cell.Key, "institution", "university", "college", "school"):
				current.Institution = cell.Value
			case tables.KeyContainsAny(cell.Key, "field", "specialization", "major", "stream"):
				current.Field = cell.Value
			case tables.KeyContainsAny(cell.Key, "year", "graduation", "completion"):
				current.Year = cell.Value
			case tables.KeyContainsAny(cell.Key, "cgpa", "gpa", "percentage", "marks"):
				current.CGPA = cell.Value
			}
		}
	}
	flush()

	return entries
}

// parseLines starts a record on every institution-pattern match and fills
// the open record's remaining fields from that line and the lines after it.
// Each field keeps its first match.
func parseLines(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry
	var current *types.EducationEntry

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) < 3 {
			continue
		}

		if institution := matchInstitution(line); institution != "" {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.EducationEntry{
				Institution: institution,
				RawText:     line,
			}
		}

		if current == nil {
			continue
		}
		fillFields(current, line)
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

func matchInstitution(line string) string {
	for _, pattern := range institutionPatterns {
		if groups := pattern.FindStringSubmatch(line); groups != nil {
			return strings.TrimSpace(groups[1])
		}
	}
	return ""
}

// fillFields applies the degree, year and grade rules to one line, setting
// only fields the record does not have yet.
func fillFields(entry *types.EducationEntry, line string) {
	if entry.Degree == "" {
		for _, dp := range degreePatterns {
			groups := dp.pattern.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			entry.Degree = dp.degree
			if len(groups) > 1 {
				entry.Field = strings.TrimSpace(groups[1])
			}
			break
		}
	}

	if entry.Year == "" {
		if groups := yearPattern.FindStringSubmatch(line); groups != nil {
			entry.Year = groups[1]
		}
	}

	if entry.CGPA == "" {
		if groups := cgpaPattern.FindStringSubmatch(line); groups != nil {
			entry.CGPA = strings.ToUpper(groups[1]) + ": " + groups[2]
		} else if groups := percentagePattern.FindStringSubmatch(line); groups != nil {
			entry.CGPA = "Percentage: " + groups[1] + "%"
		}
	}
}
