// Package experience parses the work-experience section into job entries
// with nested projects.
//
// Two modes are tried in order. Table mode handles sections whose content
// came from normalized pseudo-table rows; line mode is a forward scan over
// free prose maintaining the current job and the current project, with
// bullet and continuation lines feeding the project description.
package experience

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-parser/internal/tables"
	"github.com/jonathan/resume-parser/internal/types"
)

// jobIndicators are title keywords that flag a line as a possible job
// header. positionIndicators is the narrower subset actually stored as the
// position field when found.
var (
	jobIndicators = []string{
		"software engineer", "developer", "analyst", "manager", "intern", "consultant",
		"specialist", "architect", "lead", "senior", "junior", "associate", "trainee",
	}
	positionIndicators = []string{
		"software engineer", "developer", "analyst", "manager", "intern", "consultant", "specialist",
	}
	companySuffixes = []string{
		"ltd", "inc", "corp", "llc", "pvt", "limited", "company",
		"solutions", "technologies", "systems", "group", "labs", "enterprises",
	}
	projectIndicators = []string{"project:", "project ", "application", "system", "platform", "tool"}
)

var (
	headerDatePattern  = regexp.MustCompile(`\|\s*\d{4}|\(\d{4}`)
	locationPattern    = regexp.MustCompile(`,\s*[A-Z][a-z]+`)
	projectDatePattern = regexp.MustCompile(`\(\w+\s+\d{4}.*?\)`)
	bulletPrefix       = regexp.MustCompile(`^[•\-\*]\s*`)

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z\s&,.&-]+(?:Ltd|Inc|Corp|LLC|Pvt|Limited|Company|Solutions|Technologies|Systems|Group|Labs|Enterprises))`),
		regexp.MustCompile(`([A-Z][A-Za-z\s&,.&-]+),\s*[A-Z][a-z]+\s*\|`),
	}
	durationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\|\s*([^|]+?)(?:\s*$|\s*\n)`),
		regexp.MustCompile(`(\d{4}\s*-\s*(?:\d{4}|Present))`),
		regexp.MustCompile(`([A-Z][a-z]+\s+\d{2}\s*-\s*[A-Z][a-z]+\s+\d{2})`),
	}

	projectNamePattern     = regexp.MustCompile(`^Project:\s*([^(]+)`)
	projectFallbackPattern = regexp.MustCompile(`^([^(]+)`)
	parenthesizedPattern   = regexp.MustCompile(`\(([^)]+)\)`)
)

// Parse extracts job entries from the experience section's lines. Table
// mode is attempted first; if it yields nothing the line-mode state machine
// runs instead.
func Parse(lines []string) []types.JobEntry {
	if jobs := parseTableRows(lines); len(jobs) > 0 {
		return jobs
	}
	return parseLines(lines)
}

// parseTableRows maps pseudo-table row cells onto job fields by keyword
// containment on the cell key. Each row line starts a new job record.
func parseTableRows(lines []string) []types.JobEntry {
	var jobs []types.JobEntry
	var current types.JobEntry

	flush := func() {
		if current.Position != "" || current.Company != "" || current.Duration != "" || current.Description != "" {
			jobs = append(jobs, current)
		}
		current = types.JobEntry{}
	}

	for _, line := range lines {
		cells, ok := tables.ParseRowLine(line)
		if !ok {
			continue
		}
		flush()
		for _, cell := range cells {
			switch {
			case tables.KeyContainsAny(cell.Key, "position", "role", "title", "designation"):
				current.Position = cell.Value
			case tables.KeyContainsAny(cell.Key, "company", "organization", "employer"):
				current.Company = cell.Value
			case tables.KeyContainsAny(cell.Key, "duration", "period", "from", "to", "date"):
				current.Duration = cell.Value
			case tables.KeyContainsAny(cell.Key, "description", "responsibilities", "duties"):
				current.Description = cell.Value
			}
		}
	}
	flush()

	return jobs
}

// parseLines is the prose state machine: job headers open jobs, project
// headers open projects under the current job, bullets and long
// continuation lines accumulate into the open project's description.
func parseLines(lines []string) []types.JobEntry {
	var jobs []types.JobEntry
	var currentJob *types.JobEntry
	var currentProject *types.ProjectEntry
	var description []string

	flushProject := func() {
		if currentProject == nil {
			return
		}
		if len(description) > 0 {
			currentProject.Description = strings.Join(description, " ")
		}
		if currentJob != nil {
			currentJob.Projects = append(currentJob.Projects, *currentProject)
		}
		currentProject = nil
		description = nil
	}
	flushJob := func() {
		flushProject()
		if currentJob != nil {
			jobs = append(jobs, *currentJob)
			currentJob = nil
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case isJobHeader(line):
			flushJob()
			job := parseJobHeader(line, lines, i)
			currentJob = &job

		case isProjectHeader(line):
			flushProject()
			project := parseProjectHeader(line)
			currentProject = &project

		case bulletPrefix.MatchString(line):
			if currentProject != nil {
				if text := bulletPrefix.ReplaceAllString(line, ""); text != "" {
					description = append(description, text)
				}
			}

		case currentProject != nil && utf8.RuneCountInString(line) > 20:
			// Unmarked prose after a project header reads as description.
			description = append(description, line)
		}
	}
	flushJob()

	return jobs
}

// isJobHeader reports whether a line likely names a position or company: it
// must carry a job-title keyword or a company suffix, plus either a
// date-like pattern or a ", City" location.
func isJobHeader(line string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(line)) < 5 {
		return false
	}
	lower := strings.ToLower(line)

	hasTitle := containsAny(lower, jobIndicators)
	hasSuffix := containsAny(lower, companySuffixes)
	hasDate := headerDatePattern.MatchString(line)
	hasLocation := locationPattern.MatchString(line)

	return (hasTitle || hasSuffix) && (hasDate || hasLocation)
}

// isProjectHeader reports whether a line likely starts a project: a project
// indicator keyword plus either a "(Month YYYY ...)" date or a short line.
func isProjectHeader(line string) bool {
	lower := strings.ToLower(line)
	if !containsAny(lower, projectIndicators) {
		return false
	}
	return projectDatePattern.MatchString(line) || utf8.RuneCountInString(line) < 100
}

// parseJobHeader builds a job entry from the header line combined with up
// to two following lines, stopping early at a blank, a bullet or a project
// header. Position, company and duration each come from their own ordered
// pattern table; the first match wins.
func parseJobHeader(line string, lines []string, index int) types.JobEntry {
	job := types.JobEntry{RawHeader: line}

	combined := line
	for j := index + 1; j < len(lines) && j <= index+2; j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" || strings.HasPrefix(next, "•") || isProjectHeader(next) {
			break
		}
		combined += " " + next
	}

	lower := strings.ToLower(line)
	for _, indicator := range positionIndicators {
		if strings.Contains(lower, indicator) {
			job.Position = cases.Title(language.English).String(indicator)
			break
		}
	}

	for _, pattern := range companyPatterns {
		if groups := pattern.FindStringSubmatch(combined); groups != nil {
			job.Company = strings.TrimSpace(groups[1])
			break
		}
	}

	for _, pattern := range durationPatterns {
		if groups := pattern.FindStringSubmatch(combined); groups != nil {
			job.Duration = strings.TrimSpace(groups[1])
			break
		}
	}

	return job
}

// parseProjectHeader extracts the project name (text after "Project:", or
// everything before the first parenthesis) and duration (inside the first
// parenthesized group).
func parseProjectHeader(line string) types.ProjectEntry {
	project := types.ProjectEntry{RawHeader: line}

	if groups := projectNamePattern.FindStringSubmatch(line); groups != nil {
		project.Name = strings.TrimSpace(groups[1])
	} else if groups := projectFallbackPattern.FindStringSubmatch(line); groups != nil {
		project.Name = strings.TrimSpace(groups[1])
	}

	if groups := parenthesizedPattern.FindStringSubmatch(line); groups != nil {
		project.Duration = strings.TrimSpace(groups[1])
	}

	return project
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
