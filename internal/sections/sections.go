// Package sections locates resume section boundaries in extracted text and
// slices out per-section content for the entity parsers.
package sections

import "strings"

// Kind identifies one of the fixed resume section kinds.
type Kind string

// The recognized section kinds.
const (
	Contact        Kind = "contact"
	Summary        Kind = "summary"
	Experience     Kind = "experience"
	Education      Kind = "education"
	Skills         Kind = "skills"
	Projects       Kind = "projects"
	Certifications Kind = "certifications"
	Achievements   Kind = "achievements"
)

// headerKeywords maps each section kind to its header synonyms in priority
// order. The table is immutable package data shared by every parse.
var headerKeywords = []struct {
	kind     Kind
	keywords []string
}{
	{Contact, []string{"contact", "personal information", "personal details", "contact information"}},
	{Summary, []string{"summary", "profile", "objective", "about", "professional summary", "career objective"}},
	{Experience, []string{"experience", "work experience", "employment", "work history", "professional experience", "work", "career", "employment history"}},
	{Education, []string{"education", "academic background", "qualifications", "academic", "educational background"}},
	{Skills, []string{"skills", "technical skills", "competencies", "technologies", "technical competencies", "core competencies"}},
	{Projects, []string{"projects", "personal projects", "key projects", "project"}},
	{Certifications, []string{"certifications", "certificates", "licenses", "certification"}},
	{Achievements, []string{"achievements", "key achievements", "accomplishments", "awards"}},
}

// Boundaries maps each detected section kind to the zero-based index of its
// header line. Kinds whose header never appears are absent.
type Boundaries map[Kind]int

// SplitLines splits extracted text into the canonical line sequence used by
// every later stage. All boundary indexes refer to this sequence.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// FindBoundaries scans the line sequence for section headers. Each kind is
// scanned independently; the first line in document order matching any of
// the kind's keywords wins, and scanning for that kind stops there. Two
// kinds may map to the same line index (their keyword lists overlap); the
// content slice for the earlier-declared kind then ends at that shared
// boundary, so the collision resolves itself when slicing.
func FindBoundaries(lines []string) Boundaries {
	bounds := make(Boundaries)
	for _, entry := range headerKeywords {
	scan:
		for i, line := range lines {
			clean := strings.ToLower(strings.TrimSpace(line))

			// Prose lines are long; headers are short.
			if len(clean) > 100 {
				continue
			}

			// Normalized pseudo-table header lines carry the section
			// name inside the cell list.
			if rest, ok := strings.CutPrefix(clean, "headers:"); ok {
				clean = strings.TrimSpace(rest)
			}

			for _, keyword := range entry.keywords {
				if matchesKeyword(clean, keyword) {
					bounds[entry.kind] = i
					break scan
				}
			}
		}
	}
	return bounds
}

// matchesKeyword reports whether a cleaned (trimmed, lowercased) line is a
// header match for the keyword: an exact match, the keyword followed by a
// colon, or a short line starting or ending with the keyword.
func matchesKeyword(clean, keyword string) bool {
	if clean == keyword || clean == keyword+":" || clean == keyword+" :" {
		return true
	}
	if len(clean) < 50 && strings.Contains(clean, keyword) {
		return strings.HasPrefix(clean, keyword) || strings.HasSuffix(clean, keyword)
	}
	return false
}

// Content returns the lines strictly between the given kind's boundary and
// the nearest larger boundary of any other detected kind (or the end of the
// document), with trailing blank lines trimmed. A kind with no boundary has
// no content.
func Content(lines []string, kind Kind, bounds Boundaries) []string {
	start, ok := bounds[kind]
	if !ok {
		return nil
	}

	end := len(lines)
	for _, idx := range bounds {
		if idx > start && idx < end {
			end = idx
		}
	}

	content := lines[start+1 : end]
	for len(content) > 0 && strings.TrimSpace(content[len(content)-1]) == "" {
		content = content[:len(content)-1]
	}
	return content
}

// Text joins section content back into a single string.
func Text(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
