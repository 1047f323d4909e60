// Package contact extracts contact details and the candidate name from
// resume text.
package contact

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns is tried in order; the first pattern matching anywhere in
// the document wins. Digits from all captured groups are concatenated with
// no separators into the stored value.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?91[-.\s]?(\d{5})[-.\s]?(\d{5})`),              // Indian 5+5 grouping
	regexp.MustCompile(`\+?91[-.\s]?(\d{4})[-.\s]?(\d{3})[-.\s]?(\d{3})`), // Indian 4+3+3 grouping
	regexp.MustCompile(`\+?1?[-.\s]?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})`), // US grouping
	regexp.MustCompile(`(\d{10})`),                                       // bare 10-digit run
	regexp.MustCompile(`\+(\d{1,3})[-.\s]?(\d{4,5})[-.\s]?(\d{4,6})`),    // generic international
}

var (
	linkedinPattern = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubPattern   = regexp.MustCompile(`(https?://)?(www\.)?github\.com/[A-Za-z0-9_-]+`)
)

// Extract runs independent regex passes over the entire extracted text and
// keeps only the first match per field.
func Extract(text string) types.ContactInfo {
	var info types.ContactInfo

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}

	for _, pattern := range phonePatterns {
		if groups := pattern.FindStringSubmatch(text); groups != nil {
			info.Phone = strings.Join(groups[1:], "")
			break
		}
	}

	info.LinkedIn = normalizeURL(linkedinPattern.FindString(text))
	info.GitHub = normalizeURL(githubPattern.FindString(text))

	return info
}

// normalizeURL defaults the scheme to https when the match carried none.
func normalizeURL(url string) string {
	if url == "" || strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
