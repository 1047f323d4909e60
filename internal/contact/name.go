package contact

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/ner"
	"github.com/jonathan/resume-parser/internal/sections"
)

// nameScanLines bounds the heuristic scan. Table-formatted resumes push the
// name further down, so the window is generous.
const nameScanLines = 15

// nerPrefixLen is how much text the fallback recognizer is given.
const nerPrefixLen = 2000

// skipPatterns rejects lines that cannot be a candidate name: contact
// details, resume boilerplate, section headers and pseudo-table markers.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`@`),
	regexp.MustCompile(`\+?\d{10}`),
	regexp.MustCompile(`resume`),
	regexp.MustCompile(`cv`),
	regexp.MustCompile(`curriculum vitae`),
	regexp.MustCompile(`software`),
	regexp.MustCompile(`engineer`),
	regexp.MustCompile(`developer`),
	regexp.MustCompile(`summary`),
	regexp.MustCompile(`contact`),
	regexp.MustCompile(`skills`),
	regexp.MustCompile(`experience`),
	regexp.MustCompile(`education`),
	regexp.MustCompile(`objective`),
	regexp.MustCompile(`location`),
	regexp.MustCompile(`page \d+`),
	regexp.MustCompile(`table \d+`),
	regexp.MustCompile(`headers:`),
	regexp.MustCompile(`row \d+:`),
	regexp.MustCompile(`col\d+`),
}

// nameLabels are the left-hand sides that mark a labeled name line in
// pseudo-table output ("Name: Jane Doe").
var nameLabels = map[string]bool{
	"name":           true,
	"candidate name": true,
	"full name":      true,
}

// ExtractName scans the first lines of the document for the candidate name.
// If the heuristics find nothing it falls back to the recognizer, which may
// be nil, in which case the name is simply absent.
func ExtractName(ctx context.Context, text string, recognizer ner.Recognizer) string {
	lines := sections.SplitLines(text)
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}

		lower := strings.ToLower(line)
		if matchesAnySkip(lower) {
			continue
		}

		// Labeled form produced by table normalization.
		if left, right, ok := strings.Cut(line, ":"); ok {
			if nameLabels[strings.ToLower(strings.TrimSpace(left))] {
				candidate := strings.TrimSpace(right)
				if isValidName(candidate) {
					return candidate
				}
			}
		}

		// Bare form: 2-4 capitalized alphabetic words.
		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 && allNameWords(words) {
			return line
		}
	}

	if recognizer != nil {
		prefix := text
		if len(prefix) > nerPrefixLen {
			prefix = prefix[:nerPrefixLen]
		}
		entities, err := recognizer.FindPersonEntities(ctx, prefix)
		if err == nil {
			for _, e := range entities {
				if e.Label == ner.LabelPerson && len(strings.Fields(e.Text)) >= 2 {
					return e.Text
				}
			}
		}
	}

	return ""
}

func matchesAnySkip(lower string) bool {
	for _, pattern := range skipPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// isValidName reports whether a string looks like a person name: at least
// two words, every word alphabetic (ignoring hyphens and apostrophes) and
// capitalized.
func isValidName(name string) bool {
	words := strings.Fields(name)
	return len(words) >= 2 && allNameWords(words)
}

func allNameWords(words []string) bool {
	for _, word := range words {
		if !isNameWord(word) {
			return false
		}
	}
	return true
}

func isNameWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	seen := false
	for _, r := range runes {
		if r == '-' || r == '\'' {
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
		seen = true
	}
	return seen
}
