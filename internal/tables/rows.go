package tables

import (
	"regexp"
	"strings"
)

// KV is one key/value cell parsed from a pseudo-table row line.
type KV struct {
	Key   string
	Value string
}

var rowPrefix = regexp.MustCompile(`(?i)^row\s*\d*\s*:\s*`)

// ParseRowLine splits a "Row N: Key: Value | Key: Value" pseudo-table line
// into its cells. Keys are lowercased for keyword matching. The second
// return is false when the line is not a row line at all.
func ParseRowLine(line string) ([]KV, bool) {
	line = strings.TrimSpace(line)
	if !strings.Contains(strings.ToLower(line), "row") || !strings.Contains(line, ":") {
		return nil, false
	}

	rest := rowPrefix.ReplaceAllString(line, "")

	var cells []KV
	for _, part := range strings.Split(rest, "|") {
		if key, value, ok := strings.Cut(part, ":"); ok {
			cells = append(cells, KV{
				Key:   strings.ToLower(strings.TrimSpace(key)),
				Value: strings.TrimSpace(value),
			})
		}
	}
	return cells, true
}

// KeyContainsAny reports whether the cell key contains any of the given
// header keywords.
func KeyContainsAny(key string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}
