// Package achievements parses the achievements section into free-text
// entries.
package achievements

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minLen filters out stray fragments; real achievements are sentences.
const minLen = 10

var bulletPrefix = regexp.MustCompile(`^[•\-\*]\s*`)

// Parse returns one entry per non-blank section line longer than minLen,
// with any leading bullet marker stripped, in source order.
func Parse(lines []string) []string {
	var achievements []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if utf8.RuneCountInString(line) <= minLen {
			continue
		}
		if entry := bulletPrefix.ReplaceAllString(line, ""); entry != "" {
			achievements = append(achievements, entry)
		}
	}
	return achievements
}
