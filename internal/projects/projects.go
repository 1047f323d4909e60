// Package projects parses the top-level projects section, independent of
// the projects nested inside experience entries.
package projects

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// maxHeaderLen is the cutoff above which a colon line reads as prose
// rather than a "Name: description" project header.
const maxHeaderLen = 100

// Parse extracts project records. A short line containing a colon starts a
// new project with the name before the colon and the description after it;
// subsequent non-empty lines extend the open project's description.
func Parse(lines []string) []types.ProjectRecord {
	var records []types.ProjectRecord
	var current *types.ProjectRecord

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, desc, ok := strings.Cut(line, ":"); ok && utf8.RuneCountInString(line) < maxHeaderLen {
			if current != nil {
				records = append(records, *current)
			}
			current = &types.ProjectRecord{
				Name:         strings.TrimSpace(name),
				Description:  strings.TrimSpace(desc),
				Technologies: []string{},
			}
			continue
		}

		if current != nil {
			if current.Description != "" {
				current.Description += " " + line
			} else {
				current.Description = line
			}
		}
	}

	if current != nil {
		records = append(records, *current)
	}
	return records
}
