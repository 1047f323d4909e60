// Package tables converts tabular cell grids into flat "Header: Value"
// pseudo-text so downstream section parsing can treat prose and tables
// uniformly.
package tables

import (
	"fmt"
	"strings"
)

// Normalize renders a row grid as pseudo-text. Row 0 is treated as the
// header row and rendered as "Headers: H1 | H2". Every subsequent non-blank
// row becomes one "Row k: Header: cell | ..." line; cells without text are
// omitted, and cells whose column has no header are labeled positionally
// (Col1, Col2, ...).
func Normalize(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = strings.TrimSpace(cell)
	}
	sb.WriteString("Headers: " + strings.Join(headers, " | ") + "\n")

	for rowNum, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		var cells []string
		for colNum, cell := range row {
			text := strings.TrimSpace(cell)
			if text == "" {
				continue
			}
			header := ""
			if colNum < len(headers) {
				header = headers[colNum]
			}
			if header == "" {
				header = fmt.Sprintf("Col%d", colNum+1)
			}
			cells = append(cells, header+": "+text)
		}
		if len(cells) > 0 {
			sb.WriteString(fmt.Sprintf("Row %d: %s\n", rowNum+1, strings.Join(cells, " | ")))
		}
	}

	return sb.String()
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
