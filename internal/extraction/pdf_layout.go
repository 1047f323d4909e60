package extraction

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/types"
)

// layoutExtractor is the mid-fidelity strategy: it has no table recovery
// proper, but clusters positioned fragments into rows and emits any row
// with two or more columns as a pipe-joined pseudo-table line under a
// structured-content marker.
type layoutExtractor struct{}

func (layoutExtractor) Name() string { return "layout-aware" }

func (layoutExtractor) Extract(path string) (string, []types.TableRecord, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	var sb strings.Builder

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows := clusterRows(page.Content().Text)
		if len(rows) == 0 {
			continue
		}

		var prose []string
		var structured []string
		for _, row := range rows {
			cells := cellTexts(rowCells(row))
			if len(cells) == 0 {
				continue
			}
			prose = append(prose, strings.Join(cells, " "))
			if len(cells) >= 2 {
				structured = append(structured, strings.Join(cells, " | "))
			}
		}

		sb.WriteString(fmt.Sprintf("\n--- Page %d ---\n", pageNum))
		sb.WriteString(strings.Join(prose, "\n"))
		sb.WriteString("\n")

		if len(structured) > 0 {
			sb.WriteString(fmt.Sprintf("\n--- Structured Content Page %d ---\n", pageNum))
			sb.WriteString(strings.Join(structured, "\n"))
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil, nil
}
