package extraction

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/tables"
	"github.com/jonathan/resume-parser/internal/types"
)

// minTableRows is how many consecutive multi-column rows it takes before a
// run of aligned cells is treated as a table rather than incidental layout.
const minTableRows = 2

// tableAwareExtractor is the highest-fidelity strategy: per-page prose
// under page markers, plus recovered tables rendered as pseudo-text under
// table markers and returned as structured records.
type tableAwareExtractor struct{}

func (tableAwareExtractor) Name() string { return "table-aware" }

func (tableAwareExtractor) Extract(path string) (string, []types.TableRecord, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	var sb strings.Builder
	var records []types.TableRecord

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows := clusterRows(page.Content().Text)
		if len(rows) == 0 {
			continue
		}

		cellRows := make([][]string, len(rows))
		var prose []string
		for i, row := range rows {
			cellRows[i] = cellTexts(rowCells(row))
			prose = append(prose, strings.Join(cellRows[i], " "))
		}

		sb.WriteString(fmt.Sprintf("\n--- Page %d ---\n", pageNum))
		sb.WriteString(strings.Join(prose, "\n"))
		sb.WriteString("\n")

		for i, grid := range detectTables(cellRows) {
			rendered := tables.Normalize(grid)
			sb.WriteString(fmt.Sprintf("\n--- Table %d on Page %d ---\n", i+1, pageNum))
			sb.WriteString(rendered)
			records = append(records, types.TableRecord{
				Page:       pageNum,
				TableIndex: i + 1,
				Rows:       grid,
				Text:       rendered,
			})
		}
	}

	return sb.String(), records, nil
}

// detectTables finds runs of consecutive rows that all split into two or
// more cells. Each sufficiently long run is one table grid.
func detectTables(cellRows [][]string) [][][]string {
	var grids [][][]string
	var run [][]string

	flush := func() {
		if len(run) >= minTableRows {
			grids = append(grids, run)
		}
		run = nil
	}

	for _, row := range cellRows {
		if len(row) >= 2 {
			run = append(run, row)
		} else {
			flush()
		}
	}
	flush()

	return grids
}
