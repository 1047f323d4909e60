package extraction

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Geometry thresholds for reconstructing structure from positioned glyphs.
// Glyphs on the same visual row sit within rowTolerance units of each
// other vertically; a horizontal gap wider than cellGap separates table
// cells, while smaller gaps (relative to font size) separate words.
const (
	rowTolerance  = 5.0
	cellGap       = 30.0
	wordGapFactor = 0.3
)

// cell is one reconstructed run of text within a row.
type cell struct {
	x    float64
	text string
}

// clusterRows groups positioned glyphs into visual rows by y proximity,
// top of page first, each row sorted left to right.
func clusterRows(texts []pdf.Text) [][]pdf.Text {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			glyphs = append(glyphs, t)
		}
	}
	if len(glyphs) == 0 {
		return nil
	}

	// PDF y grows upward, so descending y is reading order.
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].Y != glyphs[j].Y {
			return glyphs[i].Y > glyphs[j].Y
		}
		return glyphs[i].X < glyphs[j].X
	})

	var rows [][]pdf.Text
	var row []pdf.Text
	rowY := glyphs[0].Y
	for _, g := range glyphs {
		if abs(g.Y-rowY) < rowTolerance {
			row = append(row, g)
		} else {
			rows = append(rows, sortRow(row))
			row = []pdf.Text{g}
		}
		rowY = g.Y
	}
	rows = append(rows, sortRow(row))
	return rows
}

func sortRow(row []pdf.Text) []pdf.Text {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	return row
}

// rowCells merges a left-to-right glyph run into cells. Gaps wider than
// cellGap start a new cell; gaps wider than a fraction of the font size
// become spaces within the current cell.
func rowCells(row []pdf.Text) []cell {
	var cells []cell
	var sb strings.Builder
	var start float64
	var prev pdf.Text
	haveCell := false

	flush := func() {
		text := strings.TrimSpace(sb.String())
		if text != "" {
			cells = append(cells, cell{x: start, text: text})
		}
		sb.Reset()
	}

	for _, g := range row {
		if !haveCell {
			start = g.X
			haveCell = true
		} else {
			gap := g.X - (prev.X + glyphWidth(prev))
			switch {
			case gap > cellGap:
				flush()
				start = g.X
			case gap > wordGapFactor*prev.FontSize:
				sb.WriteString(" ")
			}
		}
		sb.WriteString(g.S)
		prev = g
	}
	flush()

	return cells
}

// glyphWidth falls back to a font-size estimate when the decoder reports
// no advance width for a glyph.
func glyphWidth(g pdf.Text) float64 {
	if g.W > 0 {
		return g.W
	}
	return g.FontSize * 0.5
}

func cellTexts(cells []cell) []string {
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = c.text
	}
	return texts
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
