package extraction

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyph(s string, x, y float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: 10, FontSize: 12}
}

func TestClusterRows_GroupsByVerticalProximity(t *testing.T) {
	glyphs := []pdf.Text{
		glyph("b", 50, 700),
		glyph("a", 10, 702), // same visual row as "b"
		glyph("c", 10, 650),
	}

	rows := clusterRows(glyphs)
	require.Len(t, rows, 2)

	// Rows come top-down, glyphs left to right.
	assert.Equal(t, "a", rows[0][0].S)
	assert.Equal(t, "b", rows[0][1].S)
	assert.Equal(t, "c", rows[1][0].S)
}

func TestClusterRows_DropsBlankGlyphs(t *testing.T) {
	rows := clusterRows([]pdf.Text{glyph("  ", 10, 700), glyph("x", 20, 700)})
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	assert.Equal(t, "x", rows[0][0].S)
}

func TestClusterRows_Empty(t *testing.T) {
	assert.Nil(t, clusterRows(nil))
	assert.Nil(t, clusterRows([]pdf.Text{glyph(" ", 0, 0)}))
}

func TestRowCells_WideGapSplitsCells(t *testing.T) {
	row := []pdf.Text{
		glyph("Name", 10, 700),
		glyph("Alice", 100, 700), // 80 units past the previous glyph's end
	}

	cells := cellTexts(rowCells(row))
	assert.Equal(t, []string{"Name", "Alice"}, cells)
}

func TestRowCells_SmallGapBecomesSpace(t *testing.T) {
	row := []pdf.Text{
		glyph("John", 10, 700),
		glyph("Smith", 30, 700), // 10 units past the previous glyph's end
	}

	cells := cellTexts(rowCells(row))
	assert.Equal(t, []string{"John Smith"}, cells)
}

func TestRowCells_AdjacentGlyphsConcatenate(t *testing.T) {
	row := []pdf.Text{
		glyph("Jo", 10, 700),
		glyph("hn", 20, 700), // touching the previous glyph
	}

	cells := cellTexts(rowCells(row))
	assert.Equal(t, []string{"John"}, cells)
}

func TestDetectTables_RunsOfMultiColumnRows(t *testing.T) {
	cellRows := [][]string{
		{"prose line"},
		{"Degree", "Year"},
		{"B.Tech", "2019"},
		{"M.Tech", "2021"},
		{"more prose"},
		{"lonely", "pair"},
	}

	grids := detectTables(cellRows)
	require.Len(t, grids, 1)
	assert.Equal(t, [][]string{
		{"Degree", "Year"},
		{"B.Tech", "2019"},
		{"M.Tech", "2021"},
	}, grids[0])
}

func TestDetectTables_NoTables(t *testing.T) {
	assert.Empty(t, detectTables([][]string{{"a"}, {"b"}}))
	assert.Empty(t, detectTables(nil))
}
