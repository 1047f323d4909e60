package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DegreeWithField(t *testing.T) {
	lines := []string{
		"XYZ University, Delhi",
		"Bachelor of Technology in Computer Science, 2019",
		"CGPA: 8.5",
	}

	entries := Parse(lines)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "XYZ University", entry.Institution)
	assert.Equal(t, "B.Tech", entry.Degree)
	assert.Equal(t, "Computer Science", entry.Field)
	assert.Equal(t, "2019", entry.Year)
	assert.Equal(t, "CGPA: 8.5", entry.CGPA)
}

func TestParse_AbbreviatedDegree(t *testing.T) {
	lines := []string{
		"State Engineering College, Chennai",
		"B.Tech in Electronics, 2017, Percentage: 82.4%",
	}

	entries := Parse(lines)
	require.Len(t, entries, 1)

	assert.Equal(t, "B.Tech", entries[0].Degree)
	assert.Equal(t, "Electronics", entries[0].Field)
	assert.Equal(t, "2017", entries[0].Year)
	assert.Equal(t, "Percentage: 82.4%", entries[0].CGPA)
}

func TestParse_MultipleInstitutions(t *testing.T) {
	lines := []string{
		"ABC Institute, Pune",
		"Master of Science in Data Analysis, 2021",
		"DEF College, Nagpur",
		"Bachelor of Science in Statistics, 2019",
	}

	entries := Parse(lines)
	require.Len(t, entries, 2)

	assert.Equal(t, "ABC Institute", entries[0].Institution)
	assert.Equal(t, "M.Sc", entries[0].Degree)
	assert.Equal(t, "DEF College", entries[1].Institution)
	assert.Equal(t, "B.Sc", entries[1].Degree)
}

func TestParse_MBAWithoutField(t *testing.T) {
	lines := []string{
		"Harvard Business School, Boston",
		"MBA, 2015",
	}

	entries := Parse(lines)
	require.Len(t, entries, 1)

	assert.Equal(t, "MBA", entries[0].Degree)
	assert.Empty(t, entries[0].Field)
	assert.Equal(t, "2015", entries[0].Year)
}

func TestParse_TableMode(t *testing.T) {
	lines := []string{
		"Headers: Degree | University | Year | CGPA",
		"Row 1: Degree: B.Sc | University: State College | Year: 2018 | CGPA: 7.9",
		"Row 2: Degree: M.Sc | University: Central University | Year: 2020 | CGPA: 8.4",
	}

	entries := Parse(lines)
	require.Len(t, entries, 2)

	assert.Equal(t, "B.Sc", entries[0].Degree)
	assert.Equal(t, "State College", entries[0].Institution)
	assert.Equal(t, "2018", entries[0].Year)
	assert.Equal(t, "7.9", entries[0].CGPA)

	assert.Equal(t, "M.Sc", entries[1].Degree)
	assert.Equal(t, "Central University", entries[1].Institution)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]string{"no school mentioned here"}))
}
