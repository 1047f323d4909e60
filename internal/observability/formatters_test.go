package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(&types.ParsedResume{
		Name:           "Jane Doe",
		ContactInfo:    types.ContactInfo{Email: "jane@example.com"},
		Skills:         []string{"Go", "Python", "Docker", "Kafka", "Redis", "Linux"},
		TablesDetected: 2,
	})

	out := buf.String()
	assert.Contains(t, out, "PARSED RESUME")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Tables detected:     2")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintParsedResume_MissingName(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(&types.ParsedResume{})
	assert.Contains(t, buf.String(), "(not found)")
}

func TestPrintExperience(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience([]types.JobEntry{
		{Position: "Engineer", Company: "Acme Corp", Duration: "2020-2022"},
	})

	out := buf.String()
	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "Acme Corp")
}

func TestPrintExperience_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTables_None(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTables(nil)
	assert.Contains(t, buf.String(), "NO TABLES DETECTED")
}

func TestPrintTables_Records(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTables([]types.TableRecord{
		{Page: 1, TableIndex: 1, Rows: [][]string{{"a"}, {"b"}}},
	})

	out := buf.String()
	assert.Contains(t, out, "DETECTED TABLES")
	assert.Contains(t, out, "Table 1 on page 1")
	assert.Contains(t, out, "2 rows")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(3, 1, []string{"broken.pdf: could not extract text from file"})

	out := buf.String()
	assert.Contains(t, out, "BATCH SUMMARY")
	assert.Contains(t, out, "Parsed:  3")
	assert.Contains(t, out, "Failed:  1")
	assert.Contains(t, out, "broken.pdf")
}
