package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const minimalSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": "Jane"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSON_FilesNotFound(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(minimalSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "no-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPath_FindsBundledSchema(t *testing.T) {
	path := ResolveSchemaPath(ParsedResumeSchema)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestValidateParsedResumeFile_RealRecord(t *testing.T) {
	resume := types.ParsedResume{
		Name: "Jane Doe",
		ContactInfo: types.ContactInfo{
			Email: "jane@example.com",
		},
		Experience: []types.JobEntry{{
			Position: "Software Engineer",
			Company:  "Acme Corp",
			Projects: []types.ProjectEntry{{Name: "Billing Portal"}},
		}},
		Education: []types.EducationEntry{{
			Degree:      "B.Tech",
			Institution: "XYZ University",
		}},
		Skills:         []string{"Go", "Python"},
		Projects:       []types.ProjectRecord{{Name: "Chat App", Technologies: []string{}}},
		Achievements:   []string{"Won a hackathon"},
		TablesDetected: 1,
		TablesData: []types.TableRecord{{
			Page:       1,
			TableIndex: 1,
			Rows:       [][]string{{"Name"}, {"Jane"}},
			Text:       "Headers: Name\nRow 1: Name: Jane\n",
		}},
		RawText:    "Jane Doe",
		ParsedDate: time.Now().UTC(),
	}

	data, err := json.Marshal(resume)
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "parsed.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0644))

	assert.NoError(t, ValidateParsedResumeFile(jsonPath))
}

func TestValidateParsedResumeFile_RejectsWrongShape(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"skills": "not an array"}`), 0644))

	err := ValidateParsedResumeFile(jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
