package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const resumeText = `Anita Desai
anita@example.com

Skills
Python, Docker
`

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestRun_WritesPerFileAndCombinedArtifacts(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeInput(t, inputDir, "anita.txt", resumeText)
	writeInput(t, inputDir, "notes.md", "not a resume format")

	result, err := Run(context.Background(), Options{InputDir: inputDir, OutputDir: outputDir})
	require.NoError(t, err)

	require.Len(t, result.Parsed, 1)
	assert.Empty(t, result.Failures)
	assert.Equal(t, "anita.txt", result.Parsed[0].SourceFile)
	assert.Equal(t, "Anita Desai", result.Parsed[0].Name)

	data, err := os.ReadFile(filepath.Join(outputDir, "parsed_anita.json"))
	require.NoError(t, err)

	var single types.ParsedResume
	require.NoError(t, json.Unmarshal(data, &single))
	assert.Equal(t, "anita@example.com", single.ContactInfo.Email)

	data, err = os.ReadFile(filepath.Join(outputDir, CombinedFileName))
	require.NoError(t, err)

	var combined []types.ParsedResume
	require.NoError(t, json.Unmarshal(data, &combined))
	require.Len(t, combined, 1)
	assert.Equal(t, "anita.txt", combined[0].SourceFile)
}

func TestRun_FailuresDoNotAbortTheRun(t *testing.T) {
	inputDir := t.TempDir()
	writeInput(t, inputDir, "good.txt", resumeText)
	writeInput(t, inputDir, "broken.pdf", "not a real pdf")

	result, err := Run(context.Background(), Options{InputDir: inputDir, OutputDir: t.TempDir()})
	require.NoError(t, err)

	require.Len(t, result.Parsed, 1)
	assert.Equal(t, "good.txt", result.Parsed[0].SourceFile)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "broken.pdf", result.Failures[0].File)
}

func TestRun_OutputDirDefaultsToInputDir(t *testing.T) {
	inputDir := t.TempDir()
	writeInput(t, inputDir, "anita.txt", resumeText)

	_, err := Run(context.Background(), Options{InputDir: inputDir})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(inputDir, "parsed_anita.json"))
	assert.NoError(t, err)
}

func TestRun_EmptyFolder(t *testing.T) {
	outputDir := t.TempDir()

	result, err := Run(context.Background(), Options{InputDir: t.TempDir(), OutputDir: outputDir})
	require.NoError(t, err)
	assert.Empty(t, result.Parsed)
	assert.Empty(t, result.Failures)

	data, err := os.ReadFile(filepath.Join(outputDir, CombinedFileName))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestRun_MissingInputDir(t *testing.T) {
	_, err := Run(context.Background(), Options{InputDir: filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
}

func TestListResumeFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "b.txt", "x")
	writeInput(t, dir, "a.html", "x")
	writeInput(t, dir, "ignored.docx", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	files, err := listResumeFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "b.txt"),
	}, files)
}
